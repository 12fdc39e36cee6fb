package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type Options struct {
	Level  string
	Format string // "text" or "json"
	Prefix string
}

var levelColors = map[log.Level]lipgloss.AdaptiveColor{
	log.ErrorLevel: {Light: "#FF6B6B", Dark: "#FF6B6B"},
	log.WarnLevel:  {Light: "#EE6FF8", Dark: "#EE6FF8"},
	log.InfoLevel:  {Light: "#04B575", Dark: "#04B575"},
	log.DebugLevel: {Light: "#7E57C2", Dark: "#7E57C2"},
}

// New builds a slog.Logger backed by charmbracelet/log and installs it as
// the process default. Unknown levels fall back to info.
func New(w io.Writer, opts Options) *slog.Logger {
	level, err := log.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = log.InfoLevel
	}

	formatter := log.TextFormatter
	if opts.Format == "json" {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
		Prefix:          opts.Prefix,
		Formatter:       formatter,
	})

	styles := log.DefaultStyles()
	for lvl, color := range levelColors {
		styles.Levels[lvl] = lipgloss.NewStyle().
			SetString(strings.ToUpper(lvl.String())).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
	}
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}
