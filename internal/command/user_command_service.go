package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/eaglebank/ledger/internal/repository"
	"github.com/eaglebank/ledger/shared/cqrs"
	"github.com/eaglebank/ledger/shared/events"
	"github.com/eaglebank/ledger/shared/models"
	"github.com/eaglebank/ledger/shared/utils"
)

// UserCommandService creates users. There is no update or delete; users
// are immutable once created.
type UserCommandService struct {
	users     *repository.UserRepository
	publisher events.Publisher
	logger    *slog.Logger

	newID utils.IDGenerator
	now   func() time.Time
}

func NewUserCommandService(
	users *repository.UserRepository,
	publisher events.Publisher,
	logger *slog.Logger,
) *UserCommandService {
	return &UserCommandService{
		users:     users,
		publisher: publisher,
		logger:    logger,
		newID:     utils.GenerateID,
		now:       time.Now,
	}
}

func (s *UserCommandService) CreateUser(ctx context.Context, cmd cqrs.CreateUserCommand) (*models.User, error) {
	user := models.User{
		Entity: models.Entity{
			ID:        s.newID(utils.UserIDPrefix),
			CreatedAt: s.now().UTC(),
		},
		Name:  cmd.Name,
		Email: cmd.Email,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserCreated, events.UserCreatedEvent{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}); err != nil {
		s.logger.Warn("failed to publish user.created event", "userId", user.ID, "error", err)
	}
	return &user, nil
}
