package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// ID prefixes per entity kind.
const (
	UserIDPrefix        = "usr"
	AccountIDPrefix     = "acc"
	TransactionIDPrefix = "tan"
)

// IDGenerator produces a fresh id for the given prefix.
type IDGenerator func(prefix string) string

// GenerateID generates a unique ID with the given prefix
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
