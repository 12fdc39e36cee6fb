package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types
const (
	UserCreated = "user.created"

	AccountCreated = "account.created"
	AccountDeleted = "account.deleted"

	TransactionCreated = "transaction.created"
	BalanceUpdated     = "balance.updated"
)

// Stream names
const (
	UserEventsStream        = "user.events"
	AccountEventsStream     = "account.events"
	TransactionEventsStream = "transaction.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// User events
type UserCreatedEvent struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Account events
type AccountCreatedEvent struct {
	AccountID      string          `json:"accountId"`
	UserID         string          `json:"userId"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

type AccountDeletedEvent struct {
	AccountID string `json:"accountId"`
	UserID    string `json:"userId"`
}

// Transaction events
type TransactionCreatedEvent struct {
	TransactionID string          `json:"transactionId"`
	AccountID     string          `json:"accountId"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
}

type BalanceUpdatedEvent struct {
	AccountID  string          `json:"accountId"`
	NewBalance decimal.Decimal `json:"newBalance"`
	Change     decimal.Decimal `json:"change"`
}
