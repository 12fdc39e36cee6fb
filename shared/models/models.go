package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entity carries the identity and timestamps every record shares.
// Timestamps are bookkeeping only and are not part of the API payload.
type Entity struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt *time.Time `json:"-"`
}

type User struct {
	Entity
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Account struct {
	Entity
	UserID  string          `json:"userId"`
	Balance decimal.Decimal `json:"balance"`
}

// Transaction is an immutable ledger entry; Type is ledger.Deposit or
// ledger.Withdrawal.
type Transaction struct {
	Entity
	AccountID string          `json:"accountId"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
}
