package cqrs

import "github.com/shopspring/decimal"

type CreateUserCommand struct {
	Name  string
	Email string
}

type CreateAccountCommand struct {
	UserID         string
	InitialBalance decimal.Decimal
}

type DeleteAccountCommand struct {
	AccountID string
}

type DepositCommand struct {
	AccountID string
	Amount    decimal.Decimal
}

type WithdrawCommand struct {
	AccountID string
	Amount    decimal.Decimal
}
