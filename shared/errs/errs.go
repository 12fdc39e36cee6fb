// Package errs defines the categorical failures the ledger reports.
//
// Every concrete failure wraps one of the kind sentinels, so callers can
// either match the exact failure or only its category:
//
//	errors.Is(err, errs.ErrAccountNotFound) // this failure
//	errors.Is(err, errs.ErrNotFound)        // any missing entity
package errs

import "errors"

// Failure kinds.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// Error is a failure of a known kind carrying the message shown to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrUserNotFound    = New(ErrNotFound, "User not found.")
	ErrAccountNotFound = New(ErrNotFound, "Account not found.")

	ErrInvalidInitialBalance = New(ErrInvalidInput, "Initial balance must be at least $100.")
	ErrInvalidAmount         = New(ErrInvalidInput, "Amount must be greater than zero.")
	ErrDepositLimit          = New(ErrInvalidInput, "Cannot deposit more than $10000 in a single transaction.")
	ErrInvalidWithdrawal     = New(ErrInvalidInput, "Withdrawal request does not meet the required criteria.")

	ErrUserConflict        = New(ErrConflict, "A user with the same ID already exists.")
	ErrAccountConflict     = New(ErrConflict, "An account with the same ID already exists.")
	ErrTransactionConflict = New(ErrConflict, "A transaction with the same ID already exists.")
)

// Message returns the client-facing message of err, or fallback when err
// is not an *Error.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return fallback
}
