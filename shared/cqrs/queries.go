package cqrs

// ---------- User queries ----------

// GetUserQuery fetches a single user by ID.
type GetUserQuery struct {
	UserID string
}

// ---------- Account queries ----------

// ListAccountsQuery fetches all accounts belonging to a user.
type ListAccountsQuery struct {
	UserID string
}

// ---------- Transaction queries ----------

// ListTransactionsQuery fetches the ledger of one account.
type ListTransactionsQuery struct {
	AccountID string
}
