package query

import (
	"context"

	"github.com/eaglebank/ledger/internal/repository"
	"github.com/eaglebank/ledger/shared/cqrs"
	"github.com/eaglebank/ledger/shared/errs"
	"github.com/eaglebank/ledger/shared/models"
)

type TransactionQueryService struct {
	transactions *repository.TransactionRepository
	accounts     *repository.AccountRepository
}

func NewTransactionQueryService(transactions *repository.TransactionRepository, accounts *repository.AccountRepository) *TransactionQueryService {
	return &TransactionQueryService{transactions: transactions, accounts: accounts}
}

// ListTransactions returns the ledger of a live account. Entries of a
// deleted account are kept but no longer listed.
func (s *TransactionQueryService) ListTransactions(_ context.Context, q cqrs.ListTransactionsQuery) ([]models.Transaction, error) {
	if !s.accounts.Exists(q.AccountID) {
		return nil, errs.ErrAccountNotFound
	}
	return s.transactions.ListByAccountID(q.AccountID), nil
}
