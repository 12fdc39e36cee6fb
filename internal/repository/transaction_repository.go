package repository

import (
	"github.com/eaglebank/ledger/shared/errs"
	"github.com/eaglebank/ledger/shared/models"
	"github.com/eaglebank/ledger/shared/store"
)

// TransactionRepository is append-only: there is no update or delete.
type TransactionRepository struct {
	transactions *store.Store[models.Transaction]
}

func NewTransactionRepository(transactions *store.Store[models.Transaction]) *TransactionRepository {
	return &TransactionRepository{transactions: transactions}
}

func (r *TransactionRepository) Create(tx models.Transaction) error {
	if !r.transactions.Set(tx.ID, tx) {
		return errs.ErrTransactionConflict
	}
	return nil
}

func (r *TransactionRepository) ListByAccountID(accountID string) []models.Transaction {
	txs := make([]models.Transaction, 0)
	for _, tx := range r.transactions.ListAll() {
		if tx.AccountID == accountID {
			txs = append(txs, tx)
		}
	}
	sortTransactions(txs)
	return txs
}
