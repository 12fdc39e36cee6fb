package repository

import (
	"cmp"
	"slices"

	"github.com/eaglebank/ledger/shared/models"
	"github.com/eaglebank/ledger/shared/store"
)

// DataStore owns one Store per entity kind. Construct one per process and
// hand it to the repositories; nothing here is a package-level singleton.
type DataStore struct {
	Users        *store.Store[models.User]
	Accounts     *store.Store[models.Account]
	Transactions *store.Store[models.Transaction]
}

func NewDataStore() *DataStore {
	return &DataStore{
		Users:        store.New[models.User](),
		Accounts:     store.New[models.Account](),
		Transactions: store.New[models.Transaction](),
	}
}

// byCreation orders entities oldest first, breaking ties by id so listings
// are stable.
func byCreation(a, b models.Entity) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func sortAccounts(accounts []models.Account) {
	slices.SortFunc(accounts, func(a, b models.Account) int { return byCreation(a.Entity, b.Entity) })
}

func sortTransactions(txs []models.Transaction) {
	slices.SortFunc(txs, func(a, b models.Transaction) int { return byCreation(a.Entity, b.Entity) })
}
