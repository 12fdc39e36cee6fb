package repository

import (
	"errors"

	"github.com/eaglebank/ledger/shared/errs"
	"github.com/eaglebank/ledger/shared/models"
	"github.com/eaglebank/ledger/shared/store"
)

type AccountRepository struct {
	accounts *store.Store[models.Account]
}

func NewAccountRepository(accounts *store.Store[models.Account]) *AccountRepository {
	return &AccountRepository{accounts: accounts}
}

func (r *AccountRepository) Create(account models.Account) error {
	if !r.accounts.Set(account.ID, account) {
		return errs.ErrAccountConflict
	}
	return nil
}

func (r *AccountRepository) Exists(id string) bool {
	return r.accounts.ContainsKey(id)
}

// Delete removes the account and returns what was stored.
func (r *AccountRepository) Delete(id string) (*models.Account, error) {
	account, ok := r.accounts.Take(id)
	if !ok {
		return nil, errs.ErrAccountNotFound
	}
	return &account, nil
}

// ListByUserID scans a snapshot of every account, so its cost grows with
// the total number of accounts rather than the user's.
func (r *AccountRepository) ListByUserID(userID string) []models.Account {
	accounts := make([]models.Account, 0)
	for _, a := range r.accounts.ListAll() {
		if a.UserID == userID {
			accounts = append(accounts, a)
		}
	}
	sortAccounts(accounts)
	return accounts
}

// Apply runs fn as one atomic read-modify-write of the account. No other
// mutation of the same account can interleave with it. fn must not touch
// the account store itself.
func (r *AccountRepository) Apply(id string, fn func(models.Account) (models.Account, error)) (*models.Account, error) {
	account, err := r.accounts.Update(id, fn)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, errs.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
