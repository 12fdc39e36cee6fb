package query

import (
	"context"

	"github.com/eaglebank/ledger/internal/repository"
	"github.com/eaglebank/ledger/shared/cqrs"
	"github.com/eaglebank/ledger/shared/errs"
	"github.com/eaglebank/ledger/shared/models"
)

type AccountQueryService struct {
	accounts *repository.AccountRepository
	users    *repository.UserRepository
}

func NewAccountQueryService(accounts *repository.AccountRepository, users *repository.UserRepository) *AccountQueryService {
	return &AccountQueryService{accounts: accounts, users: users}
}

// ListAccounts returns the user's accounts oldest first. A user with no
// accounts gets an empty slice; an unknown user is ErrUserNotFound.
func (s *AccountQueryService) ListAccounts(_ context.Context, q cqrs.ListAccountsQuery) ([]models.Account, error) {
	if !s.users.Exists(q.UserID) {
		return nil, errs.ErrUserNotFound
	}
	return s.accounts.ListByUserID(q.UserID), nil
}
