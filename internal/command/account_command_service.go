package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/eaglebank/ledger/internal/repository"
	"github.com/eaglebank/ledger/shared/cqrs"
	"github.com/eaglebank/ledger/shared/errs"
	"github.com/eaglebank/ledger/shared/events"
	"github.com/eaglebank/ledger/shared/ledger"
	"github.com/eaglebank/ledger/shared/models"
	"github.com/eaglebank/ledger/shared/utils"
)

// AccountCommandService opens and closes accounts. Balance changes go
// through TransactionCommandService only.
type AccountCommandService struct {
	accounts  *repository.AccountRepository
	users     *repository.UserRepository
	publisher events.Publisher
	logger    *slog.Logger

	newID utils.IDGenerator
	now   func() time.Time
}

func NewAccountCommandService(
	accounts *repository.AccountRepository,
	users *repository.UserRepository,
	publisher events.Publisher,
	logger *slog.Logger,
) *AccountCommandService {
	return &AccountCommandService{
		accounts:  accounts,
		users:     users,
		publisher: publisher,
		logger:    logger,
		newID:     utils.GenerateID,
		now:       time.Now,
	}
}

// CreateAccount opens an account for an existing user. The user reference
// is only checked here; it is not enforced afterwards.
func (s *AccountCommandService) CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*models.Account, error) {
	if !s.users.Exists(cmd.UserID) {
		return nil, errs.ErrUserNotFound
	}
	if !ledger.ValidInitialBalance(cmd.InitialBalance) {
		return nil, errs.ErrInvalidInitialBalance
	}

	account := models.Account{
		Entity: models.Entity{
			ID:        s.newID(utils.AccountIDPrefix),
			CreatedAt: s.now().UTC(),
		},
		UserID:  cmd.UserID,
		Balance: cmd.InitialBalance,
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.AccountCreated, events.AccountCreatedEvent{
		AccountID:      account.ID,
		UserID:         account.UserID,
		InitialBalance: account.Balance,
	}); err != nil {
		s.logger.Warn("failed to publish account.created event", "accountId", account.ID, "error", err)
	}
	return &account, nil
}

// DeleteAccount removes the account. Its transactions stay in the ledger.
func (s *AccountCommandService) DeleteAccount(ctx context.Context, cmd cqrs.DeleteAccountCommand) error {
	account, err := s.accounts.Delete(cmd.AccountID)
	if err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.AccountDeleted, events.AccountDeletedEvent{
		AccountID: account.ID,
		UserID:    account.UserID,
	}); err != nil {
		s.logger.Warn("failed to publish account.deleted event", "accountId", account.ID, "error", err)
	}
	return nil
}
