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
	"github.com/shopspring/decimal"
)

// TransactionCommandService records deposits and withdrawals. Each one
// appends a transaction and moves the account balance as a single atomic
// step on that account.
type TransactionCommandService struct {
	accounts     *repository.AccountRepository
	transactions *repository.TransactionRepository
	publisher    events.Publisher
	logger       *slog.Logger

	newID utils.IDGenerator
	now   func() time.Time
}

func NewTransactionCommandService(
	accounts *repository.AccountRepository,
	transactions *repository.TransactionRepository,
	publisher events.Publisher,
	logger *slog.Logger,
) *TransactionCommandService {
	return &TransactionCommandService{
		accounts:     accounts,
		transactions: transactions,
		publisher:    publisher,
		logger:       logger,
		newID:        utils.GenerateID,
		now:          time.Now,
	}
}

// Deposit validates the amount before it looks the account up, so an
// oversized deposit to a missing account reports ErrDepositLimit.
func (s *TransactionCommandService) Deposit(ctx context.Context, cmd cqrs.DepositCommand) (*models.Account, error) {
	if !ledger.ValidAmount(cmd.Amount) {
		return nil, errs.ErrInvalidAmount
	}
	if !ledger.ValidDeposit(cmd.Amount) {
		return nil, errs.ErrDepositLimit
	}
	return s.record(ctx, cmd.AccountID, ledger.Deposit, cmd.Amount, nil)
}

// Withdraw looks the account up first and only then validates the amount
// against its balance.
func (s *TransactionCommandService) Withdraw(ctx context.Context, cmd cqrs.WithdrawCommand) (*models.Account, error) {
	return s.record(ctx, cmd.AccountID, ledger.Withdrawal, cmd.Amount, func(account models.Account) error {
		if !ledger.ValidAmount(cmd.Amount) {
			return errs.ErrInvalidAmount
		}
		if !ledger.ValidWithdrawal(account.Balance, cmd.Amount) {
			return errs.ErrInvalidWithdrawal
		}
		return nil
	})
}

// record holds the account for the whole read-validate-write sequence.
// The transaction is inserted before the balance changes; if the insert
// fails the balance is left as it was.
func (s *TransactionCommandService) record(
	ctx context.Context,
	accountID, txType string,
	amount decimal.Decimal,
	check func(models.Account) error,
) (*models.Account, error) {
	var (
		tx       models.Transaction
		previous decimal.Decimal
	)
	account, err := s.accounts.Apply(accountID, func(account models.Account) (models.Account, error) {
		if check != nil {
			if err := check(account); err != nil {
				return account, err
			}
		}

		now := s.now().UTC()
		tx = models.Transaction{
			Entity: models.Entity{
				ID:        s.newID(utils.TransactionIDPrefix),
				CreatedAt: now,
			},
			AccountID: accountID,
			Type:      txType,
			Amount:    amount,
		}
		if err := s.transactions.Create(tx); err != nil {
			return account, err
		}

		previous = account.Balance
		account.Balance = account.Balance.Add(ledger.Delta(txType, amount))
		account.UpdatedAt = &now
		return account, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("balance updated",
		"accountId", accountID,
		"type", txType,
		"from", previous.String(),
		"to", account.Balance.String(),
	)
	s.publish(ctx, tx, account)
	return account, nil
}

func (s *TransactionCommandService) publish(ctx context.Context, tx models.Transaction, account *models.Account) {
	if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.TransactionCreated, events.TransactionCreatedEvent{
		TransactionID: tx.ID,
		AccountID:     tx.AccountID,
		Amount:        tx.Amount,
		Type:          tx.Type,
	}); err != nil {
		s.logger.Warn("failed to publish transaction.created event", "transactionId", tx.ID, "error", err)
	}
	if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.BalanceUpdated, events.BalanceUpdatedEvent{
		AccountID:  account.ID,
		NewBalance: account.Balance,
		Change:     ledger.Delta(tx.Type, tx.Amount),
	}); err != nil {
		s.logger.Warn("failed to publish balance.updated event", "accountId", account.ID, "error", err)
	}
}
