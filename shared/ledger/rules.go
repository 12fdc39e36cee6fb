// Package ledger holds the admissibility rules for account balances,
// deposits and withdrawals. Every rule is a pure function over exact
// decimals.
package ledger

import "github.com/shopspring/decimal"

// Transaction types.
const (
	Deposit    = "deposit"
	Withdrawal = "withdrawal"
)

var (
	// MinimumBalance is the floor an account may never start below or be
	// withdrawn under.
	MinimumBalance = decimal.NewFromInt(100)
	// MaxDeposit caps a single deposit.
	MaxDeposit = decimal.NewFromInt(10000)
	// WithdrawalRatio is the largest share of the current balance a single
	// withdrawal may take.
	WithdrawalRatio = decimal.New(9, -1)

	nine = decimal.NewFromInt(9)
	ten  = decimal.NewFromInt(10)
)

// ValidInitialBalance reports whether an account may be opened with balance.
func ValidInitialBalance(balance decimal.Decimal) bool {
	return balance.GreaterThanOrEqual(MinimumBalance)
}

// ValidDeposit is a flat per-transaction cap; it does not look at the
// target account.
func ValidDeposit(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(MaxDeposit)
}

// ValidWithdrawal requires the remaining balance to stay at or above
// MinimumBalance and the amount to be at most 90% of balance.
func ValidWithdrawal(balance, amount decimal.Decimal) bool {
	if balance.Sub(amount).LessThan(MinimumBalance) {
		return false
	}
	// amount <= 0.9*balance, compared as 10*amount <= 9*balance
	return amount.Mul(ten).LessThanOrEqual(balance.Mul(nine))
}

// ValidAmount reports whether amount can be moved at all.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

// Delta is the signed balance change a transaction of txType applies.
func Delta(txType string, amount decimal.Decimal) decimal.Decimal {
	if txType == Withdrawal {
		return amount.Neg()
	}
	return amount
}
