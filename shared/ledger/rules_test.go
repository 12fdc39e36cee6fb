package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidInitialBalance(t *testing.T) {
	tests := []struct {
		balance string
		want    bool
	}{
		{"100", true},
		{"100.00", true},
		{"99.99", false},
		{"99", false},
		{"0", false},
		{"-150", false},
		{"1000000", true},
	}
	for _, tt := range tests {
		t.Run(tt.balance, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidInitialBalance(d(tt.balance)))
		})
	}
}

func TestValidDeposit(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"50", true},
		{"10000", true},
		{"10000.00", true},
		{"10000.01", false},
		{"15000", false},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDeposit(d(tt.amount)))
		})
	}
}

func TestValidWithdrawal(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		want    bool
	}{
		{"drops below minimum", "100", "70", false},
		{"small withdrawal from large balance", "1000", "10", true},
		{"exactly to minimum", "1000", "900", true},
		{"exactly ninety percent", "1000", "900.00", true},
		{"just over ninety percent", "1000", "900.01", false},
		{"one cent under minimum", "200", "100.01", false},
		{"leaves exactly minimum", "200", "100", true},
		{"ratio binds before floor", "10000", "9000.01", false},
		{"ninety percent of odd balance", "333.33", "299.997", false},
		{"zero balance", "0", "0", false},
		{"fractional boundary", "111.11", "11.11", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidWithdrawal(d(tt.balance), d(tt.amount)))
		})
	}
}

func TestValidWithdrawalMatchesDefinition(t *testing.T) {
	for b := int64(0); b <= 2000; b += 37 {
		for w := int64(1); w <= 2000; w += 41 {
			balance := decimal.NewFromInt(b)
			amount := decimal.New(w, -1)
			want := balance.Sub(amount).GreaterThanOrEqual(MinimumBalance) &&
				amount.LessThanOrEqual(balance.Mul(WithdrawalRatio))
			assert.Equal(t, want, ValidWithdrawal(balance, amount), "balance=%s amount=%s", balance, amount)
		}
	}
}

func TestValidAmount(t *testing.T) {
	assert.True(t, ValidAmount(d("0.01")))
	assert.False(t, ValidAmount(d("0")))
	assert.False(t, ValidAmount(d("-5")))
}

func TestDelta(t *testing.T) {
	assert.True(t, Delta(Deposit, d("50")).Equal(d("50")))
	assert.True(t, Delta(Withdrawal, d("50")).Equal(d("-50")))
}
