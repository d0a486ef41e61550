package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducat-dev/ducat/internal/model"
	"github.com/ducat-dev/ducat/internal/money"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) money.Money {
	return money.MustParse(s)
}

func TestCreateAccount(t *testing.T) {
	led := New("Test Bank")

	cash, err := led.CreateAccount("Cash", model.AccountTypeAsset)
	require.NoError(t, err)
	assert.Equal(t, "Cash", cash.Name)

	_, err = led.CreateAccount("Cash", model.AccountTypeExpense)
	var dup *DuplicateAccountError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Cash", dup.Name)

	again := led.GetOrCreateAccount("Cash", model.AccountTypeExpense)
	assert.Same(t, cash, again, "existing account keeps its identity and type")
	assert.Equal(t, model.AccountTypeAsset, again.Type)

	require.Len(t, led.Accounts(), 1)
}

func TestRecordTransaction(t *testing.T) {
	led := New("Test Bank")
	cash, _ := led.CreateAccount("Cash", model.AccountTypeAsset)
	capital, _ := led.CreateAccount("Owner's Capital", model.AccountTypeEquity)

	tx, err := led.RecordTransaction(date(2024, 1, 1), "seed",
		Entry(cash, dec("1000.00")),
		Entry(capital, dec("1000.00")),
	)
	require.NoError(t, err)

	assert.Equal(t, "1000.00", cash.Balance().String())
	assert.Equal(t, "1000.00", capital.Balance().String())
	assert.NotEmpty(t, tx.ID)
	require.Len(t, led.Transactions(), 1)

	tb := led.TrialBalance()
	assert.Equal(t, "1000.00", tb.TotalDebits.String())
	assert.Equal(t, "1000.00", tb.TotalCredits.String())
	assert.True(t, tb.Balanced())
}

func TestRecordTransactionSignRouting(t *testing.T) {
	led := New("Test Bank")
	cash, _ := led.CreateAccount("Cash", model.AccountTypeAsset)
	receivable, _ := led.CreateAccount("Accounts Receivable", model.AccountTypeAsset)
	interest, _ := led.CreateAccount("Interest Income", model.AccountTypeRevenue)
	capital, _ := led.CreateAccount("Owner's Capital", model.AccountTypeEquity)

	_, err := led.RecordTransaction(date(1397, 1, 1), "Initial investment",
		Entry(cash, dec("10000.00")),
		Entry(capital, dec("10000.00")),
	)
	require.NoError(t, err)

	// Negative amount on an asset account routes to the credit side.
	_, err = led.RecordTransaction(date(1397, 2, 15), "Loan to Wool Merchant",
		Entry(receivable, dec("2000.00")),
		Entry(cash, dec("-2000.00")),
	)
	require.NoError(t, err)

	_, err = led.RecordTransaction(date(1397, 8, 10), "Partial repayment with interest",
		Entry(cash, dec("1200.00")),
		Entry(receivable, dec("-1000.00")),
		Entry(interest, dec("200.00")),
	)
	require.NoError(t, err)

	assert.Equal(t, "9200.00", cash.Balance().String())
	assert.Equal(t, "1000.00", receivable.Balance().String())
	assert.Equal(t, "200.00", interest.Balance().String())
	assert.True(t, led.CheckBalanced())
}

func TestRecordTransactionUnbalanced(t *testing.T) {
	led := New("Test Bank")
	cash, _ := led.CreateAccount("Cash", model.AccountTypeAsset)
	capital, _ := led.CreateAccount("Owner's Capital", model.AccountTypeEquity)

	_, err := led.RecordTransaction(date(2024, 1, 1), "seed",
		Entry(cash, dec("1000.00")),
		Entry(capital, dec("1000.00")),
	)
	require.NoError(t, err)

	_, err = led.RecordTransaction(date(2024, 1, 2), "bad",
		Entry(cash, dec("1000.00")),
		Entry(capital, dec("900.00")),
	)
	var unbalanced *UnbalancedTransactionError
	require.ErrorAs(t, err, &unbalanced)
	assert.Equal(t, "1000.00", unbalanced.Debits.String())
	assert.Equal(t, "900.00", unbalanced.Credits.String())

	// Nothing is retained and no balance moved.
	assert.Equal(t, "1000.00", cash.Balance().String())
	assert.Equal(t, "1000.00", capital.Balance().String())
	assert.Len(t, led.Transactions(), 1)
	assert.True(t, led.CheckBalanced())
}

func TestRecordTransactionEmptySide(t *testing.T) {
	led := New("Test Bank")
	cash, _ := led.CreateAccount("Cash", model.AccountTypeAsset)

	_, err := led.RecordTransaction(date(2024, 1, 1), "one-sided",
		Entry(cash, dec("100.00")),
	)
	var empty *EmptyTransactionError
	require.ErrorAs(t, err, &empty)

	_, err = led.RecordTransaction(date(2024, 1, 1), "nothing")
	require.ErrorAs(t, err, &empty)
	assert.True(t, cash.Balance().IsZero())
}

func TestZeroSumInvariantHolds(t *testing.T) {
	led := New("Medici Family Bank")
	cash, _ := led.CreateAccount("Cash", model.AccountTypeAsset)
	receivable, _ := led.CreateAccount("Accounts Receivable", model.AccountTypeAsset)
	land, _ := led.CreateAccount("Land", model.AccountTypeAsset)
	capital, _ := led.CreateAccount("Owner's Capital", model.AccountTypeEquity)
	interest, _ := led.CreateAccount("Interest Income", model.AccountTypeRevenue)
	wages, _ := led.CreateAccount("Wages", model.AccountTypeExpense)

	steps := []struct {
		description string
		entries     []SignedEntry
	}{
		{"Initial investment", []SignedEntry{Entry(cash, dec("10000.00")), Entry(capital, dec("10000.00"))}},
		{"Loan to Wool Merchant", []SignedEntry{Entry(receivable, dec("2000.00")), Entry(cash, dec("-2000.00"))}},
		{"Repayment with interest", []SignedEntry{Entry(cash, dec("1200.00")), Entry(receivable, dec("-1000.00")), Entry(interest, dec("200.00"))}},
		{"Purchase of land", []SignedEntry{Entry(land, dec("3000.00")), Entry(cash, dec("-3000.00"))}},
		{"Quarterly wages", []SignedEntry{Entry(wages, dec("800.00")), Entry(cash, dec("-800.00"))}},
	}

	for _, step := range steps {
		_, err := led.RecordTransaction(date(1397, 6, 1), step.description, step.entries...)
		require.NoError(t, err, step.description)
		assert.True(t, led.CheckBalanced(), "zero-sum invariant after %q", step.description)
	}

	assert.Equal(t, "5400.00", cash.Balance().String())
	tb := led.TrialBalance()
	assert.Equal(t, "10200.00", tb.TotalDebits.String())
	assert.Equal(t, "10200.00", tb.TotalCredits.String())
}
