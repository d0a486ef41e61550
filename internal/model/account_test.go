package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducat-dev/ducat/internal/money"
)

func TestParseAccountType(t *testing.T) {
	for _, wire := range []string{"ASSET", "asset", " Asset "} {
		got, err := ParseAccountType(wire)
		require.NoError(t, err)
		assert.Equal(t, AccountTypeAsset, got)
	}

	_, err := ParseAccountType("CONTRA")
	assert.Error(t, err)

	assert.Equal(t, "LIABILITY", AccountTypeLiability.Wire())
}

func TestDebitPositive(t *testing.T) {
	assert.True(t, AccountTypeAsset.DebitPositive())
	assert.True(t, AccountTypeExpense.DebitPositive())
	assert.False(t, AccountTypeLiability.DebitPositive())
	assert.False(t, AccountTypeEquity.DebitPositive())
	assert.False(t, AccountTypeRevenue.DebitPositive())
}

func TestAccountSignConventions(t *testing.T) {
	amount := money.MustParse("100.00")

	for _, accountType := range AccountTypes {
		a := NewAccount("test", accountType)
		a.Debit(amount)

		want := "100.00"
		if !accountType.DebitPositive() {
			want = "-100.00"
		}
		assert.Equal(t, want, a.Balance().String(), "debit of a %s account", accountType)

		a.Credit(amount)
		assert.True(t, a.Balance().IsZero(), "credit must invert debit for %s", accountType)
	}
}

func TestAccountString(t *testing.T) {
	a := NewAccount("Cash", AccountTypeAsset)
	a.Debit(money.MustParse("50.00"))
	assert.Equal(t, "Cash (asset): 50.00", a.String())
}
