package model

import (
	"fmt"
	"strings"

	"github.com/ducat-dev/ducat/internal/money"
)

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists all types in chart-of-accounts order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

// ParseAccountType converts a wire-format type name ("ASSET", "asset")
// to an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return t, nil
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

// Wire returns the upper-case form used by the JSON record format.
func (t AccountType) Wire() string {
	return strings.ToUpper(string(t))
}

// DebitPositive reports whether debits increase this account type.
// Assets and expenses carry debit-positive balances; liabilities,
// equity, and revenue carry credit-positive balances.
func (t AccountType) DebitPositive() bool {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return true
	default:
		return false
	}
}

// Account is a named balance holder. The balance is only ever mutated
// through Debit and Credit; the type is fixed at creation.
type Account struct {
	Name    string
	Type    AccountType
	balance money.Money
}

// NewAccount creates an account with a zero balance.
func NewAccount(name string, accountType AccountType) *Account {
	return &Account{Name: name, Type: accountType}
}

// Balance returns the current balance on the account's natural side.
func (a *Account) Balance() money.Money {
	return a.balance
}

// Debit applies a debit of amount. Amounts are validated non-negative
// by the transaction layer before they reach here.
func (a *Account) Debit(amount money.Money) {
	if a.Type.DebitPositive() {
		a.balance = a.balance.Add(amount)
	} else {
		a.balance = a.balance.Sub(amount)
	}
}

// Credit applies a credit of amount, the inverse sign mapping of Debit.
func (a *Account) Credit(amount money.Money) {
	if a.Type.DebitPositive() {
		a.balance = a.balance.Sub(amount)
	} else {
		a.balance = a.balance.Add(amount)
	}
}

func (a *Account) String() string {
	return fmt.Sprintf("%s (%s): %s", a.Name, a.Type, a.balance)
}
