package ledger

import (
	"strings"

	"github.com/ducat-dev/ducat/internal/model"
)

// typeKeywords maps each account type to the name fragments that
// suggest it. Checked in chart-of-accounts order; first match wins.
var typeKeywords = []struct {
	accountType model.AccountType
	keywords    []string
}{
	{model.AccountTypeAsset, []string{"cash", "receivable", "inventory", "land", "building", "equipment", "asset"}},
	{model.AccountTypeLiability, []string{"payable", "loan", "debt", "liability"}},
	{model.AccountTypeEquity, []string{"capital", "equity", "retained earnings", "owner"}},
	{model.AccountTypeRevenue, []string{"revenue", "income", "sales", "interest income", "fee"}},
	{model.AccountTypeExpense, []string{"expense", "wages", "rent", "supplies", "maintenance", "courier", "cost"}},
}

// InferAccountType guesses an account's type from its name. The flat
// CSV record format carries no type field, so the CSV import path has
// nothing better to go on; the JSON format carries the type explicitly
// and never calls this. Unrecognized names default to asset.
func InferAccountType(name string) model.AccountType {
	lower := strings.ToLower(name)
	for _, group := range typeKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.accountType
			}
		}
	}
	return model.AccountTypeAsset
}

// ResolveAccount returns the account with the given name, creating it
// with an inferred type when absent. Used only on CSV import.
func (l *Ledger) ResolveAccount(name string) *model.Account {
	if a, ok := l.byName[name]; ok {
		return a
	}
	return l.GetOrCreateAccount(name, InferAccountType(name))
}
