package ledger

import (
	"github.com/ducat-dev/ducat/internal/model"
	"github.com/ducat-dev/ducat/internal/money"
)

// TrialBalanceRow is one account projected onto its debit or credit
// column. Exactly one of Debit and Credit is non-zero per row.
type TrialBalanceRow struct {
	Account *model.Account
	Debit   money.Money
	Credit  money.Money
}

// TrialBalanceReport lists every non-zero account balance on its
// natural side and the two column totals.
type TrialBalanceReport struct {
	Rows         []TrialBalanceRow
	TotalDebits  money.Money
	TotalCredits money.Money
}

// Balanced reports whether the debit and credit columns agree exactly.
func (r TrialBalanceReport) Balanced() bool {
	return r.TotalDebits.Equal(r.TotalCredits)
}

// TrialBalance projects each account balance onto its natural column.
// A balance of the "wrong" sign (a contra account) is shown on the
// opposite column as its absolute value.
func (l *Ledger) TrialBalance() TrialBalanceReport {
	var report TrialBalanceReport
	for _, a := range l.accounts {
		balance := a.Balance()
		if balance.IsZero() {
			continue
		}

		debitSide := a.Type.DebitPositive()
		if balance.IsNegative() {
			debitSide = !debitSide
			balance = balance.Abs()
		}

		row := TrialBalanceRow{Account: a}
		if debitSide {
			row.Debit = balance
			report.TotalDebits = report.TotalDebits.Add(balance)
		} else {
			row.Credit = balance
			report.TotalCredits = report.TotalCredits.Add(balance)
		}
		report.Rows = append(report.Rows, row)
	}
	return report
}

// BalanceSheetReport sums asset, liability, and equity balances.
type BalanceSheetReport struct {
	Assets           []*model.Account
	Liabilities      []*model.Account
	Equity           []*model.Account
	TotalAssets      money.Money
	TotalLiabilities money.Money
	TotalEquity      money.Money
}

// Balanced reports whether Assets == Liabilities + Equity, exactly.
func (r BalanceSheetReport) Balanced() bool {
	return r.TotalAssets.Equal(r.TotalLiabilities.Add(r.TotalEquity))
}

// BalanceSheet sums balances by balance-sheet category. Zero-balance
// accounts are omitted from the listings but kept in the totals.
func (l *Ledger) BalanceSheet() BalanceSheetReport {
	var report BalanceSheetReport
	for _, a := range l.accounts {
		switch a.Type {
		case model.AccountTypeAsset:
			report.TotalAssets = report.TotalAssets.Add(a.Balance())
			if !a.Balance().IsZero() {
				report.Assets = append(report.Assets, a)
			}
		case model.AccountTypeLiability:
			report.TotalLiabilities = report.TotalLiabilities.Add(a.Balance())
			if !a.Balance().IsZero() {
				report.Liabilities = append(report.Liabilities, a)
			}
		case model.AccountTypeEquity:
			report.TotalEquity = report.TotalEquity.Add(a.Balance())
			if !a.Balance().IsZero() {
				report.Equity = append(report.Equity, a)
			}
		}
	}
	return report
}

// IncomeStatementReport sums revenue and expense balances.
type IncomeStatementReport struct {
	Revenue       []*model.Account
	Expenses      []*model.Account
	TotalRevenue  money.Money
	TotalExpenses money.Money
}

// NetIncome is total revenue minus total expenses.
func (r IncomeStatementReport) NetIncome() money.Money {
	return r.TotalRevenue.Sub(r.TotalExpenses)
}

// IncomeStatement sums revenue and expense account balances.
func (l *Ledger) IncomeStatement() IncomeStatementReport {
	var report IncomeStatementReport
	for _, a := range l.accounts {
		switch a.Type {
		case model.AccountTypeRevenue:
			report.TotalRevenue = report.TotalRevenue.Add(a.Balance())
			if !a.Balance().IsZero() {
				report.Revenue = append(report.Revenue, a)
			}
		case model.AccountTypeExpense:
			report.TotalExpenses = report.TotalExpenses.Add(a.Balance())
			if !a.Balance().IsZero() {
				report.Expenses = append(report.Expenses, a)
			}
		}
	}
	return report
}
