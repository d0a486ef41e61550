package report

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/fatih/color"

	"github.com/ducat-dev/ducat/internal/ledger"
	"github.com/ducat-dev/ducat/internal/model"
	"github.com/ducat-dev/ducat/internal/money"
)

// Renderer writes reports as aligned plain text with a configurable
// currency label.
type Renderer struct {
	Currency string
}

var (
	okVerdict   = color.New(color.FgGreen, color.Bold)
	warnVerdict = color.New(color.FgRed, color.Bold)
)

func (r Renderer) currency() string {
	if r.Currency == "" {
		return "ducats"
	}
	return r.Currency
}

// TrialBalance writes the trial balance: each account on its natural
// side, column totals, and a balanced/unbalanced verdict.
func (r Renderer) TrialBalance(w io.Writer, tb ledger.TrialBalanceReport) {
	cur := titleCase(r.currency())
	fmt.Fprintf(w, "%-30s %-15s %-15s\n", "Account", "Debit ("+cur+")", "Credit ("+cur+")")
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, row := range tb.Rows {
		fmt.Fprintf(w, "%-30s %-15s %-15s\n", row.Account.Name, col(row.Debit), col(row.Credit))
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%-30s %-15s %-15s\n", "TOTAL", tb.TotalDebits, tb.TotalCredits)

	if tb.Balanced() {
		okVerdict.Fprintln(w, "\nThe books are balanced.")
	} else {
		warnVerdict.Fprintln(w, "\nWARNING: the books are NOT balanced.")
	}
}

// BalanceSheet writes assets, liabilities, and equity sections with an
// accounting-equation footer.
func (r Renderer) BalanceSheet(w io.Writer, bs ledger.BalanceSheetReport) {
	r.section(w, "ASSETS", bs.Assets, "TOTAL ASSETS", bs.TotalAssets)
	r.section(w, "LIABILITIES", bs.Liabilities, "TOTAL LIABILITIES", bs.TotalLiabilities)
	r.section(w, "EQUITY", bs.Equity, "TOTAL EQUITY", bs.TotalEquity)

	fmt.Fprintln(w, "ACCOUNTING EQUATION")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "%-30s %10s\n", "Total Assets", bs.TotalAssets)
	fmt.Fprintf(w, "%-30s %10s\n", "Total Liabilities + Equity", bs.TotalLiabilities.Add(bs.TotalEquity))

	if bs.Balanced() {
		okVerdict.Fprintln(w, "\nThe accounting equation is balanced.")
	} else {
		warnVerdict.Fprintln(w, "\nWARNING: the accounting equation is NOT balanced.")
	}
}

// IncomeStatement writes revenue and expense sections and net income.
func (r Renderer) IncomeStatement(w io.Writer, is ledger.IncomeStatementReport) {
	r.section(w, "REVENUE", is.Revenue, "TOTAL REVENUE", is.TotalRevenue)
	r.section(w, "EXPENSES", is.Expenses, "TOTAL EXPENSES", is.TotalExpenses)

	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "%-30s %10s\n", "Total Revenue", is.TotalRevenue)
	fmt.Fprintf(w, "%-30s %10s\n", "Total Expenses", is.TotalExpenses)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "%-30s %10s\n", "NET INCOME", is.NetIncome())
}

func (r Renderer) section(w io.Writer, title string, accounts []*model.Account, totalLabel string, total money.Money) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, a := range accounts {
		fmt.Fprintf(w, "%-30s %10s\n", a.Name, a.Balance())
	}
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "%-30s %10s\n\n", totalLabel, total)
}

func col(m money.Money) string {
	if m.IsZero() {
		return ""
	}
	return m.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
