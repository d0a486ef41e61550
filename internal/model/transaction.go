package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/ducat-dev/ducat/internal/money"
)

// Entry is one leg of a transaction: an account and a non-negative
// amount. Whether it is a debit or a credit is determined by which
// side of the transaction it is filed on, never by the amount's sign.
type Entry struct {
	Account *Account
	Amount  money.Money
}

// Transaction is an atomic group of debit and credit entries that must
// net to zero before it may post.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Debits      []Entry
	Credits     []Entry

	posted bool
}

// NewTransaction creates an empty transaction.
func NewTransaction(date time.Time, description string) *Transaction {
	return &Transaction{Date: date, Description: description}
}

// AddDebit appends a debit entry. Entries are append-only.
func (t *Transaction) AddDebit(e Entry) {
	t.Debits = append(t.Debits, e)
}

// AddCredit appends a credit entry.
func (t *Transaction) AddCredit(e Entry) {
	t.Credits = append(t.Credits, e)
}

// DebitTotal sums all debit amounts.
func (t *Transaction) DebitTotal() money.Money {
	total := money.Zero
	for _, e := range t.Debits {
		total = total.Add(e.Amount)
	}
	return total
}

// CreditTotal sums all credit amounts.
func (t *Transaction) CreditTotal() money.Money {
	total := money.Zero
	for _, e := range t.Credits {
		total = total.Add(e.Amount)
	}
	return total
}

// IsBalanced reports whether total debits exactly equal total credits.
// A transaction with an empty side is never balanced enough to post;
// callers must also require both sides to be non-empty.
func (t *Transaction) IsBalanced() bool {
	return t.DebitTotal().Equal(t.CreditTotal())
}

// Post applies every debit, then every credit, to the referenced
// accounts in entry order. The ledger is the sole caller and only
// posts after IsBalanced succeeds; posting twice is a programming
// error and panics.
func (t *Transaction) Post() {
	if t.posted {
		panic("transaction posted twice: " + t.Description)
	}
	for _, e := range t.Debits {
		e.Account.Debit(e.Amount)
	}
	for _, e := range t.Credits {
		e.Account.Credit(e.Amount)
	}
	t.posted = true
}

// Posted reports whether the transaction has been applied to accounts.
func (t *Transaction) Posted() bool {
	return t.posted
}

func (t *Transaction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transaction: %s - %s\n", t.Date.Format("2006-01-02"), t.Description)
	b.WriteString("  Debits:\n")
	for _, e := range t.Debits {
		fmt.Fprintf(&b, "    %s: %s\n", e.Account.Name, e.Amount)
	}
	b.WriteString("  Credits:")
	for _, e := range t.Credits {
		fmt.Fprintf(&b, "\n    %s: %s", e.Account.Name, e.Amount)
	}
	return b.String()
}
