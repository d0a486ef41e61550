package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/ducat-dev/ducat/internal/model"
	"github.com/ducat-dev/ducat/internal/money"
)

// Ledger owns all accounts and transactions. Every balance mutation in
// the system flows through RecordTransaction or the codec import path,
// both of which enforce the same balance rule before posting.
//
// A Ledger is a single-writer aggregate with no internal locking;
// concurrent callers must serialize access themselves.
type Ledger struct {
	name         string
	accounts     []*model.Account
	byName       map[string]*model.Account
	transactions []*model.Transaction
}

// New creates an empty ledger.
func New(name string) *Ledger {
	return &Ledger{
		name:   name,
		byName: make(map[string]*model.Account),
	}
}

// Name returns the ledger's name.
func (l *Ledger) Name() string { return l.name }

// Accounts returns the chart of accounts in insertion order.
func (l *Ledger) Accounts() []*model.Account { return l.accounts }

// Transactions returns all posted transactions in posting order.
func (l *Ledger) Transactions() []*model.Transaction { return l.transactions }

// Account returns the account with the given name, if present.
func (l *Ledger) Account(name string) (*model.Account, bool) {
	a, ok := l.byName[name]
	return a, ok
}

// CreateAccount adds a new account to the chart of accounts.
// Account names are unique within a ledger.
func (l *Ledger) CreateAccount(name string, accountType model.AccountType) (*model.Account, error) {
	if _, exists := l.byName[name]; exists {
		return nil, &DuplicateAccountError{Name: name}
	}
	a := model.NewAccount(name, accountType)
	l.accounts = append(l.accounts, a)
	l.byName[name] = a
	return a, nil
}

// GetOrCreateAccount returns the existing account with the given name,
// or creates one with the given type. An existing account keeps its
// original type.
func (l *Ledger) GetOrCreateAccount(name string, accountType model.AccountType) *model.Account {
	if a, ok := l.byName[name]; ok {
		return a
	}
	a := model.NewAccount(name, accountType)
	l.accounts = append(l.accounts, a)
	l.byName[name] = a
	return a
}

// SignedEntry expresses an increase (positive) or decrease (negative)
// of an account at the RecordTransaction boundary, without the caller
// needing to know the account category's balance-side convention.
type SignedEntry struct {
	Account *model.Account
	Amount  money.Money
}

// Entry is a convenience constructor for SignedEntry.
func Entry(account *model.Account, amount money.Money) SignedEntry {
	return SignedEntry{Account: account, Amount: amount}
}

// RecordTransaction builds, validates, posts, and stores a transaction.
//
// Sign routing: for debit-positive accounts (asset, expense) a
// non-negative amount files as a debit and a negative amount as a
// credit of its magnitude; for credit-positive accounts the mapping is
// inverted. If the routed entries do not balance, the error is
// returned before any account is touched and nothing is stored.
func (l *Ledger) RecordTransaction(date time.Time, description string, entries ...SignedEntry) (*model.Transaction, error) {
	tx := model.NewTransaction(date, description)

	for _, se := range entries {
		entry := model.Entry{Account: se.Account, Amount: se.Amount.Abs()}
		increase := !se.Amount.IsNegative()
		if se.Account.Type.DebitPositive() == increase {
			tx.AddDebit(entry)
		} else {
			tx.AddCredit(entry)
		}
	}

	if err := l.Post(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Post validates and applies an already-routed transaction, then
// appends it to the log. Used by RecordTransaction and the codec
// import path so that both enforce the same balance rule.
func (l *Ledger) Post(tx *model.Transaction) error {
	if len(tx.Debits) == 0 || len(tx.Credits) == 0 {
		return &EmptyTransactionError{Description: tx.Description}
	}
	if !tx.IsBalanced() {
		return &UnbalancedTransactionError{
			Description: tx.Description,
			Debits:      tx.DebitTotal(),
			Credits:     tx.CreditTotal(),
		}
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	tx.Post()
	l.transactions = append(l.transactions, tx)
	return nil
}

// CheckBalanced reports whether the sum of all account balances,
// normalized to the debit-positive convention, is exactly zero. This
// is the accounting equation as a running invariant; it holds after
// every successful post.
func (l *Ledger) CheckBalanced() bool {
	sum := money.Zero
	for _, a := range l.accounts {
		if a.Type.DebitPositive() {
			sum = sum.Add(a.Balance())
		} else {
			sum = sum.Sub(a.Balance())
		}
	}
	return sum.IsZero()
}
