package ledger

import (
	"fmt"

	"github.com/ducat-dev/ducat/internal/money"
)

// UnbalancedTransactionError reports a transaction whose debit and
// credit totals differ. RecordTransaction returns it before any
// account balance has been touched.
type UnbalancedTransactionError struct {
	Description string
	Debits      money.Money
	Credits     money.Money
}

func (e *UnbalancedTransactionError) Error() string {
	return fmt.Sprintf("unbalanced transaction %q: debits (%s) != credits (%s)",
		e.Description, e.Debits, e.Credits)
}

// EmptyTransactionError reports a transaction with no entries on one
// or both sides. Such a transaction is invalid even when both totals
// are zero.
type EmptyTransactionError struct {
	Description string
}

func (e *EmptyTransactionError) Error() string {
	return fmt.Sprintf("transaction %q must have at least one debit and one credit", e.Description)
}

// DuplicateAccountError reports an attempt to create an account whose
// name is already taken in the ledger.
type DuplicateAccountError struct {
	Name string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %q already exists", e.Name)
}
