package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ducat-dev/ducat/internal/ledger"
	"github.com/ducat-dev/ducat/internal/model"
	"github.com/ducat-dev/ducat/internal/money"
)

// JSONCodec reads and writes the JSON record format. Records carry
// explicit per-entry account types and amounts, so this is the only
// round-trip-safe format.
type JSONCodec struct{}

type jsonEntry struct {
	Account     string      `json:"account"`
	AccountType string      `json:"account_type"`
	Amount      money.Money `json:"amount"`
}

type jsonTransaction struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Debits      []jsonEntry `json:"debits"`
	Credits     []jsonEntry `json:"credits"`
}

// Name returns the format name.
func (c *JSONCodec) Name() string { return "json" }

// Import reads a JSON array of transaction records. Account types are
// taken verbatim from each record, never inferred. A container that is
// not a JSON array fails the whole call; individual bad records are
// skipped and the count of posted records is returned.
func (c *JSONCodec) Import(led *ledger.Ledger, r io.Reader, opts ImportOptions) (int, error) {
	// Records decode individually so that one bad record cannot fail
	// the rest of the batch.
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return 0, fmt.Errorf("parsing JSON container: %w", err)
	}

	count := 0
	for i, msg := range raw {
		row := i + 1

		var rec jsonTransaction
		if err := json.Unmarshal(msg, &rec); err != nil {
			opts.logf("skipping record %d: %v", row, err)
			continue
		}

		tx, err := parseJSONRecord(led, rec, row)
		if err != nil {
			opts.logf("skipping record %d: %v", row, err)
			continue
		}

		if err := led.Post(tx); err != nil {
			opts.logf("skipping record %d: %v", row, err)
			continue
		}
		count++
	}
	return count, nil
}

func parseJSONRecord(led *ledger.Ledger, rec jsonTransaction, row int) (*model.Transaction, error) {
	date, err := time.Parse(dateFormat, rec.Date)
	if err != nil {
		return nil, &MalformedRecordError{Row: row, Field: "date", Err: err}
	}

	tx := model.NewTransaction(date, rec.Description)
	tx.ID = rec.ID

	for _, e := range rec.Debits {
		entry, err := resolveJSONEntry(led, e, row)
		if err != nil {
			return nil, err
		}
		tx.AddDebit(entry)
	}
	for _, e := range rec.Credits {
		entry, err := resolveJSONEntry(led, e, row)
		if err != nil {
			return nil, err
		}
		tx.AddCredit(entry)
	}
	return tx, nil
}

func resolveJSONEntry(led *ledger.Ledger, e jsonEntry, row int) (model.Entry, error) {
	if e.Account == "" {
		return model.Entry{}, &MalformedRecordError{Row: row, Field: "account", Err: fmt.Errorf("missing account name")}
	}

	accountType, err := model.ParseAccountType(e.AccountType)
	if err != nil {
		return model.Entry{}, &UnknownAccountTypeError{Row: row, Value: e.AccountType}
	}

	if e.Amount.IsNegative() {
		return model.Entry{}, &MalformedRecordError{Row: row, Field: "amount", Err: fmt.Errorf("amount %s is negative", e.Amount)}
	}

	return model.Entry{
		Account: led.GetOrCreateAccount(e.Account, accountType),
		Amount:  e.Amount,
	}, nil
}

// Export writes the full debit and credit entry arrays for every
// transaction, indented for readability.
func (c *JSONCodec) Export(led *ledger.Ledger, w io.Writer) (int, error) {
	records := make([]jsonTransaction, 0, len(led.Transactions()))
	for _, tx := range led.Transactions() {
		records = append(records, marshalJSONRecord(tx))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return 0, fmt.Errorf("writing JSON: %w", err)
	}
	return len(records), nil
}

func marshalJSONRecord(tx *model.Transaction) jsonTransaction {
	rec := jsonTransaction{
		ID:          tx.ID,
		Date:        tx.Date.Format(dateFormat),
		Description: tx.Description,
		Debits:      make([]jsonEntry, 0, len(tx.Debits)),
		Credits:     make([]jsonEntry, 0, len(tx.Credits)),
	}
	for _, e := range tx.Debits {
		rec.Debits = append(rec.Debits, marshalJSONEntry(e))
	}
	for _, e := range tx.Credits {
		rec.Credits = append(rec.Credits, marshalJSONEntry(e))
	}
	return rec
}

func marshalJSONEntry(e model.Entry) jsonEntry {
	return jsonEntry{
		Account:     e.Account.Name,
		AccountType: e.Account.Type.Wire(),
		Amount:      e.Amount,
	}
}
