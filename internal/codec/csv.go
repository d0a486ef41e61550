package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ducat-dev/ducat/internal/ledger"
	"github.com/ducat-dev/ducat/internal/model"
	"github.com/ducat-dev/ducat/internal/money"
)

// CSVCodec reads and writes the flat CSV record format.
//
// The format is lossy by design: a row carries a comma-joined list of
// debit account names sharing a single debit_amount (split equally on
// import, summed on export) and at most two credit legs. Use the JSON
// format when per-entry fidelity matters.
type CSVCodec struct{}

// Header is the CSV header for transaction files.
const Header = "id,date,description,debit_account,debit_amount,credit_account,credit_amount,credit_account_2,credit_amount_2"

const dateFormat = "2006-01-02"

const (
	colID       = "id"
	colDate     = "date"
	colDesc     = "description"
	colDebitAcc = "debit_account"
	colDebitAmt = "debit_amount"
	colCredAcc  = "credit_account"
	colCredAmt  = "credit_amount"
	colCredAcc2 = "credit_account_2"
	colCredAmt2 = "credit_amount_2"
)

// requiredColumns must appear in the header row; anything else (the
// generator adds branch, type, counterparty, currency) is ignored.
var requiredColumns = []string{colDate, colDesc, colDebitAcc, colDebitAmt, colCredAcc, colCredAmt}

// Name returns the format name.
func (c *CSVCodec) Name() string { return "csv" }

// Import reads transaction rows, resolving account names through the
// ledger's name-based type inference. Each bad row is skipped and the
// import continues; the count of posted rows is returned. A missing
// or invalid header row fails the whole call.
func (c *CSVCodec) Import(led *ledger.Ledger, r io.Reader, opts ImportOptions) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("missing CSV header row")
	}
	if err != nil {
		return 0, fmt.Errorf("reading CSV header: %w", err)
	}

	cols, err := headerIndex(header)
	if err != nil {
		return 0, err
	}

	count := 0
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			opts.logf("skipping row %d: %v", row, err)
			continue
		}

		tx, err := parseCSVRow(led, cols, rec, row)
		if err != nil {
			opts.logf("skipping row %d: %v", row, err)
			continue
		}

		if err := led.Post(tx); err != nil {
			opts.logf("skipping row %d: %v", row, err)
			continue
		}
		count++
	}
	return count, nil
}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("CSV header missing required column %q", name)
		}
	}
	return cols, nil
}

// field returns the named column of rec, tolerating short rows and
// optional columns.
func field(cols map[string]int, rec []string, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseCSVRow(led *ledger.Ledger, cols map[string]int, rec []string, row int) (*model.Transaction, error) {
	date, err := time.Parse(dateFormat, field(cols, rec, colDate))
	if err != nil {
		return nil, &MalformedRecordError{Row: row, Field: colDate, Err: err}
	}

	tx := model.NewTransaction(date, field(cols, rec, colDesc))
	tx.ID = field(cols, rec, colID)

	// Comma-joined debit names share one amount, split equally. With
	// more than one name the individual amounts are a reconstruction;
	// an amount that does not divide evenly leaves the row unbalanced
	// and it is skipped like any other unbalanced row.
	names := splitAccountNames(field(cols, rec, colDebitAcc))
	if len(names) == 0 {
		return nil, &MalformedRecordError{Row: row, Field: colDebitAcc, Err: errors.New("missing account name")}
	}

	debitTotal, err := parseAmount(field(cols, rec, colDebitAmt))
	if err != nil {
		return nil, &MalformedRecordError{Row: row, Field: colDebitAmt, Err: err}
	}

	share := debitTotal
	if len(names) > 1 {
		share = debitTotal.Split(len(names))
	}
	for _, name := range names {
		tx.AddDebit(model.Entry{Account: led.ResolveAccount(name), Amount: share})
	}

	credName := field(cols, rec, colCredAcc)
	if credName == "" {
		return nil, &MalformedRecordError{Row: row, Field: colCredAcc, Err: errors.New("missing account name")}
	}
	credAmount, err := parseAmount(field(cols, rec, colCredAmt))
	if err != nil {
		return nil, &MalformedRecordError{Row: row, Field: colCredAmt, Err: err}
	}
	tx.AddCredit(model.Entry{Account: led.ResolveAccount(credName), Amount: credAmount})

	// Second credit pair is optional, applied only when its amount is
	// present and positive.
	if name2 := field(cols, rec, colCredAcc2); name2 != "" {
		if raw := field(cols, rec, colCredAmt2); raw != "" {
			amount2, err := parseAmount(raw)
			if err != nil {
				return nil, &MalformedRecordError{Row: row, Field: colCredAmt2, Err: err}
			}
			if amount2.IsPositive() {
				tx.AddCredit(model.Entry{Account: led.ResolveAccount(name2), Amount: amount2})
			}
		}
	}

	return tx, nil
}

func splitAccountNames(joined string) []string {
	var names []string
	for _, name := range strings.Split(joined, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func parseAmount(s string) (money.Money, error) {
	m, err := money.Parse(s)
	if err != nil {
		return money.Zero, err
	}
	if m.IsNegative() {
		return money.Zero, fmt.Errorf("amount %s is negative", m)
	}
	return m, nil
}

// Export writes one row per transaction: comma-joined debit names with
// the summed debit amount, and up to two credit legs. Extra credit
// legs are dropped; re-importing a multi-debit row reconstructs equal
// shares, not the original amounts.
func (c *CSVCodec) Export(led *ledger.Ledger, w io.Writer) (int, error) {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	count := 0
	for _, tx := range led.Transactions() {
		if err := cw.Write(marshalCSVRow(tx)); err != nil {
			return count, fmt.Errorf("writing row for %s: %w", tx.ID, err)
		}
		count++
	}
	return count, cw.Error()
}

func marshalCSVRow(tx *model.Transaction) []string {
	names := make([]string, len(tx.Debits))
	for i, e := range tx.Debits {
		names[i] = e.Account.Name
	}

	row := []string{
		tx.ID,
		tx.Date.Format(dateFormat),
		tx.Description,
		strings.Join(names, ","),
		tx.DebitTotal().String(),
		"", "", "", "",
	}

	if len(tx.Credits) > 0 {
		row[5] = tx.Credits[0].Account.Name
		row[6] = tx.Credits[0].Amount.String()
	}
	if len(tx.Credits) > 1 {
		row[7] = tx.Credits[1].Account.Name
		row[8] = tx.Credits[1].Amount.String()
	}
	return row
}
