package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducat-dev/ducat/internal/config"
)

func runDucat(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeCSV(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	content := "id,date,description,debit_account,debit_amount,credit_account,credit_amount,credit_account_2,credit_amount_2\n" + rows
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitWritesConfig(t *testing.T) {
	dir := t.TempDir()
	out, _, err := runDucat(t, "init", dir, "--name", "Medici Family Bank", "--currency", "florins")
	require.NoError(t, err)
	assert.Contains(t, out, "ducat.yaml")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Medici Family Bank", cfg.Ledger.Name)
	assert.Equal(t, "florins", cfg.Ledger.Currency)
}

func TestInitRequiresName(t *testing.T) {
	_, _, err := runDucat(t, "init", t.TempDir())
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	path := writeCSV(t,
		"1,2024-01-01,Initial capital,Cash,10000.00,Owner's Capital,10000.00,,\n"+
			"2,2024-01-15,Service revenue,Cash,1500.00,Service Revenue,1500.00,,\n"+
			"3,2024-01-30,Operating expenses,Operating Expenses,500.00,Cash,500.00,,\n")

	out, _, err := runDucat(t, "report", path, "--type", "trial-balance")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 transactions")
	assert.Contains(t, out, "Cash")
	assert.Contains(t, out, "11000.00")
	assert.Contains(t, out, "The books are balanced.")
}

func TestReportAll(t *testing.T) {
	path := writeCSV(t, "1,2024-01-01,seed,Cash,100.00,Owner's Capital,100.00,,\n")

	out, _, err := runDucat(t, "report", path)
	require.NoError(t, err)
	assert.Contains(t, out, "TRIAL BALANCE")
	assert.Contains(t, out, "BALANCE SHEET")
	assert.Contains(t, out, "INCOME STATEMENT")
}

func TestReportMissingFile(t *testing.T) {
	_, _, err := runDucat(t, "report", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	in := writeCSV(t, "1,2024-01-01,seed,Cash,100.00,Owner's Capital,100.00,,\n")
	out := filepath.Join(t.TempDir(), "out.json")

	stdout, _, err := runDucat(t, "convert", in, out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "exported 1")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"account_type": "ASSET"`)
}

func TestVerify(t *testing.T) {
	path := writeCSV(t,
		"1,2024-01-01,Good,Cash,100.00,Owner's Capital,100.00,,\n"+
			"2,bad-date,Bad,Cash,100.00,Owner's Capital,100.00,,\n")

	out, errOut, err := runDucat(t, "verify", path, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Transactions posted: 1")
	assert.Contains(t, out, "Total debits:        100.00")
	assert.Contains(t, out, "balanced")
	assert.Contains(t, errOut, "skipping row 3")
}
