package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducat-dev/ducat/internal/ledger"
	"github.com/ducat-dev/ducat/internal/model"
)

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.NotNil(t, r.Get("csv"))
	assert.NotNil(t, r.Get("JSON"))
	assert.Nil(t, r.Get("xml"))

	assert.NotNil(t, r.ForPath("/tmp/transactions.csv"))
	assert.NotNil(t, r.ForPath("ledger.json"))
	assert.Nil(t, r.ForPath("ledger.txt"))

	assert.Panics(t, func() { r.Register(&CSVCodec{}) })
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	content := Header + "\n" +
		"1,2024-01-01,seed,Cash,100.00,Owner's Capital,100.00,,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	led := ledger.New("File Bank")
	count, err := ImportFile(led, path, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = ImportFile(led, filepath.Join(dir, "missing.csv"), ImportOptions{})
	assert.Error(t, err, "file-not-found is fatal, not skipped")

	_, err = ImportFile(led, filepath.Join(dir, "notes.txt"), ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no codec")
}

func TestExportFileRoundTrip(t *testing.T) {
	led := ledger.New("File Bank")
	cash, _ := led.CreateAccount("Cash", model.AccountTypeAsset)
	capital, _ := led.CreateAccount("Owner's Capital", model.AccountTypeEquity)
	_, err := led.RecordTransaction(date(2024, 1, 1), "seed",
		ledger.Entry(cash, dec("250.00")),
		ledger.Entry(capital, dec("250.00")),
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.json")
	count, err := ExportFile(led, path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	fresh := ledger.New("Fresh Bank")
	count, err = ImportFile(fresh, path, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, ok := fresh.Account("Cash")
	require.True(t, ok)
	assert.Equal(t, "250.00", got.Balance().String())
}
