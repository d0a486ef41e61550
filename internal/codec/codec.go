package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ducat-dev/ducat/internal/ledger"
)

// Codec imports and exports ledger transactions in one wire format.
type Codec interface {
	// Name is the format name ("csv", "json"), matching the file
	// extension the format uses.
	Name() string
	// Import reads records into the ledger, skipping bad records, and
	// returns the number of transactions posted. Container-level
	// failures (unreadable input, missing header) are returned as
	// errors; per-record failures are not.
	Import(led *ledger.Ledger, r io.Reader, opts ImportOptions) (int, error)
	// Export writes all of the ledger's transactions and returns the
	// number written.
	Export(led *ledger.Ledger, w io.Writer) (int, error)
}

// ImportOptions controls per-record reporting during an import.
type ImportOptions struct {
	// Verbose enables a notice for every skipped record.
	Verbose bool
	// Log receives skip notices; defaults to os.Stderr.
	Log io.Writer
}

func (o ImportOptions) logf(format string, args ...any) {
	if !o.Verbose {
		return
	}
	w := o.Log
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Registry holds named codecs.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry creates an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register adds a codec. Panics on duplicate format.
func (r *Registry) Register(c Codec) {
	key := strings.ToLower(c.Name())
	if _, ok := r.codecs[key]; ok {
		panic("duplicate codec format: " + key)
	}
	r.codecs[key] = c
}

// Get returns the codec for format, or nil.
func (r *Registry) Get(format string) Codec {
	return r.codecs[strings.ToLower(format)]
}

// ForPath returns the codec matching a file's extension, or nil.
func (r *Registry) ForPath(path string) Codec {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return r.Get(ext)
}

// DefaultRegistry returns a registry with all built-in codecs.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVCodec{})
	r.Register(&JSONCodec{})
	return r
}

// ImportFile imports a transaction file, picking the codec from the
// file extension.
func ImportFile(led *ledger.Ledger, path string, opts ImportOptions) (int, error) {
	c := DefaultRegistry().ForPath(path)
	if c == nil {
		return 0, fmt.Errorf("no codec for file %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return c.Import(led, f, opts)
}

// ExportFile exports the ledger's transactions to a file, picking the
// codec from the file extension.
func ExportFile(led *ledger.Ledger, path string) (int, error) {
	c := DefaultRegistry().ForPath(path)
	if c == nil {
		return 0, fmt.Errorf("no codec for file %q", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}

	count, err := c.Export(led, f)
	if err != nil {
		f.Close()
		return count, err
	}
	if err := f.Close(); err != nil {
		return count, fmt.Errorf("closing %s: %w", path, err)
	}
	return count, nil
}
