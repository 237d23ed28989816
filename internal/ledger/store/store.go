package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidelog/tidelog/internal/ledger"
	"github.com/tidelog/tidelog/pkg/metrics"
)

var (
	// ErrCorruptStore means the on-disk document failed to parse. The store
	// never overwrites bytes it could not read; recovery is the caller's call.
	ErrCorruptStore = errors.New("ledger document is not valid JSON")
)

// FileStore persists the ledger document as a single JSON file. The only
// primitives are whole-document Load and Save; it provides no locking, so
// callers must serialize read-modify-write sequences themselves.
type FileStore struct {
	dir  string
	path string
}

func New(dataDir, fileName string) *FileStore {
	return &FileStore{dir: dataDir, path: filepath.Join(dataDir, fileName)}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Init creates the data directory and an empty document when absent.
// Idempotent; safe to call on every start and before every access.
func (s *FileStore) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat ledger file: %w", err)
	}
	return s.Save(&ledger.Document{Entries: []ledger.Entry{}})
}

// Load reads and parses the current document, initializing the file first
// when it does not exist. Unparsable content yields ErrCorruptStore.
func (s *FileStore) Load() (*ledger.Document, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}
	var doc ledger.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptStore, s.path)
	}
	// absent members are empty, not corrupt
	if doc.Entries == nil {
		doc.Entries = []ledger.Entry{}
	}
	if doc.Profiles == nil {
		doc.Profiles = map[string]ledger.Profile{}
	}
	metrics.StoreOps.WithLabelValues("load").Inc()
	return &doc, nil
}

// Save serializes the document and replaces the file as a single unit: the
// bytes land in a temp file in the same directory which is then renamed over
// the target, so readers never observe a torn document.
func (s *FileStore) Save(doc *ledger.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger document: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, ".intake-*.json")
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write ledger document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace ledger file: %w", err)
	}
	metrics.StoreOps.WithLabelValues("save").Inc()
	return nil
}
