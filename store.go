package tradelog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	registryFilename = "stocks.jsonl"
	ledgerFilename   = "trades.jsonl"
)

// Store owns a data directory and the registry and ledger loaded from it.
//
// A Store is bound for the lifetime of one invocation: New and Open are the
// only constructors, and no concurrent writer discipline is provided. Two
// processes appending to the same directory have undefined interleaving.
type Store struct {
	home     string
	registry *Registry
	ledger   *Ledger
}

// HomeDir returns the absolute path of the data directory.
func (s *Store) HomeDir() string { return s.home }

// Registry returns the loaded stock registry.
func (s *Store) Registry() *Registry { return s.registry }

// Ledger returns the loaded trade ledger.
func (s *Store) Ledger() *Ledger { return s.ledger }

func (s *Store) registryPath() string { return filepath.Join(s.home, registryFilename) }
func (s *Store) ledgerPath() string   { return filepath.Join(s.home, ledgerFilename) }

// New initializes a data directory at path and returns a Store bound to it.
//
// When path does not exist it is created, along with an empty registry and
// ledger. When path already exists New fails with ErrAlreadyInitialized,
// unless force is set, in which case the existing contents are cleared and
// the directory is reinitialized.
func New(path string, force bool) (*Store, error) {
	home, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve data directory %q: %w", path, err)
	}

	if _, err := os.Stat(home); err == nil {
		if !force {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyInitialized, home)
		}
		if err := os.RemoveAll(home); err != nil {
			return nil, fmt.Errorf("could not clear data directory %q: %w", home, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not stat data directory %q: %w", home, err)
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", home, err)
	}

	s := &Store{home: home, registry: NewRegistry(), ledger: NewLedger()}
	for _, file := range []string{s.registryPath(), s.ledgerPath()} {
		if err := os.WriteFile(file, nil, 0644); err != nil {
			return nil, fmt.Errorf("could not create %q: %w", file, err)
		}
	}
	return s, nil
}

// Open loads an initialized data directory and returns a Store bound to it.
//
// Open fails with ErrNotInitialized when the directory or one of its files
// is missing, and with ErrFormat when a stored line cannot be parsed.
func Open(path string) (*Store, error) {
	home, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve data directory %q: %w", path, err)
	}
	s := &Store{home: home}

	s.registry, err = decodeFile(s.registryPath(), DecodeRegistry)
	if err != nil {
		return nil, fmt.Errorf("could not load registry: %w", err)
	}
	s.ledger, err = decodeFile(s.ledgerPath(), DecodeLedger)
	if err != nil {
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}
	return s, nil
}

// decodeFile opens one store file and runs a decoder over it, mapping a
// missing file to ErrNotInitialized.
func decodeFile[T any](path string, decode func(r io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return zero, fmt.Errorf("%w: missing %s", ErrNotInitialized, path)
	}
	if err != nil {
		return zero, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	return decode(f)
}

// AddStock declares a stock and persists it to the registry file.
func (s *Store) AddStock(rec StockRecord) error {
	if err := s.registry.Add(rec); err != nil {
		return err
	}
	return s.appendLine(s.registryPath(), func(f *os.File) error {
		return EncodeStock(f, rec)
	})
}

// Record validates a trade against the registry, appends it to the ledger
// and persists it to the ledger file. Strictly append-only.
func (s *Store) Record(trade TradeRecord) error {
	if err := s.ledger.Append(s.registry, trade); err != nil {
		return err
	}
	return s.appendLine(s.ledgerPath(), func(f *os.File) error {
		return EncodeTrade(f, trade)
	})
}

// appendLine opens a store file in append mode and writes one record.
func (s *Store) appendLine(path string, write func(f *os.File) error) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	return write(f)
}
