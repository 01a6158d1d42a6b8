package tradelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// The registry is persisted as a JSONL file, one stock per line:
//
//	{"symbol":"AAPL","name":"Apple Inc.","currency":"USD"}
//
// Lines are parsed independently so the file stays trivially mergeable and
// auditable. A line that does not parse, or redeclares a symbol, is
// structural corruption and aborts the whole decode.

// DecodeRegistry decodes a registry from a stream of JSONL data.
func DecodeRegistry(r io.Reader) (*Registry, error) {
	registry := NewRegistry()
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var rec StockRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("%w: stock on line %d %q: %v", ErrFormat, n, string(line), err)
		}
		if err := registry.Add(rec); err != nil {
			return nil, fmt.Errorf("stock on line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read registry: %w", err)
	}
	return registry, nil
}

// EncodeStock writes a single stock as one JSONL line.
func EncodeStock(w io.Writer, rec StockRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("could not marshal stock %q: %w", rec.Symbol, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write stock %q: %w", rec.Symbol, err)
	}
	return nil
}

// EncodeRegistry writes all stocks in declaration order.
func EncodeRegistry(w io.Writer, registry *Registry) error {
	for rec := range registry.All() {
		if err := EncodeStock(w, rec); err != nil {
			return err
		}
	}
	return nil
}
