package tradelog

import (
	"fmt"
	"iter"
)

// DefaultCurrency is assumed for stocks declared without one.
const DefaultCurrency = "USD"

// StockRecord describes one stock known to the registry.
type StockRecord struct {
	Symbol   string `json:"symbol"`             // unique, non-empty key
	Name     string `json:"name"`               // display name used by queries
	Currency string `json:"currency,omitempty"` // ISO code, DefaultCurrency when empty
}

// Currency code of the stock, defaulting when the record carries none.
func (s StockRecord) currency() string {
	if s.Currency == "" {
		return DefaultCurrency
	}
	return s.Currency
}

// Registry holds all declared stocks, indexed by symbol.
//
// The declaration order is preserved, so encoding a registry writes the same
// file it was decoded from.
type Registry struct {
	stocks []StockRecord
	index  map[string]StockRecord
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		stocks: make([]StockRecord, 0),
		index:  make(map[string]StockRecord),
	}
}

// Has returns true if the symbol is declared.
func (r *Registry) Has(symbol string) bool {
	_, ok := r.index[symbol]
	return ok
}

// Lookup returns the record declared for this symbol.
func (r *Registry) Lookup(symbol string) (StockRecord, bool) {
	rec, ok := r.index[symbol]
	return rec, ok
}

// Len returns the number of declared stocks.
func (r *Registry) Len() int { return len(r.stocks) }

// Add declares a stock. The symbol must be non-empty and not declared yet.
func (r *Registry) Add(rec StockRecord) error {
	if rec.Symbol == "" {
		return fmt.Errorf("%w: stock symbol is empty", ErrFormat)
	}
	if r.Has(rec.Symbol) {
		return fmt.Errorf("%w: %q", ErrDuplicateSymbol, rec.Symbol)
	}
	r.stocks = append(r.stocks, rec)
	r.index[rec.Symbol] = rec
	return nil
}

// All returns an iterator over the stocks in declaration order.
func (r *Registry) All() iter.Seq[StockRecord] {
	return func(yield func(StockRecord) bool) {
		for _, rec := range r.stocks {
			if !yield(rec) {
				return
			}
		}
	}
}
