package tradelog

import (
	"iter"
	"sort"
)

// Ledger represents the full trade history, in on-disk order.
//
// The on-disk order is the append order, which is not necessarily the
// execution-time order: a backdated trade is still appended at the end.
// Operations that need the time order (Check's replay, Port's fold) work on
// a sorted view and never reorder the ledger itself.
type Ledger struct {
	trades []TradeRecord
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{trades: make([]TradeRecord, 0)}
}

// append adds a trade without validation, preserving order. It is the
// decoder's entry point: stored trades are kept as found.
func (l *Ledger) append(trade TradeRecord) {
	l.trades = append(l.trades, trade)
}

// Append validates the trade against the registry and adds it to the
// ledger. The ledger is append-only: this is the only mutation.
func (l *Ledger) Append(registry *Registry, trade TradeRecord) error {
	if err := trade.Validate(registry); err != nil {
		return err
	}
	l.append(trade)
	return nil
}

// Len returns the number of trades in the ledger.
func (l *Ledger) Len() int { return len(l.trades) }

// Trades returns an iterator yielding each trade with its on-disk position,
// in on-disk order. Filters, when given, keep a trade if any one accepts it.
func (l *Ledger) Trades(filters ...func(TradeRecord) bool) iter.Seq2[int, TradeRecord] {
	return func(yield func(int, TradeRecord) bool) {
		for i, trade := range l.trades {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(trade) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, trade) {
				return
			}
		}
	}
}

// BySymbol returns a filter keeping trades on the given symbol.
func BySymbol(symbol string) func(TradeRecord) bool {
	return func(t TradeRecord) bool { return t.Symbol == symbol }
}

// timeOrdered returns the on-disk positions of all trades, sorted by
// execution time with ties broken by on-disk order. The sort is stable and
// the ledger itself is left untouched.
func (l *Ledger) timeOrdered() []int {
	ordered := make([]int, len(l.trades))
	for i := range ordered {
		ordered[i] = i
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return l.trades[ordered[i]].Time.Before(l.trades[ordered[j]].Time)
	})
	return ordered
}
