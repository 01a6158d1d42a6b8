package tradelog

import (
	"fmt"
	"strings"
)

// TradeView is a trade joined with the registry for display: the record
// plus the stock's resolved display name and currency.
type TradeView struct {
	TradeRecord
	Name     string
	Currency string
}

// String formats the trade as a single line, e.g.
//
//	2025-01-10 buy    10 AAPL (Apple Inc.) @ $150.25
func (v TradeView) String() string {
	cur := v.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	return fmt.Sprintf("%s %-4s %6d %s (%s) @ %s",
		v.Time.Format("2006-01-02"), v.Side, v.Quantity, v.Symbol, v.Name, M(v.Price, cur))
}

// Trades returns the ledger joined with the registry, in on-disk order.
//
// With an empty filter all trades are returned. Otherwise only trades whose
// resolved display name contains the filter are kept; the match is
// case-insensitive. A trade on an undeclared symbol resolves to an empty
// name: it is returned by the unfiltered query but can never match a
// filter.
func (s *Store) Trades(nameSubstring string) []TradeView {
	views := make([]TradeView, 0, s.ledger.Len())
	filter := strings.ToLower(nameSubstring)

	for _, trade := range s.ledger.Trades() {
		view := TradeView{TradeRecord: trade}
		if rec, ok := s.registry.Lookup(trade.Symbol); ok {
			view.Name = rec.Name
			view.Currency = rec.currency()
		}
		if filter != "" && !strings.Contains(strings.ToLower(view.Name), filter) {
			continue
		}
		views = append(views, view)
	}
	return views
}
