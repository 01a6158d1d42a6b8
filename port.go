package tradelog

import (
	"fmt"
	"sort"
)

// CostBasisMethod defines the method for calculating cost basis.
type CostBasisMethod int

const (
	// AverageCost calculates the cost basis by averaging the cost of all shares.
	AverageCost CostBasisMethod = iota
	// FIFO calculates the cost basis by assuming the first shares purchased
	// are the first ones sold.
	FIFO
)

func (m CostBasisMethod) String() string {
	switch m {
	case AverageCost:
		return "average"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// ParseCostBasisMethod parses a string into a CostBasisMethod.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch s {
	case "average":
		return AverageCost, nil
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("unknown cost basis method: %q", s)
	}
}

// Position is the derived net holding of one stock. It is computed from the
// ledger, never persisted.
type Position struct {
	Symbol   string
	Name     string
	Quantity int64 // net held quantity
	Cost     Money // cost basis of the held shares
}

// String formats the position as a single line, e.g.
//
//	AAPL (Apple Inc.)      6 shares, cost $1,255.00
func (p Position) String() string {
	return fmt.Sprintf("%s (%s) %6d shares, cost %s", p.Symbol, p.Name, p.Quantity, p.Cost)
}

// Port folds the entire ledger into one Position per stock.
//
// Trades are replayed per symbol in execution-time order, ties broken by
// on-disk order. A buy increases the net quantity and adds quantity*price
// to the cost basis; a sell decreases the net quantity and reduces the cost
// basis per the chosen method. Stocks whose net quantity is exactly zero
// are omitted. The result is sorted by symbol ascending.
func (s *Store) Port(method CostBasisMethod) []Position {
	type holding struct {
		quantity int64
		cost     Money // AverageCost running cost
		lots     lots  // FIFO open lots
	}
	holdings := make(map[string]*holding)

	for _, i := range s.ledger.timeOrdered() {
		trade := s.ledger.trades[i]
		h := holdings[trade.Symbol]
		if h == nil {
			h = &holding{}
			holdings[trade.Symbol] = h
		}

		cur := DefaultCurrency
		if rec, ok := s.registry.Lookup(trade.Symbol); ok {
			cur = rec.currency()
		}
		amount := M(trade.Price, cur).Mul(trade.Quantity)

		switch trade.Side {
		case Buy:
			h.cost = h.cost.Add(amount)
			h.lots = append(h.lots, lot{Quantity: trade.Quantity, Cost: amount})
			h.quantity += trade.Quantity
		case Sell:
			if h.quantity > 0 {
				sold := min(trade.Quantity, h.quantity)
				h.cost = h.cost.Sub(h.cost.Mul(sold).Div(h.quantity))
			}
			h.lots = h.lots.sell(trade.Quantity)
			h.quantity -= trade.Quantity
		}
	}

	positions := make([]Position, 0, len(holdings))
	for symbol, h := range holdings {
		if h.quantity == 0 {
			continue
		}
		cost := h.cost
		if method == FIFO {
			cost = h.lots.cost()
		}
		p := Position{Symbol: symbol, Quantity: h.quantity, Cost: cost}
		if rec, ok := s.registry.Lookup(symbol); ok {
			p.Name = rec.Name
		}
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Symbol < positions[j].Symbol })
	return positions
}
