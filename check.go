package tradelog

import "fmt"

// Check validates the loaded registry and ledger and returns the number of
// entities that validated successfully.
//
// Structural corruption is not Check's concern: an unparsable file already
// aborted Open. Check looks for semantic inconsistencies, which lower the
// returned counts below the stored totals instead of aborting:
//
//  1. every registry record is well-formed (counted into stocks),
//  2. every trade resolves its symbol with quantity > 0 and price >= 0
//     (counted into trades),
//  3. a per-stock replay in execution-time order (ties broken by on-disk
//     order) flags trades that drive the held quantity negative.
//
// Each inconsistency is also reported as an issue wrapping the matching
// sentinel error, so callers can log what was skipped.
func (s *Store) Check() (trades, stocks int, issues []error) {
	// 1. registry. Load already rejects empty and duplicate symbols, so in
	// practice every record counts; the recount keeps the contract honest
	// for registries built in memory.
	for rec := range s.registry.All() {
		if rec.Symbol == "" {
			issues = append(issues, fmt.Errorf("%w: stock %q has no symbol", ErrFormat, rec.Name))
			continue
		}
		stocks++
	}

	// 2. per-trade semantic validation, in on-disk order.
	invalid := make(map[int]bool)
	for i, trade := range s.ledger.Trades() {
		if err := trade.Validate(s.registry); err != nil {
			issues = append(issues, err)
			invalid[i] = true
		}
	}

	// 3. oversell replay in time order. Trades already flagged in step 2 do
	// not move the held quantity.
	held := make(map[string]int64)
	for _, i := range s.ledger.timeOrdered() {
		if invalid[i] {
			continue
		}
		trade := s.ledger.trades[i]
		switch trade.Side {
		case Buy:
			held[trade.Symbol] += trade.Quantity
		case Sell:
			if held[trade.Symbol] < trade.Quantity {
				issues = append(issues, fmt.Errorf("%w: trade %s sells %d of %q but only %d held",
					ErrOversell, trade.ID, trade.Quantity, trade.Symbol, held[trade.Symbol]))
				invalid[i] = true
				continue
			}
			held[trade.Symbol] -= trade.Quantity
		}
	}

	for i := range s.ledger.Len() {
		if !invalid[i] {
			trades++
		}
	}
	return trades, stocks, issues
}
