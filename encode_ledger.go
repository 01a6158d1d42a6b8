package tradelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger is persisted as a JSONL file, one trade per line:
//
//	{"id":"01J...","symbol":"AAPL","side":"buy","quantity":10,"price":150.25,"time":"2025-01-10T09:30:00Z"}
//
// The file is strictly append-only: recording a trade writes one line at the
// end, existing lines are never touched. Decoding preserves the on-disk
// order, which is not required to be sorted by time.

// DecodeLedger decodes trades from a stream of JSONL data. Decoding is
// structural only: a line that is not a well-formed trade aborts with
// ErrFormat, while semantically inconsistent trades (unknown symbol, bad
// quantity or price) decode fine and are left for Check to flag.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var trade TradeRecord
		if err := json.Unmarshal(line, &trade); err != nil {
			return nil, fmt.Errorf("%w: trade on line %d %q: %v", ErrFormat, n, string(line), err)
		}
		if trade.Side != Buy && trade.Side != Sell {
			return nil, fmt.Errorf("%w: trade on line %d: unknown side %q", ErrFormat, n, trade.Side)
		}
		ledger.append(trade)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeTrade writes a single trade as one JSONL line.
func EncodeTrade(w io.Writer, trade TradeRecord) error {
	data, err := json.Marshal(trade)
	if err != nil {
		return fmt.Errorf("could not marshal trade %s: %w", trade.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write trade %s: %w", trade.ID, err)
	}
	return nil
}

// EncodeLedger writes all trades in on-disk order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, trade := range ledger.Trades() {
		if err := EncodeTrade(w, trade); err != nil {
			return err
		}
	}
	return nil
}
