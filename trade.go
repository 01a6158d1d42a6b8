package tradelog

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Side is a typed string identifying the direction of a trade.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("%w: unknown trade side %q", ErrFormat, s)
	}
}

// TradeRecord is one executed trade. Records are immutable once written to
// the ledger, and are only ever appended.
type TradeRecord struct {
	ID       string          `json:"id"`       // ULID, time-ordered
	Symbol   string          `json:"symbol"`   // must resolve in the registry
	Side     Side            `json:"side"`     // buy or sell
	Quantity int64           `json:"quantity"` // number of shares, > 0
	Price    decimal.Decimal `json:"price"`    // per share, >= 0, in the stock's currency
	Time     time.Time       `json:"time"`     // execution time
}

// NewTrade builds a trade executed at t. The ID is a ULID derived from t, so
// ids sort like execution times.
func NewTrade(t time.Time, side Side, symbol string, quantity int64, price decimal.Decimal) TradeRecord {
	return TradeRecord{
		ID:       ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String(),
		Symbol:   symbol,
		Side:     side,
		Quantity: quantity,
		Price:    price,
		Time:     t,
	}
}

// NewBuy builds a buy trade executed at t.
func NewBuy(t time.Time, symbol string, quantity int64, price decimal.Decimal) TradeRecord {
	return NewTrade(t, Buy, symbol, quantity, price)
}

// NewSell builds a sell trade executed at t.
func NewSell(t time.Time, symbol string, quantity int64, price decimal.Decimal) TradeRecord {
	return NewTrade(t, Sell, symbol, quantity, price)
}

// Validate checks the trade's semantic invariants against a registry: the
// symbol resolves, the quantity is strictly positive, the price is not
// negative. Structural shape is the decoder's concern, not Validate's.
func (t TradeRecord) Validate(registry *Registry) error {
	if !registry.Has(t.Symbol) {
		return fmt.Errorf("%w: trade %s references %q", ErrUnknownSymbol, t.ID, t.Symbol)
	}
	if t.Quantity <= 0 {
		return fmt.Errorf("%w: trade %s has quantity %d", ErrInvalidQuantity, t.ID, t.Quantity)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("%w: trade %s has price %s", ErrInvalidPrice, t.ID, t.Price)
	}
	return nil
}

// Equal reports whether two trades are the same record.
func (t TradeRecord) Equal(o TradeRecord) bool {
	return t.ID == o.ID &&
		t.Symbol == o.Symbol &&
		t.Side == o.Side &&
		t.Quantity == o.Quantity &&
		t.Price.Equal(o.Price) &&
		t.Time.Equal(o.Time)
}
