package tradelog

import (
	"testing"
)

func TestPortNetPositions(t *testing.T) {
	s := newTestStore(t,
		[]StockRecord{
			{Symbol: "AAPL", Name: "Apple Inc."},
			{Symbol: "MSFT", Name: "Microsoft Corp."},
		},
		[]TradeRecord{
			NewBuy(at(t, "2025-01-10"), "AAPL", 10, price("100")),
			NewSell(at(t, "2025-02-01"), "AAPL", 4, price("110")),
			NewBuy(at(t, "2025-02-02"), "MSFT", 2, price("50")),
		},
	)

	positions := s.Port(AverageCost)
	if len(positions) != 2 {
		t.Fatalf("Port() returned %d positions, want 2", len(positions))
	}
	// Sorted by symbol ascending.
	if positions[0].Symbol != "AAPL" || positions[0].Quantity != 6 {
		t.Errorf("Port()[0] = %v, want AAPL with 6 shares", positions[0])
	}
	if positions[1].Symbol != "MSFT" || positions[1].Quantity != 2 {
		t.Errorf("Port()[1] = %v, want MSFT with 2 shares", positions[1])
	}
	// Average cost: 10@100 = 1000, selling 4 keeps 6/10 of it.
	if want := MFloat(600, "USD"); !positions[0].Cost.Equal(want) {
		t.Errorf("Port()[0].Cost = %s, want %s", positions[0].Cost, want)
	}
	if positions[0].Name != "Apple Inc." {
		t.Errorf("Port()[0].Name = %q, want %q", positions[0].Name, "Apple Inc.")
	}
}

func TestPortOmitsFullySoldStocks(t *testing.T) {
	s := newTestStore(t,
		[]StockRecord{
			{Symbol: "AAPL", Name: "Apple Inc."},
			{Symbol: "MSFT", Name: "Microsoft Corp."},
		},
		[]TradeRecord{
			NewBuy(at(t, "2025-01-10"), "AAPL", 10, price("100")),
			NewBuy(at(t, "2025-01-11"), "MSFT", 2, price("50")),
			NewSell(at(t, "2025-03-01"), "AAPL", 10, price("120")),
		},
	)

	positions := s.Port(AverageCost)
	if len(positions) != 1 || positions[0].Symbol != "MSFT" {
		t.Errorf("Port() = %v, want only MSFT", positions)
	}
}

func TestPortFoldsInTimeOrder(t *testing.T) {
	// The history is appended out of time order; the fold must still apply
	// the backdated buy before the sell.
	s := newTestStore(t,
		[]StockRecord{{Symbol: "AAPL", Name: "Apple Inc."}},
		[]TradeRecord{
			NewSell(at(t, "2025-02-01"), "AAPL", 5, price("110")),
			NewBuy(at(t, "2025-01-10"), "AAPL", 10, price("100")),
		},
	)

	positions := s.Port(AverageCost)
	if len(positions) != 1 {
		t.Fatalf("Port() returned %d positions, want 1", len(positions))
	}
	if positions[0].Quantity != 5 {
		t.Errorf("Port() quantity = %d, want 5", positions[0].Quantity)
	}
	// 10@100 bought, half sold: average cost keeps 500.
	if want := MFloat(500, "USD"); !positions[0].Cost.Equal(want) {
		t.Errorf("Port() cost = %s, want %s", positions[0].Cost, want)
	}
}

func TestPortCostBasisMethods(t *testing.T) {
	// Two lots at different prices, then a sale covering the first lot and
	// part of the second.
	s := newTestStore(t,
		[]StockRecord{{Symbol: "AAPL", Name: "Apple Inc."}},
		[]TradeRecord{
			NewBuy(at(t, "2025-01-10"), "AAPL", 10, price("100")),
			NewBuy(at(t, "2025-01-20"), "AAPL", 10, price("200")),
			NewSell(at(t, "2025-02-01"), "AAPL", 15, price("210")),
		},
	)

	testCases := []struct {
		name   string
		method CostBasisMethod
		want   Money
	}{
		// Average: total cost 3000 for 20 shares, 5 remain -> 750.
		{"average", AverageCost, MFloat(750, "USD")},
		// FIFO: first lot fully consumed, 5 shares of the 200 lot remain -> 1000.
		{"fifo", FIFO, MFloat(1000, "USD")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			positions := s.Port(tc.method)
			if len(positions) != 1 {
				t.Fatalf("Port() returned %d positions, want 1", len(positions))
			}
			if positions[0].Quantity != 5 {
				t.Errorf("Port() quantity = %d, want 5", positions[0].Quantity)
			}
			if !positions[0].Cost.Equal(tc.want) {
				t.Errorf("Port(%s) cost = %s, want %s", tc.method, positions[0].Cost, tc.want)
			}
		})
	}
}

func TestPortUsesStockCurrency(t *testing.T) {
	s := newTestStore(t,
		[]StockRecord{{Symbol: "SAP", Name: "SAP SE", Currency: "EUR"}},
		[]TradeRecord{
			NewBuy(at(t, "2025-01-10"), "SAP", 4, price("120.50")),
		},
	)
	positions := s.Port(AverageCost)
	if len(positions) != 1 {
		t.Fatalf("Port() returned %d positions, want 1", len(positions))
	}
	if got := positions[0].Cost.Currency(); got != "EUR" {
		t.Errorf("Port() cost currency = %q, want EUR", got)
	}
}

func TestParseCostBasisMethod(t *testing.T) {
	for _, method := range []CostBasisMethod{AverageCost, FIFO} {
		parsed, err := ParseCostBasisMethod(method.String())
		if err != nil || parsed != method {
			t.Errorf("ParseCostBasisMethod(%q) = (%v, %v), want (%v, nil)", method.String(), parsed, err, method)
		}
	}
	if _, err := ParseCostBasisMethod("lifo"); err == nil {
		t.Error("ParseCostBasisMethod(\"lifo\") succeeded, want error")
	}
}
