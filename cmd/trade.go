package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/tradelog"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// tradeCmd records one trade; it backs both the buy and the sell commands.
type tradeCmd struct {
	side     tradelog.Side
	symbol   string
	quantity int64
	price    float64
	date     string
}

func newBuyCmd() *tradeCmd  { return &tradeCmd{side: tradelog.Buy} }
func newSellCmd() *tradeCmd { return &tradeCmd{side: tradelog.Sell} }

func (c *tradeCmd) Name() string { return string(c.side) }
func (c *tradeCmd) Synopsis() string {
	if c.side == tradelog.Buy {
		return "record a purchase of shares"
	}
	return "record a sale of shares"
}
func (c *tradeCmd) Usage() string {
	return fmt.Sprintf(`tlg %s -s <symbol> -q <quantity> -p <price> [-d <time>]

  Appends a %s trade to the ledger. The symbol must be declared, the
  quantity strictly positive and the price non-negative. The time accepts
  RFC3339 or a plain date (YYYY-MM-DD) and defaults to now.
`, c.side, c.side)
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share, in the stock's currency")
	f.StringVar(&c.date, "d", "", "Execution time (RFC3339 or YYYY-MM-DD, defaults to now)")
}

// parseTime accepts RFC3339 or a plain date.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity <= 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	when, err := parseTime(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	trade := tradelog.NewTrade(when, c.side, c.symbol, c.quantity, decimal.NewFromFloat(c.price))
	if err := store.Record(trade); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %d %s @ %v\n", c.side, c.quantity, c.symbol, trade.Price)
	return subcommands.ExitSuccess
}
