package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradelog"
	"github.com/google/subcommands"
)

type stockCmd struct {
	symbol   string
	name     string
	currency string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "declare a stock in the registry" }
func (*stockCmd) Usage() string {
	return `tlg stock -s <symbol> -n <name> [-c <currency>]

  Declares a stock so trades can reference it. The symbol must be unique.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol (unique key)")
	f.StringVar(&c.name, "n", "", "Display name")
	f.StringVar(&c.currency, "c", "", "Currency code (defaults to USD)")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	rec := tradelog.StockRecord{Symbol: c.symbol, Name: c.name, Currency: c.currency}
	if err := store.AddStock(rec); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Declared %s (%s)\n", c.symbol, c.name)
	return subcommands.ExitSuccess
}
