package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type tradesCmd struct {
	nameSubstring string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list trades, optionally filtered by stock name" }
func (*tradesCmd) Usage() string {
	return `tlg trades [-name-substring <s>]

  Lists all trades in ledger order, joined with the stock's display name.
  With -name-substring only trades whose display name contains the given
  string are listed; the match is case-insensitive.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.nameSubstring, "name-substring", "", "Keep only trades whose stock name contains this string")
}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	for _, view := range store.Trades(c.nameSubstring) {
		fmt.Println(view)
	}
	return subcommands.ExitSuccess
}
