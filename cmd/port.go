package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradelog"
	"github.com/google/subcommands"
)

type portCmd struct {
	method string
}

func (*portCmd) Name() string     { return "port" }
func (*portCmd) Synopsis() string { return "show the net portfolio positions" }
func (*portCmd) Usage() string {
	return `tlg port [-method <average|fifo>]

  Folds the whole ledger into one net position per stock, in execution-time
  order, and prints one line per non-zero holding sorted by symbol.
`
}

func (c *portCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "method", "average", "The cost basis method (average, fifo)")
}

func (c *portCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := tradelog.ParseCostBasisMethod(c.method)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	for _, position := range store.Port(method) {
		fmt.Println(position)
	}
	return subcommands.ExitSuccess
}
