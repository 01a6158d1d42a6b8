package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the stored registry and ledger" }
func (*checkCmd) Usage() string {
	return `tlg check

  Validates every stored stock and trade and prints how many processed
  correctly. Semantic inconsistencies (unknown symbols, bad quantities,
  oversells) lower the counts; a corrupt file aborts with an error.
`
}

func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	trades, stocks, issues := store.Check()
	if config.Verbose {
		for _, issue := range issues {
			log.Printf("skipped: %v", issue)
		}
	} else if len(issues) > 0 {
		log.Printf("%d entries did not validate, run with verbose config for details", len(issues))
	}

	fmt.Printf("%d trades processed correctly.\n", trades)
	fmt.Printf("%d stocks processed correctly.\n", stocks)
	return subcommands.ExitSuccess
}
