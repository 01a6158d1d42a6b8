package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradelog"
	"github.com/google/subcommands"
)

type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "initialize a new data directory" }
func (*initCmd) Usage() string {
	return `tlg init [-force]

  Creates the data directory with an empty stock registry and trade ledger.
  Fails if the directory already exists, unless -force is given, in which
  case the existing contents are cleared.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Clear and reinitialize an existing data directory")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := tradelog.New(*homeDir, c.force)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Data directory: %s\n", store.HomeDir())
	return subcommands.ExitSuccess
}
