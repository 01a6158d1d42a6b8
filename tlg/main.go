package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tradelog/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Install it with
// COMP_INSTALL=1 tlg.
func completion() *complete.Command {
	trade := &complete.Command{
		Flags: map[string]complete.Predictor{
			"s": predict.Something,
			"q": predict.Something,
			"p": predict.Something,
			"d": predict.Something,
		},
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"D": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"init":   {Flags: map[string]complete.Predictor{"force": predict.Nothing}},
			"check":  {},
			"trades": {Flags: map[string]complete.Predictor{"name-substring": predict.Something}},
			"port":   {Flags: map[string]complete.Predictor{"method": predict.Set{"average", "fifo"}}},
			"stock": {Flags: map[string]complete.Predictor{
				"s": predict.Something,
				"n": predict.Something,
				"c": predict.Something,
			}},
			"buy":   trade,
			"sell":  trade,
			"topic": {Args: predict.Set{"readme", "store", "ledger", "portfolio"}},
		},
	}
}

func main() {
	// A .env file may provide TRADELOG_HOME or TRADELOG_CONFIG; absence is fine.
	_ = godotenv.Load()

	completion().Complete("tlg")

	cmd.Setup()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
