// Package cmd implements the CLI application to manage a trade ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/tradelog"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

// Register the subcommands.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "store")
	c.Register(&checkCmd{}, "store")

	c.Register(&stockCmd{}, "records")
	c.Register(newBuyCmd(), "records")
	c.Register(newSellCmd(), "records")

	c.Register(&tradesCmd{}, "reports")
	c.Register(&portCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var homeDir = flag.String("D", defaultHomeDir(), "Path to the data directory")

// defaultHomeDir resolves the data directory: the TRADELOG_HOME environment
// variable when set, ~/.tradelog otherwise.
func defaultHomeDir() string {
	if dir := os.Getenv("TRADELOG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tradelog"
	}
	return filepath.Join(home, ".tradelog")
}

// Config holds the diagnostic settings the CLI applies at startup. It only
// affects logging, never core behavior.
type Config struct {
	Quiet         bool `yaml:"quiet"`          // suppress diagnostics entirely
	Verbose       bool `yaml:"verbose"`        // log per-entry findings, not only summaries
	LogTimestamps bool `yaml:"log_timestamps"` // prefix diagnostics with timestamps
}

var config Config

// Setup loads the optional configuration file and configures the process
// logger accordingly. The file is looked up at $TRADELOG_CONFIG, then at
// ~/.tradelog.yaml; a missing file means defaults.
func Setup() {
	path := os.Getenv("TRADELOG_CONFIG")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".tradelog.yaml")
		}
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring config %q: %v\n", path, err)
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(0)
	if config.LogTimestamps {
		log.SetFlags(log.LstdFlags)
	}
	if config.Quiet {
		log.SetOutput(io.Discard)
	}
}

// openStore opens the data directory selected by the -D flag.
func openStore() (*tradelog.Store, error) {
	return tradelog.Open(*homeDir)
}
