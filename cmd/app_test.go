package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// useTempHome points the global -D flag at a fresh directory.
func useTempHome(t *testing.T) string {
	t.Helper()
	home := filepath.Join(t.TempDir(), "ledger")
	old := *homeDir
	*homeDir = home
	t.Cleanup(func() { *homeDir = old })
	return home
}

// run executes a subcommand with the given arguments, as main would.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("could not parse %v: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestInitCheckFlow(t *testing.T) {
	home := useTempHome(t)

	if got := run(t, &initCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("init = %v, want success", got)
	}
	if _, err := os.Stat(filepath.Join(home, "trades.jsonl")); err != nil {
		t.Errorf("init did not create the ledger file: %v", err)
	}

	// Without -force a second init fails, with -force it succeeds.
	if got := run(t, &initCmd{}); got != subcommands.ExitFailure {
		t.Errorf("second init = %v, want failure", got)
	}
	if got := run(t, &initCmd{}, "-force"); got != subcommands.ExitSuccess {
		t.Errorf("init -force = %v, want success", got)
	}

	if got := run(t, &checkCmd{}); got != subcommands.ExitSuccess {
		t.Errorf("check = %v, want success", got)
	}
}

func TestCheckNotInitialized(t *testing.T) {
	useTempHome(t)
	if got := run(t, &checkCmd{}); got != subcommands.ExitFailure {
		t.Errorf("check on missing directory = %v, want failure", got)
	}
}

func TestRecordFlow(t *testing.T) {
	home := useTempHome(t)
	if got := run(t, &initCmd{}); got != subcommands.ExitSuccess {
		t.Fatal("init failed")
	}

	if got := run(t, &stockCmd{}, "-s", "AAPL", "-n", "Apple Inc."); got != subcommands.ExitSuccess {
		t.Fatalf("stock = %v, want success", got)
	}
	// Declaring the same symbol twice fails.
	if got := run(t, &stockCmd{}, "-s", "AAPL", "-n", "Apple again"); got != subcommands.ExitFailure {
		t.Errorf("duplicate stock = %v, want failure", got)
	}
	// Missing mandatory flags is a usage error.
	if got := run(t, &stockCmd{}, "-s", "MSFT"); got != subcommands.ExitUsageError {
		t.Errorf("stock without name = %v, want usage error", got)
	}

	if got := run(t, newBuyCmd(), "-s", "AAPL", "-q", "10", "-p", "150.25", "-d", "2025-01-10"); got != subcommands.ExitSuccess {
		t.Fatalf("buy = %v, want success", got)
	}
	if got := run(t, newSellCmd(), "-s", "AAPL", "-q", "4", "-p", "160", "-d", "2025-02-01T14:30:00Z"); got != subcommands.ExitSuccess {
		t.Fatalf("sell = %v, want success", got)
	}
	// Unknown symbol is rejected and not persisted.
	if got := run(t, newBuyCmd(), "-s", "GOOG", "-q", "1", "-p", "2800"); got != subcommands.ExitFailure {
		t.Errorf("buy unknown symbol = %v, want failure", got)
	}

	data, err := os.ReadFile(filepath.Join(home, "trades.jsonl"))
	if err != nil {
		t.Fatalf("could not read ledger file: %v", err)
	}
	lines := strings.Count(string(data), "\n")
	if lines != 2 {
		t.Errorf("ledger file has %d lines, want 2", lines)
	}

	if got := run(t, &tradesCmd{}, "-name-substring", "apple"); got != subcommands.ExitSuccess {
		t.Errorf("trades = %v, want success", got)
	}
	if got := run(t, &portCmd{}, "-method", "fifo"); got != subcommands.ExitSuccess {
		t.Errorf("port = %v, want success", got)
	}
	if got := run(t, &portCmd{}, "-method", "lifo"); got != subcommands.ExitUsageError {
		t.Errorf("port -method lifo = %v, want usage error", got)
	}
}

func TestParseTime(t *testing.T) {
	if _, err := parseTime("2025-01-10"); err != nil {
		t.Errorf("parseTime(date) failed: %v", err)
	}
	if _, err := parseTime("2025-01-10T09:30:00Z"); err != nil {
		t.Errorf("parseTime(RFC3339) failed: %v", err)
	}
	if _, err := parseTime("yesterday"); err == nil {
		t.Error("parseTime(yesterday) succeeded, want error")
	}
	if got, err := parseTime(""); err != nil || got.IsZero() {
		t.Errorf("parseTime(\"\") = (%v, %v), want now", got, err)
	}
}
