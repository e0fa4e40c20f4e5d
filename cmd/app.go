// Package cmd implements the CLI application to export a ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/nvolkov/bookkeeper"
	"github.com/nvolkov/bookkeeper/internal/logger"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&accountsCmd{}, "ledger")

	c.Register(&qifCmd{}, "export")
	c.Register(&jsonCmd{}, "export")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (JSONL format, default $BKX_LEDGER or ledger.jsonl)")

var log = logger.New()

// Log returns the application logger.
func Log() zerolog.Logger { return log }

// ledgerPath resolves the ledger file from the flag, the environment,
// then the default, in that order.
func ledgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	if v := os.Getenv("BKX_LEDGER"); v != "" {
		return v
	}
	return "ledger.jsonl"
}

// DecodeLedger loads the app ledger file.
func DecodeLedger() (*bookkeeper.Ledger, error) {
	path := ledgerPath()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := bookkeeper.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger file %q: %w", path, err)
	}
	return l, nil
}

// withOutput runs fn against the named file, or stdout when the name is
// empty.
func withOutput(name string, fn func(io.Writer) error) error {
	if name == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create output file %q: %w", name, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
