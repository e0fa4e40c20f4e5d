package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/nvolkov/bookkeeper"
)

type jsonCmd struct {
	pretty     bool
	outputFile string
}

func (*jsonCmd) Name() string     { return "json" }
func (*jsonCmd) Synopsis() string { return "export the ledger as a JSON document" }
func (*jsonCmd) Usage() string {
	return `bkx json [-pretty] [-o <file>]

  Exports the ledger as one JSON document: the flat category list under
  "CATEGORIES", then every transaction under "TRANSACTIONS" with its
  account, category, attachment and custom field data.

Usage Examples:
# Pretty-print the whole ledger.
$ bkx json -pretty

`
}

func (c *jsonCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.pretty, "pretty", false, "Pretty-print the output.")
	f.StringVar(&c.outputFile, "o", "", "Output file. Writes to stdout by default.")
}

func (c *jsonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	e := bookkeeper.NewExporter(ledger)

	err = withOutput(c.outputFile, func(out io.Writer) error {
		w := bookkeeper.NewCompactWriter(out)
		if c.pretty {
			w = bookkeeper.NewPrettyWriter(out)
		}

		w.StartObject()
		e.CategoriesJSON(w)
		w.Key("TRANSACTIONS")
		w.StartArray()
		for _, v := range ledger.Transactions() {
			e.TransactionJSON(w, v)
		}
		w.EndArray()
		w.EndObject()
		if err := w.Err(); err != nil {
			return err
		}
		_, err := io.WriteString(out, "\n")
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing JSON export: %v\n", err)
		return subcommands.ExitFailure
	}

	log.Info().Int("transactions", len(ledger.Transactions())).Msg("JSON export done")
	return subcommands.ExitSuccess
}
