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

type qifCmd struct {
	account    int64
	dateMask   string
	categories bool
	outputFile string
}

func (*qifCmd) Name() string     { return "qif" }
func (*qifCmd) Synopsis() string { return "export the ledger in QIF format" }
func (*qifCmd) Usage() string {
	return `bkx qif [-a <account_id>] [-f <date_mask>] [-categories] [-o <file>]

  Exports account histories in Quicken Interchange Format: the category
  list, then each account's header followed by its transactions. A
  transfer appears in both account histories, rendered once from each
  side's perspective.

Usage Examples:
# Export every account to transactions.qif with ISO dates.
$ bkx qif -f 2006-01-02 -o transactions.qif

# Export a single account to stdout.
$ bkx qif -a 2

`
}

func (c *qifCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.account, "a", 0, "Account to export. Exports all by default.")
	f.StringVar(&c.dateMask, "f", "01/02/2006", "Date mask used to format transaction dates.")
	f.BoolVar(&c.categories, "categories", true, "Include the category list block.")
	f.StringVar(&c.outputFile, "o", "", "Output file. Writes to stdout by default.")
}

func (c *qifCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	e := bookkeeper.NewExporter(ledger)

	accounts := ledger.Accounts()
	if c.account != 0 {
		account := ledger.Account(c.account)
		if account == nil {
			fmt.Fprintf(os.Stderr, "unknown account id %d\n", c.account)
			return subcommands.ExitUsageError
		}
		accounts = []*bookkeeper.AccountRef{account}
	}

	records := 0
	err = withOutput(c.outputFile, func(w io.Writer) error {
		if c.categories {
			if _, err := io.WriteString(w, e.CategoriesQIF()); err != nil {
				return err
			}
		}
		for _, account := range accounts {
			if _, err := io.WriteString(w, e.AccountHeaderQIF(account.ID)); err != nil {
				return err
			}
			for _, v := range ledger.TransactionsOf(account.ID) {
				// the receiving leg of a transfer renders reversed
				reverse := v.IsTransfer() && v.ToAccountID == account.ID && v.AccountID != account.ID
				if _, err := io.WriteString(w, e.TransactionQIF(v, c.dateMask, reverse)); err != nil {
					return err
				}
				records++
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing QIF export: %v\n", err)
		return subcommands.ExitFailure
	}

	log.Info().Int("accounts", len(accounts)).Int("transactions", records).Msg("QIF export done")
	return subcommands.ExitSuccess
}
