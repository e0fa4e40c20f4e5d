package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nvolkov/bookkeeper"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts of the ledger" }
func (*accountsCmd) Usage() string {
	return `bkx accounts

  Lists every account with its type, currency and initial balance, and
  the QIF account-type token it will export under.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("ID\tName\tType\tQIF\tCurrency\tInitial Balance\n")
	for _, a := range ledger.Accounts() {
		symbol, balance := "?", a.InitialBalance.StringFixed(2)
		if currency := ledger.Currency(a.CurrencyID); currency != nil {
			symbol = currency.Symbol
			balance = currency.Format(a.InitialBalance)
		}
		fmt.Printf("%d\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Name, a.Type, bookkeeper.QIFAccountType(a.Type), symbol, balance)
	}
	return subcommands.ExitSuccess
}
