package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/nvolkov/bookkeeper/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// an optional .env file provides defaults like BKX_LEDGER
	_ = godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; it returns immediately unless the
// shell is asking for completions.
func completion() {
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"qif": {Flags: map[string]complete.Predictor{
				"a":          predict.Nothing,
				"f":          predict.Nothing,
				"categories": predict.Nothing,
				"o":          predict.Files("*.qif"),
			}},
			"json": {Flags: map[string]complete.Predictor{
				"pretty": predict.Nothing,
				"o":      predict.Files("*.json"),
			}},
			"accounts": {},
			"topic":    {Args: predict.Set{"readme", "qif", "json", "ledger-file"}},
		},
	}
	c.Complete("bkx")
}
