package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/splitbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion. It returns immediately unless the
// shell is asking for completions.
func completion() {
	globals := map[string]complete.Predictor{
		"store-url":  predict.Something,
		"section":    predict.Something,
		"secret-key": predict.Something,
		"parties":    predict.Something,
		"currency":   predict.Something,
	}
	root := &complete.Command{
		Flags: globals,
		Sub: map[string]*complete.Command{
			"pay": {Flags: map[string]complete.Predictor{
				"from":   predict.Something,
				"to":     predict.Something,
				"amount": predict.Something,
				"note":   predict.Something,
			}},
			"cancel":  {Flags: map[string]complete.Predictor{"note": predict.Something}},
			"note":    {},
			"history": {Flags: map[string]complete.Predictor{"r": predict.Nothing}},
			"summary": {},
			"topic":   {Args: predict.Set{"readme", "memos", "store", "splitting"}},
			"assist":  {},
		},
	}
	root.Complete("sbk")
}
