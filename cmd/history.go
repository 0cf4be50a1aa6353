package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/splitbook/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	reverse bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the visible memos of the tab" }
func (*historyCmd) Usage() string {
	return `sbk history [-r]

  Displays all memos that are neither cancellations nor cancelled,
  oldest first. Use -r for newest first.

`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.reverse, "r", false, "newest first")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	ledger, err := client.Fetch()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	records := slices.Collect(ledger.History(c.reverse))
	printMarkdown(renderer.History(records, *currencyFlag))
	return subcommands.ExitSuccess
}
