package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/splitbook"
	"github.com/etnz/splitbook/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display expense totals and who owes whom" }
func (*summaryCmd) Usage() string {
	return `sbk summary

  Displays what each party has paid so far and the outstanding net debt
  between them.

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ps, err := parties()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
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

	printMarkdown(renderer.Summary(splitbook.NewProjection(ledger, ps), ps, *currencyFlag))
	return subcommands.ExitSuccess
}
