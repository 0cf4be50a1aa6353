package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/splitbook"
	"github.com/etnz/splitbook/renderer"
	"github.com/google/subcommands"
)

type cancelCmd struct {
	note string
}

func (*cancelCmd) Name() string     { return "cancel" }
func (*cancelCmd) Synopsis() string { return "retract an earlier memo by id" }
func (*cancelCmd) Usage() string {
	return `sbk cancel <id> [-note <text>]

  Appends a cancellation for the memo with the given id. The target memo
  disappears from history and from the totals; the journal itself is never
  edited.

`
}

func (c *cancelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.note, "note", "", "optional free-text note")
}

func (c *cancelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "cancel takes exactly one memo id")
		return subcommands.ExitUsageError
	}
	target, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid memo id %q: %v\n", f.Arg(0), err)
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
	if r, ok := ledger.Find(target); ok {
		fmt.Printf("Retracting #%d: %s\n", target, renderer.Memo(r.Memo, *currencyFlag))
	} else {
		fmt.Fprintf(os.Stderr, "warning: no visible memo #%d in the current snapshot, cancelling anyway\n", target)
	}

	memo, err := splitbook.NewCancel(ledger.NextID(), target, c.note)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := client.Post(memo); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fresh, err := client.Fetch()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if ps, err := parties(); err == nil {
		printMarkdown(renderer.Summary(splitbook.NewProjection(fresh, ps), ps, *currencyFlag))
	}
	return subcommands.ExitSuccess
}
