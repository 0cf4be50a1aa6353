package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/splitbook"
	"github.com/google/subcommands"
)

type noteCmd struct{}

func (*noteCmd) Name() string     { return "note" }
func (*noteCmd) Synopsis() string { return "append a free-text note to the tab" }
func (*noteCmd) Usage() string {
	return `sbk note <text>...

  Appends a note memo. Notes appear in the history and have no effect on
  the totals.

`
}

func (c *noteCmd) SetFlags(f *flag.FlagSet) {}

func (c *noteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text := strings.TrimSpace(strings.Join(f.Args(), " "))
	if text == "" {
		fmt.Fprintln(os.Stderr, "note requires text")
		return subcommands.ExitUsageError
	}

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if _, err := client.Fetch(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	memo, err := splitbook.NewNote(client.NextID(), text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := client.Post(memo); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded note #%d.\n", memo.ID())
	return subcommands.ExitSuccess
}
