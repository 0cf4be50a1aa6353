package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/splitbook"
	"github.com/etnz/splitbook/renderer"
	"github.com/google/subcommands"
)

type payCmd struct {
	from   string
	to     string
	amount float64
	note   string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment on the shared tab" }
func (*payCmd) Usage() string {
	return `sbk pay -from <party> -to <party>[,<party>] -amount <value> [-note <text>]

  Appends a payment to the journal. The amount is split evenly across the
  payees; a payee equal to the payer keeps their own share.

Usage Examples:
# alice paid 120 for both:
$ sbk -parties alice,bob pay -from alice -to alice,bob -amount 120

`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "party that advanced the money")
	f.StringVar(&c.to, "to", "", "comma-separated parties sharing the amount")
	f.Float64Var(&c.amount, "amount", 0, "total amount paid")
	f.StringVar(&c.note, "note", "", "optional free-text note")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ps, err := parties()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if !ps.Contains(c.from) {
		fmt.Fprintf(os.Stderr, "unknown payer %q, parties are %s and %s\n", c.from, ps.First(), ps.Second())
		return subcommands.ExitUsageError
	}
	var payees []string
	for _, p := range strings.Split(c.to, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !ps.Contains(p) {
			fmt.Fprintf(os.Stderr, "unknown payee %q, parties are %s and %s\n", p, ps.First(), ps.Second())
			return subcommands.ExitUsageError
		}
		payees = append(payees, p)
	}

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	// A fresh snapshot right before assigning the id keeps the advisory id
	// as close as possible to what the store will accept.
	if _, err := client.Fetch(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	memo, err := splitbook.NewPayment(client.NextID(), c.from, payees, splitbook.M(c.amount), c.note)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := client.Post(memo); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ledger, err := client.Fetch()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded payment #%d.\n", memo.ID())
	printMarkdown(renderer.Summary(splitbook.NewProjection(ledger, ps), ps, *currencyFlag))
	return subcommands.ExitSuccess
}
