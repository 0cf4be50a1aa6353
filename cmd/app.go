// Package cmd implements the CLI application to manage a shared tab.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/splitbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&payCmd{}, "memos")
	c.Register(&cancelCmd{}, "memos")
	c.Register(&noteCmd{}, "memos")

	c.Register(&historyCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const (
	storeURLEnv  = "SPLITBOOK_STORE_URL"
	secretKeyEnv = "SPLITBOOK_SECRET_KEY"
)

var (
	storeURLFlag = flag.String("store-url", "", "Base URL of the remote journal store.\n If missing it is read from the environment variable "+storeURLEnv+".")
	sectionFlag  = flag.String("section", "", "Journal section holding this tab.")
	secretFlag   = flag.String("secret-key", "", "Shared secret of the journal section.\n If missing it is read from the environment variable "+secretKeyEnv+".")
	partiesFlag  = flag.String("parties", "", "The two party names sharing the tab, comma separated, creditor-sign first.")
	currencyFlag = flag.String("currency", "CNY", "Display currency code for amounts.")
)

func storeURL() string {
	if *storeURLFlag == "" {
		*storeURLFlag = os.Getenv(storeURLEnv)
	}
	return *storeURLFlag
}

func secretKey() string {
	if *secretFlag == "" {
		*secretFlag = os.Getenv(secretKeyEnv)
	}
	return *secretFlag
}

// newClient builds the store client from the global flags.
func newClient() (*splitbook.Client, error) {
	base, section, key := storeURL(), *sectionFlag, secretKey()
	if base == "" || section == "" || key == "" {
		return nil, fmt.Errorf("-store-url, -section and -secret-key are all required")
	}
	return splitbook.NewClient(base, section, key), nil
}

// parties builds the configured party pair from the global flag.
func parties() (splitbook.Parties, error) {
	names := strings.Split(*partiesFlag, ",")
	if len(names) != 2 {
		return splitbook.Parties{}, fmt.Errorf("-parties must name exactly two parties, e.g. -parties alice,bob")
	}
	return splitbook.NewParties(strings.TrimSpace(names[0]), strings.TrimSpace(names[1]))
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
