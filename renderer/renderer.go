// Package renderer turns ledger snapshots and projections into markdown
// reports for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/splitbook"
)

// Memo renders a one-line description of a memo.
func Memo(m splitbook.Memo, currency string) string {
	switch v := m.(type) {
	case splitbook.Payment:
		detail := fmt.Sprintf("%s → %s: %s", v.Payer, strings.Join(v.Payees, ","), v.Amount.Format(currency))
		if len(v.Payees) > 1 {
			detail += fmt.Sprintf(" (%s each)", v.Share().Format(currency))
		}
		return detail
	case splitbook.Cancel:
		return fmt.Sprintf("retracts #%d", v.Target)
	case splitbook.Note:
		return v.Rationale()
	default:
		return string(m.What())
	}
}

// History renders the visible records as a markdown table.
func History(records []splitbook.Record, currency string) string {
	if len(records) == 0 {
		return "No history yet.\n"
	}

	var b strings.Builder
	b.WriteString("# History\n\n")
	b.WriteString("| ID | When | Kind | Detail | Note |\n")
	b.WriteString("|---:|------|------|--------|------|\n")
	for _, r := range records {
		note := ""
		if _, isNote := r.Memo.(splitbook.Note); !isNote {
			note = r.Memo.Rationale()
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			r.Memo.ID(),
			r.Stamp.Format("2006-01-02 15:04"),
			r.Memo.What(),
			Memo(r.Memo, currency),
			note)
	}
	return b.String()
}

// Summary renders per-party expense totals and the settlement line.
func Summary(p *splitbook.Projection, parties splitbook.Parties, currency string) string {
	var b strings.Builder
	b.WriteString("# Summary\n\n")
	b.WriteString("| Party | Paid |\n")
	b.WriteString("|-------|-----:|\n")
	for _, party := range []string{parties.First(), parties.Second()} {
		fmt.Fprintf(&b, "| %s | %s |\n", party, p.Expense[party].Format(currency))
	}
	b.WriteString("\n")

	if creditor, owed, ok := p.Creditor(); ok {
		fmt.Fprintf(&b, "**%s is owed %s by %s.**\n", creditor, owed.Format(currency), parties.Other(creditor))
	} else {
		b.WriteString("**The book is settled.**\n")
	}
	return b.String()
}
