package splitbook

// Projection holds the aggregates derived from one ledger snapshot: how much
// each party has paid out, and how much each party owes the other.
type Projection struct {
	// Expense sums the amounts of visible payments per payer.
	Expense map[string]Money
	// Debt sums each party's share of payments advanced by the other.
	Debt map[string]Money

	parties Parties
}

// NewProjection accumulates the visible payments of the snapshot, oldest to
// newest. A payee equal to the payer still counts toward the payer's expense
// but contributes no debt.
func NewProjection(l *Ledger, parties Parties) *Projection {
	p := &Projection{
		Expense: map[string]Money{parties.First(): M(0), parties.Second(): M(0)},
		Debt:    map[string]Money{parties.First(): M(0), parties.Second(): M(0)},
		parties: parties,
	}
	for r := range l.History(false) {
		pay, ok := r.Memo.(Payment)
		if !ok {
			continue
		}
		p.Expense[pay.Payer] = p.Expense[pay.Payer].Add(pay.Amount)
		share := pay.Share()
		for _, payee := range pay.Payees {
			if payee != pay.Payer {
				p.Debt[payee] = p.Debt[payee].Add(share)
			}
		}
	}
	return p
}

// NetDebt returns the signed difference of the two debt shares. Positive
// means the first configured party is the net creditor (the second owes);
// zero means the book is settled.
func (p *Projection) NetDebt() Money {
	return p.Debt[p.parties.Second()].Sub(p.Debt[p.parties.First()])
}

// Creditor names the party currently owed money and the amount, or ok=false
// when the book is settled.
func (p *Projection) Creditor() (party string, owed Money, ok bool) {
	net := p.NetDebt()
	switch {
	case net.IsZero():
		return "", net, false
	case net.IsPositive():
		return p.parties.First(), net, true
	default:
		return p.parties.Second(), net.Neg(), true
	}
}
