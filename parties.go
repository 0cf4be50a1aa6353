package splitbook

import "fmt"

// Parties is the ordered pair of the two account names sharing the book.
// The order matters only for the sign of the net debt: a positive net debt
// means the first party is the creditor.
type Parties struct {
	first, second string
}

// NewParties creates the pair. Both names must be non-empty and distinct.
func NewParties(first, second string) (Parties, error) {
	if first == "" || second == "" {
		return Parties{}, fmt.Errorf("%w: both party names are required", ErrValidation)
	}
	if first == second {
		return Parties{}, fmt.Errorf("%w: party names must differ, got %q twice", ErrValidation, first)
	}
	return Parties{first: first, second: second}, nil
}

// First returns the first party name.
func (p Parties) First() string { return p.first }

// Second returns the second party name.
func (p Parties) Second() string { return p.second }

// Contains reports whether name is one of the two parties.
func (p Parties) Contains(name string) bool { return name == p.first || name == p.second }

// Other returns the counterpart of name, or "" if name is not a party.
func (p Parties) Other(name string) string {
	switch name {
	case p.first:
		return p.second
	case p.second:
		return p.first
	}
	return ""
}
