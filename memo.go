package splitbook

import (
	"fmt"
	"slices"
	"strings"
)

// MemoType is a typed string identifying the kind of a memo.
type MemoType string

// Memo kinds appended to the journal.
const (
	KindPayment MemoType = "Payment"
	KindCancel  MemoType = "Cancel"
	KindNote    MemoType = "Note"
)

// Memo is the common interface for all records appended to the journal.
// A memo is immutable once posted; retraction happens by appending a Cancel
// memo that targets its id, never by editing.
type Memo interface {
	What() MemoType    // What returns the kind of the memo.
	ID() int64         // ID returns the journal-wide sequence number.
	Rationale() string // Rationale returns the optional free-text note.
	Equal(Memo) bool
}

// baseMemo carries the fields shared by every memo kind.
type baseMemo struct {
	Seq  int64    // Seq is the client-assigned, strictly increasing id.
	Kind MemoType // Kind discriminates the memo payload.
	Note string   // Note is free text; primary for Note memos, optional otherwise.
}

// What returns the kind of the memo.
func (m baseMemo) What() MemoType { return m.Kind }

// ID returns the journal-wide sequence number of the memo.
func (m baseMemo) ID() int64 { return m.Seq }

// Rationale returns the free-text note attached to the memo.
func (m baseMemo) Rationale() string { return m.Note }

func (m baseMemo) validate() error {
	if m.Seq < 0 {
		return fmt.Errorf("%w: id must be non-negative, got %d", ErrValidation, m.Seq)
	}
	return nil
}

// Payment records one party paying an amount on behalf of one or both
// parties. The amount is split evenly across the payees.
type Payment struct {
	baseMemo
	Payer  string   // Payer is the account that advanced the money.
	Payees []string // Payees share the amount evenly, in wire order.
	Amount Money    // Amount is the total paid, never negative.
}

// NewPayment creates a validated Payment memo. The note is optional.
func NewPayment(id int64, payer string, payees []string, amount Money, note string) (Payment, error) {
	p := Payment{
		baseMemo: baseMemo{Seq: id, Kind: KindPayment, Note: note},
		Payer:    payer,
		Payees:   payees,
		Amount:   amount,
	}
	if err := p.validate(); err != nil {
		return Payment{}, err
	}
	return p, nil
}

func (m Payment) validate() error {
	if err := m.baseMemo.validate(); err != nil {
		return err
	}
	if m.Payer == "" {
		return fmt.Errorf("%w: payment requires a payer", ErrValidation)
	}
	if len(m.Payees) == 0 {
		return fmt.Errorf("%w: payment requires at least one payee", ErrValidation)
	}
	for _, p := range m.Payees {
		if p == "" {
			return fmt.Errorf("%w: payment payee name cannot be empty", ErrValidation)
		}
	}
	if m.Amount.IsNegative() {
		return fmt.Errorf("%w: payment amount must be non-negative, got %s", ErrValidation, m.Amount)
	}
	return nil
}

// Share returns the even part of the amount each payee owes.
func (m Payment) Share() Money { return m.Amount.SplitN(len(m.Payees)) }

func (m Payment) Equal(other Memo) bool {
	o, ok := other.(Payment)
	return ok && m.baseMemo == o.baseMemo && m.Payer == o.Payer &&
		slices.Equal(m.Payees, o.Payees) && m.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Payment.
func (m Payment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("memo_id", m.Seq)
	w.Append("memo_type", m.Kind)
	w.Append("from_account", m.Payer)
	w.Append("to_account", strings.Join(m.Payees, ","))
	w.Append("amount", m.Amount.Decimal())
	w.Append("cancel_id", nil)
	w.Append("note", nullable(m.Note))
	return w.MarshalJSON()
}

// Cancel retracts a previously appended memo by id. The target does not have
// to exist yet at construction time; referential integrity is resolved when
// the tombstone set is rebuilt from a fetched snapshot.
type Cancel struct {
	baseMemo
	Target int64 // Target is the id of the memo being retracted.
}

// NewCancel creates a validated Cancel memo. The note is optional.
func NewCancel(id, target int64, note string) (Cancel, error) {
	c := Cancel{
		baseMemo: baseMemo{Seq: id, Kind: KindCancel, Note: note},
		Target:   target,
	}
	if err := c.validate(); err != nil {
		return Cancel{}, err
	}
	return c, nil
}

func (m Cancel) validate() error {
	if err := m.baseMemo.validate(); err != nil {
		return err
	}
	if m.Target < 0 {
		return fmt.Errorf("%w: cancel requires a non-negative target id, got %d", ErrValidation, m.Target)
	}
	return nil
}

func (m Cancel) Equal(other Memo) bool {
	o, ok := other.(Cancel)
	return ok && m.baseMemo == o.baseMemo && m.Target == o.Target
}

// MarshalJSON implements the json.Marshaler interface for Cancel.
func (m Cancel) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("memo_id", m.Seq)
	w.Append("memo_type", m.Kind)
	w.Append("from_account", nil)
	w.Append("to_account", nil)
	w.Append("amount", nil)
	w.Append("cancel_id", m.Target)
	w.Append("note", nullable(m.Note))
	return w.MarshalJSON()
}

// Note records free text with no monetary effect.
type Note struct {
	baseMemo
}

// NewNote creates a validated Note memo. The text is required.
func NewNote(id int64, text string) (Note, error) {
	n := Note{baseMemo: baseMemo{Seq: id, Kind: KindNote, Note: text}}
	if err := n.validate(); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (m Note) validate() error {
	if err := m.baseMemo.validate(); err != nil {
		return err
	}
	if m.Note == "" {
		return fmt.Errorf("%w: note requires text", ErrValidation)
	}
	return nil
}

func (m Note) Equal(other Memo) bool {
	o, ok := other.(Note)
	return ok && m.baseMemo == o.baseMemo
}

// MarshalJSON implements the json.Marshaler interface for Note.
func (m Note) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("memo_id", m.Seq)
	w.Append("memo_type", m.Kind)
	w.Append("from_account", nil)
	w.Append("to_account", nil)
	w.Append("amount", nil)
	w.Append("cancel_id", nil)
	w.Append("note", m.Note)
	return w.MarshalJSON()
}

// nullable turns the empty string into an explicit JSON null.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
