package splitbook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// wireMemo mirrors the flat wire schema shared by all memo kinds. Every
// field name is present in every record; absent values are nulls.
type wireMemo struct {
	ID     *int64           `json:"memo_id"`
	Type   MemoType         `json:"memo_type"`
	From   *string          `json:"from_account"`
	To     *string          `json:"to_account"`
	Amount *decimal.Decimal `json:"amount"`
	Cancel *int64           `json:"cancel_id"`
	Note   *string          `json:"note"`
}

func (w wireMemo) note() string {
	if w.Note == nil {
		return ""
	}
	return *w.Note
}

// EncodeMemo serializes a memo to its wire form.
func EncodeMemo(m Memo) ([]byte, error) {
	return json.Marshal(m)
}

// DecodeMemo parses one wire record back into its typed memo. A record whose
// memo_type is unknown, or whose kind-required fields are null, fails with
// ErrSchema; it is never coerced into another kind.
func DecodeMemo(data []byte) (Memo, error) {
	var w wireMemo
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if w.ID == nil {
		return nil, fmt.Errorf("%w: missing memo_id", ErrSchema)
	}

	switch w.Type {
	case KindPayment:
		if w.From == nil || w.To == nil || w.Amount == nil {
			return nil, fmt.Errorf("%w: payment %d missing from_account, to_account or amount", ErrSchema, *w.ID)
		}
		m, err := NewPayment(*w.ID, *w.From, splitPayees(*w.To), M(*w.Amount), w.note())
		if err != nil {
			return nil, fmt.Errorf("%w: payment %d: %v", ErrSchema, *w.ID, err)
		}
		return m, nil

	case KindCancel:
		if w.Cancel == nil {
			return nil, fmt.Errorf("%w: cancel %d missing cancel_id", ErrSchema, *w.ID)
		}
		m, err := NewCancel(*w.ID, *w.Cancel, w.note())
		if err != nil {
			return nil, fmt.Errorf("%w: cancel %d: %v", ErrSchema, *w.ID, err)
		}
		return m, nil

	case KindNote:
		if w.Note == nil {
			return nil, fmt.Errorf("%w: note %d missing note text", ErrSchema, *w.ID)
		}
		m, err := NewNote(*w.ID, *w.Note)
		if err != nil {
			return nil, fmt.Errorf("%w: note %d: %v", ErrSchema, *w.ID, err)
		}
		return m, nil
	}

	return nil, fmt.Errorf("%w: unknown memo_type %q", ErrSchema, w.Type)
}

// splitPayees parses the comma-joined to_account wire field.
func splitPayees(joined string) []string {
	parts := strings.Split(joined, ",")
	payees := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			payees = append(payees, p)
		}
	}
	return payees
}
