package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/splitbook"
)

func payment(t *testing.T, id int64, payer string, payees []string, amount float64, note string) splitbook.Payment {
	t.Helper()
	m, err := splitbook.NewPayment(id, payer, payees, splitbook.M(amount), note)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMemo(t *testing.T) {
	cancel, err := splitbook.NewCancel(3, 1, "")
	if err != nil {
		t.Fatal(err)
	}
	note, err := splitbook.NewNote(4, "rent settled in cash")
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		memo splitbook.Memo
		want string
	}{
		{payment(t, 0, "alice", []string{"bob"}, 100, ""), "alice → bob: 100.00 元"},
		{payment(t, 1, "alice", []string{"alice", "bob"}, 100, ""), "alice → alice,bob: 100.00 元 (50.00 元 each)"},
		{cancel, "retracts #1"},
		{note, "rent settled in cash"},
	}
	for _, tc := range testCases {
		if got := Memo(tc.memo, "CNY"); got != tc.want {
			t.Errorf("Memo(%v) = %q, want %q", tc.memo, got, tc.want)
		}
	}
}

func TestHistory(t *testing.T) {
	if got := History(nil, "CNY"); !strings.Contains(got, "No history") {
		t.Errorf("empty history = %q", got)
	}

	records := []splitbook.Record{
		{Memo: payment(t, 0, "alice", []string{"bob"}, 100, "groceries"), Stamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
	}
	got := History(records, "CNY")
	for _, want := range []string{"| ID |", "2026-08-01 12:00", "alice → bob", "groceries"} {
		if !strings.Contains(got, want) {
			t.Errorf("history output misses %q:\n%s", want, got)
		}
	}
}

func TestSummary(t *testing.T) {
	ps, err := splitbook.NewParties("alice", "bob")
	if err != nil {
		t.Fatal(err)
	}

	settled := splitbook.NewProjection(splitbook.NewLedger(nil), ps)
	if got := Summary(settled, ps, "CNY"); !strings.Contains(got, "settled") {
		t.Errorf("settled summary = %q", got)
	}

	ledger := splitbook.NewLedger([]splitbook.Record{
		{Memo: payment(t, 0, "alice", []string{"bob"}, 100, "")},
	})
	got := Summary(splitbook.NewProjection(ledger, ps), ps, "CNY")
	for _, want := range []string{"| alice | 100.00 元 |", "| bob | 0.00 元 |", "**alice is owed 100.00 元 by bob.**"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary output misses %q:\n%s", want, got)
		}
	}
}
