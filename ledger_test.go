package splitbook

import (
	"slices"
	"testing"
	"time"
)

// records builds a snapshot input from memos, with distinct fake timestamps.
func records(t *testing.T, memos ...Memo) []Record {
	t.Helper()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rs := make([]Record, 0, len(memos))
	for i, m := range memos {
		rs = append(rs, Record{Memo: m, Stamp: base.Add(time.Duration(i) * time.Minute)})
	}
	return rs
}

func visibleIDs(l *Ledger, reverse bool) []int64 {
	var ids []int64
	for r := range l.History(reverse) {
		ids = append(ids, r.Memo.ID())
	}
	return ids
}

func TestLedger_NextID(t *testing.T) {
	if got := NewLedger(nil).NextID(); got != 0 {
		t.Errorf("empty ledger NextID = %d, want 0", got)
	}

	l := NewLedger(records(t,
		mustNote(t, 0, "first"),
		mustPayment(t, 1, "alice", []string{"bob"}, M(10), ""),
		mustNote(t, 2, "last"),
	))
	if got := l.NextID(); got != 3 {
		t.Errorf("NextID = %d, want 3", got)
	}
}

func TestLedger_CancelNeverVisible(t *testing.T) {
	l := NewLedger(records(t,
		mustPayment(t, 0, "alice", []string{"bob"}, M(10), ""),
		mustCancel(t, 1, 0, ""),
		mustNote(t, 2, "still here"),
	))

	want := []int64{2}
	if got := visibleIDs(l, false); !slices.Equal(got, want) {
		t.Errorf("visible ids = %v, want %v", got, want)
	}
}

func TestLedger_CancelIsPositionIndependent(t *testing.T) {
	// A cancel sitting before other entries still tombstones its target.
	l := NewLedger(records(t,
		mustCancel(t, 0, 2, ""),
		mustNote(t, 1, "kept"),
		mustPayment(t, 2, "alice", []string{"bob"}, M(10), ""),
	))

	want := []int64{1}
	if got := visibleIDs(l, false); !slices.Equal(got, want) {
		t.Errorf("visible ids = %v, want %v", got, want)
	}
	if !l.IsCanceled(2) {
		t.Error("id 2 should be tombstoned")
	}
}

func TestLedger_CancelIsIdempotent(t *testing.T) {
	once := NewLedger(records(t,
		mustPayment(t, 0, "alice", []string{"bob"}, M(10), ""),
		mustNote(t, 1, "kept"),
		mustCancel(t, 2, 0, ""),
	))
	twice := NewLedger(records(t,
		mustPayment(t, 0, "alice", []string{"bob"}, M(10), ""),
		mustNote(t, 1, "kept"),
		mustCancel(t, 2, 0, ""),
		mustCancel(t, 3, 0, "again"),
	))

	if a, b := visibleIDs(once, false), visibleIDs(twice, false); !slices.Equal(a, b) {
		t.Errorf("idempotency broken: once=%v twice=%v", a, b)
	}
}

func TestLedger_HistoryOrder(t *testing.T) {
	l := NewLedger(records(t,
		mustNote(t, 0, "a"),
		mustNote(t, 1, "b"),
		mustNote(t, 2, "c"),
	))

	if got, want := visibleIDs(l, false), []int64{0, 1, 2}; !slices.Equal(got, want) {
		t.Errorf("chronological ids = %v, want %v", got, want)
	}
	if got, want := visibleIDs(l, true), []int64{2, 1, 0}; !slices.Equal(got, want) {
		t.Errorf("reverse ids = %v, want %v", got, want)
	}

	// The sequence must be restartable.
	seq := l.History(false)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if len(first) != len(second) {
		t.Errorf("history is not restartable: %d then %d records", len(first), len(second))
	}
}

func TestLedger_ToleratesIDGaps(t *testing.T) {
	// Aggregation relies on uniqueness and order only, never contiguity.
	l := NewLedger(records(t,
		mustNote(t, 0, "a"),
		mustNote(t, 5, "b"),
		mustCancel(t, 9, 5, ""),
	))

	if got, want := visibleIDs(l, false), []int64{0}; !slices.Equal(got, want) {
		t.Errorf("visible ids = %v, want %v", got, want)
	}
	if got := l.NextID(); got != 10 {
		t.Errorf("NextID = %d, want 10", got)
	}
}

func TestLedger_Find(t *testing.T) {
	l := NewLedger(records(t,
		mustPayment(t, 0, "alice", []string{"bob"}, M(10), ""),
		mustCancel(t, 1, 0, ""),
		mustNote(t, 2, "kept"),
	))

	if _, ok := l.Find(0); ok {
		t.Error("cancelled memo should not be findable")
	}
	if r, ok := l.Find(2); !ok || r.Memo.ID() != 2 {
		t.Errorf("Find(2) = %v, %v", r, ok)
	}
}
