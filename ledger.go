package splitbook

import (
	"iter"
	"time"
)

// Record pairs a memo with the timestamp the store assigned at append time.
type Record struct {
	Memo  Memo
	Stamp time.Time
}

// Ledger is one snapshot of the journal, immutable once built. Entries keep
// the store's append order; the tombstone set is rebuilt from scratch by
// scanning every Cancel memo in the snapshot, so a cancel tombstones its
// target wherever it sits in the log.
//
// A Ledger is replaced wholesale on every fetch, never mutated, which keeps
// running iterators valid when a new snapshot arrives mid-render.
type Ledger struct {
	records    []Record
	tombstones map[int64]struct{}
}

// NewLedger builds a snapshot from records in store append order.
func NewLedger(records []Record) *Ledger {
	l := &Ledger{
		records:    records,
		tombstones: make(map[int64]struct{}),
	}
	for _, r := range records {
		if c, ok := r.Memo.(Cancel); ok {
			l.tombstones[c.Target] = struct{}{}
		}
	}
	return l
}

// Len returns the total number of records in the snapshot, visible or not.
func (l *Ledger) Len() int { return len(l.records) }

// IsCanceled reports whether id has been tombstoned by any Cancel memo.
func (l *Ledger) IsCanceled(id int64) bool {
	_, ok := l.tombstones[id]
	return ok
}

// NextID returns the id for the next memo to append: 0 on an empty journal,
// otherwise the last record's id plus one. The value is advisory only; the
// store's accepted append order is the final authority, and the hint is
// discarded on the next fetch.
func (l *Ledger) NextID() int64 {
	if len(l.records) == 0 {
		return 0
	}
	return l.records[len(l.records)-1].Memo.ID() + 1
}

// visible reports whether a memo should appear in history and aggregation:
// cancels never do, and neither does anything they tombstoned.
func (l *Ledger) visible(m Memo) bool {
	if m.What() == KindCancel {
		return false
	}
	return !l.IsCanceled(m.ID())
}

// History returns the visible records, oldest first, or newest first when
// reverse is set. The sequence is finite and restartable.
func (l *Ledger) History(reverse bool) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if reverse {
			for i := len(l.records) - 1; i >= 0; i-- {
				if l.visible(l.records[i].Memo) && !yield(l.records[i]) {
					return
				}
			}
			return
		}
		for _, r := range l.records {
			if l.visible(r.Memo) && !yield(r) {
				return
			}
		}
	}
}

// Find returns the visible record with the given id, or false.
func (l *Ledger) Find(id int64) (Record, bool) {
	for r := range l.History(false) {
		if r.Memo.ID() == id {
			return r, true
		}
	}
	return Record{}, false
}
