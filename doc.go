// Package splitbook tracks shared expenses between exactly two parties
// through an append-only remote journal. Each record, called a memo, is
// either a payment, a free-text note, or a cancellation of an earlier memo.
// The package reconstructs the full journal from the remote store, derives
// per-party expense totals and the outstanding net debt, and appends new
// memos.
//
// The remote store is the single source of truth: a snapshot is fetched
// wholesale, never mutated in place, and rebuilt after every successful
// append.
package splitbook
