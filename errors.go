package splitbook

import "errors"

// Sentinel errors for the three failure families. Callers discriminate with
// errors.Is; the wrapped message carries the detail.
var (
	// ErrValidation reports a memo constructed with fields missing or
	// invalid for its declared kind.
	ErrValidation = errors.New("invalid memo")

	// ErrSchema reports a fetched record that does not match the wire
	// schema: unknown memo_type, or a required field absent for the kind.
	ErrSchema = errors.New("malformed record")

	// ErrTransport reports a network failure or a non-success response
	// from the remote store.
	ErrTransport = errors.New("store unreachable")
)
