package splitbook

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// tailWindows are the successively larger most-recent-N slices requested
// from the store until the true start of the journal is captured. Beyond the
// last window the client settles for a best-effort partial view.
var tailWindows = []int{1_000, 10_000, 100_000, 1_000_000}

// Client owns the network boundary to the remote journal store and the most
// recent snapshot. It holds no other cache: every Fetch rebuilds the
// snapshot wholesale, and a failed call leaves the previous one untouched.
//
// Operations are plain blocking round trips; a Client is not meant to be
// shared across goroutines.
type Client struct {
	url    string
	http   *http.Client
	ledger *Ledger
}

// NewClient creates a client for the journal at {base}/{section}/{secretKey}.
// The secret key is the only access control the store offers; it is opaque
// to this package.
func NewClient(base, section, secretKey string) *Client {
	return &Client{
		url:  fmt.Sprintf("%s/%s/%s", base, section, secretKey),
		http: new(http.Client),
	}
}

// wireRecord is one element of the store's GET response: the memo's flat
// field map plus the timestamp the store assigned at append time.
type wireRecord struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Fetch retrieves the journal and replaces the held snapshot. The store may
// truncate its response to a tail of the log, so the request escalates
// through growing tail windows until the returned window starts at id 0,
// comes back empty, or the largest window is exhausted. Each attempt wholly
// replaces the previous one; only the final accepted window is kept.
//
// Records that do not match the wire schema are skipped with a warning; the
// rest of the window stays usable.
func (c *Client) Fetch() (*Ledger, error) {
	var records []Record
	for _, n := range tailWindows {
		wires := make([]wireRecord, 0)
		if err := jwget(c.http, fmt.Sprintf("%s?tail=%d", c.url, n), &wires); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}

		records = make([]Record, 0, len(wires))
		for _, wr := range wires {
			memo, err := DecodeMemo(wr.Data)
			if err != nil {
				log.Printf("skipping record: %v", err)
				continue
			}
			records = append(records, Record{Memo: memo, Stamp: wr.Timestamp.UTC()})
		}

		if len(records) == 0 || records[0].Memo.ID() == 0 {
			break
		}
	}

	c.ledger = NewLedger(records)
	return c.ledger, nil
}

// Post submits a single memo to the store, which accepts or rejects it
// atomically and assigns the timestamp. Local state is not updated: callers
// must Fetch again before reading any aggregate. Post is never retried
// automatically, since a retry of an accepted append would duplicate it.
func (c *Client) Post(m Memo) error {
	if err := jwpost(c.http, c.url, m); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return nil
}

// Ledger returns the snapshot from the most recent successful Fetch, or an
// empty snapshot if none happened yet.
func (c *Client) Ledger() *Ledger {
	if c.ledger == nil {
		return NewLedger(nil)
	}
	return c.ledger
}

// NextID returns the advisory id for the next memo, computed from the most
// recent snapshot. See Ledger.NextID for the race this implies.
func (c *Client) NextID() int64 { return c.Ledger().NextID() }
