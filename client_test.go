package splitbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

// fakeStore is an in-memory journal store honoring the GET ?tail=n and POST
// surfaces of the real one.
type fakeStore struct {
	records []wireRecord
	gets    int
	fail    bool // respond 500 to everything when set
}

func (s *fakeStore) append(data json.RawMessage) {
	stamp := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(len(s.records)) * time.Second)
	s.records = append(s.records, wireRecord{Data: data, Timestamp: stamp})
}

func (s *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.fail {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	switch r.Method {
	case http.MethodGet:
		s.gets++
		tail := len(s.records)
		if n, err := strconv.Atoi(r.URL.Query().Get("tail")); err == nil && n < tail {
			tail = n
		}
		json.NewEncoder(w).Encode(s.records[len(s.records)-tail:])
	case http.MethodPost:
		var data json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.append(data)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func newFakeStore(t *testing.T) (*fakeStore, *Client) {
	t.Helper()
	store := &fakeStore{}
	srv := httptest.NewServer(store)
	t.Cleanup(srv.Close)
	return store, NewClient(srv.URL, "trip", "secret")
}

func (s *fakeStore) seed(t *testing.T, memos ...Memo) {
	t.Helper()
	for _, m := range memos {
		data, err := EncodeMemo(m)
		if err != nil {
			t.Fatal(err)
		}
		s.append(data)
	}
}

func TestClient_FetchWindowEscalation(t *testing.T) {
	store, client := newFakeStore(t)
	for i := range 50_000 {
		store.seed(t, mustNote(t, int64(i), fmt.Sprintf("note %d", i)))
	}

	ledger, err := client.Fetch()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 50_000 {
		t.Errorf("snapshot holds %d records, want 50000", ledger.Len())
	}
	if got := ledger.NextID(); got != 50_000 {
		t.Errorf("NextID = %d, want 50000", got)
	}
	// 1000 and 10000 are truncated tails, 100000 captures the log start.
	if store.gets != 3 {
		t.Errorf("store served %d GETs, want 3 escalating windows", store.gets)
	}
}

func TestClient_FetchEmptyJournal(t *testing.T) {
	store, client := newFakeStore(t)

	ledger, err := client.Fetch()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 0 {
		t.Errorf("empty journal yields %d records", ledger.Len())
	}
	if store.gets != 1 {
		t.Errorf("store served %d GETs, want 1: escalating on an empty log is pointless", store.gets)
	}
	if got := client.NextID(); got != 0 {
		t.Errorf("NextID = %d, want 0", got)
	}
}

func TestClient_FetchSkipsMalformedRecords(t *testing.T) {
	store, client := newFakeStore(t)
	store.seed(t, mustNote(t, 0, "good"))
	store.append(json.RawMessage(`{"memo_id":1,"memo_type":"Transfer","from_account":null,"to_account":null,"amount":null,"cancel_id":null,"note":null}`))
	store.seed(t, mustNote(t, 2, "also good"))

	ledger, err := client.Fetch()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 2 {
		t.Errorf("snapshot holds %d records, want 2 with the malformed one skipped", ledger.Len())
	}
}

func TestClient_FailedFetchKeepsSnapshot(t *testing.T) {
	store, client := newFakeStore(t)
	store.seed(t, mustNote(t, 0, "kept"))

	if _, err := client.Fetch(); err != nil {
		t.Fatal(err)
	}

	store.fail = true
	if _, err := client.Fetch(); !errors.Is(err, ErrTransport) {
		t.Fatalf("want ErrTransport, got %v", err)
	}
	if client.Ledger().Len() != 1 {
		t.Errorf("failed fetch disturbed the snapshot: %d records", client.Ledger().Len())
	}
}

func TestClient_PostDoesNotTouchLocalState(t *testing.T) {
	store, client := newFakeStore(t)
	store.seed(t, mustNote(t, 0, "first"))
	if _, err := client.Fetch(); err != nil {
		t.Fatal(err)
	}

	if err := client.Post(mustNote(t, client.NextID(), "second")); err != nil {
		t.Fatal(err)
	}
	if client.Ledger().Len() != 1 {
		t.Error("Post mutated the local snapshot; only Fetch may")
	}

	ledger, err := client.Fetch()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 2 {
		t.Errorf("after refetch snapshot holds %d records, want 2", ledger.Len())
	}
}

func TestClient_PostTransportError(t *testing.T) {
	store, client := newFakeStore(t)
	store.fail = true
	if err := client.Post(mustNote(t, 0, "lost")); !errors.Is(err, ErrTransport) {
		t.Errorf("want ErrTransport, got %v", err)
	}
}

func TestClient_EndToEnd(t *testing.T) {
	_, client := newFakeStore(t)
	ps := mustParties(t, "alice", "bob")

	// alice pays 100 for bob.
	if _, err := client.Fetch(); err != nil {
		t.Fatal(err)
	}
	payment := mustPayment(t, client.NextID(), "alice", []string{"bob"}, M(100), "")
	if err := client.Post(payment); err != nil {
		t.Fatal(err)
	}
	if _, err := client.Fetch(); err != nil {
		t.Fatal(err)
	}

	// then a note.
	if err := client.Post(mustNote(t, client.NextID(), "lunch")); err != nil {
		t.Fatal(err)
	}
	ledger, err := client.Fetch()
	if err != nil {
		t.Fatal(err)
	}

	var kinds []MemoType
	for r := range ledger.History(true) {
		kinds = append(kinds, r.Memo.What())
	}
	if len(kinds) != 2 || kinds[0] != KindNote || kinds[1] != KindPayment {
		t.Errorf("reverse history kinds = %v, want [Note Payment]", kinds)
	}

	proj := NewProjection(ledger, ps)
	creditor, owed, ok := proj.Creditor()
	if !ok || creditor != "alice" || !owed.Equal(M(100)) {
		t.Errorf("Creditor() = %q, %s, %v; want alice owed 100", creditor, owed, ok)
	}

	// cancelling the payment settles the book and hides it from history.
	if err := client.Post(mustCancel(t, ledger.NextID(), payment.ID(), "")); err != nil {
		t.Fatal(err)
	}
	ledger, err = client.Fetch()
	if err != nil {
		t.Fatal(err)
	}
	if !NewProjection(ledger, ps).NetDebt().IsZero() {
		t.Error("net debt should return to zero after cancelling the payment")
	}
	if _, ok := ledger.Find(payment.ID()); ok {
		t.Error("cancelled payment still listed in history")
	}
}
