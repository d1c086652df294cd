package push

import (
	"sort"
	"sync"
	"time"
)

type pendingReceipt struct {
	token  string
	sentAt time.Time
}

// ReceiptTracker remembers which token every accepted ticket was sent to until
// its receipt has been read.
type ReceiptTracker struct {
	mu      sync.Mutex
	pending map[string]pendingReceipt
}

func NewReceiptTracker() *ReceiptTracker {
	return &ReceiptTracker{pending: make(map[string]pendingReceipt)}
}

func (t *ReceiptTracker) Track(ticketID, token string, sentAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[ticketID] = pendingReceipt{token: token, sentAt: sentAt}
}

// Oldest returns up to limit ticket ids, oldest first.
func (t *ReceiptTracker) Oldest(limit int) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]string, 0, len(t.pending))
	for id := range t.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return t.pending[ids[i]].sentAt.Before(t.pending[ids[j]].sentAt)
	})
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

// Resolve forgets ticketID and returns the token it was sent to.
func (t *ReceiptTracker) Resolve(ticketID string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.pending[ticketID]
	if ok {
		delete(t.pending, ticketID)
	}
	return p.token, ok
}

// Expire forgets tickets sent before cutoff and returns how many were dropped.
func (t *ReceiptTracker) Expire(cutoff time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	dropped := 0
	for id, p := range t.pending {
		if p.sentAt.Before(cutoff) {
			delete(t.pending, id)
			dropped++
		}
	}
	return dropped
}

func (t *ReceiptTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
