package events

import (
	"context"
	"sync"

	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const DefaultSubscriberBuffer = 16

// Hub fans mutation results out to live subscribers of an org, typically
// open board streams. A subscriber that falls behind loses events rather
// than stalling the mutation that produced them.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[chan entities.MutationResult]struct{}
	buffer int
}

var _ interfaces.INotifier = (*Hub)(nil)

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Hub{subs: make(map[string]map[chan entities.MutationResult]struct{}), buffer: buffer}
}

// Subscribe registers a listener for orgID. The returned func unsubscribes
// and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe(orgID string) (<-chan entities.MutationResult, func()) {
	ch := make(chan entities.MutationResult, h.buffer)

	h.mu.Lock()
	if h.subs[orgID] == nil {
		h.subs[orgID] = make(map[chan entities.MutationResult]struct{})
	}
	h.subs[orgID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[orgID], ch)
			if len(h.subs[orgID]) == 0 {
				delete(h.subs, orgID)
			}
			close(ch)
		})
	}
}

// Subscribers returns the number of listeners for orgID.
func (h *Hub) Subscribers(orgID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[orgID])
}

func (h *Hub) Notify(_ context.Context, r entities.MutationResult) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[r.OrgID] {
		select {
		case ch <- r:
		default:
			log.WithFields(log.Fields{"org_id": r.OrgID, "result_id": r.ID}).Warn("[events][hub] subscriber full, event dropped")
		}
	}
}
