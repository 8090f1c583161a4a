package session

import (
	"sync"

	"github.com/MKhiriev/go-blog/models"
)

// Subscribe returns a channel that receives the session after every change,
// and a function that stops the subscription and closes the channel.
//
// The channel holds one value. A subscriber that falls behind only sees the
// latest session; writers never block on it.
func (h *Holder) Subscribe() (<-chan models.Session, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan models.Session, 1)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextSubID
	h.nextSubID++
	h.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			if sub, ok := h.subscribers[id]; ok {
				delete(h.subscribers, id)
				close(sub)
			}
		})
	}

	return ch, cancel
}

// Close ends every subscription. Later state changes are still applied but
// no longer delivered.
func (h *Holder) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
}

func (h *Holder) publishLocked() {
	snapshot := models.Session{Authenticated: h.state.Authenticated, User: cloneUser(h.state.User)}

	for _, ch := range h.subscribers {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}
