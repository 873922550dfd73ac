package application

import "sync"

const responseHistoryCapacity = 5

// ResponseHistory keeps the most recent answers, evicting the oldest first.
type ResponseHistory struct {
	mu    sync.RWMutex
	items []string
	head  int
	full  bool
}

func NewResponseHistory(capacity int) *ResponseHistory {
	if capacity <= 0 {
		capacity = responseHistoryCapacity
	}

	return &ResponseHistory{items: make([]string, capacity)}
}

func (h *ResponseHistory) Push(response string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items[h.head] = response
	h.head = (h.head + 1) % len(h.items)
	if h.head == 0 {
		h.full = true
	}
}

// Items returns a copy, oldest first.
func (h *ResponseHistory) Items() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.full {
		out := make([]string, h.head)
		copy(out, h.items[:h.head])
		return out
	}

	out := make([]string, 0, len(h.items))
	out = append(out, h.items[h.head:]...)
	out = append(out, h.items[:h.head]...)
	return out
}

func (h *ResponseHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.full {
		return len(h.items)
	}
	return h.head
}

// Last returns the newest answer, or false when nothing was pushed yet.
func (h *ResponseHistory) Last() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.full && h.head == 0 {
		return "", false
	}
	idx := (h.head - 1 + len(h.items)) % len(h.items)
	return h.items[idx], true
}

func (h *ResponseHistory) Capacity() int {
	return len(h.items)
}
