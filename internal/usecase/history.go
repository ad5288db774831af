package usecase

import "strings"

// DefaultHistoryMax is also the upper bound of any history.
const DefaultHistoryMax = 10

// History is a bounded list of distinct query strings, oldest first.
type History struct {
	max   int
	items []string
}

func NewHistory(max int) *History {
	if max <= 0 || max > DefaultHistoryMax {
		max = DefaultHistoryMax
	}
	return &History{max: max}
}

// Add appends the trimmed query unless it is blank or already present.
// When the list is full the oldest entry is evicted. It reports whether
// the query was added.
func (h *History) Add(query string) bool {
	q := strings.TrimSpace(query)
	if q == "" || h.Contains(q) {
		return false
	}

	h.items = append(h.items, q)
	if len(h.items) > h.max {
		h.items = h.items[len(h.items)-h.max:]
	}
	return true
}

func (h *History) Contains(query string) bool {
	for _, item := range h.items {
		if item == query {
			return true
		}
	}
	return false
}

func (h *History) Items() []string {
	out := make([]string, len(h.items))
	copy(out, h.items)
	return out
}

func (h *History) Len() int { return len(h.items) }

func (h *History) Max() int { return h.max }
