package history

import "github.com/feral-file/ff-catalog/internal/domain"

// DefaultInitialDisplayCount is the number of transfers shown before the caller asks for more
const DefaultInitialDisplayCount = 3

// History is the reconciled ownership history of one token, most recent transfer first
type History struct {
	TokenID string
	events  []domain.TransferEvent
	initial int
}

// NewHistory wraps already ordered events in a paging view
func NewHistory(tokenID string, events []domain.TransferEvent, initialDisplayCount int) *History {
	if initialDisplayCount <= 0 {
		initialDisplayCount = DefaultInitialDisplayCount
	}
	return &History{
		TokenID: tokenID,
		events:  events,
		initial: initialDisplayCount,
	}
}

// Events returns every transfer
func (h *History) Events() []domain.TransferEvent {
	return h.events
}

// Len returns the total number of transfers
func (h *History) Len() int {
	return len(h.events)
}

// Page returns the initially visible transfers, or all of them when showAll is set
func (h *History) Page(showAll bool) []domain.TransferEvent {
	if showAll || len(h.events) <= h.initial {
		return h.events
	}
	return h.events[:h.initial]
}

// HasMore reports whether Page(false) hides transfers
func (h *History) HasMore() bool {
	return len(h.events) > h.initial
}
