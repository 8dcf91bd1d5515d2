package rollout

import "sync"

// Append-only log of the value grids of every search decision.
// Cleared only by an explicit Clear call.
type History struct {
	mu    sync.Mutex
	grids []ValueGrid
}

func (h *History) Append(grid ValueGrid) {
	h.mu.Lock()
	h.grids = append(h.grids, grid)
	h.mu.Unlock()
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.grids)
}

// Copy of all the grids, oldest first
func (h *History) Grids() []ValueGrid {
	h.mu.Lock()
	defer h.mu.Unlock()
	grids := make([]ValueGrid, len(h.grids))
	copy(grids, h.grids)
	return grids
}

// The most recent grid, false if the log is empty
func (h *History) Last() (ValueGrid, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.grids) == 0 {
		return ValueGrid{}, false
	}
	return h.grids[len(h.grids)-1], true
}

func (h *History) Clear() {
	h.mu.Lock()
	h.grids = nil
	h.mu.Unlock()
}
