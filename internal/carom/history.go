package carom

import "math"

// HistorySize is the fixed number of completed-game moyennes kept in
// the rolling window. The window never grows or shrinks after seeding.
const HistorySize = 20

// DefaultSeedMoyenne pads an underfilled seed list up to HistorySize.
const DefaultSeedMoyenne = 1.00

// History is the fixed-size FIFO window of completed-game moyennes.
// Oldest entry at index 0, newest at the end.
type History struct {
	entries []float64
}

// NewHistory seeds a history from the given values: the first
// HistorySize values are kept in order and the tail is padded with def
// until the window is full.
func NewHistory(values []float64, def float64) *History {
	entries := make([]float64, 0, HistorySize)
	for _, v := range values {
		if len(entries) == HistorySize {
			break
		}
		entries = append(entries, v)
	}
	for len(entries) < HistorySize {
		entries = append(entries, def)
	}
	return &History{entries: entries}
}

// Push folds a new moyenne into the window: the oldest entry is evicted
// and v becomes the newest. The window length never changes.
func (h *History) Push(v float64) {
	copy(h.entries, h.entries[1:])
	h.entries[len(h.entries)-1] = v
}

// Entries returns the window in order, oldest first. The returned slice
// is a copy.
func (h *History) Entries() []float64 {
	out := make([]float64, len(h.entries))
	copy(out, h.entries)
	return out
}

// Average returns the arithmetic mean of the window.
func (h *History) Average() float64 {
	if len(h.entries) == 0 {
		return 0.0
	}
	var sum float64
	for _, v := range h.entries {
		sum += v
	}
	return sum / float64(len(h.entries))
}

// ScaledTarget derives an integer score target from the history
// average: floor(25 * average).
func (h *History) ScaledTarget() int {
	return int(math.Floor(25.0 * h.Average()))
}

// ExpectedAverageNeeded computes what the next lookahead games must
// average so that the trailing HistorySize-game window reaches desired.
// A non-positive desired means "hold the current average". The result
// is clamped at zero: a surplus never yields a negative requirement.
// A lookahead of HistorySize or more spreads the whole window total
// over the new games; a non-positive lookahead returns 0.0.
func (h *History) ExpectedAverageNeeded(lookahead int, desired float64) float64 {
	if lookahead <= 0 {
		return 0.0
	}
	if desired <= 0 {
		desired = h.Average()
	}

	// Sum of the games that will still be in the window after the
	// lookahead games are folded in.
	remain := len(h.entries) - lookahead
	if remain < 0 {
		remain = 0
	}
	var sum float64
	for _, v := range h.entries[len(h.entries)-remain:] {
		sum += v
	}

	need := (float64(HistorySize)*desired - sum) / float64(lookahead)
	return math.Max(0.0, need)
}
