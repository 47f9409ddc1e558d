// Package carom implements the scoring and projection engine for a
// carom billiards session: the in-progress game state, the rolling
// 20-game moyenne history, and the needed-score projections.
// The package is pure logic with no external dependencies; persistence
// and presentation live in the platform layers.
package carom

import "math"

// GameState holds the state of the game in progress: the accumulated
// score, the number of committed turns, and the numpad entry buffer
// used to build a score value before it is committed.
type GameState struct {
	score        int
	playedTurns  int
	zeroScores   int
	entryBuffer  int
	entryStarted bool
}

// NewGameState returns a fresh game with all counters at zero.
func NewGameState() *GameState {
	return &GameState{}
}

// Score returns the accumulated score of the current game.
func (g *GameState) Score() int { return g.score }

// PlayedTurns returns the number of committed scoring entries.
func (g *GameState) PlayedTurns() int { return g.playedTurns }

// ZeroScores returns how many committed entries were zero.
func (g *GameState) ZeroScores() int { return g.zeroScores }

// EntryValue returns the value currently held in the entry buffer.
func (g *GameState) EntryValue() int { return g.entryBuffer }

// AddDigit appends a digit to the entry buffer. The first digit after a
// commit or clear replaces the buffer, so entering 1, 2, 3 yields 123.
func (g *GameState) AddDigit(d int) {
	if d < 0 || d > 9 {
		return
	}
	if !g.entryStarted {
		g.entryBuffer = 0
		g.entryStarted = true
	}
	g.entryBuffer = g.entryBuffer*10 + d
}

// RemoveLastDigit drops the last entered digit. No-op at zero.
func (g *GameState) RemoveLastDigit() {
	g.entryBuffer /= 10
}

// ResetEntry clears the entry buffer without touching the game counters.
func (g *GameState) ResetEntry() {
	g.entryBuffer = 0
	g.entryStarted = false
}

// Commit records a scoring entry: the score and turn counters only ever
// change together here. Negative input is clamped to zero; callers are
// expected to validate before calling.
func (g *GameState) Commit(points int) {
	if points < 0 {
		points = 0
	}
	if points == 0 {
		g.zeroScores++
	}
	g.score += points
	g.playedTurns++
}

// CommitEntry commits the entry buffer as a scoring entry and clears it.
// Returns the committed value.
func (g *GameState) CommitEntry() int {
	points := g.entryBuffer
	g.Commit(points)
	g.ResetEntry()
	return points
}

// CurrentAverage returns the moyenne of the game in progress, or 0.0
// before the first committed turn.
func (g *GameState) CurrentAverage() float64 {
	if g.playedTurns == 0 {
		return 0.0
	}
	return float64(g.score) / float64(g.playedTurns)
}

// Reset zeroes the game state. The moyenne history is not touched.
func (g *GameState) Reset() {
	g.score = 0
	g.playedTurns = 0
	g.zeroScores = 0
	g.ResetEntry()
}

// EndGame finishes the current game and resets it. If at least one turn
// was played it returns the game moyenne rounded to two decimals and
// true; with no turns played there is no moyenne to fold and it returns
// 0 and false.
func (g *GameState) EndGame() (float64, bool) {
	if g.playedTurns == 0 {
		g.Reset()
		return 0, false
	}
	moyenne := math.Round(g.CurrentAverage()*100) / 100
	g.Reset()
	return moyenne, true
}
