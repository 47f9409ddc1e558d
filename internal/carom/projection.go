package carom

// Default target configuration, matching a 0.90 moyenne baseline with
// tiers at 1.00 and 1.10.
const (
	DefaultTarget     = 0.90
	DefaultTargetStep = 0.10
	DefaultHorizon    = 10

	// TierCount is the number of target tiers evaluated together.
	TierCount = 3
)

// Projection is one cell of the needed-score table: the minimum score
// still required within Turns future turns to stay on pace for Target.
type Projection struct {
	Target        float64
	Turns         int
	NeededScore   int
	NeededPerTurn float64
}

// NeededScore returns the smallest non-negative integer need such that
// the cumulative average after futureTurns more turns,
// (score+need)/(turns+futureTurns), reaches target. Both sides are
// scaled by 100 so the boundary is decided exactly, with no
// floating-point artifact when the inequality holds with equality.
func NeededScore(score, turns int, target float64, futureTurns int) int {
	need := 0
	for float64((score+need)*100) < 100.0*target*float64(turns+futureTurns) {
		need++
	}
	return need
}

// Tiers returns the three evaluated target moyennes in ascending order.
func Tiers(target, step float64) []float64 {
	tiers := make([]float64, TierCount)
	for i := range tiers {
		tiers[i] = target + step*float64(i)
	}
	return tiers
}

// ProjectNeededTable computes the needed-score table for the three
// target tiers over lookaheads 1..horizon. Rows are tiers in ascending
// order, columns are lookaheads in ascending order. A horizon below 1
// falls back to the default.
func ProjectNeededTable(score, turns int, target, step float64, horizon int) [][]Projection {
	if horizon < 1 {
		horizon = DefaultHorizon
	}

	table := make([][]Projection, 0, TierCount)
	for _, tier := range Tiers(target, step) {
		row := make([]Projection, 0, horizon)
		for k := 1; k <= horizon; k++ {
			need := NeededScore(score, turns, tier, k)
			row = append(row, Projection{
				Target:        tier,
				Turns:         k,
				NeededScore:   need,
				NeededPerTurn: float64(need) / float64(k),
			})
		}
		table = append(table, row)
	}
	return table
}
