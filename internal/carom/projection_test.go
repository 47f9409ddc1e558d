package carom

import (
	"math"
	"testing"
)

func TestNeededScoreBoundary(t *testing.T) {
	// Fresh game, target 1.0, one future turn: need exactly 1.
	if got := NeededScore(0, 0, 1.0, 1); got != 1 {
		t.Errorf("NeededScore(0,0,1.0,1) = %d, want 1", got)
	}

	// On pace at 10/10: one more turn at target 1.0 needs exactly 1.
	if got := NeededScore(10, 10, 1.0, 1); got != 1 {
		t.Errorf("NeededScore(10,10,1.0,1) = %d, want 1", got)
	}
}

func TestNeededScoreSatisfiedAtEquality(t *testing.T) {
	// 9/10 with target 1.0 over one turn: (9+need)*100 >= 100*1.0*11
	// holds first at need=2, and exactly at the boundary.
	if got := NeededScore(9, 10, 1.0, 1); got != 2 {
		t.Errorf("NeededScore(9,10,1.0,1) = %d, want 2", got)
	}
}

func TestNeededScoreSurplus(t *testing.T) {
	// Far ahead of pace: nothing more needed.
	if got := NeededScore(50, 10, 0.9, 5); got != 0 {
		t.Errorf("NeededScore with surplus = %d, want 0", got)
	}
}

func TestTiers(t *testing.T) {
	tiers := Tiers(0.90, 0.10)
	want := []float64{0.90, 1.00, 1.10}

	if len(tiers) != TierCount {
		t.Fatalf("Expected %d tiers, got %d", TierCount, len(tiers))
	}
	for i := range want {
		if math.Abs(tiers[i]-want[i]) > 1e-9 {
			t.Errorf("Tier %d: expected %f, got %f", i, want[i], tiers[i])
		}
	}
}

func TestProjectNeededTableShape(t *testing.T) {
	table := ProjectNeededTable(12, 15, 0.90, 0.10, 10)

	if len(table) != TierCount {
		t.Fatalf("Expected %d tier rows, got %d", TierCount, len(table))
	}
	for i, row := range table {
		if len(row) != 10 {
			t.Fatalf("Tier row %d: expected 10 lookaheads, got %d", i, len(row))
		}
		for j, cell := range row {
			if cell.Turns != j+1 {
				t.Errorf("Cell [%d][%d]: turns %d, want %d", i, j, cell.Turns, j+1)
			}
			wantPerTurn := float64(cell.NeededScore) / float64(cell.Turns)
			if math.Abs(cell.NeededPerTurn-wantPerTurn) > 1e-9 {
				t.Errorf("Cell [%d][%d]: per-turn %f, want %f", i, j, cell.NeededPerTurn, wantPerTurn)
			}
		}
	}
}

func TestProjectNeededTableTierMonotonicity(t *testing.T) {
	cases := []struct {
		score, turns int
	}{
		{0, 0},
		{5, 7},
		{12, 15},
		{40, 30},
	}

	for _, tc := range cases {
		table := ProjectNeededTable(tc.score, tc.turns, 0.90, 0.10, 10)
		for k := 0; k < 10; k++ {
			for tier := 1; tier < TierCount; tier++ {
				lo := table[tier-1][k].NeededScore
				hi := table[tier][k].NeededScore
				if hi < lo {
					t.Errorf("score=%d turns=%d k=%d: tier %d needs %d, below tier %d's %d",
						tc.score, tc.turns, k+1, tier, hi, tier-1, lo)
				}
			}
		}
	}
}

func TestProjectNeededTableMatchesNeededScore(t *testing.T) {
	table := ProjectNeededTable(3, 4, 0.90, 0.10, 5)

	for i, tier := range Tiers(0.90, 0.10) {
		for k := 1; k <= 5; k++ {
			want := NeededScore(3, 4, tier, k)
			if got := table[i][k-1].NeededScore; got != want {
				t.Errorf("Table cell [%d][%d] = %d, want NeededScore = %d", i, k-1, got, want)
			}
		}
	}
}

func TestProjectNeededTableDefaultHorizon(t *testing.T) {
	table := ProjectNeededTable(0, 0, 0.90, 0.10, 0)
	if len(table[0]) != DefaultHorizon {
		t.Errorf("Expected default horizon %d, got %d", DefaultHorizon, len(table[0]))
	}
}
