package matrix

import (
	"testing"
)

func TestNewGame_Validation(t *testing.T) {
	names := []string{"a", "b"}
	ok := [][]float64{{1, 2}, {3, 4}}

	if _, err := NewGame("g", nil, names, nil, nil); err == nil {
		t.Error("expected error for empty row actions")
	}

	ragged := [][]float64{{1, 2}, {3}}
	if _, err := NewGame("g", names, names, ragged, ok); err == nil {
		t.Error("expected error for ragged row utilities")
	}

	short := [][]float64{{1, 2}}
	if _, err := NewGame("g", names, names, ok, short); err == nil {
		t.Error("expected error for missing utility rows")
	}

	if _, err := NewGame("g", names, names, ok, ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRockPaperScissors_ZeroSum(t *testing.T) {
	g := RockPaperScissors()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			joint := []int{row, col}
			if u0, u1 := g.Payoff(0, joint), g.Payoff(1, joint); u0+u1 != 0 {
				t.Errorf("payoffs at %v are not zero-sum: %v, %v", joint, u0, u1)
			}
		}
	}

	// Paper beats rock.
	if got := g.Payoff(0, []int{1, 0}); got != 1 {
		t.Errorf("paper vs rock = %v, want 1", got)
	}

	if g.ActionName(0, 1) != "Paper" {
		t.Errorf("ActionName(0, 1) = %q, want Paper", g.ActionName(0, 1))
	}
}

func TestTensorGame_Validation(t *testing.T) {
	names := [][]string{{"H", "T"}, {"H", "T"}}

	if _, err := NewTensorGame("g", names[:1], nil); err == nil {
		t.Error("expected error for one-player tensor game")
	}

	if _, err := NewTensorGame("g", names, [][]float64{make([]float64, 4)}); err == nil {
		t.Error("expected error for missing payoff tensor")
	}

	if _, err := NewTensorGame("g", names, [][]float64{make([]float64, 3), make([]float64, 4)}); err == nil {
		t.Error("expected error for wrong tensor size")
	}

	if _, err := NewTensorGame("g", names, [][]float64{make([]float64, 4), make([]float64, 4)}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMatchingPennies3P(t *testing.T) {
	g := MatchingPennies3P()
	if g.NumPlayers() != 3 {
		t.Fatalf("NumPlayers = %d, want 3", g.NumPlayers())
	}

	// All heads: 0 matches 1 (+1), 1 matches 2 (+1), 2 matches 0 (-1).
	joint := []int{0, 0, 0}
	want := []float64{1, 1, -1}
	for p, w := range want {
		if got := g.Payoff(p, joint); got != w {
			t.Errorf("Payoff(%d, %v) = %v, want %v", p, joint, got, w)
		}
	}

	// 0 plays tails: 0 mismatches 1 (-1), 2 mismatches 0 (+1).
	joint = []int{1, 0, 0}
	want = []float64{-1, 1, 1}
	for p, w := range want {
		if got := g.Payoff(p, joint); got != w {
			t.Errorf("Payoff(%d, %v) = %v, want %v", p, joint, got, w)
		}
	}
}
