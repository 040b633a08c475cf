package kuhn

import (
	"math"
	"testing"

	spiel "github.com/wengminhua/open-spiel"
	"github.com/wengminhua/open-spiel/tree"
)

func TestNewGame_Validation(t *testing.T) {
	for _, players := range []int{-1, 0, 1, 11} {
		if _, err := NewGame(players); err == nil {
			t.Errorf("expected error for %d players", players)
		}
	}

	for _, players := range []int{2, 3, 10} {
		if _, err := NewGame(players); err != nil {
			t.Errorf("unexpected error for %d players: %v", players, err)
		}
	}
}

func TestTwoPlayer_GameTree(t *testing.T) {
	game, _ := NewGame(2)
	root := game.NewInitialState()

	nNodes := tree.CountNodes(root)
	if nNodes != 58 {
		t.Errorf("expected %d nodes, got %d", 58, nNodes)
	}

	nTerminal := tree.CountTerminalNodes(root)
	if nTerminal != 30 {
		t.Errorf("expected %d terminal nodes, got %d", 30, nTerminal)
	}

	nInfoSets := tree.CountInfoSets(root)
	if nInfoSets != 12 {
		t.Errorf("expected %d infosets, got %d", 12, nInfoSets)
	}
}

func TestReturns_ZeroSum(t *testing.T) {
	for _, players := range []int{2, 3} {
		game, _ := NewGame(players)
		tree.Visit(game.NewInitialState(), func(state spiel.State) {
			if !state.IsTerminal() {
				return
			}

			total := 0.0
			for _, r := range state.Returns() {
				total += r
			}

			if math.Abs(total) > 1e-12 {
				t.Errorf("returns %v at %v sum to %v, want 0", state.Returns(), state, total)
			}
		})
	}
}

// deal deals the given cards, then applies the betting sequence.
func deal(t *testing.T, game *Game, cards []spiel.Action, betting []spiel.Action) spiel.State {
	t.Helper()
	state := game.NewInitialState()
	for _, c := range cards {
		state = state.Child(c)
	}

	for _, b := range betting {
		state = state.Child(b)
	}

	return state
}

func TestReturns_TwoPlayer(t *testing.T) {
	game, _ := NewGame(2)
	cases := []struct {
		cards   []spiel.Action
		betting []spiel.Action
		want    []float64
	}{
		// Showdown with no bets: higher card wins the antes.
		{[]spiel.Action{2, 0}, []spiel.Action{Pass, Pass}, []float64{1, -1}},
		{[]spiel.Action{0, 1}, []spiel.Action{Pass, Pass}, []float64{-1, 1}},
		// Bet and fold: bettor wins the antes.
		{[]spiel.Action{0, 2}, []spiel.Action{Bet, Pass}, []float64{1, -1}},
		{[]spiel.Action{2, 0}, []spiel.Action{Pass, Bet, Pass}, []float64{-1, 1}},
		// Bet and call: higher card wins a doubled pot.
		{[]spiel.Action{2, 1}, []spiel.Action{Bet, Bet}, []float64{2, -2}},
		{[]spiel.Action{1, 2}, []spiel.Action{Pass, Bet, Bet}, []float64{-2, 2}},
	}

	for _, tc := range cases {
		state := deal(t, game, tc.cards, tc.betting)
		if !state.IsTerminal() {
			t.Errorf("state %v should be terminal", state)
			continue
		}

		got := state.Returns()
		for p, want := range tc.want {
			if got[p] != want {
				t.Errorf("cards=%v betting=%v: returns %v, want %v", tc.cards, tc.betting, got, tc.want)
				break
			}
		}
	}
}

func TestReturns_ThreePlayer(t *testing.T) {
	game, _ := NewGame(3)

	// Everybody passes: player 2 holds the highest card and wins both antes.
	state := deal(t, game, []spiel.Action{1, 0, 3}, []spiel.Action{Pass, Pass, Pass})
	if !state.IsTerminal() {
		t.Fatalf("state %v should be terminal", state)
	}

	want := []float64{-1, -1, 2}
	got := state.Returns()
	for p := range want {
		if got[p] != want[p] {
			t.Fatalf("returns %v, want %v", got, want)
		}
	}

	// Player 1 bets, player 2 folds, player 0 calls and wins with the
	// higher card. The pot holds three antes plus two bets.
	state = deal(t, game, []spiel.Action{3, 1, 2}, []spiel.Action{Pass, Bet, Pass, Bet})
	if !state.IsTerminal() {
		t.Fatalf("state %v should be terminal", state)
	}

	want = []float64{3, -2, -1}
	got = state.Returns()
	for p := range want {
		if got[p] != want[p] {
			t.Fatalf("returns %v, want %v", got, want)
		}
	}
}

func TestChanceOutcomes(t *testing.T) {
	game, _ := NewGame(2)
	state := game.NewInitialState()

	outcomes := state.ChanceOutcomes()
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes at the root, got %d", len(outcomes))
	}

	total := 0.0
	for _, o := range outcomes {
		total += o.Prob
	}
	if math.Abs(total-1.0) > 1e-12 {
		t.Errorf("outcome probabilities sum to %v, want 1", total)
	}

	// After one deal, only two cards remain.
	outcomes = state.Child(1).ChanceOutcomes()
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes after one deal, got %d", len(outcomes))
	}

	for _, o := range outcomes {
		if o.Action == 1 {
			t.Errorf("card 1 dealt twice")
		}
	}
}

func TestInformationStateKeys(t *testing.T) {
	game, _ := NewGame(2)
	state := deal(t, game, []spiel.Action{2, 0}, nil)

	if key := state.InformationStateKey(0); key != "2" {
		t.Errorf("player 0 key = %q, want %q", key, "2")
	}

	state = state.Child(Pass)
	if key := state.InformationStateKey(1); key != "0p" {
		t.Errorf("player 1 key = %q, want %q", key, "0p")
	}

	// The key hides the other player's card: same observations, same key.
	other := deal(t, game, []spiel.Action{1, 0}, []spiel.Action{Pass})
	if state.InformationStateKey(1) != other.InformationStateKey(1) {
		t.Errorf("indistinguishable histories have different keys: %q vs %q",
			state.InformationStateKey(1), other.InformationStateKey(1))
	}
}

func TestCurrentPlayer(t *testing.T) {
	game, _ := NewGame(2)
	state := game.NewInitialState()
	if state.CurrentPlayer() != spiel.ChancePlayerID {
		t.Errorf("root should be a chance node")
	}

	state = state.Child(0).Child(1)
	if state.CurrentPlayer() != 0 {
		t.Errorf("player 0 should act first, got %v", state.CurrentPlayer())
	}

	state = state.Child(Pass)
	if state.CurrentPlayer() != 1 {
		t.Errorf("player 1 should act second, got %v", state.CurrentPlayer())
	}

	state = state.Child(Pass)
	if state.CurrentPlayer() != spiel.TerminalPlayerID {
		t.Errorf("pp should be terminal, got %v", state.CurrentPlayer())
	}
}
