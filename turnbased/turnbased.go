// Package turnbased exposes simultaneous-move normal-form games through
// the sequential game contract, so that solvers assuming a single acting
// entity per history can be applied to them.
//
// Players choose actions in player-index order, and a player observes
// nothing about the choices made before their own turn: each player's
// information-state key is constant until the game ends, preserving the
// simultaneous structure as imperfect information.
package turnbased

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	spiel "github.com/wengminhua/open-spiel"
)

// Game wraps a NormalFormGame as a sequential spiel.Game.
type Game struct {
	nfg spiel.NormalFormGame
}

var _ spiel.Game = (*Game)(nil)

// New wraps the given normal-form game.
func New(nfg spiel.NormalFormGame) (*Game, error) {
	if nfg == nil {
		return nil, errors.New("turnbased: game must not be nil")
	}

	for p := 0; p < nfg.NumPlayers(); p++ {
		if nfg.NumActions(p) == 0 {
			return nil, errors.Errorf("turnbased: game %q has no actions for player %d", nfg.Name(), p)
		}
	}

	return &Game{nfg: nfg}, nil
}

// Name implements spiel.Game.
func (g *Game) Name() string {
	return "turn_based(" + g.nfg.Name() + ")"
}

// NumPlayers implements spiel.Game.
func (g *Game) NumPlayers() int {
	return g.nfg.NumPlayers()
}

// NewInitialState implements spiel.Game.
func (g *Game) NewInitialState() spiel.State {
	return &state{game: g}
}

type state struct {
	game   *Game
	chosen []int // chosen[p] is player p's action, for p < len(chosen)
}

var _ spiel.State = (*state)(nil)

// CurrentPlayer implements spiel.State.
func (s *state) CurrentPlayer() spiel.Player {
	if s.IsTerminal() {
		return spiel.TerminalPlayerID
	}

	return spiel.Player(len(s.chosen))
}

// LegalActions implements spiel.State.
func (s *state) LegalActions() []spiel.Action {
	if s.IsTerminal() {
		return nil
	}

	n := s.game.nfg.NumActions(len(s.chosen))
	actions := make([]spiel.Action, n)
	for i := range actions {
		actions[i] = spiel.Action(i)
	}

	return actions
}

// ChanceOutcomes implements spiel.State.
func (s *state) ChanceOutcomes() []spiel.ChanceOutcome {
	panic(fmt.Errorf("turnbased: ChanceOutcomes called at non-chance state %v", s))
}

// Child implements spiel.State.
func (s *state) Child(action spiel.Action) spiel.State {
	chosen := make([]int, len(s.chosen), len(s.chosen)+1)
	copy(chosen, s.chosen)
	return &state{game: s.game, chosen: append(chosen, int(action))}
}

// IsTerminal implements spiel.State.
func (s *state) IsTerminal() bool {
	return len(s.chosen) == s.game.nfg.NumPlayers()
}

// Returns implements spiel.State.
func (s *state) Returns() []float64 {
	if !s.IsTerminal() {
		panic(fmt.Errorf("turnbased: Returns called at non-terminal state %v", s))
	}

	n := s.game.nfg.NumPlayers()
	returns := make([]float64, n)
	for p := 0; p < n; p++ {
		returns[p] = s.game.nfg.Payoff(p, s.chosen)
	}

	return returns
}

// InformationStateKey implements spiel.State. In a one-shot game a player
// observes nothing before acting, so each player has exactly one
// information set.
func (s *state) InformationStateKey(player spiel.Player) string {
	return fmt.Sprintf("p%d", player)
}

// String implements fmt.Stringer.
func (s *state) String() string {
	names := make([]string, len(s.chosen))
	for p, a := range s.chosen {
		names[p] = s.game.nfg.ActionName(p, a)
	}

	return fmt.Sprintf("%s [%s]", s.game.Name(), strings.Join(names, " "))
}
