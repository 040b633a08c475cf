// Package cfr implements tabular Counterfactual Regret Minimization for
// two-or-more-player extensive-form games with imperfect information,
// including the regret-matching-plus (CFR+) variant with alternating
// per-player updates and linearly weighted averaging.
//
// A Solver owns an information-set table keyed by the strings produced by
// spiel.State.InformationStateKey. Each call to EvaluateAndUpdatePolicy
// walks the full game tree, accumulating counterfactual regrets and
// weighted strategy sums against strategies that are held fixed for the
// duration of the walk; regret matching then runs over the whole table so
// the next walk sees the updated strategies. AveragePolicy extracts the
// average strategy profile, which converges toward a Nash equilibrium as
// iterations increase.
package cfr

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	spiel "github.com/wengminhua/open-spiel"
	"github.com/wengminhua/open-spiel/internal/f64"
)

// Solver runs CFR iterations over one game. Each Solver owns an
// independent table; it is not safe for concurrent use.
type Solver struct {
	game       spiel.Game
	params     Params
	numPlayers int
	iter       int

	// Map of information-state key -> accumulated values for that infoset.
	table map[string]*infoStateValues
	pool  *actionValuePool
}

// New creates a Solver for the given game and variant configuration.
// The game must be sequential (one acting entity per history; wrap
// simultaneous-move games with the turnbased package first) and have at
// least two players.
func New(game spiel.Game, params Params) (*Solver, error) {
	if game == nil {
		return nil, errors.New("cfr: game must not be nil")
	}

	n := game.NumPlayers()
	if n < 2 {
		return nil, errors.Errorf("cfr: game %q has %d players, need at least 2", game.Name(), n)
	}

	if game.NewInitialState() == nil {
		return nil, errors.Errorf("cfr: game %q produced a nil initial state", game.Name())
	}

	return &Solver{
		game:       game,
		params:     params,
		numPlayers: n,
		table:      make(map[string]*infoStateValues),
		pool:       &actionValuePool{},
	}, nil
}

// NewCFR creates a vanilla CFR solver: simultaneous updates, uniform
// averaging, no regret flooring.
func NewCFR(game spiel.Game) (*Solver, error) {
	return New(game, Params{})
}

// NewCFRPlus creates a CFR+ solver: regret flooring, alternating updates,
// linear averaging.
func NewCFRPlus(game spiel.Game) (*Solver, error) {
	return New(game, CFRPlusParams())
}

// Iterations returns the number of completed calls to
// EvaluateAndUpdatePolicy.
func (s *Solver) Iterations() int {
	return s.iter
}

// NumInfoStates returns the number of information sets discovered so far.
func (s *Solver) NumInfoStates() int {
	return len(s.table)
}

// EvaluateAndUpdatePolicy advances the solver by exactly one iteration.
// Under alternating updates one call performs one tree walk per player,
// in player order, updating only that player's regrets and strategy sums;
// otherwise a single walk updates every player.
func (s *Solver) EvaluateAndUpdatePolicy() {
	weight := s.params.strategyWeight(s.iter)
	if s.params.AlternatingUpdates {
		for p := 0; p < s.numPlayers; p++ {
			updated := spiel.Player(p)
			s.runWalk(weight, func(player spiel.Player) bool { return player == updated })
		}
	} else {
		s.runWalk(weight, everyPlayer)
	}

	s.iter++
}

// runWalk performs one full tree walk followed by a regret-matching pass
// over the table. Strategies do not change during the walk: regrets
// accumulate against the strategies produced by the previous pass (new
// entries start uniform), and the pass afterwards makes the accumulated
// regrets visible to the next walk.
func (s *Solver) runWalk(weight float64, updated func(spiel.Player) bool) {
	reach := make([]float64, s.numPlayers)
	f64.AddConst(1.0, reach)
	s.walk(s.game.NewInitialState(), reach, 1.0, weight, updated)
	for _, vals := range s.table {
		vals.regretMatching()
	}
}

// AveragePolicy returns a read-only snapshot of the average strategy
// profile. Information sets never visited by the traversal report the
// uniform distribution when queried. The call does not mutate the table
// and is idempotent between iterations.
func (s *Solver) AveragePolicy() *TabularPolicy {
	table := make(map[string][]float64, len(s.table))
	for key, vals := range s.table {
		table[key] = vals.averageStrategy()
	}

	return &TabularPolicy{table: table}
}

// CurrentPolicy returns a snapshot of the regret-matched current strategy
// profile.
func (s *Solver) CurrentPolicy() *TabularPolicy {
	table := make(map[string][]float64, len(s.table))
	for key, vals := range s.table {
		table[key] = vals.matchedStrategy()
	}

	return &TabularPolicy{table: table}
}

func everyPlayer(spiel.Player) bool { return true }

// walk recursively computes the vector of expected values for all players
// at state, updating regrets and strategy sums at decision nodes of
// players selected by updated. reach holds each player's own-strategy
// reach probability along the path from the root; chanceReach is the
// product of chance probabilities along that path. reach is mutated in
// place during recursion and restored before returning.
func (s *Solver) walk(state spiel.State, reach []float64, chanceReach, weight float64, updated func(spiel.Player) bool) []float64 {
	if state.IsTerminal() {
		values := make([]float64, s.numPlayers)
		copy(values, state.Returns())
		return values
	}

	if spiel.IsChanceNode(state) {
		values := make([]float64, s.numPlayers)
		for _, outcome := range state.ChanceOutcomes() {
			child := state.Child(outcome.Action)
			childValues := s.walk(child, reach, chanceReach*outcome.Prob, weight, updated)
			f64.AxpyUnitary(outcome.Prob, childValues, values)
		}

		return values
	}

	player := state.CurrentPlayer()
	actions := state.LegalActions()
	if len(actions) == 0 {
		panic(errors.Errorf("cfr: non-terminal state has no legal actions: %v", state))
	}

	vals := s.lookup(state, player, len(actions))
	strategy := vals.currentStrategy

	values := make([]float64, s.numPlayers)
	actionValues := s.pool.get(len(actions))
	ownReach := reach[player]
	for i, action := range actions {
		reach[player] = ownReach * strategy[i]
		childValues := s.walk(state.Child(action), reach, chanceReach, weight, updated)
		actionValues[i] = childValues[player]
		f64.AxpyUnitary(strategy[i], childValues, values)
	}
	reach[player] = ownReach

	if updated(player) {
		cfReach := chanceReach
		for i, r := range reach {
			if spiel.Player(i) != player {
				cfReach *= r
			}
		}

		value := values[player]
		for i := range actions {
			vals.regretSum[i] += cfReach * (actionValues[i] - value)
			vals.strategySum[i] += weight * ownReach * strategy[i]
		}

		if s.params.UseRegretMatchingPlus {
			vals.floorRegrets()
		}
	}

	s.pool.put(actionValues)
	return values
}

// lookup returns the table entry for the state's information set, creating
// it lazily with zero regrets and a uniform strategy.
func (s *Solver) lookup(state spiel.State, player spiel.Player, nActions int) *infoStateValues {
	key := state.InformationStateKey(player)
	vals, ok := s.table[key]
	if !ok {
		vals = newInfoStateValues(nActions)
		s.table[key] = vals
		if len(s.table)%100000 == 0 {
			glog.V(2).Infof("Table contains %d infosets", len(s.table))
		}

		return vals
	}

	if vals.numActions() != nActions {
		panic(errors.Errorf("cfr: infoset %q has %d actions but state has %d: %v",
			key, vals.numActions(), nActions, state))
	}

	return vals
}
