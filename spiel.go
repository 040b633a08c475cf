// Package spiel defines the game-tree contract shared by all games and
// solvers in this module: a sequential extensive-form game exposes, for any
// reachable history, the acting entity, the legal actions, chance outcome
// probabilities, terminal utilities, and a string key identifying the
// information set containing that history for a given player.
package spiel

// Player is the index of an acting player, or one of the special
// designations below for non-player nodes.
type Player int

const (
	// ChancePlayerID is the acting entity at chance nodes.
	ChancePlayerID Player = -1
	// TerminalPlayerID is the acting entity at terminal nodes.
	TerminalPlayerID Player = -4
)

// Action identifies one of the legal actions at a history. Action values
// are game-specific and only need to be stable for a given history.
type Action int

// ChanceOutcome is one possible outcome at a chance node, together with
// the probability that chance selects it.
type ChanceOutcome struct {
	Action Action
	Prob   float64
}

// State is a history in the game tree.
//
// Histories are immutable: Child returns the successor history and leaves
// the receiver untouched, so a State may be retained across calls.
type State interface {
	// CurrentPlayer returns the acting entity: a player index, or
	// ChancePlayerID / TerminalPlayerID.
	CurrentPlayer() Player

	// LegalActions returns the ordered set of actions available at this
	// history. The ordering is stable across repeated calls. It is empty
	// exactly when the state is terminal.
	LegalActions() []Action

	// ChanceOutcomes returns the distribution over actions at a chance
	// node. It may only be called when CurrentPlayer() == ChancePlayerID,
	// and the probabilities sum to 1.
	ChanceOutcomes() []ChanceOutcome

	// Child returns the history reached by taking the given action.
	Child(action Action) State

	// Returns is the utility vector, indexed by player. It may only be
	// called at terminal states.
	Returns() []float64

	// InformationStateKey identifies the information set containing this
	// history from the point of view of the given player. Two histories
	// indistinguishable to that player yield the identical key.
	InformationStateKey(player Player) string

	// IsTerminal reports whether this history ends the game.
	IsTerminal() bool

	// String renders the history for debugging.
	String() string
}

// Game is a factory for the root of a game tree.
type Game interface {
	Name() string
	NumPlayers() int
	NewInitialState() State
}

// NormalFormGame is a one-shot game in which all players choose an action
// simultaneously. It does not satisfy the sequential State contract
// directly; wrap it with the turnbased package before handing it to a
// solver.
type NormalFormGame interface {
	Name() string
	NumPlayers() int
	NumActions(player int) int
	ActionName(player, action int) string
	// Payoff returns the utility to player for the joint action profile,
	// indexed by player.
	Payoff(player int, joint []int) float64
}

// Policy maps information states to action probability distributions.
// It is the read-only query interface consumed by evaluation code.
type Policy interface {
	// ActionProbabilities returns the distribution over the current
	// player's legal actions at state, aligned with state.LegalActions().
	ActionProbabilities(state State) []float64
}

// IsChanceNode reports whether the acting entity at state is chance.
func IsChanceNode(state State) bool {
	return state.CurrentPlayer() == ChancePlayerID
}

// UniformDist returns the uniform distribution over n actions.
func UniformDist(n int) []float64 {
	result := make([]float64, n)
	p := 1.0 / float64(n)
	for i := range result {
		result[i] = p
	}
	return result
}
