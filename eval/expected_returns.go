// Package eval contains evaluation collaborators for solver output: exact
// expected-returns rollouts, tabular best response, and the NashConv /
// exploitability convergence metrics. Everything here treats a policy as
// an opaque query interface and never touches solver internals.
package eval

import (
	spiel "github.com/wengminhua/open-spiel"
	"github.com/wengminhua/open-spiel/internal/f64"
)

// ExpectedReturns computes the exact expected utility vector of state
// when every player follows policy, by full expansion of the game tree.
func ExpectedReturns(state spiel.State, policy spiel.Policy) []float64 {
	if state.IsTerminal() {
		returns := state.Returns()
		values := make([]float64, len(returns))
		copy(values, returns)
		return values
	}

	if spiel.IsChanceNode(state) {
		var values []float64
		for _, outcome := range state.ChanceOutcomes() {
			childValues := ExpectedReturns(state.Child(outcome.Action), policy)
			if values == nil {
				values = make([]float64, len(childValues))
			}

			f64.AxpyUnitary(outcome.Prob, childValues, values)
		}

		return values
	}

	probs := policy.ActionProbabilities(state)
	var values []float64
	for i, action := range state.LegalActions() {
		if probs[i] == 0 {
			continue
		}

		childValues := ExpectedReturns(state.Child(action), policy)
		if values == nil {
			values = make([]float64, len(childValues))
		}

		f64.AxpyUnitary(probs[i], childValues, values)
	}

	return values
}
