package eval

import (
	spiel "github.com/wengminhua/open-spiel"
)

// BestResponseValue computes the expected value to player of playing an
// exact best response against policy, with every other player (and
// chance) unchanged. It requires the game to have perfect recall for
// player, which is also a requirement of the solvers.
func BestResponseValue(game spiel.Game, policy spiel.Policy, player spiel.Player) float64 {
	br := &bestResponse{
		policy:   policy,
		player:   player,
		infosets: make(map[string][]weightedHistory),
		actions:  make(map[string]spiel.Action),
	}
	br.collect(game.NewInitialState(), 1.0)
	return br.value(game.NewInitialState())
}

// weightedHistory is one history of an information set together with its
// counterfactual reach probability (chance and all other players).
type weightedHistory struct {
	state  spiel.State
	weight float64
}

type bestResponse struct {
	policy spiel.Policy
	player spiel.Player

	// Histories grouped by the responding player's infoset key.
	infosets map[string][]weightedHistory
	// Chosen best-response action per infoset, filled in lazily.
	actions map[string]spiel.Action
}

// collect walks the tree accumulating, for each of the responding
// player's information sets, all member histories weighted by
// counterfactual reach.
func (br *bestResponse) collect(state spiel.State, cfReach float64) {
	if state.IsTerminal() {
		return
	}

	if spiel.IsChanceNode(state) {
		for _, outcome := range state.ChanceOutcomes() {
			br.collect(state.Child(outcome.Action), cfReach*outcome.Prob)
		}

		return
	}

	actions := state.LegalActions()
	if state.CurrentPlayer() == br.player {
		key := state.InformationStateKey(br.player)
		br.infosets[key] = append(br.infosets[key], weightedHistory{state, cfReach})
		for _, action := range actions {
			br.collect(state.Child(action), cfReach)
		}

		return
	}

	probs := br.policy.ActionProbabilities(state)
	for i, action := range actions {
		br.collect(state.Child(action), cfReach*probs[i])
	}
}

// value is the expected return to the responding player of history state,
// assuming they play the best response from here on and everybody else
// follows the fixed policy.
func (br *bestResponse) value(state spiel.State) float64 {
	if state.IsTerminal() {
		return state.Returns()[br.player]
	}

	if spiel.IsChanceNode(state) {
		total := 0.0
		for _, outcome := range state.ChanceOutcomes() {
			total += outcome.Prob * br.value(state.Child(outcome.Action))
		}

		return total
	}

	if state.CurrentPlayer() == br.player {
		return br.value(state.Child(br.bestAction(state)))
	}

	probs := br.policy.ActionProbabilities(state)
	total := 0.0
	for i, action := range state.LegalActions() {
		if probs[i] == 0 {
			continue
		}

		total += probs[i] * br.value(state.Child(action))
	}

	return total
}

// bestAction picks, for the infoset containing state, the action
// maximizing the counterfactual-reach-weighted value over every history
// in the infoset. The choice is cached so all member histories use the
// same action. Ties break toward the first legal action, keeping the
// computation deterministic.
func (br *bestResponse) bestAction(state spiel.State) spiel.Action {
	key := state.InformationStateKey(br.player)
	if action, ok := br.actions[key]; ok {
		return action
	}

	histories := br.infosets[key]
	actions := state.LegalActions()
	best := actions[0]
	bestValue := 0.0
	for i, action := range actions {
		total := 0.0
		for _, h := range histories {
			total += h.weight * br.value(h.state.Child(action))
		}

		if i == 0 || total > bestValue {
			best = action
			bestValue = total
		}
	}

	br.actions[key] = best
	return best
}
