// Package tree provides traversal helpers over game trees, used by tests
// and command-line tooling.
package tree

import (
	spiel "github.com/wengminhua/open-spiel"
)

// Visit calls visitor for every history reachable from root, depth-first
// in legal-action order.
func Visit(root spiel.State, visitor func(state spiel.State)) {
	visitor(root)
	for _, action := range root.LegalActions() {
		Visit(root.Child(action), visitor)
	}
}

// VisitInfoSets calls visitor once per distinct information set of an
// acting player reachable from root.
func VisitInfoSets(root spiel.State, visitor func(player spiel.Player, key string)) {
	seen := make(map[string]struct{})
	Visit(root, func(state spiel.State) {
		if spiel.IsChanceNode(state) || state.IsTerminal() {
			return
		}

		player := state.CurrentPlayer()
		key := state.InformationStateKey(player)
		if _, ok := seen[key]; ok {
			return
		}

		visitor(player, key)
		seen[key] = struct{}{}
	})
}

// CountNodes returns the number of histories reachable from root,
// including root itself.
func CountNodes(root spiel.State) int {
	total := 0
	Visit(root, func(spiel.State) { total++ })
	return total
}

// CountTerminalNodes returns the number of terminal histories reachable
// from root.
func CountTerminalNodes(root spiel.State) int {
	total := 0
	Visit(root, func(state spiel.State) {
		if state.IsTerminal() {
			total++
		}
	})

	return total
}

// CountInfoSets returns the number of distinct information sets of acting
// players reachable from root.
func CountInfoSets(root spiel.State) int {
	total := 0
	VisitInfoSets(root, func(spiel.Player, string) { total++ })
	return total
}
