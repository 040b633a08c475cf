package eval

import (
	spiel "github.com/wengminhua/open-spiel"
)

// NashConv is the total gain available to all players by unilaterally
// deviating to a best response against policy. It is zero exactly at a
// Nash equilibrium.
func NashConv(game spiel.Game, policy spiel.Policy) float64 {
	onPolicy := ExpectedReturns(game.NewInitialState(), policy)
	total := 0.0
	for p := 0; p < game.NumPlayers(); p++ {
		total += BestResponseValue(game, policy, spiel.Player(p)) - onPolicy[p]
	}

	return total
}

// Exploitability is NashConv averaged over players. For a two-player
// zero-sum game it is the conventional per-player exploitability.
func Exploitability(game spiel.Game, policy spiel.Policy) float64 {
	return NashConv(game, policy) / float64(game.NumPlayers())
}
