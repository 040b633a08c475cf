package matrix

import (
	"github.com/pkg/errors"

	spiel "github.com/wengminhua/open-spiel"
)

// TensorGame is an N-player normal-form game with one flat payoff tensor
// per player, indexed row-major by the joint action profile.
type TensorGame struct {
	name        string
	actionNames [][]string // actionNames[player][action]
	payoffs     [][]float64
	strides     []int
}

var _ spiel.NormalFormGame = (*TensorGame)(nil)

// NewTensorGame creates an N-player normal-form game. payoffs[player] must
// have one entry per joint action profile, laid out row-major with player
// 0's action varying slowest.
func NewTensorGame(name string, actionNames [][]string, payoffs [][]float64) (*TensorGame, error) {
	n := len(actionNames)
	if n < 2 {
		return nil, errors.Errorf("matrix: tensor game %q has %d players, need at least 2", name, n)
	}

	size := 1
	for p, names := range actionNames {
		if len(names) == 0 {
			return nil, errors.Errorf("matrix: tensor game %q has no actions for player %d", name, p)
		}

		size *= len(names)
	}

	if len(payoffs) != n {
		return nil, errors.Errorf("matrix: tensor game %q has %d payoff tensors, want %d",
			name, len(payoffs), n)
	}

	for p, tensor := range payoffs {
		if len(tensor) != size {
			return nil, errors.Errorf("matrix: tensor game %q payoffs for player %d have %d entries, want %d",
				name, p, len(tensor), size)
		}
	}

	strides := make([]int, n)
	stride := 1
	for p := n - 1; p >= 0; p-- {
		strides[p] = stride
		stride *= len(actionNames[p])
	}

	return &TensorGame{
		name:        name,
		actionNames: actionNames,
		payoffs:     payoffs,
		strides:     strides,
	}, nil
}

// Name implements spiel.NormalFormGame.
func (g *TensorGame) Name() string { return g.name }

// NumPlayers implements spiel.NormalFormGame.
func (g *TensorGame) NumPlayers() int { return len(g.actionNames) }

// NumActions implements spiel.NormalFormGame.
func (g *TensorGame) NumActions(player int) int { return len(g.actionNames[player]) }

// ActionName implements spiel.NormalFormGame.
func (g *TensorGame) ActionName(player, action int) string {
	return g.actionNames[player][action]
}

// Payoff implements spiel.NormalFormGame.
func (g *TensorGame) Payoff(player int, joint []int) float64 {
	idx := 0
	for p, a := range joint {
		idx += a * g.strides[p]
	}

	return g.payoffs[player][idx]
}

// MatchingPennies3P is the three-player pennies game: player 0 wants to
// match player 1, player 1 wants to match player 2, and player 2 wants to
// mismatch player 0. It is general-sum with a unique uniform mixed
// equilibrium.
func MatchingPennies3P() *TensorGame {
	names := []string{"Heads", "Tails"}
	payoff := func(want bool, a, b int) float64 {
		if (a == b) == want {
			return 1
		}
		return -1
	}

	size := 8
	payoffs := [][]float64{
		make([]float64, size),
		make([]float64, size),
		make([]float64, size),
	}
	for a0 := 0; a0 < 2; a0++ {
		for a1 := 0; a1 < 2; a1++ {
			for a2 := 0; a2 < 2; a2++ {
				idx := a0*4 + a1*2 + a2
				payoffs[0][idx] = payoff(true, a0, a1)
				payoffs[1][idx] = payoff(true, a1, a2)
				payoffs[2][idx] = payoff(false, a2, a0)
			}
		}
	}

	g, err := NewTensorGame("matching_pennies_3p",
		[][]string{names, names, names}, payoffs)
	if err != nil {
		panic(err)
	}

	return g
}
