// Package matrix implements one-shot normal-form games: two-player matrix
// games given by row/column utility matrices, and N-player games given by
// payoff tensors. These games are simultaneous-move and must be wrapped
// with the turnbased package before being handed to a solver.
package matrix

import (
	"github.com/pkg/errors"

	spiel "github.com/wengminhua/open-spiel"
)

// Game is a two-player normal-form game. Player 0 picks a row, player 1
// picks a column.
type Game struct {
	name     string
	rowNames []string
	colNames []string
	rowUtils [][]float64
	colUtils [][]float64
}

var _ spiel.NormalFormGame = (*Game)(nil)

// NewGame creates a matrix game from per-player utility matrices, both
// indexed [row][col].
func NewGame(name string, rowNames, colNames []string, rowUtils, colUtils [][]float64) (*Game, error) {
	if len(rowNames) == 0 || len(colNames) == 0 {
		return nil, errors.Errorf("matrix: game %q has no actions", name)
	}

	for _, utils := range [][][]float64{rowUtils, colUtils} {
		if len(utils) != len(rowNames) {
			return nil, errors.Errorf("matrix: game %q has %d utility rows, want %d",
				name, len(utils), len(rowNames))
		}

		for i, row := range utils {
			if len(row) != len(colNames) {
				return nil, errors.Errorf("matrix: game %q utility row %d has %d entries, want %d",
					name, i, len(row), len(colNames))
			}
		}
	}

	return &Game{
		name:     name,
		rowNames: rowNames,
		colNames: colNames,
		rowUtils: rowUtils,
		colUtils: colUtils,
	}, nil
}

// NewZeroSumGame creates a matrix game where the column player's utility
// is the negation of the row player's.
func NewZeroSumGame(name string, rowNames, colNames []string, rowUtils [][]float64) (*Game, error) {
	colUtils := make([][]float64, len(rowUtils))
	for i, row := range rowUtils {
		colUtils[i] = make([]float64, len(row))
		for j, u := range row {
			colUtils[i][j] = -u
		}
	}

	return NewGame(name, rowNames, colNames, rowUtils, colUtils)
}

// Name implements spiel.NormalFormGame.
func (g *Game) Name() string { return g.name }

// NumPlayers implements spiel.NormalFormGame.
func (g *Game) NumPlayers() int { return 2 }

// NumActions implements spiel.NormalFormGame.
func (g *Game) NumActions(player int) int {
	if player == 0 {
		return len(g.rowNames)
	}

	return len(g.colNames)
}

// ActionName implements spiel.NormalFormGame.
func (g *Game) ActionName(player, action int) string {
	if player == 0 {
		return g.rowNames[action]
	}

	return g.colNames[action]
}

// Payoff implements spiel.NormalFormGame.
func (g *Game) Payoff(player int, joint []int) float64 {
	if player == 0 {
		return g.rowUtils[joint[0]][joint[1]]
	}

	return g.colUtils[joint[0]][joint[1]]
}

// RockPaperScissors is the classic zero-sum 3x3 game with a unique
// uniform mixed equilibrium.
func RockPaperScissors() *Game {
	names := []string{"Rock", "Paper", "Scissors"}
	g, err := NewZeroSumGame("matrix_rps", names, names, [][]float64{
		{0, -1, 1},
		{1, 0, -1},
		{-1, 1, 0},
	})
	if err != nil {
		panic(err)
	}

	return g
}

// MatchingPennies is the zero-sum 2x2 pennies game.
func MatchingPennies() *Game {
	names := []string{"Heads", "Tails"}
	g, err := NewZeroSumGame("matrix_mp", names, names, [][]float64{
		{1, -1},
		{-1, 1},
	})
	if err != nil {
		panic(err)
	}

	return g
}

// ShapleysGame is Shapley's variant of rock-paper-scissors, a general-sum
// game on which fictitious-play-style dynamics famously cycle.
func ShapleysGame() *Game {
	names := []string{"Rock", "Paper", "Scissors"}
	g, err := NewGame("matrix_shapleys_game", names, names,
		[][]float64{
			{0, 0, 1},
			{1, 0, 0},
			{0, 1, 0},
		},
		[][]float64{
			{0, 1, 0},
			{0, 0, 1},
			{1, 0, 0},
		})
	if err != nil {
		panic(err)
	}

	return g
}
