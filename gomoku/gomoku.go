// Package gomoku implements m,n,k five-in-a-row as a two-player
// perfect-information game tree. The default configuration is the
// standard 15x15 board requiring five in a row; smaller configurations
// (for example 3x3 with three in a row, i.e. tic-tac-toe) are available
// for testing and for games small enough to solve exactly.
package gomoku

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	spiel "github.com/wengminhua/open-spiel"
)

const (
	// DefaultRows and friends describe the standard gomoku board.
	DefaultRows   = 15
	DefaultCols   = 15
	DefaultInARow = 5
)

type cell byte

const (
	empty cell = iota
	black      // player 0
	white      // player 1
)

var cellStr = [...]string{".", "x", "o"}

// Game is a gomoku game definition.
type Game struct {
	rows, cols, inARow int
}

var _ spiel.Game = (*Game)(nil)

// NewGame creates the standard 15x15 five-in-a-row game.
func NewGame() *Game {
	g, err := NewGameSized(DefaultRows, DefaultCols, DefaultInARow)
	if err != nil {
		panic(err)
	}

	return g
}

// NewGameSized creates a gomoku game on a rows x cols board where inARow
// consecutive stones win.
func NewGameSized(rows, cols, inARow int) (*Game, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Errorf("gomoku: invalid board size %dx%d", rows, cols)
	}

	if inARow < 1 || (inARow > rows && inARow > cols) {
		return nil, errors.Errorf("gomoku: %d in a row is unachievable on a %dx%d board",
			inARow, rows, cols)
	}

	return &Game{rows: rows, cols: cols, inARow: inARow}, nil
}

// Name implements spiel.Game.
func (g *Game) Name() string {
	return "gomoku"
}

// NumPlayers implements spiel.Game.
func (g *Game) NumPlayers() int {
	return 2
}

// NewInitialState implements spiel.Game.
func (g *Game) NewInitialState() spiel.State {
	return &state{
		game:   g,
		board:  make([]cell, g.rows*g.cols),
		winner: -1,
	}
}

// state is a board position together with the move history that produced
// it. Actions are board points numbered row-major from the top left.
type state struct {
	game    *Game
	board   []cell
	history []spiel.Action
	winner  spiel.Player // -1 while nobody has won
}

var _ spiel.State = (*state)(nil)

// CurrentPlayer implements spiel.State.
func (s *state) CurrentPlayer() spiel.Player {
	if s.IsTerminal() {
		return spiel.TerminalPlayerID
	}

	return spiel.Player(len(s.history) % 2)
}

// LegalActions implements spiel.State.
func (s *state) LegalActions() []spiel.Action {
	if s.IsTerminal() {
		return nil
	}

	actions := make([]spiel.Action, 0, len(s.board)-len(s.history))
	for point, c := range s.board {
		if c == empty {
			actions = append(actions, spiel.Action(point))
		}
	}

	return actions
}

// ChanceOutcomes implements spiel.State. Gomoku has no chance nodes.
func (s *state) ChanceOutcomes() []spiel.ChanceOutcome {
	panic(fmt.Errorf("gomoku: ChanceOutcomes called at non-chance state %v", s))
}

// Child implements spiel.State.
func (s *state) Child(action spiel.Action) spiel.State {
	point := int(action)
	if point < 0 || point >= len(s.board) || s.board[point] != empty {
		panic(fmt.Errorf("gomoku: illegal move %d at %v", action, s))
	}

	mover := s.CurrentPlayer()
	child := &state{
		game:    s.game,
		board:   append([]cell(nil), s.board...),
		history: append(append([]spiel.Action(nil), s.history...), action),
		winner:  -1,
	}
	child.board[point] = playerCell(mover)
	if child.lineThrough(point) {
		child.winner = mover
	}

	return child
}

// IsTerminal implements spiel.State.
func (s *state) IsTerminal() bool {
	return s.winner >= 0 || len(s.history) == len(s.board)
}

// Returns implements spiel.State.
func (s *state) Returns() []float64 {
	if !s.IsTerminal() {
		panic(fmt.Errorf("gomoku: Returns called at non-terminal state %v", s))
	}

	switch s.winner {
	case 0:
		return []float64{1, -1}
	case 1:
		return []float64{-1, 1}
	default:
		return []float64{0, 0}
	}
}

// InformationStateKey implements spiel.State. Gomoku is perfect
// information with perfect recall, so the key is the move history, which
// both players observe in full.
func (s *state) InformationStateKey(player spiel.Player) string {
	moves := make([]string, len(s.history))
	for i, m := range s.history {
		moves[i] = strconv.Itoa(int(m))
	}

	return strings.Join(moves, ",")
}

// String implements fmt.Stringer.
func (s *state) String() string {
	var sb strings.Builder
	for r := 0; r < s.game.rows; r++ {
		for c := 0; c < s.game.cols; c++ {
			sb.WriteString(cellStr[s.board[r*s.game.cols+c]])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// BoardAt returns the cell owner at (row, col): -1 if empty, else the
// player index.
func (s *state) BoardAt(row, col int) int {
	switch s.board[row*s.game.cols+col] {
	case black:
		return 0
	case white:
		return 1
	default:
		return -1
	}
}

func playerCell(player spiel.Player) cell {
	if player == 0 {
		return black
	}

	return white
}

// lineThrough reports whether the stone at point completes a run of
// inARow stones of its own color in any of the four directions.
func (s *state) lineThrough(point int) bool {
	row, col := point/s.game.cols, point%s.game.cols
	color := s.board[point]
	dirs := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for _, d := range dirs {
		count := 1
		count += s.runLength(row, col, d[0], d[1], color)
		count += s.runLength(row, col, -d[0], -d[1], color)
		if count >= s.game.inARow {
			return true
		}
	}

	return false
}

// runLength counts consecutive stones of the given color starting one
// step away from (row, col) in direction (dr, dc).
func (s *state) runLength(row, col, dr, dc int, color cell) int {
	count := 0
	for {
		row += dr
		col += dc
		if row < 0 || row >= s.game.rows || col < 0 || col >= s.game.cols {
			return count
		}

		if s.board[row*s.game.cols+col] != color {
			return count
		}

		count++
	}
}
