// Package kuhn implements N-player Kuhn poker (2 to 10 players) as an
// extensive-form game tree.
//
// Each of the N players antes one chip and is dealt one card from a deck
// of N+1 cards. Starting with player 0, each player in turn passes or
// bets one chip. Once somebody bets, every other player responds exactly
// once, calling (bet) or folding (pass). If nobody bets, the highest card
// wins the antes at showdown; otherwise the highest card among the
// players who put in a bet wins the pot.
package kuhn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	spiel "github.com/wengminhua/open-spiel"
)

// Betting actions. During the deal phase the chance actions are the card
// values themselves.
const (
	Pass spiel.Action = 0
	Bet  spiel.Action = 1
)

// Game is an N-player Kuhn poker game definition.
type Game struct {
	numPlayers int
}

var _ spiel.Game = (*Game)(nil)

// NewGame creates a Kuhn poker game for the given number of players.
func NewGame(numPlayers int) (*Game, error) {
	if numPlayers < 2 || numPlayers > 10 {
		return nil, errors.Errorf("kuhn: numPlayers must be in [2, 10], got %d", numPlayers)
	}

	return &Game{numPlayers: numPlayers}, nil
}

// Name implements spiel.Game.
func (g *Game) Name() string {
	return "kuhn_poker"
}

// NumPlayers implements spiel.Game.
func (g *Game) NumPlayers() int {
	return g.numPlayers
}

// NewInitialState implements spiel.Game.
func (g *Game) NewInitialState() spiel.State {
	return &state{game: g}
}

// state is a Kuhn poker history: the cards dealt so far followed by the
// betting sequence.
type state struct {
	game    *Game
	cards   []int          // cards[i] is player i's card
	betting []spiel.Action // Pass/Bet sequence
}

var _ spiel.State = (*state)(nil)

// CurrentPlayer implements spiel.State.
func (s *state) CurrentPlayer() spiel.Player {
	if len(s.cards) < s.game.numPlayers {
		return spiel.ChancePlayerID
	}

	if s.IsTerminal() {
		return spiel.TerminalPlayerID
	}

	return spiel.Player(len(s.betting) % s.game.numPlayers)
}

// LegalActions implements spiel.State.
func (s *state) LegalActions() []spiel.Action {
	if s.IsTerminal() {
		return nil
	}

	if len(s.cards) < s.game.numPlayers {
		return s.remainingCards()
	}

	return []spiel.Action{Pass, Bet}
}

// ChanceOutcomes implements spiel.State.
func (s *state) ChanceOutcomes() []spiel.ChanceOutcome {
	if len(s.cards) >= s.game.numPlayers {
		panic(fmt.Errorf("kuhn: ChanceOutcomes called at non-chance state %v", s))
	}

	remaining := s.remainingCards()
	p := 1.0 / float64(len(remaining))
	outcomes := make([]spiel.ChanceOutcome, len(remaining))
	for i, card := range remaining {
		outcomes[i] = spiel.ChanceOutcome{Action: card, Prob: p}
	}

	return outcomes
}

// Child implements spiel.State.
func (s *state) Child(action spiel.Action) spiel.State {
	child := &state{
		game:    s.game,
		cards:   append([]int(nil), s.cards...),
		betting: append([]spiel.Action(nil), s.betting...),
	}

	if len(s.cards) < s.game.numPlayers {
		child.cards = append(child.cards, int(action))
	} else {
		child.betting = append(child.betting, action)
	}

	return child
}

// IsTerminal implements spiel.State.
func (s *state) IsTerminal() bool {
	if len(s.cards) < s.game.numPlayers {
		return false
	}

	n := s.game.numPlayers
	firstBettor := s.firstBettor()
	if firstBettor == -1 {
		return len(s.betting) == n
	}

	return len(s.betting) == firstBettor+n
}

// Returns implements spiel.State.
func (s *state) Returns() []float64 {
	if !s.IsTerminal() {
		panic(fmt.Errorf("kuhn: Returns called at non-terminal state %v", s))
	}

	n := s.game.numPlayers
	contribution := make([]float64, n)
	inShowdown := make([]bool, n)
	for p := 0; p < n; p++ {
		contribution[p] = 1.0 // ante
	}

	firstBettor := s.firstBettor()
	if firstBettor == -1 {
		for p := 0; p < n; p++ {
			inShowdown[p] = true
		}
	} else {
		for i, action := range s.betting {
			if action == Bet {
				p := i % n
				contribution[p] = 2.0
				inShowdown[p] = true
			}
		}
	}

	pot := 0.0
	winner := -1
	for p := 0; p < n; p++ {
		pot += contribution[p]
		if inShowdown[p] && (winner == -1 || s.cards[p] > s.cards[winner]) {
			winner = p
		}
	}

	returns := make([]float64, n)
	for p := 0; p < n; p++ {
		if p == winner {
			returns[p] = pot - contribution[p]
		} else {
			returns[p] = -contribution[p]
		}
	}

	return returns
}

// InformationStateKey implements spiel.State. The key is the observing
// player's private card followed by the public betting sequence.
func (s *state) InformationStateKey(player spiel.Player) string {
	var sb strings.Builder
	if int(player) < len(s.cards) {
		sb.WriteString(strconv.Itoa(s.cards[player]))
	} else {
		sb.WriteByte('?')
	}

	sb.WriteString(s.bettingString())
	return sb.String()
}

// String implements fmt.Stringer.
func (s *state) String() string {
	cards := make([]string, len(s.cards))
	for i, c := range s.cards {
		cards[i] = strconv.Itoa(c)
	}

	return fmt.Sprintf("Cards: [%s] Betting: %q", strings.Join(cards, " "), s.bettingString())
}

// firstBettor returns the index in the betting sequence of the first Bet,
// or -1 if nobody has bet. Since betting starts after the deal and
// proceeds in player order, this index is also the betting player.
func (s *state) firstBettor() int {
	for i, action := range s.betting {
		if action == Bet {
			return i
		}
	}

	return -1
}

func (s *state) remainingCards() []spiel.Action {
	dealt := make(map[int]bool, len(s.cards))
	for _, c := range s.cards {
		dealt[c] = true
	}

	var remaining []spiel.Action
	for c := 0; c <= s.game.numPlayers; c++ {
		if !dealt[c] {
			remaining = append(remaining, spiel.Action(c))
		}
	}

	return remaining
}

func (s *state) bettingString() string {
	var sb strings.Builder
	for _, action := range s.betting {
		if action == Bet {
			sb.WriteByte('b')
		} else {
			sb.WriteByte('p')
		}
	}

	return sb.String()
}
