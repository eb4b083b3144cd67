package holdem

import (
	"math/rand/v2"

	"github.com/nabilervatra/minipokersolver/internal/card"
)

// NewHand deals a fresh heads-up hand: posts blinds, draws two hole cards
// per player via rejection sampling, and leaves player 0 (the small blind)
// to act first. rng is retained on State and consumed by every later deal
// this hand requires.
func NewHand(rng *rand.Rand, startingStack, smallBlind, bigBlind int) *State {
	s := &State{
		Street:             Preflop,
		Stacks:             [2]int{startingStack - smallBlind, startingStack - bigBlind},
		ToAct:              0,
		CurrentBet:         bigBlind,
		BetToCall:          bigBlind - smallBlind,
		LastBetSize:        bigBlind - smallBlind,
		Pot:                smallBlind + bigBlind,
		CommittedThisRound: [2]int{smallBlind, bigBlind},
		CommittedTotal:     [2]int{smallBlind, bigBlind},
		rng:                rng,
	}
	s.HoleCards[0] = [2]card.Card{card.Draw(rng, &s.Used), card.Draw(rng, &s.Used)}
	s.HoleCards[1] = [2]card.Card{card.Draw(rng, &s.Used), card.Draw(rng, &s.Used)}
	return s
}

func (s *State) dealBoard(n int) {
	if n <= 0 {
		return
	}
	s.Board = append(s.Board, card.DrawN(s.rng, &s.Used, n)...)
}

// advanceStreet resets the per-round betting fields and deals the next
// street's board cards. Reaching Showdown from River is a single
// transitional step straight into Terminal: by the time a hand needs
// settling, the full board already exists.
func advanceStreet(s *State) {
	s.BetToCall = 0
	s.CurrentBet = 0
	s.LastBetSize = 0
	s.CommittedThisRound = [2]int{0, 0}

	switch s.Street {
	case Preflop:
		s.dealBoard(3)
		s.Street = Flop
		s.ToAct = 0
	case Flop:
		s.dealBoard(1)
		s.Street = Turn
		s.ToAct = 0
	case Turn:
		s.dealBoard(1)
		s.Street = River
		s.ToAct = 0
	case River:
		s.Street = Showdown
		s.dealBoard(5 - len(s.Board))
		s.Street = Terminal
	}
}

// dealRemainingBoardAndFinish is taken when a stack hits zero: the hand is
// already decided by the chips committed, so the remaining board is dealt
// at once and the hand moves straight to Terminal without further action.
func dealRemainingBoardAndFinish(s *State) {
	s.dealBoard(5 - len(s.Board))
	s.Street = Terminal
}

// roundClosed reports whether, given the action just appended to History,
// both players have matched commitments this round and both have acted
// since the last bet or raise on the current street. Scanning backward
// from the most recent entry and stopping at (and including) the last
// aggression, or at the street boundary, is what makes this correct for
// the preflop big-blind option: the small blind's opening call and the
// big blind's check are both counted, so the street closes exactly as it
// would postflop after two checks in a row.
func roundClosed(s *State) bool {
	if s.CommittedThisRound[0] != s.CommittedThisRound[1] {
		return false
	}
	acted := map[int]bool{}
	for i := len(s.History) - 1; i >= 0; i-- {
		a := s.History[i]
		if a.Street != s.Street {
			break
		}
		acted[a.Player] = true
		if a.Type == Bet || a.Type == Raise {
			break
		}
	}
	return len(acted) == 2
}
