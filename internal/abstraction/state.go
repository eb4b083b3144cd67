package abstraction

import "github.com/nabilervatra/minipokersolver/internal/config"

// InitialState builds the root TreeState the way new_hand builds State,
// but from abstraction constants instead of fixed defaults. acted_this_round
// starts {false, false}: the forced blind posts are not voluntary acts, so
// neither player has "acted" yet, which is what lets the preflop big-blind
// option close correctly once both players have actually acted.
func InitialState(a *config.BettingAbstraction) TreeState {
	return TreeState{
		Street:             Preflop,
		Pot:                a.SmallBlind + a.BigBlind,
		Stacks:             [2]int{a.StartingStack - a.SmallBlind, a.StartingStack - a.BigBlind},
		ToAct:              0,
		BetToCall:          a.BigBlind - a.SmallBlind,
		LastBetSize:        a.BigBlind - a.SmallBlind,
		CurrentBet:         a.BigBlind,
		CommittedThisRound: [2]int{a.SmallBlind, a.BigBlind},
		CommittedTotal:     [2]int{a.SmallBlind, a.BigBlind},
	}
}

func advanceStreet(s TreeState) TreeState {
	s.BetToCall = 0
	s.CurrentBet = 0
	s.LastBetSize = 0
	s.CommittedThisRound = [2]int{0, 0}
	s.ActedThisRound = [2]bool{false, false}
	s.RaisesThisStreet = 0

	switch s.Street {
	case Preflop:
		s.Street = Flop
	case Flop:
		s.Street = Turn
	case Turn:
		s.Street = River
	case River:
		s.Street = Terminal
	}
	s.ToAct = 0
	return s
}

// roundClosed uses the acted-flag rule: closed iff both flags are set and
// commitments match. Unlike the hand engine's history peek, this needs no
// street-scoped scan — the flags are reset on every street advance and on
// every aggression.
func roundClosed(s TreeState) bool {
	return s.ActedThisRound[0] && s.ActedThisRound[1] && s.CommittedThisRound[0] == s.CommittedThisRound[1]
}
