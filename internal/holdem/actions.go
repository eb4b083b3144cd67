package holdem

import "math/rand/v2"

// LegalActions lists the actions available to the player on turn. It is
// empty once the hand has reached Showdown or Terminal.
func LegalActions(s *State) []Action {
	if s.Street == Showdown || s.Street == Terminal {
		return nil
	}
	p := s.ToAct
	cands := bettingcoreLegalCandidates(s, p)
	toCall := max(0, s.CurrentBet-s.CommittedThisRound[p])

	actions := make([]Action, len(cands))
	for i, c := range cands {
		actions[i] = Action{
			Player:       p,
			Type:         c.Type,
			Amount:       c.Amount,
			ToCallBefore: toCall,
			Street:       s.Street,
		}
	}
	return actions
}

// ApplyAction validates a against the current legal set and, if legal,
// applies it in place. It reports whether the action was applied.
func ApplyAction(s *State, a Action) bool {
	if !isLegal(s, a) {
		return false
	}
	s.History = append(s.History, a)
	p := a.Player

	switch a.Type {
	case Fold:
		s.Folded[p] = true
		s.Street = Terminal

	case Check:
		if roundClosed(s) {
			advanceStreet(s)
		} else {
			s.ToAct = 1 - p
		}

	case Call:
		amt := min(a.Amount, s.Stacks[p])
		commit(s, p, amt)
		if s.Stacks[0] == 0 || s.Stacks[1] == 0 {
			dealRemainingBoardAndFinish(s)
		} else if roundClosed(s) {
			advanceStreet(s)
		} else {
			s.ToAct = 1 - p
			s.BetToCall = max(0, s.CurrentBet-s.CommittedThisRound[s.ToAct])
		}

	case Bet, Raise:
		prior := s.CurrentBet
		commit(s, p, a.Amount)
		if s.CommittedThisRound[p] > s.CurrentBet {
			s.CurrentBet = s.CommittedThisRound[p]
		}
		s.LastBetSize = max(1, s.CurrentBet-prior)
		// Even an all-in bet/raise leaves the opponent to act: they can
		// still fold or call. Stacks hitting zero only forces the board
		// out once the Call branch above matches the shove.
		s.ToAct = 1 - p
		s.BetToCall = max(0, s.CurrentBet-s.CommittedThisRound[s.ToAct])
	}
	return true
}

func commit(s *State, p, amt int) {
	s.Stacks[p] -= amt
	s.CommittedThisRound[p] += amt
	s.CommittedTotal[p] += amt
	s.Pot += amt
}

func isLegal(s *State, a Action) bool {
	if a.Player != s.ToAct {
		return false
	}
	for _, cand := range LegalActions(s) {
		if cand.Type == a.Type && cand.Amount == a.Amount {
			return true
		}
	}
	return false
}

// RandomLegalAction draws uniformly among the actions legal for the player
// on turn, consuming rng. It returns the zero Action if none are legal.
func RandomLegalAction(s *State, rng *rand.Rand) Action {
	actions := LegalActions(s)
	if len(actions) == 0 {
		return Action{}
	}
	return actions[rng.IntN(len(actions))]
}
