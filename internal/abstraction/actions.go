package abstraction

import (
	"github.com/nabilervatra/minipokersolver/internal/bettingcore"
	"github.com/nabilervatra/minipokersolver/internal/config"
)

// LegalActions lists the actions available to the player on turn under the
// given abstraction's sizing and raise cap. Empty at Terminal.
func LegalActions(s TreeState, a *config.BettingAbstraction) []Action {
	if s.Street == Terminal {
		return nil
	}
	p := s.ToAct
	call := max(0, s.CurrentBet-s.CommittedThisRound[p])

	var sizes []float64
	if call > 0 {
		sizes = a.RaiseSizesByStreet[s.Street]
	} else {
		sizes = a.BetSizesByStreet[s.Street]
	}
	raisesAllowed := s.RaisesThisStreet < a.MaxRaisesPerStreet

	cands := bettingcore.LegalCandidates(s.Pot, s.Stacks[p], s.CurrentBet, s.CommittedThisRound[p], s.LastBetSize, sizes, a.AllowAllIn, raisesAllowed)
	actions := make([]Action, len(cands))
	for i, c := range cands {
		actions[i] = Action{Player: p, Type: c.Type, Amount: c.Amount}
	}
	return actions
}

// ApplyAction computes the Transition reached by applying act to s. It does
// not mutate s: the tree builder branches from one parent state into many
// children, so every application returns a fresh TreeState.
func ApplyAction(s TreeState, act Action, a *config.BettingAbstraction) Transition {
	p := act.Player

	switch act.Type {
	case Fold:
		s.Folded[p] = true
		return Transition{State: s, IsTerminal: true, TerminalKind: FoldTerminal}

	case Check:
		s.ActedThisRound[p] = true
		if roundClosed(s) {
			return closeRound(s)
		}
		s.ToAct = 1 - p
		return Transition{State: s}

	case Call:
		s = commit(s, p, act.Amount)
		s.ActedThisRound[p] = true
		if s.Stacks[0] == 0 || s.Stacks[1] == 0 {
			return Transition{State: s, IsTerminal: true, TerminalKind: ShowdownTerminal}
		}
		if roundClosed(s) {
			return closeRound(s)
		}
		s.ToAct = 1 - p
		s.BetToCall = max(0, s.CurrentBet-s.CommittedThisRound[s.ToAct])
		return Transition{State: s}

	case Bet, Raise:
		prior := s.CurrentBet
		s = commit(s, p, act.Amount)
		if s.CommittedThisRound[p] > s.CurrentBet {
			s.CurrentBet = s.CommittedThisRound[p]
		}
		s.LastBetSize = max(1, s.CurrentBet-prior)
		s.RaisesThisStreet++
		s.ActedThisRound[p] = true
		s.ActedThisRound[1-p] = false
		// An all-in bet/raise still leaves the opponent a fold/call
		// decision; the tree must keep both branches reachable.
		s.ToAct = 1 - p
		s.BetToCall = max(0, s.CurrentBet-s.CommittedThisRound[s.ToAct])
		return Transition{State: s}
	}

	return Transition{State: s}
}

// closeRound advances the street (or reaches Terminal from River) and
// reports via_chance for every advance except River's close, which the
// builder handles as a direct Terminal rather than inserting a Chance
// node for a deal that decides nothing further.
func closeRound(s TreeState) Transition {
	wasRiver := s.Street == River
	s = advanceStreet(s)
	if wasRiver {
		return Transition{State: s, IsTerminal: true, TerminalKind: ShowdownTerminal}
	}
	return Transition{State: s, ViaChance: true}
}

func commit(s TreeState, p, amt int) TreeState {
	s.Stacks[p] -= amt
	s.CommittedThisRound[p] += amt
	s.CommittedTotal[p] += amt
	s.Pot += amt
	return s
}
