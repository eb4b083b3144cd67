package holdem

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewPCG(1337, 1337))
}

func findAction(t *testing.T, s *State, typ ActionType, amount int) Action {
	t.Helper()
	for _, a := range LegalActions(s) {
		if a.Type == typ && a.Amount == amount {
			return a
		}
	}
	t.Fatalf("no legal action %v(%d) among %+v", typ, amount, LegalActions(s))
	return Action{}
}

func TestS1SBOpenFold(t *testing.T) {
	s := NewHand(newRng(), 1000, 5, 10)
	fold := findAction(t, s, Fold, 0)
	require.True(t, ApplyAction(s, fold))

	require.Equal(t, Terminal, s.Street)
	result := TerminalPayoff(s)
	require.True(t, result.IsTerminal)
	require.Equal(t, "fold", result.Reason)
	require.Equal(t, 1, result.Winner)
	require.Equal(t, [2]int{-5, 5}, result.ChipDelta)
}

func TestS2LimpCheckThrough(t *testing.T) {
	s := NewHand(newRng(), 1000, 5, 10)
	require.True(t, ApplyAction(s, findAction(t, s, Call, 5)))
	require.True(t, ApplyAction(s, findAction(t, s, Check, 0)))

	require.Equal(t, Flop, s.Street)
	require.Len(t, s.Board, 3)
	require.Equal(t, [2]int{0, 0}, s.CommittedThisRound)
	require.Equal(t, 0, s.CurrentBet)
	require.Equal(t, 0, s.ToAct)
	require.Equal(t, 20, s.Pot)
}

func TestS3PreflopRaiseThenFold(t *testing.T) {
	s := NewHand(newRng(), 1000, 5, 10)
	require.True(t, ApplyAction(s, findAction(t, s, Call, 5)))
	require.True(t, ApplyAction(s, findAction(t, s, Bet, 20)))
	require.Equal(t, 30, s.CurrentBet)

	require.True(t, ApplyAction(s, findAction(t, s, Fold, 0)))
	require.Equal(t, Terminal, s.Street)

	result := TerminalPayoff(s)
	require.Equal(t, "fold", result.Reason)
	require.Equal(t, 1, result.Winner)
	require.Equal(t, -10, result.ChipDelta[0])
	require.Equal(t, 10, result.ChipDelta[1])
}

func TestS4AllInPreflopForcesShowdown(t *testing.T) {
	s := NewHand(newRng(), 1000, 5, 10)
	require.True(t, ApplyAction(s, findAction(t, s, Raise, 995)))
	require.Equal(t, 0, s.Stacks[0])

	call := findAction(t, s, Call, 990)
	require.True(t, ApplyAction(s, call))

	require.Equal(t, Terminal, s.Street)
	require.Equal(t, 0, s.Stacks[1])
	require.Len(t, s.Board, 5)

	result := TerminalPayoff(s)
	require.Equal(t, "showdown", result.Reason)
	require.Equal(t, 0, result.ChipDelta[0]+result.ChipDelta[1])
	if result.Winner == -1 {
		require.Equal(t, 0, result.ChipDelta[0])
		require.Equal(t, 0, result.ChipDelta[1])
	} else {
		require.Equal(t, 1000, abs(result.ChipDelta[0]))
		require.Equal(t, 1000, abs(result.ChipDelta[1]))
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestChipConservationAcrossRandomHands(t *testing.T) {
	rng := newRng()
	for hand := 0; hand < 50; hand++ {
		s := NewHand(rng, 1000, 5, 10)
		total := [2]int{s.Stacks[0] + s.CommittedTotal[0], s.Stacks[1] + s.CommittedTotal[1]}

		for i := 0; i < 200 && s.Street != Terminal; i++ {
			a := RandomLegalAction(s, rng)
			require.True(t, ApplyAction(s, a))

			require.Equal(t, s.Pot, s.CommittedTotal[0]+s.CommittedTotal[1])
			require.GreaterOrEqual(t, s.Stacks[0], 0)
			require.GreaterOrEqual(t, s.Stacks[1], 0)
			require.Equal(t, total[0], s.Stacks[0]+s.CommittedTotal[0])
			require.Equal(t, total[1], s.Stacks[1]+s.CommittedTotal[1])

			if s.Street != Terminal && s.Street != Showdown {
				want := max(0, s.CurrentBet-s.CommittedThisRound[s.ToAct])
				require.Equal(t, want, s.BetToCall)
			}
		}

		require.Equal(t, Terminal, s.Street, "hand %d did not reach terminal within 200 actions", hand)
		result := TerminalPayoff(s)
		require.True(t, result.IsTerminal)
		require.Equal(t, 0, result.ChipDelta[0]+result.ChipDelta[1])
		if s.Folded[0] != s.Folded[1] {
			require.Equal(t, "fold", result.Reason)
		}
	}
}

func TestLegalActionsEmptyOnlyAtTerminalOrShowdown(t *testing.T) {
	s := NewHand(newRng(), 1000, 5, 10)
	require.NotEmpty(t, LegalActions(s))

	require.True(t, ApplyAction(s, findAction(t, s, Fold, 0)))
	require.Empty(t, LegalActions(s))
}

func TestApplyActionRejectsIllegalAction(t *testing.T) {
	s := NewHand(newRng(), 1000, 5, 10)
	before := *s
	ok := ApplyAction(s, Action{Player: 0, Type: Check, Amount: 0})
	require.False(t, ok)
	require.Equal(t, before.Street, s.Street)
	require.Equal(t, before.Pot, s.Pot)
}

func TestShortStackOffersAllInRaiseNotBet(t *testing.T) {
	s := NewHand(newRng(), 20, 5, 10)
	actions := LegalActions(s)

	var sawAllInRaise bool
	for _, a := range actions {
		require.NotEqual(t, Check, a.Type)
		require.NotEqual(t, Bet, a.Type)
		if a.Type == Raise && a.Amount == s.Stacks[0] {
			sawAllInRaise = true
		}
	}
	require.True(t, sawAllInRaise, "expected an all-in raise among %+v", actions)
}
