package abstraction

import (
	"testing"

	"github.com/nabilervatra/minipokersolver/internal/config"
	"github.com/stretchr/testify/require"
)

func findAction(t *testing.T, actions []Action, typ ActionType, amount int) Action {
	t.Helper()
	for _, a := range actions {
		if a.Type == typ && a.Amount == amount {
			return a
		}
	}
	t.Fatalf("no action %v(%d) among %+v", typ, amount, actions)
	return Action{}
}

func TestInitialStateActedFlagsClear(t *testing.T) {
	s := InitialState(config.DefaultAbstraction())
	require.False(t, s.ActedThisRound[0])
	require.False(t, s.ActedThisRound[1])
	require.Equal(t, 10, s.CurrentBet)
	require.Equal(t, 5, s.BetToCall)
}

func TestLimpCheckClosesPreflop(t *testing.T) {
	a := config.DefaultAbstraction()
	s := InitialState(a)

	callAct := findAction(t, LegalActions(s, a), Call, 5)
	tr := ApplyAction(s, callAct, a)
	require.False(t, tr.IsTerminal)
	require.False(t, tr.ViaChance)
	s = tr.State

	checkAct := findAction(t, LegalActions(s, a), Check, 0)
	tr = ApplyAction(s, checkAct, a)

	require.True(t, tr.ViaChance)
	require.False(t, tr.IsTerminal)
	require.Equal(t, Flop, tr.State.Street)
	require.Equal(t, [2]int{0, 0}, tr.State.CommittedThisRound)
	require.False(t, tr.State.ActedThisRound[0])
	require.False(t, tr.State.ActedThisRound[1])
}

func TestRaiseResetsOpponentActedFlag(t *testing.T) {
	a := config.DefaultAbstraction()
	s := InitialState(a)

	tr := ApplyAction(s, findAction(t, LegalActions(s, a), Call, 5), a)
	s = tr.State
	require.True(t, s.ActedThisRound[0])

	betAct := findAction(t, LegalActions(s, a), Bet, 20)
	tr = ApplyAction(s, betAct, a)
	require.True(t, tr.State.ActedThisRound[1])
	require.False(t, tr.State.ActedThisRound[0])
}

func TestMaxRaisesPerStreetGatesFurtherRaises(t *testing.T) {
	a := config.DefaultAbstraction()
	a.MaxRaisesPerStreet = 0
	s := InitialState(a)

	for _, act := range LegalActions(s, a) {
		require.NotEqual(t, Raise, act.Type)
	}
}

func TestRiverCloseReachesTerminalWithoutChance(t *testing.T) {
	a := config.DefaultAbstraction()
	s := InitialState(a)
	s.Street = River
	s.ActedThisRound = [2]bool{false, false}
	s.CommittedThisRound = [2]int{0, 0}
	s.CurrentBet = 0
	s.BetToCall = 0

	tr := ApplyAction(s, Action{Player: 0, Type: Check}, a)
	require.False(t, tr.IsTerminal)
	s = tr.State

	tr = ApplyAction(s, Action{Player: 1, Type: Check}, a)
	require.True(t, tr.IsTerminal)
	require.False(t, tr.ViaChance)
	require.Equal(t, ShowdownTerminal, tr.TerminalKind)
	require.Equal(t, Terminal, tr.State.Street)
}
