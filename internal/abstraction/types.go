// Package abstraction implements the cards-free twin of the hand engine:
// a TreeState that tracks betting progress without dealt cards or
// history, driven by acted_this_round flags instead of history
// introspection, so the tree builder can enumerate it without chance
// realizations.
package abstraction

import "github.com/nabilervatra/minipokersolver/internal/bettingcore"

// Street omits Showdown: on the abstraction's River, closure goes
// straight to Terminal since there are no cards to show down.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Terminal
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

type ActionType = bettingcore.ActionType

const (
	Fold  = bettingcore.Fold
	Check = bettingcore.Check
	Call  = bettingcore.Call
	Bet   = bettingcore.Bet
	Raise = bettingcore.Raise
)

// Action mirrors holdem.Action without its ToCallBefore and Street fields;
// the abstraction never needs to peek at history.
type Action struct {
	Player int
	Type   ActionType
	Amount int
}

// TreeState is State with cards and history removed and acted-flag
// bookkeeping added in their place.
type TreeState struct {
	Street      Street
	Pot         int
	Stacks      [2]int
	ToAct       int
	BetToCall   int
	LastBetSize int
	CurrentBet  int

	CommittedThisRound [2]int
	CommittedTotal     [2]int
	Folded             [2]bool

	ActedThisRound   [2]bool
	RaisesThisStreet int
}

// TerminalKind distinguishes a fold terminal from a showdown terminal.
type TerminalKind int

const (
	NotTerminal TerminalKind = iota
	FoldTerminal
	ShowdownTerminal
)

func (k TerminalKind) String() string {
	switch k {
	case FoldTerminal:
		return "fold"
	case ShowdownTerminal:
		return "showdown"
	default:
		return "none"
	}
}

// Transition is the result of applying an action to a TreeState. ViaChance
// signals that the tree builder should insert a Chance node before
// State becomes available as a Decision; IsTerminal signals no further
// Decision exists at all.
type Transition struct {
	State       TreeState
	ViaChance   bool
	IsTerminal  bool
	TerminalKind TerminalKind
}
