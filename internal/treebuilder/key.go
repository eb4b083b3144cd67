package treebuilder

import (
	"fmt"

	"github.com/nabilervatra/minipokersolver/internal/abstraction"
)

// encode deterministically renders every TreeState field that can
// distinguish legal-action sets or future subtrees. Two states with the
// same encoding are interchangeable as far as the rest of the tree is
// concerned.
func encode(s abstraction.TreeState) string {
	return fmt.Sprintf(
		"%d|%d|%d,%d|%d|%d|%d|%d|%d,%d|%d,%d|%d,%d|%d,%d|%d",
		s.Street, s.Pot, s.Stacks[0], s.Stacks[1], s.ToAct, s.BetToCall, s.LastBetSize, s.CurrentBet,
		s.CommittedThisRound[0], s.CommittedThisRound[1],
		s.CommittedTotal[0], s.CommittedTotal[1],
		boolInt(s.Folded[0]), boolInt(s.Folded[1]),
		boolInt(s.ActedThisRound[0]), boolInt(s.ActedThisRound[1]),
		s.RaisesThisStreet,
	)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func decisionKey(s abstraction.TreeState) string { return "D:" + encode(s) }
func chanceKey(s abstraction.TreeState) string   { return "C:" + encode(s) }

func terminalKey(s abstraction.TreeState, kind abstraction.TerminalKind) string {
	if kind == abstraction.FoldTerminal {
		return "T:F:" + encode(s)
	}
	return "T:S:" + encode(s)
}
