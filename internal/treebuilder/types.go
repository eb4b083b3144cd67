// Package treebuilder expands a BettingAbstraction into a memoised,
// node-indexed DAG of Decision, Chance, and Terminal nodes under a hard
// node budget. The source calls the result a "tree"; because identical
// TreeStates reached by different action sequences collapse to one node,
// the actual shape is a DAG, and that collapsing is the point — it is
// what keeps the node count tractable.
package treebuilder

import "github.com/nabilervatra/minipokersolver/internal/abstraction"

// NodeType is the kind of a TreeNode.
type NodeType int

const (
	Decision NodeType = iota
	Chance
	Terminal
)

func (t NodeType) String() string {
	switch t {
	case Decision:
		return "decision"
	case Chance:
		return "chance"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// TerminalData is the payoff-relevant content of a Terminal node. Showdown
// terminals carry Winner = -1 and a zero ChipDelta: resolving them is a
// later solver's job, not the builder's.
type TerminalData struct {
	Kind           abstraction.TerminalKind
	Pot            int
	CommittedTotal [2]int
	Winner         int
	ChipDelta      [2]int
}

// TreeNode is one node of the built DAG. For Decision nodes, Actions[k]
// corresponds to Children[k]. Chance nodes have exactly one child.
// Terminal nodes have none.
type TreeNode struct {
	ID       int
	Type     NodeType
	Key      string
	State    abstraction.TreeState
	Actions  []abstraction.Action
	Children []int
	Terminal *TerminalData
}

// GameTree is the builder's output: nodes[i].id == i for every i.
type GameTree struct {
	RootID int
	Nodes  []TreeNode
}

// Summary tallies node kinds and terminal outcomes across a built tree,
// the supplemented counterpart to the CLI's per-hand fold/showdown tally.
type Summary struct {
	DecisionNodes    int
	ChanceNodes      int
	FoldTerminals    int
	ShowdownTerminals int
}

// Summarize walks a built tree and counts node kinds.
func Summarize(tree *GameTree) Summary {
	var s Summary
	for _, n := range tree.Nodes {
		switch n.Type {
		case Decision:
			s.DecisionNodes++
		case Chance:
			s.ChanceNodes++
		case Terminal:
			switch n.Terminal.Kind {
			case abstraction.FoldTerminal:
				s.FoldTerminals++
			case abstraction.ShowdownTerminal:
				s.ShowdownTerminals++
			}
		}
	}
	return s
}
