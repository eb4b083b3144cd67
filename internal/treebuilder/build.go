package treebuilder

import (
	"fmt"

	"github.com/nabilervatra/minipokersolver/internal/abstraction"
	"github.com/nabilervatra/minipokersolver/internal/config"
)

// Build expands abstraction.InitialState(a) into a memoised DAG under maxNodes. It
// fails fatally once a new node would exceed the budget: callers are
// expected to shrink the abstraction, not raise the limit blindly.
func Build(a *config.BettingAbstraction, maxNodes int) (*GameTree, error) {
	b := &builder{a: a, maxNodes: maxNodes, memo: make(map[string]int)}
	root := abstraction.InitialState(a)
	rootID, err := b.visitDecision(root)
	if err != nil {
		return nil, err
	}
	return &GameTree{RootID: rootID, Nodes: b.nodes}, nil
}

type builder struct {
	a        *config.BettingAbstraction
	maxNodes int
	memo     map[string]int
	nodes    []TreeNode
}

func (b *builder) reserve(n TreeNode) (int, error) {
	if len(b.nodes) >= b.maxNodes {
		return 0, fmt.Errorf("treebuilder: node budget of %d exceeded", b.maxNodes)
	}
	n.ID = len(b.nodes)
	b.nodes = append(b.nodes, n)
	b.memo[n.Key] = n.ID
	return n.ID, nil
}

func (b *builder) visitDecision(s abstraction.TreeState) (int, error) {
	key := decisionKey(s)
	if id, ok := b.memo[key]; ok {
		return id, nil
	}

	actions := abstraction.LegalActions(s, b.a)
	id, err := b.reserve(TreeNode{Type: Decision, Key: key, State: s, Actions: actions})
	if err != nil {
		return 0, err
	}

	children := make([]int, len(actions))
	for i, act := range actions {
		tr := abstraction.ApplyAction(s, act, b.a)
		childID, err := b.visitTransition(tr)
		if err != nil {
			return 0, err
		}
		children[i] = childID
	}
	b.nodes[id].Children = children
	return id, nil
}

func (b *builder) visitTransition(tr abstraction.Transition) (int, error) {
	switch {
	case tr.IsTerminal:
		return b.visitTerminal(tr)
	case tr.ViaChance:
		return b.visitChance(tr.State)
	default:
		return b.visitDecision(tr.State)
	}
}

func (b *builder) visitChance(s abstraction.TreeState) (int, error) {
	key := chanceKey(s)
	if id, ok := b.memo[key]; ok {
		return id, nil
	}

	id, err := b.reserve(TreeNode{Type: Chance, Key: key, State: s})
	if err != nil {
		return 0, err
	}

	childID, err := b.visitDecision(s)
	if err != nil {
		return 0, err
	}
	b.nodes[id].Children = []int{childID}
	return id, nil
}

func (b *builder) visitTerminal(tr abstraction.Transition) (int, error) {
	key := terminalKey(tr.State, tr.TerminalKind)
	if id, ok := b.memo[key]; ok {
		return id, nil
	}

	td := terminalData(tr)
	id, err := b.reserve(TreeNode{Type: Terminal, Key: key, State: tr.State, Terminal: &td})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// terminalData fills in the fold case outright; showdown terminals are
// deliberately left unresolved (winner -1, zero chip delta) for a later
// equity solver to fill in.
func terminalData(tr abstraction.Transition) TerminalData {
	s := tr.State
	td := TerminalData{
		Kind:           tr.TerminalKind,
		Pot:            s.Pot,
		CommittedTotal: s.CommittedTotal,
		Winner:         -1,
	}
	if tr.TerminalKind == abstraction.FoldTerminal {
		winner := 0
		if s.Folded[0] {
			winner = 1
		}
		td.Winner = winner
		td.ChipDelta[winner] = s.Pot - s.CommittedTotal[winner]
		loser := 1 - winner
		td.ChipDelta[loser] = -s.CommittedTotal[loser]
	}
	return td
}
