package treebuilder

import (
	"testing"

	"github.com/nabilervatra/minipokersolver/internal/config"
	"github.com/stretchr/testify/require"
)

func s6Abstraction() *config.BettingAbstraction {
	a := config.DefaultAbstraction()
	a.MaxRaisesPerStreet = 2
	a.AllowAllIn = true
	a.BetSizesByStreet = [4][]float64{
		{0.5, 1.0},
		{0.5, 1.0},
		{1.0},
		{1.0},
	}
	a.RaiseSizesByStreet = a.BetSizesByStreet
	return a
}

func TestS6TreeBuildSmoke(t *testing.T) {
	tree, err := Build(s6Abstraction(), 300000)
	require.NoError(t, err)
	require.GreaterOrEqual(t, tree.RootID, 0)

	summary := Summarize(tree)
	require.Greater(t, summary.DecisionNodes, 0)
	require.Greater(t, summary.ChanceNodes, 0)
	require.Greater(t, summary.FoldTerminals, 0)
	require.Greater(t, summary.ShowdownTerminals, 0)
}

func TestNodeIDsEqualIndexAndShapeInvariants(t *testing.T) {
	tree, err := Build(s6Abstraction(), 300000)
	require.NoError(t, err)

	for i, n := range tree.Nodes {
		require.Equal(t, i, n.ID)
		switch n.Type {
		case Decision:
			require.Equal(t, len(n.Actions), len(n.Children))
			require.GreaterOrEqual(t, len(n.Children), 1)
			for _, c := range n.Children {
				require.True(t, c >= 0 && c < len(tree.Nodes))
			}
		case Chance:
			require.Len(t, n.Children, 1)
		case Terminal:
			require.Empty(t, n.Children)
			require.NotNil(t, n.Terminal)
		}
	}
}

func TestMemoisationIsDeterministicAcrossBuilds(t *testing.T) {
	a := s6Abstraction()
	first, err := Build(a, 300000)
	require.NoError(t, err)
	second, err := Build(a, 300000)
	require.NoError(t, err)

	require.Equal(t, len(first.Nodes), len(second.Nodes))
	for i := range first.Nodes {
		require.Equal(t, first.Nodes[i].Key, second.Nodes[i].Key)
	}
}

func TestNodeBudgetAbortsConstruction(t *testing.T) {
	_, err := Build(s6Abstraction(), 5)
	require.Error(t, err)
}
