package signpost

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassic(t *testing.T) {
	board := NewClassic()

	t.Run("has sixteen cells in order", func(t *testing.T) {
		labels := board.Labels()
		require.Len(t, labels, GridSize*GridSize)
		assert.Equal(t, "A", labels[0])
		assert.Equal(t, "P", labels[len(labels)-1])
	})

	t.Run("start cell is pre-visited", func(t *testing.T) {
		assert.True(t, board.Visited(StartLabel))
		assert.Equal(t, 1, board.VisitCount())

		cell, err := board.Cell(StartLabel)
		require.NoError(t, err)
		assert.Equal(t, 1, cell.VisitOrder())
	})

	t.Run("start and goal", func(t *testing.T) {
		assert.Equal(t, "A", board.Start())
		assert.Equal(t, "P", board.Goal())
	})
}

func TestBoard_Neighbors(t *testing.T) {
	board := NewClassic()

	t.Run("known adjacency", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"E", "K"}, board.Neighbors("A"))
		assert.ElementsMatch(t, []string{"P"}, board.Neighbors("O"))
		assert.Empty(t, board.Neighbors("P"), "goal has no outgoing edges")
	})

	t.Run("unknown label has no neighbors", func(t *testing.T) {
		assert.Nil(t, board.Neighbors("Z"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		first := board.Neighbors("A")
		first[0] = "mutated"
		assert.ElementsMatch(t, []string{"E", "K"}, board.Neighbors("A"))
	})
}

// The designated solution must itself be playable: every step a directed
// edge, every cell entered exactly once, start to goal.
func TestBoard_SolutionIsAWalk(t *testing.T) {
	board := NewClassic()
	solution := board.Solution()

	require.Len(t, solution, GridSize*GridSize)
	assert.Equal(t, board.Start(), solution[0])
	assert.Equal(t, board.Goal(), solution[len(solution)-1])

	seen := make(map[string]struct{})
	for i, label := range solution {
		_, dup := seen[label]
		require.False(t, dup, "solution revisits %s", label)
		seen[label] = struct{}{}

		if i == 0 {
			continue
		}
		assert.Contains(t, board.Neighbors(solution[i-1]), label,
			"no edge %s -> %s", solution[i-1], label)
	}
}

func TestBoard_Visit(t *testing.T) {
	t.Run("orders are monotonic", func(t *testing.T) {
		board := NewClassic()

		order, err := board.Visit("K")
		require.NoError(t, err)
		assert.Equal(t, 2, order)

		order, err = board.Visit("F")
		require.NoError(t, err)
		assert.Equal(t, 3, order)
		assert.Equal(t, 3, board.VisitCount())
	})

	t.Run("revisit is rejected", func(t *testing.T) {
		board := NewClassic()

		_, err := board.Visit("K")
		require.NoError(t, err)

		_, err = board.Visit("K")
		assert.ErrorIs(t, err, ErrAlreadyVisited)
		assert.Equal(t, 2, board.VisitCount())
	})

	t.Run("unknown label is rejected", func(t *testing.T) {
		board := NewClassic()

		_, err := board.Visit("Z")
		assert.ErrorIs(t, err, ErrUnknownCell)
	})
}

func TestBoard_NextOnSolution(t *testing.T) {
	board := NewClassic()

	next, ok := board.NextOnSolution("A")
	require.True(t, ok)
	assert.Equal(t, "K", next)

	next, ok = board.NextOnSolution("O")
	require.True(t, ok)
	assert.Equal(t, "P", next)

	_, ok = board.NextOnSolution("P")
	assert.False(t, ok, "goal has no successor")

	_, ok = board.NextOnSolution("Z")
	assert.False(t, ok)
}

func TestBoard_DistanceToGoal(t *testing.T) {
	board := NewClassic()

	assert.Equal(t, 6, board.DistanceToGoal("A"))
	assert.Equal(t, 0, board.DistanceToGoal("P"))
	assert.Equal(t, 1, board.DistanceToGoal("O"))
	assert.Equal(t, 2, board.DistanceToGoal("H"))
	assert.Equal(t, 6, board.DistanceToGoal("Z"), "unknown labels report the maximum")
}

func TestBoard_String(t *testing.T) {
	board := NewClassic()
	_, err := board.Visit("K")
	require.NoError(t, err)

	rendered := board.String()
	assert.Contains(t, rendered, " 1 ", "visited start shows its order")
	assert.Contains(t, rendered, " 2 ", "second visit shows its order")
	assert.Contains(t, rendered, "P ★", "unvisited cells show label and arrow")
	assert.Equal(t, GridSize*2+1, strings.Count(rendered, "\n"))
}
