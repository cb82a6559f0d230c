package bot

import (
	"testing"

	"github.com/lucks07/DAA-Game-Signpost/game/signpost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStub is a canned rejection memory for strategy tests.
type memoryStub struct {
	pairs map[[2]string]bool
}

func (m *memoryStub) TriedIllegal(from, target string) bool {
	return m.pairs[[2]string{from, target}]
}

func remembering(pairs ...[2]string) *memoryStub {
	stub := &memoryStub{pairs: make(map[[2]string]bool)}
	for _, p := range pairs {
		stub.pairs[p] = true
	}
	return stub
}

func TestCandidates(t *testing.T) {
	board := signpost.NewClassic()

	t.Run("prefers unremembered unvisited neighbors", func(t *testing.T) {
		moves := candidates(board, "A", board.Visited, remembering())
		assert.ElementsMatch(t, []string{"E", "K"}, moves)
	})

	t.Run("remembered rejections are filtered out", func(t *testing.T) {
		moves := candidates(board, "A", board.Visited, remembering([2]string{"A", "E"}))
		assert.Equal(t, []string{"K"}, moves)
	})

	t.Run("falls back past memory when everything was rejected", func(t *testing.T) {
		memory := remembering([2]string{"A", "E"}, [2]string{"A", "K"})
		moves := candidates(board, "A", board.Visited, memory)
		assert.ElementsMatch(t, []string{"E", "K"}, moves)
	})

	t.Run("falls back to visited neighbors as a last resort", func(t *testing.T) {
		blocked := signpost.NewClassic()
		_, err := blocked.Visit("E")
		require.NoError(t, err)
		_, err = blocked.Visit("K")
		require.NoError(t, err)

		moves := candidates(blocked, "A", blocked.Visited, remembering())
		assert.ElementsMatch(t, []string{"E", "K"}, moves)
	})

	t.Run("no neighbors means no candidates", func(t *testing.T) {
		assert.Empty(t, candidates(board, "P", board.Visited, remembering()))
	})
}

func TestGreedy_ChooseMove(t *testing.T) {
	t.Run("picks the neighbor closest to the goal", func(t *testing.T) {
		board := signpost.NewClassic()
		greedy := NewGreedy(1)

		// From A the options are E (distance 5) and K (distance 2).
		assert.Equal(t, "K", greedy.ChooseMove(board, "A", remembering()))
	})

	t.Run("takes the goal when adjacent", func(t *testing.T) {
		board := signpost.NewClassic()
		greedy := NewGreedy(1)

		assert.Equal(t, "P", greedy.ChooseMove(board, "O", remembering()))
	})

	t.Run("avoids visited neighbors while an unvisited one exists", func(t *testing.T) {
		board := signpost.NewClassic()
		_, err := board.Visit("K")
		require.NoError(t, err)
		greedy := NewGreedy(1)

		assert.Equal(t, "E", greedy.ChooseMove(board, "A", remembering()))
	})

	t.Run("honors the rejection memory", func(t *testing.T) {
		board := signpost.NewClassic()
		greedy := NewGreedy(1)

		move := greedy.ChooseMove(board, "A", remembering([2]string{"A", "K"}))
		assert.Equal(t, "E", move)
	})

	t.Run("dead end degrades to a random cell", func(t *testing.T) {
		board := signpost.NewClassic()
		greedy := NewGreedy(1)

		move := greedy.ChooseMove(board, "P", remembering())
		assert.Contains(t, board.Labels(), move)
	})
}

func TestLookahead_ChooseMove(t *testing.T) {
	t.Run("takes the goal when adjacent", func(t *testing.T) {
		board := signpost.NewClassic()
		search := NewLookahead(DefaultDepth, 1)

		assert.Equal(t, "P", search.ChooseMove(board, "O", remembering()))
	})

	t.Run("follows the subtree that reaches the goal", func(t *testing.T) {
		board := signpost.NewClassic()
		search := NewLookahead(DefaultDepth, 1)

		// From J both N and M can still reach the goal within the
		// horizon; the earlier candidate wins the tie.
		assert.Equal(t, "N", search.ChooseMove(board, "J", remembering()))
	})

	t.Run("honors the rejection memory", func(t *testing.T) {
		board := signpost.NewClassic()
		search := NewLookahead(DefaultDepth, 1)

		move := search.ChooseMove(board, "J", remembering([2]string{"J", "N"}))
		assert.Equal(t, "M", move)
	})

	t.Run("dead end degrades to a random cell", func(t *testing.T) {
		board := signpost.NewClassic()
		search := NewLookahead(DefaultDepth, 1)

		move := search.ChooseMove(board, "P", remembering())
		assert.Contains(t, board.Labels(), move)
	})
}

func TestNewLookahead(t *testing.T) {
	assert.Equal(t, 4, NewLookahead(4, 1).Depth())
	assert.Equal(t, DefaultDepth, NewLookahead(0, 1).Depth(), "non-positive depth falls back")
	assert.Equal(t, DefaultDepth, NewLookahead(-3, 1).Depth())
}
