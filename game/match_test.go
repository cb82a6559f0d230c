package game

import (
	"testing"

	"github.com/lucks07/DAA-Game-Signpost/game/signpost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatch(t *testing.T) *Match {
	t.Helper()
	return NewMatch(signpost.NewClassic())
}

// playOut drives the match along the solution path with both sides
// playing perfectly, and returns the result of the final move.
func playOut(t *testing.T, m *Match) MoveResult {
	t.Helper()
	board := signpost.NewClassic()
	solution := board.Solution()

	var last MoveResult
	for _, target := range solution[1:] {
		result, err := m.AttemptMove(target)
		require.NoError(t, err)
		require.True(t, result.Accepted, "solution move to %s rejected", target)
		last = result
	}
	return last
}

func TestNewMatch(t *testing.T) {
	m := newTestMatch(t)

	assert.Equal(t, RoleHuman, m.Turn(), "human moves first")
	assert.Equal(t, "A", m.CurrentCell())
	assert.False(t, m.Over())
	assert.Equal(t, WinnerNone, m.Winner())
	assert.Empty(t, m.History())
}

func TestMatch_AttemptMove(t *testing.T) {
	t.Run("correct neighbor advances and passes the turn", func(t *testing.T) {
		m := newTestMatch(t)

		result, err := m.AttemptMove("K")
		require.NoError(t, err)

		assert.True(t, result.Accepted)
		assert.True(t, result.Correct)
		assert.False(t, result.Over)
		assert.Equal(t, RoleHuman, result.Mover)
		assert.Equal(t, "K", m.CurrentCell())
		assert.Equal(t, RoleBot, m.Turn())
		assert.Equal(t, Stats{Correct: 1}, m.Stats(RoleHuman))
	})

	t.Run("legal but wrong neighbor is rejected", func(t *testing.T) {
		m := newTestMatch(t)

		// E is an outgoing neighbor of A but not the solution successor.
		result, err := m.AttemptMove("E")
		require.NoError(t, err)

		assert.False(t, result.Accepted)
		assert.False(t, result.Correct)
		assert.Equal(t, "A", m.CurrentCell(), "position must not change")
		assert.Equal(t, RoleBot, m.Turn(), "rejection still passes the turn")
		assert.Equal(t, Stats{Illegal: 1}, m.Stats(RoleHuman))
	})

	t.Run("non-neighbor is rejected", func(t *testing.T) {
		m := newTestMatch(t)

		result, err := m.AttemptMove("P")
		require.NoError(t, err)

		assert.False(t, result.Accepted)
		assert.Equal(t, "A", m.CurrentCell())
		assert.Equal(t, Stats{Illegal: 1}, m.Stats(RoleHuman))
	})

	t.Run("unknown label is rejected not errored", func(t *testing.T) {
		m := newTestMatch(t)

		result, err := m.AttemptMove("Z")
		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Equal(t, Stats{Illegal: 1}, m.Stats(RoleHuman))
	})

	t.Run("rejected bot attempts are remembered", func(t *testing.T) {
		m := newTestMatch(t)

		// Hand the turn to the bot with a human rejection.
		_, err := m.AttemptMove("E")
		require.NoError(t, err)
		require.Equal(t, RoleBot, m.Turn())

		_, err = m.AttemptMove("E")
		require.NoError(t, err)

		assert.True(t, m.TriedIllegal("A", "E"))
		assert.False(t, m.TriedIllegal("A", "K"))
		assert.Equal(t, Stats{Illegal: 1}, m.Stats(RoleBot))
	})

	t.Run("human rejections are not remembered", func(t *testing.T) {
		m := newTestMatch(t)

		_, err := m.AttemptMove("E")
		require.NoError(t, err)

		assert.False(t, m.TriedIllegal("A", "E"))
	})

	t.Run("turn alternates on every attempt", func(t *testing.T) {
		m := newTestMatch(t)

		targets := []string{"K", "F", "H", "Z"}
		expected := []Role{RoleBot, RoleHuman, RoleBot, RoleHuman}
		for i, target := range targets {
			_, err := m.AttemptMove(target)
			require.NoError(t, err)
			assert.Equal(t, expected[i], m.Turn(), "after move %d", i)
		}
	})

	t.Run("reaching the goal ends the match", func(t *testing.T) {
		m := newTestMatch(t)

		last := playOut(t, m)

		assert.True(t, last.Over)
		assert.True(t, m.Over())
		assert.Equal(t, "P", m.CurrentCell())

		_, err := m.AttemptMove("A")
		assert.ErrorIs(t, err, ErrMatchOver)
	})

	t.Run("history records every attempt", func(t *testing.T) {
		m := newTestMatch(t)

		_, err := m.AttemptMove("E")
		require.NoError(t, err)
		_, err = m.AttemptMove("K")
		require.NoError(t, err)

		history := m.History()
		require.Len(t, history, 2)
		assert.Equal(t, MoveRecord{Mover: RoleHuman, From: "A", Target: "E"}, history[0])
		assert.Equal(t, MoveRecord{Mover: RoleBot, From: "A", Target: "K", Accepted: true}, history[1])
	})
}

func TestMatch_ChargeTimeout(t *testing.T) {
	m := newTestMatch(t)

	require.NoError(t, m.ChargeTimeout())

	assert.Equal(t, Stats{Illegal: 1}, m.Stats(RoleHuman))
	assert.Equal(t, RoleBot, m.Turn())
	assert.Empty(t, m.History(), "a timeout has no target to record")

	playOut(t, m)
	assert.ErrorIs(t, m.ChargeTimeout(), ErrMatchOver)
}

func TestMatch_DetermineWinner(t *testing.T) {
	t.Run("fewer illegal moves wins", func(t *testing.T) {
		m := newTestMatch(t)

		// Human fumbles once, bot plays clean.
		_, err := m.AttemptMove("E")
		require.NoError(t, err)

		last := playOut(t, m)
		require.True(t, last.Over)
		assert.Equal(t, WinnerBot, m.Winner())
	})

	t.Run("illegal tie breaks on correct moves", func(t *testing.T) {
		m := newTestMatch(t)

		// One rejection each, so the illegal counts tie. The human then
		// leads the perfect play and lands the odd final move.
		_, err := m.AttemptMove("E")
		require.NoError(t, err)
		_, err = m.AttemptMove("E")
		require.NoError(t, err)

		last := playOut(t, m)
		require.True(t, last.Over)

		human, bot := m.Stats(RoleHuman), m.Stats(RoleBot)
		require.Equal(t, human.Illegal, bot.Illegal)
		require.Greater(t, human.Correct, bot.Correct)
		assert.Equal(t, WinnerHuman, m.Winner())
	})

	t.Run("perfect play from the start favors the human", func(t *testing.T) {
		m := newTestMatch(t)

		// Fifteen accepted moves split 8/7 with the human leading.
		playOut(t, m)

		assert.Equal(t, Stats{Correct: 8}, m.Stats(RoleHuman))
		assert.Equal(t, Stats{Correct: 7}, m.Stats(RoleBot))
		assert.Equal(t, WinnerHuman, m.Winner())
	})

	t.Run("comparison table", func(t *testing.T) {
		tests := []struct {
			name   string
			human  Stats
			bot    Stats
			winner Winner
		}{
			{"human fewer illegal", Stats{Correct: 7, Illegal: 1}, Stats{Correct: 8, Illegal: 2}, WinnerHuman},
			{"bot fewer illegal", Stats{Correct: 8, Illegal: 3}, Stats{Correct: 7, Illegal: 1}, WinnerBot},
			{"illegal tie human more correct", Stats{Correct: 8, Illegal: 2}, Stats{Correct: 7, Illegal: 2}, WinnerHuman},
			{"illegal tie bot more correct", Stats{Correct: 7, Illegal: 0}, Stats{Correct: 8, Illegal: 0}, WinnerBot},
			{"full tie", Stats{Correct: 5, Illegal: 2}, Stats{Correct: 5, Illegal: 2}, WinnerDraw},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				m := &Match{human: tt.human, bot: tt.bot}
				assert.Equal(t, tt.winner, m.determineWinner())
			})
		}
	})
}
