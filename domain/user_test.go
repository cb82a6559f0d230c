package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "correct-horse-battery-staple-91"

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "player_one",
			PlainPassword: strongPassword,
		})
		require.NoError(t, err)

		assert.Equal(t, "player_one", user.Username)
		assert.NotEqual(t, strongPassword, user.PasswordHash)
		assert.True(t, user.VerifyPassword(strongPassword))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("rejects bad usernames", func(t *testing.T) {
		cases := map[string]string{
			"too short":      "ab",
			"too long":       "this_username_is_way_too_long",
			"invalid format": "no spaces!",
		}
		for name, username := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := NewUser(UserConfig{
					ID:            uuid.New(),
					Username:      username,
					PlainPassword: strongPassword,
				})
				assert.Error(t, err)
			})
		}
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "player_one",
			PlainPassword: "password",
		})
		assert.Error(t, err)
	})
}

func TestUser_RecordOutcome(t *testing.T) {
	user := &User{ID: uuid.New(), Username: "player_one"}

	user.RecordOutcome(WinnerHuman)
	user.RecordOutcome(WinnerHuman)
	user.RecordOutcome(WinnerBot)
	user.RecordOutcome(WinnerDraw)
	user.RecordOutcome(WinnerNone)

	assert.Equal(t, 2, user.Wins)
	assert.Equal(t, 1, user.Losses)
	assert.Equal(t, 1, user.Draws)
}
