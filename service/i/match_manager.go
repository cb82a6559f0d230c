package i

import (
	dmn "github.com/lucks07/DAA-Game-Signpost/domain"
	"github.com/google/uuid"
)

// MatchSessionManager manages the running matches and applies moves on
// behalf of the delivery layer.
type MatchSessionManager interface {
	// CreateMatch starts a fresh match for the player, replacing any
	// match the player already had.
	CreateMatch(playerID uuid.UUID) (*dmn.MatchView, error)

	// PlayerMove attempts a human move on the player's match. The bot's
	// reply is scheduled by the manager.
	PlayerMove(playerID uuid.UUID, target string) (*dmn.MatchEvent, *dmn.MatchView, error)

	// Restart rebuilds the player's match on a fresh board.
	Restart(playerID uuid.UUID) (*dmn.MatchView, error)

	// View returns the current projection of a match.
	View(matchID uuid.UUID) (*dmn.MatchView, error)

	// Subscribe attaches to the live event feed of a match. The cancel
	// func detaches the subscriber.
	Subscribe(matchID uuid.UUID) (<-chan dmn.MatchEvent, func(), error)
}
