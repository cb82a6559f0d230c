package i

import (
	"context"

	dmn "github.com/lucks07/DAA-Game-Signpost/domain"
)

// Leaderboard ranks players by the points collected from finished
// matches.
type Leaderboard interface {
	// RecordResult books the outcome of a finished match for the player.
	RecordResult(ctx context.Context, username string, winner string) error

	// Top returns the best ranked players, highest first.
	Top(ctx context.Context, count int64) ([]dmn.Standing, error)
}
