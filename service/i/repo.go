package i

import (
	"context"

	dmn "github.com/lucks07/DAA-Game-Signpost/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// MatchArchive stores finished matches.
type MatchArchive interface {
	// Save persists a finished match record.
	Save(ctx context.Context, record *dmn.MatchRecord) error

	// ByPlayer retrieves the archived matches of a player, newest first.
	ByPlayer(ctx context.Context, playerID uuid.UUID, limit int) ([]dmn.MatchRecord, error)
}
