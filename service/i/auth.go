package i

import (
	dmn "github.com/lucks07/DAA-Game-Signpost/domain"
)

// Authenticator handles player registration and sign in.
type Authenticator interface {
	// Register creates a new player account.
	Register(username, password string) error

	// SignIn verifies the credentials and returns the player with a
	// signed access token.
	SignIn(username, password string) (*dmn.User, string, error)
}
