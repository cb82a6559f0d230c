package identity

// AuthRequest carries the credentials of a register or login call.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse returns the signed-in player and their access token.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
	Token    string `json:"token"`
}
