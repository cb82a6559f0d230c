package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wire names for the outcome of a match.
const (
	WinnerHuman = "human"
	WinnerBot   = "bot"
	WinnerDraw  = "draw"
	WinnerNone  = "none"
)

// Event type names emitted on the match feed.
const (
	EventMove    = "move"
	EventTimeout = "timeout"
	EventOver    = "game_over"
)

// SideStats holds one side's move counters as stored and delivered.
type SideStats struct {
	Correct int `bson:"correct" json:"correct"`
	Illegal int `bson:"illegal" json:"illegal"`
}

// MoveEntry is one archived move attempt.
type MoveEntry struct {
	Mover    string `bson:"mover" json:"mover"`
	From     string `bson:"from" json:"from"`
	Target   string `bson:"target" json:"target"`
	Accepted bool   `bson:"accepted" json:"accepted"`
}

// MatchRecord represents the BSON version of a finished match for
// database storage.
type MatchRecord struct {
	ID          uuid.UUID   `bson:"_id"`
	PlayerID    uuid.UUID   `bson:"playerId"`
	Username    string      `bson:"username"`
	BotStrategy string      `bson:"botStrategy"`
	Winner      string      `bson:"winner"`
	Human       SideStats   `bson:"human"`
	Bot         SideStats   `bson:"bot"`
	Moves       []MoveEntry `bson:"moves"`
	StartedAt   time.Time   `bson:"startedAt"`
	EndedAt     time.Time   `bson:"endedAt"`
}

// CellView is the delivery projection of one board cell.
type CellView struct {
	Label      string `json:"label"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Arrow      string `json:"arrow"`
	Visited    bool   `json:"visited"`
	VisitOrder int    `json:"visit_order,omitempty"`
}

// MatchView is the delivery projection of a running or finished match.
type MatchView struct {
	MatchID uuid.UUID  `json:"match_id"`
	Current string     `json:"current"`
	Turn    string     `json:"turn"`
	Over    bool       `json:"over"`
	Winner  string     `json:"winner"`
	Human   SideStats  `json:"human"`
	Bot     SideStats  `json:"bot"`
	Cells   []CellView `json:"cells"`
}

// MatchEvent is one entry of the live match feed.
type MatchEvent struct {
	Type     string `json:"type"`
	Mover    string `json:"mover,omitempty"`
	Target   string `json:"target,omitempty"`
	Accepted bool   `json:"accepted"`
	Correct  bool   `json:"correct"`
	Winner   string `json:"winner,omitempty"`
}

// Standing is one leaderboard row.
type Standing struct {
	Username string  `json:"username"`
	Points   float64 `json:"points"`
}
