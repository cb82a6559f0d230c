// Package gameapi provides structures and utilities for managing match requests and responses.
package gameapi

import (
	dmn "github.com/lucks07/DAA-Game-Signpost/domain"
)

// MoveRequest represents a request to move to a target cell.
type MoveRequest struct {
	Target string `json:"target" binding:"required"`
}

// MoveResponse reports the outcome of a move attempt together with the
// refreshed match projection.
type MoveResponse struct {
	Accepted bool          `json:"accepted"`
	Correct  bool          `json:"correct"`
	Match    dmn.MatchView `json:"match"`
}

// LeaderboardResponse lists the best ranked players.
type LeaderboardResponse struct {
	Standings []dmn.Standing `json:"standings"`
}
