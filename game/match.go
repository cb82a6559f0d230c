/*
Package game implements the rules of a signpost match between a human
player and the computer opponent.

A match tracks the current cell, whose turn it is, and per-side counts of
correct and illegal moves. A move only succeeds when it is both legal
(an unvisited outgoing neighbor of the current cell) and correct (the
next label on the hidden solution path); every other attempt is an
ordinary rejected outcome that charges the mover and passes the turn.
Reaching the goal cell ends the match.
*/
package game

import "errors"

// Match-related errors. Rule violations are not errors: a wrong move is
// a normal, scored outcome.
var (
	ErrMatchOver = errors.New("match is over")
)

// Role identifies a side of the match.
type Role int8

const (
	RoleHuman Role = iota // The human player.
	RoleBot               // The computer opponent.
)

// String returns the wire name of the role.
func (r Role) String() string {
	if r == RoleBot {
		return "bot"
	}
	return "human"
}

// other returns the opposing role.
func (r Role) other() Role {
	if r == RoleHuman {
		return RoleBot
	}
	return RoleHuman
}

// Winner identifies the outcome of a finished match.
type Winner int8

const (
	WinnerNone  Winner = iota // Match still running.
	WinnerHuman               // Human had the better record.
	WinnerBot                 // Bot had the better record.
	WinnerDraw                // Records were fully tied.
)

// String returns the wire name of the winner.
func (w Winner) String() string {
	switch w {
	case WinnerHuman:
		return "human"
	case WinnerBot:
		return "bot"
	case WinnerDraw:
		return "draw"
	default:
		return "none"
	}
}

// Stats holds the per-side move counters.
type Stats struct {
	Correct int // Moves that were both legal and correct.
	Illegal int // Rejected attempts, including charged timeouts.
}

// MoveResult reports the outcome of a single move attempt.
type MoveResult struct {
	Mover    Role   // Side that attempted the move.
	Target   string // Cell the move aimed at.
	Accepted bool   // Whether the position advanced.
	Correct  bool   // Whether the target matched the solution path.
	Over     bool   // Whether this attempt ended the match.
}

// MoveRecord is one entry of the match history.
type MoveRecord struct {
	Mover    Role
	From     string
	Target   string
	Accepted bool
}

// Match is the state of one signpost game between a human and the bot.
// It is not safe for concurrent use; callers serialize access.
type Match struct {
	board   Board
	current string
	turn    Role
	human   Stats
	bot     Stats
	// botMemory records (from,target) pairs the bot already had rejected,
	// so its strategies avoid repeating a known dead attempt.
	botMemory map[[2]string]struct{}
	history   []MoveRecord
	over      bool
	winner    Winner
}

// NewMatch starts a match on the given board. The human moves first from
// the board's start cell.
func NewMatch(board Board) *Match {
	return &Match{
		board:     board,
		current:   board.Start(),
		turn:      RoleHuman,
		botMemory: make(map[[2]string]struct{}),
	}
}

// Turn returns whose turn it is.
func (m *Match) Turn() Role {
	return m.turn
}

// Over reports whether the match has ended.
func (m *Match) Over() bool {
	return m.over
}

// Winner returns the outcome of the match, WinnerNone while running.
func (m *Match) Winner() Winner {
	return m.winner
}

// CurrentCell returns the label of the cell the path currently ends on.
func (m *Match) CurrentCell() string {
	return m.current
}

// Stats returns the move counters of the given side.
func (m *Match) Stats(role Role) Stats {
	if role == RoleBot {
		return m.bot
	}
	return m.human
}

// History returns a copy of the move records so far.
func (m *Match) History() []MoveRecord {
	history := make([]MoveRecord, len(m.history))
	copy(history, m.history)
	return history
}

// TriedIllegal reports whether the bot already had the (from,target)
// attempt rejected in this match.
func (m *Match) TriedIllegal(from, target string) bool {
	_, ok := m.botMemory[[2]string{from, target}]
	return ok
}

// AttemptMove tries to advance the path to target for the side whose
// turn it is. A move succeeds only when target is an unvisited outgoing
// neighbor of the current cell and the next label on the solution path;
// any other attempt charges the mover an illegal move and passes the
// turn without changing position.
func (m *Match) AttemptMove(target string) (MoveResult, error) {
	if m.over {
		return MoveResult{}, ErrMatchOver
	}

	result := MoveResult{
		Mover:   m.turn,
		Target:  target,
		Correct: m.isCorrect(target),
	}
	result.Accepted = result.Correct && m.isLegal(target)

	m.history = append(m.history, MoveRecord{
		Mover:    m.turn,
		From:     m.current,
		Target:   target,
		Accepted: result.Accepted,
	})

	if !result.Accepted {
		m.chargeIllegal(target)
		m.turn = m.turn.other()
		return result, nil
	}

	_, err := m.board.Visit(target)
	if err != nil {
		return MoveResult{}, err
	}
	m.current = target

	if m.turn == RoleBot {
		m.bot.Correct++
	} else {
		m.human.Correct++
	}

	if target == m.board.Goal() {
		m.over = true
		m.winner = m.determineWinner()
		result.Over = true
		return result, nil
	}

	m.turn = m.turn.other()
	return result, nil
}

// ChargeTimeout charges the side whose turn it is with an illegal move
// and passes the turn, without recording a target. Used when the human
// lets the turn clock run out.
func (m *Match) ChargeTimeout() error {
	if m.over {
		return ErrMatchOver
	}
	if m.turn == RoleBot {
		m.bot.Illegal++
	} else {
		m.human.Illegal++
	}
	m.turn = m.turn.other()
	return nil
}

// isLegal reports whether target is an unvisited outgoing neighbor of
// the current cell.
func (m *Match) isLegal(target string) bool {
	if !m.board.Contains(target) || m.board.Visited(target) {
		return false
	}
	for _, neighbor := range m.board.Neighbors(m.current) {
		if neighbor == target {
			return true
		}
	}
	return false
}

// isCorrect reports whether target is the next label on the solution
// path after the current cell.
func (m *Match) isCorrect(target string) bool {
	next, ok := m.board.NextOnSolution(m.current)
	return ok && next == target
}

// chargeIllegal books a rejected attempt for the side whose turn it is.
// Rejected bot attempts are remembered so the strategies avoid them.
func (m *Match) chargeIllegal(target string) {
	if m.turn == RoleBot {
		m.bot.Illegal++
		m.botMemory[[2]string{m.current, target}] = struct{}{}
		return
	}
	m.human.Illegal++
}

// determineWinner compares the records once the goal is reached: fewer
// illegal moves wins, ties break on more correct moves, a full tie is a
// draw.
func (m *Match) determineWinner() Winner {
	switch {
	case m.human.Illegal < m.bot.Illegal:
		return WinnerHuman
	case m.bot.Illegal < m.human.Illegal:
		return WinnerBot
	case m.human.Correct > m.bot.Correct:
		return WinnerHuman
	case m.bot.Correct > m.human.Correct:
		return WinnerBot
	default:
		return WinnerDraw
	}
}
