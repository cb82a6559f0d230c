package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/lucks07/DAA-Game-Signpost/config"
	dmn "github.com/lucks07/DAA-Game-Signpost/domain"
	"github.com/lucks07/DAA-Game-Signpost/game"
	"github.com/lucks07/DAA-Game-Signpost/game/bot"
	"github.com/lucks07/DAA-Game-Signpost/game/signpost"
	"github.com/lucks07/DAA-Game-Signpost/service/i"
	"github.com/google/uuid"
)

const (
	defaultBotDelay    = 800 * time.Millisecond
	defaultTurnTimeout = 15 * time.Second

	// eventBuffer is the per-subscriber channel capacity; a slow
	// consumer drops events instead of blocking the match.
	eventBuffer = 16

	persistTimeout = 5 * time.Second
)

// Session errors returned to the delivery layer.
var (
	ErrNoMatch      = errors.New("player has no running match")
	ErrMatchUnknown = errors.New("match not found")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrMatchOver    = errors.New("match is over")
)

// matchSession is one running match with its board, bot and feed.
type matchSession struct {
	id        uuid.UUID
	playerID  uuid.UUID
	username  string
	board     *signpost.Board
	match     *game.Match
	strategy  bot.Strategy
	turnTimer *time.Timer
	startedAt time.Time
	// epoch invalidates scheduled bot replies and timers that outlive a
	// restart of the session.
	epoch       int
	subscribers []chan dmn.MatchEvent
}

// MatchSessionManager keeps the running matches in memory, applies the
// human moves, schedules the bot replies after the configured delay and
// enforces the human turn clock. Finished matches are archived and
// booked on the leaderboard.
type MatchSessionManager struct {
	sessions      map[uuid.UUID]*matchSession
	playerToMatch map[uuid.UUID]uuid.UUID

	boardFactory    func() *signpost.Board
	strategyFactory func() bot.Strategy
	strategyName    string

	users       i.UserRepo
	archive     i.MatchArchive
	leaderboard i.Leaderboard
	logger      *log.Logger

	botDelay    time.Duration
	turnTimeout time.Duration
	sync.RWMutex
}

// Config holds the dependencies of a MatchSessionManager.
type Config struct {
	BoardFactory    func() *signpost.Board
	StrategyFactory func() bot.Strategy
	StrategyName    string
	Users           i.UserRepo
	Archive         i.MatchArchive
	Leaderboard     i.Leaderboard
	Logger          *log.Logger
	BotDelay        time.Duration
	TurnTimeout     time.Duration
}

// NewMatchSessionManager creates a manager from the given configuration.
func NewMatchSessionManager(c *Config) (*MatchSessionManager, error) {
	if c.BoardFactory == nil || c.StrategyFactory == nil {
		return nil, errors.New("match session manager missing factory")
	}

	botDelay := c.BotDelay
	if botDelay < 0 {
		botDelay = defaultBotDelay
	}
	turnTimeout := c.TurnTimeout
	if turnTimeout <= 0 {
		turnTimeout = defaultTurnTimeout
	}

	return &MatchSessionManager{
		sessions:        make(map[uuid.UUID]*matchSession),
		playerToMatch:   make(map[uuid.UUID]uuid.UUID),
		boardFactory:    c.BoardFactory,
		strategyFactory: c.StrategyFactory,
		strategyName:    c.StrategyName,
		users:           c.Users,
		archive:         c.Archive,
		leaderboard:     c.Leaderboard,
		logger:          c.Logger,
		botDelay:        botDelay,
		turnTimeout:     turnTimeout,
	}, nil
}

// CreateMatch starts a fresh match for the player, replacing any match
// the player already had.
func (m *MatchSessionManager) CreateMatch(playerID uuid.UUID) (*dmn.MatchView, error) {
	m.Lock()
	defer m.Unlock()

	username := ""
	if m.users != nil {
		if user, err := m.users.ByID(playerID); err == nil {
			username = user.Username
		}
	}

	if oldID, ok := m.playerToMatch[playerID]; ok {
		m.dropSessionLocked(oldID)
	}

	s := &matchSession{
		id:       uuid.New(),
		playerID: playerID,
		username: username,
	}
	m.resetSessionLocked(s)
	m.sessions[s.id] = s
	m.playerToMatch[playerID] = s.id

	m.logf(config.LogInfoColor, "INFO", "started match %s for player %s", s.id, playerID)
	return m.viewLocked(s), nil
}

// Restart rebuilds the player's match on a fresh board, keeping the
// match ID and the feed subscribers.
func (m *MatchSessionManager) Restart(playerID uuid.UUID) (*dmn.MatchView, error) {
	m.Lock()
	defer m.Unlock()

	s, err := m.sessionOfLocked(playerID)
	if err != nil {
		return nil, err
	}

	m.resetSessionLocked(s)
	m.logf(config.LogInfoColor, "INFO", "restarted match %s", s.id)
	return m.viewLocked(s), nil
}

// PlayerMove attempts a human move on the player's match and schedules
// the bot's reply. Rejected moves are ordinary outcomes, not errors.
func (m *MatchSessionManager) PlayerMove(playerID uuid.UUID, target string) (*dmn.MatchEvent, *dmn.MatchView, error) {
	m.Lock()
	defer m.Unlock()

	s, err := m.sessionOfLocked(playerID)
	if err != nil {
		return nil, nil, err
	}
	if s.match.Over() {
		return nil, nil, ErrMatchOver
	}
	if s.match.Turn() != game.RoleHuman {
		return nil, nil, ErrNotYourTurn
	}

	s.stopTurnTimer()
	result, err := s.match.AttemptMove(target)
	if err != nil {
		return nil, nil, err
	}

	event := moveEvent(result)
	m.publishLocked(s, event)

	if s.match.Over() {
		m.finishLocked(s)
	} else {
		m.scheduleBotLocked(s)
	}

	return &event, m.viewLocked(s), nil
}

// View returns the current projection of a match.
func (m *MatchSessionManager) View(matchID uuid.UUID) (*dmn.MatchView, error) {
	m.RLock()
	defer m.RUnlock()

	s, ok := m.sessions[matchID]
	if !ok {
		return nil, ErrMatchUnknown
	}
	return m.viewLocked(s), nil
}

// Subscribe attaches to the live event feed of a match.
func (m *MatchSessionManager) Subscribe(matchID uuid.UUID) (<-chan dmn.MatchEvent, func(), error) {
	m.Lock()
	defer m.Unlock()

	s, ok := m.sessions[matchID]
	if !ok {
		return nil, nil, ErrMatchUnknown
	}

	ch := make(chan dmn.MatchEvent, eventBuffer)
	s.subscribers = append(s.subscribers, ch)

	cancel := func() {
		m.Lock()
		defer m.Unlock()
		for idx, sub := range s.subscribers {
			if sub == ch {
				s.subscribers = append(s.subscribers[:idx], s.subscribers[idx+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel, nil
}

// StopAll cancels the timers of every running session.
func (m *MatchSessionManager) StopAll() {
	m.Lock()
	defer m.Unlock()

	for _, s := range m.sessions {
		s.epoch++
		s.stopTurnTimer()
	}
}

// resetSessionLocked rebuilds the session's board, match and strategy
// and arms the human turn clock.
func (m *MatchSessionManager) resetSessionLocked(s *matchSession) {
	s.epoch++
	s.stopTurnTimer()
	s.board = m.boardFactory()
	s.match = game.NewMatch(s.board)
	s.strategy = m.strategyFactory()
	s.startedAt = time.Now().UTC()
	m.armTurnTimerLocked(s)
}

// sessionOfLocked resolves the player's running session.
func (m *MatchSessionManager) sessionOfLocked(playerID uuid.UUID) (*matchSession, error) {
	matchID, ok := m.playerToMatch[playerID]
	if !ok {
		return nil, ErrNoMatch
	}
	return m.sessions[matchID], nil
}

// scheduleBotLocked arms the bot's reply after the artificial delay.
func (m *MatchSessionManager) scheduleBotLocked(s *matchSession) {
	sessionID, epoch := s.id, s.epoch
	time.AfterFunc(m.botDelay, func() {
		m.botTurn(sessionID, epoch)
	})
}

// botTurn executes the bot's reply if the session still expects it.
func (m *MatchSessionManager) botTurn(sessionID uuid.UUID, epoch int) {
	m.Lock()
	defer m.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok || s.epoch != epoch || s.match.Over() || s.match.Turn() != game.RoleBot {
		return
	}

	target := s.strategy.ChooseMove(s.board, s.match.CurrentCell(), s.match)
	result, err := s.match.AttemptMove(target)
	if err != nil {
		m.logf(config.LogErrorColor, "ERROR", "bot move on match %s: %v", s.id, err)
		return
	}

	m.publishLocked(s, moveEvent(result))

	if s.match.Over() {
		m.finishLocked(s)
		return
	}
	m.armTurnTimerLocked(s)
}

// armTurnTimerLocked starts the human turn clock for the session.
func (m *MatchSessionManager) armTurnTimerLocked(s *matchSession) {
	sessionID, epoch := s.id, s.epoch
	s.turnTimer = time.AfterFunc(m.turnTimeout, func() {
		m.turnExpired(sessionID, epoch)
	})
}

// turnExpired charges the human a timeout and hands the turn to the bot.
func (m *MatchSessionManager) turnExpired(sessionID uuid.UUID, epoch int) {
	m.Lock()
	defer m.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok || s.epoch != epoch || s.match.Over() || s.match.Turn() != game.RoleHuman {
		return
	}

	if err := s.match.ChargeTimeout(); err != nil {
		return
	}

	m.logf(config.LogWarnColor, "WARN", "turn timeout on match %s", s.id)
	m.publishLocked(s, dmn.MatchEvent{
		Type:  dmn.EventTimeout,
		Mover: game.RoleHuman.String(),
	})
	m.scheduleBotLocked(s)
}

// finishLocked emits the final event, persists the outcome and closes
// the feed. The session stays readable until the player starts over.
func (m *MatchSessionManager) finishLocked(s *matchSession) {
	s.epoch++
	s.stopTurnTimer()

	winner := s.match.Winner().String()
	m.publishLocked(s, dmn.MatchEvent{
		Type:   dmn.EventOver,
		Winner: winner,
	})

	for _, sub := range s.subscribers {
		close(sub)
	}
	s.subscribers = nil

	record := m.recordLocked(s)
	go m.persist(record)

	m.logf(config.LogInfoColor, "INFO", "match %s finished, winner: %s", s.id, winner)
}

// recordLocked builds the archive record of a finished match.
func (m *MatchSessionManager) recordLocked(s *matchSession) *dmn.MatchRecord {
	human := s.match.Stats(game.RoleHuman)
	botStats := s.match.Stats(game.RoleBot)

	moves := make([]dmn.MoveEntry, 0, len(s.match.History()))
	for _, mv := range s.match.History() {
		moves = append(moves, dmn.MoveEntry{
			Mover:    mv.Mover.String(),
			From:     mv.From,
			Target:   mv.Target,
			Accepted: mv.Accepted,
		})
	}

	return &dmn.MatchRecord{
		ID:          s.id,
		PlayerID:    s.playerID,
		Username:    s.username,
		BotStrategy: m.strategyName,
		Winner:      s.match.Winner().String(),
		Human:       dmn.SideStats{Correct: human.Correct, Illegal: human.Illegal},
		Bot:         dmn.SideStats{Correct: botStats.Correct, Illegal: botStats.Illegal},
		Moves:       moves,
		StartedAt:   s.startedAt,
		EndedAt:     time.Now().UTC(),
	}
}

// persist writes the finished match to the archive, the player's tally
// and the leaderboard. Failures are logged, never surfaced to the match.
func (m *MatchSessionManager) persist(record *dmn.MatchRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if m.archive != nil {
		if err := m.archive.Save(ctx, record); err != nil {
			m.logf(config.LogErrorColor, "ERROR", "archiving match %s: %v", record.ID, err)
		}
	}

	if m.users != nil {
		if user, err := m.users.ByID(record.PlayerID); err == nil {
			user.RecordOutcome(record.Winner)
			if err := m.users.Save(user); err != nil {
				m.logf(config.LogErrorColor, "ERROR", "updating tally for %s: %v", record.Username, err)
			}
		}
	}

	if m.leaderboard != nil && record.Username != "" {
		if err := m.leaderboard.RecordResult(ctx, record.Username, record.Winner); err != nil {
			m.logf(config.LogErrorColor, "ERROR", "recording result for %s: %v", record.Username, err)
		}
	}
}

// publishLocked fans an event out to the subscribers without blocking;
// a full subscriber drops the event.
func (m *MatchSessionManager) publishLocked(s *matchSession, event dmn.MatchEvent) {
	for _, sub := range s.subscribers {
		select {
		case sub <- event:
		default:
		}
	}
}

// viewLocked builds the delivery projection of the session.
func (m *MatchSessionManager) viewLocked(s *matchSession) *dmn.MatchView {
	cells := make([]dmn.CellView, 0, len(s.board.Labels()))
	for _, label := range s.board.Labels() {
		cell, err := s.board.Cell(label)
		if err != nil {
			continue
		}
		cells = append(cells, dmn.CellView{
			Label:      cell.Label(),
			Row:        cell.Row(),
			Col:        cell.Col(),
			Arrow:      cell.Arrow(),
			Visited:    cell.Visited(),
			VisitOrder: cell.VisitOrder(),
		})
	}

	human := s.match.Stats(game.RoleHuman)
	botStats := s.match.Stats(game.RoleBot)
	winner := ""
	if s.match.Over() {
		winner = s.match.Winner().String()
	}

	return &dmn.MatchView{
		MatchID: s.id,
		Current: s.match.CurrentCell(),
		Turn:    s.match.Turn().String(),
		Over:    s.match.Over(),
		Winner:  winner,
		Human:   dmn.SideStats{Correct: human.Correct, Illegal: human.Illegal},
		Bot:     dmn.SideStats{Correct: botStats.Correct, Illegal: botStats.Illegal},
		Cells:   cells,
	}
}

// dropSessionLocked removes a session and closes its feed.
func (m *MatchSessionManager) dropSessionLocked(matchID uuid.UUID) {
	s, ok := m.sessions[matchID]
	if !ok {
		return
	}
	s.epoch++
	s.stopTurnTimer()
	for _, sub := range s.subscribers {
		close(sub)
	}
	s.subscribers = nil
	delete(m.sessions, matchID)
	delete(m.playerToMatch, s.playerID)
}

// stopTurnTimer cancels the pending human turn clock, if any.
func (s *matchSession) stopTurnTimer() {
	if s.turnTimer != nil {
		s.turnTimer.Stop()
		s.turnTimer = nil
	}
}

// moveEvent converts a rules result into a feed event.
func moveEvent(result game.MoveResult) dmn.MatchEvent {
	return dmn.MatchEvent{
		Type:     dmn.EventMove,
		Mover:    result.Mover.String(),
		Target:   result.Target,
		Accepted: result.Accepted,
		Correct:  result.Correct,
	}
}

// logf writes a colored service log line, matching the logging style of
// the other services.
func (m *MatchSessionManager) logf(color, level, format string, args ...interface{}) {
	if m.logger == nil {
		return
	}
	m.logger.Printf("%s[%s]%s "+format, append([]interface{}{color, level, config.LogColorReset}, args...)...)
}
