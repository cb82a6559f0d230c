package leaderboard

import (
	"context"
	"time"

	dmn "github.com/lucks07/DAA-Game-Signpost/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	// Points awarded per outcome.
	winPoints  = 3
	drawPoints = 1

	defaultKey = "signpost:leaderboard"
)

// RedisLeaderboard ranks players in a Redis sorted set with TTL support,
// so a board can expire and start a fresh season.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
	ttl    time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client and TTL.
// A non-positive TTL keeps the board forever.
func NewRedisLeaderboard(client *redis.Client, ttlSeconds int) (*RedisLeaderboard, error) {
	board := &RedisLeaderboard{
		client: client,
		key:    defaultKey,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// RecordResult books the outcome of a finished match for the player.
// The read-modify-write of the streak counter is guarded by a mutex so
// concurrent finishes do not interleave.
func (rl *RedisLeaderboard) RecordResult(ctx context.Context, username string, winner string) error {
	mutex := rl.locker.NewMutex(rl.key + ":record_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	streakKey := streakKey(username)
	points := 0.0
	switch winner {
	case dmn.WinnerHuman:
		streak, err := rl.client.Incr(ctx, streakKey).Result()
		if err != nil {
			return err
		}
		points = winPoints
		// A running streak is worth one extra point per prior win.
		if streak > 1 {
			points += float64(streak - 1)
		}
	case dmn.WinnerDraw:
		points = drawPoints
		if err := rl.client.Del(ctx, streakKey).Err(); err != nil {
			return err
		}
	default:
		return rl.client.Del(ctx, streakKey).Err()
	}

	if _, err := rl.client.ZIncrBy(ctx, rl.key, points, username).Result(); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	if rl.ttl > 0 {
		ttl, err := rl.client.TTL(ctx, rl.key).Result()
		if err == nil && ttl == -1 {
			_ = rl.client.Expire(ctx, rl.key, rl.ttl).Err()
		}
	}

	return nil
}

// Top returns the best ranked players, highest first.
func (rl *RedisLeaderboard) Top(ctx context.Context, count int64) ([]dmn.Standing, error) {
	if count <= 0 {
		count = 10
	}

	entries, err := rl.client.ZRevRangeWithScores(ctx, rl.key, 0, count-1).Result()
	if err != nil {
		return nil, err
	}

	standings := make([]dmn.Standing, 0, len(entries))
	for _, entry := range entries {
		username, ok := entry.Member.(string)
		if !ok {
			continue
		}
		standings = append(standings, dmn.Standing{
			Username: username,
			Points:   entry.Score,
		})
	}
	return standings, nil
}

func streakKey(username string) string {
	return "signpost:streak:" + username
}
