// Package session manages per-chat conversation state.
//
// This file implements the Redis-backed Registry used when the bot runs
// behind more than one process.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// redisKeyPrefix namespaces session records in a shared Redis.
	redisKeyPrefix = "surveybot:session:"
	// DefaultSessionTTL bounds abandoned sessions. A chat that stays
	// silent this long starts over from the survey menu.
	DefaultSessionTTL = 24 * time.Hour
)

// RedisRegistry stores session records as JSON values in Redis.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRegistry creates a Registry backed by the given Redis client.
func NewRedisRegistry(client *redis.Client) *RedisRegistry {
	return &RedisRegistry{client: client, ttl: DefaultSessionTTL}
}

func redisKey(chatID int64) string {
	return redisKeyPrefix + strconv.FormatInt(chatID, 10)
}

func (r *RedisRegistry) Get(ctx context.Context, chatID int64) (*Record, error) {
	raw, err := r.client.Get(ctx, redisKey(chatID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		slog.Error("RedisRegistry Get failed", "error", err, "chat", chatID)
		return nil, fmt.Errorf("failed to load session for chat %d: %w", chatID, err)
	}
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		slog.Error("RedisRegistry Get unmarshal failed", "error", err, "chat", chatID)
		return nil, fmt.Errorf("failed to decode session for chat %d: %w", chatID, err)
	}
	return &rec, nil
}

func (r *RedisRegistry) Save(ctx context.Context, chatID int64, rec *Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session for chat %d: %w", chatID, err)
	}
	if err := r.client.Set(ctx, redisKey(chatID), raw, r.ttl).Err(); err != nil {
		slog.Error("RedisRegistry Save failed", "error", err, "chat", chatID)
		return fmt.Errorf("failed to store session for chat %d: %w", chatID, err)
	}
	return nil
}

func (r *RedisRegistry) Remove(ctx context.Context, chatID int64) error {
	if err := r.client.Del(ctx, redisKey(chatID)).Err(); err != nil {
		slog.Error("RedisRegistry Remove failed", "error", err, "chat", chatID)
		return fmt.Errorf("failed to delete session for chat %d: %w", chatID, err)
	}
	return nil
}
