package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStorage keeps auth cookie sessions (sessionID -> userID)
// with a TTL.
type RedisSessionStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRedisStorage(client *redis.Client, ttl time.Duration) *RedisSessionStorage {
	return &RedisSessionStorage{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisSessionStorage) GetUserIdBySession(sessionID string) (userID string, ok bool) {
	v, err := r.client.Get(context.Background(), sessionID).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Error(err.Error())
		}
		return "", false
	}
	return v, true
}

func (r *RedisSessionStorage) StoreSession(sessionID string, userID string) {
	r.client.Set(context.Background(), sessionID, userID, r.ttl)
}

func (r *RedisSessionStorage) DeleteSession(sessionID string) (ok bool) {
	r.client.Del(context.Background(), sessionID)
	return true
}
