// Package auth holds the Redis-backed admin session store and the gin
// middleware that gates the admin API.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	CookieName = "diner_session"

	keyPrefix = "session:"
)

type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

// Create issues an opaque token bound to the username. The token is
// the only thing that leaves the server.
func (s *SessionStore) Create(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+token, username, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Get returns the username for a token, or "" when the session does
// not exist or has expired.
func (s *SessionStore) Get(ctx context.Context, token string) (string, error) {
	username, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

func (s *SessionStore) TTL() time.Duration { return s.ttl }
