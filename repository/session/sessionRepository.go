package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps the backend-issued bearer token per browser session. The
// token is written under two keys: earlier clients read "access_token",
// so both stay in sync until those clients are gone.
const (
	tokenKeyPrefix  = "session:token:"
	legacyKeyPrefix = "session:access_token:"
)

var ErrNoSession = errors.New("no session")

type Store interface {
	Save(ctx context.Context, sid, token string) error
	Token(ctx context.Context, sid string) (string, error)
	Clear(ctx context.Context, sid string) error
}

type store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string, ttl time.Duration) Store {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr}), ttl)
}

func NewWithClient(rdb *redis.Client, ttl time.Duration) Store {
	return &store{rdb: rdb, ttl: ttl}
}

func (s *store) Save(ctx context.Context, sid, token string) error {
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, tokenKeyPrefix+sid, token, s.ttl)
	pipe.Set(ctx, legacyKeyPrefix+sid, token, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *store) Token(ctx context.Context, sid string) (string, error) {
	v, err := s.rdb.Get(ctx, tokenKeyPrefix+sid).Result()
	if err == nil && v != "" {
		return v, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	v, err = s.rdb.Get(ctx, legacyKeyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) || v == "" {
		return "", ErrNoSession
	}
	return v, err
}

// Clear removes both keys. Concurrent 401 handlers may race here; DEL on
// absent keys is harmless, so the clear stays idempotent.
func (s *store) Clear(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, tokenKeyPrefix+sid, legacyKeyPrefix+sid).Err()
}
