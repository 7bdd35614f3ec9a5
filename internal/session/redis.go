package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/laredoma/storefront/internal/cart"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix         = "session:"
	maxUpdateAttempts = 5
)

// RedisStore keeps sessions as JSON values with a sliding TTL
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore creates a store on an existing client
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

// Create stores a new empty session
func (s *RedisStore) Create(ctx context.Context) (*Session, error) {
	sess := New()

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}

	ok, err := s.client.SetNX(ctx, sessionKey(sess.ID), data, s.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("session id collision: %s", sess.ID)
	}

	return sess, nil
}

// Get loads a session and pushes its expiry forward by the TTL
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	var cmd *redis.StringCmd
	if s.ttl > 0 {
		cmd = s.client.GetEx(ctx, sessionKey(id), s.ttl)
	} else {
		cmd = s.client.Get(ctx, sessionKey(id))
	}

	data, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return decodeSession(data)
}

// Update runs fn inside a WATCH/MULTI transaction, retrying when another writer wins the race
func (s *RedisStore) Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	key := sessionKey(id)
	var updated *Session

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}

		sess, err := decodeSession(data)
		if err != nil {
			return err
		}
		if err := fn(sess); err != nil {
			return err
		}
		sess.UpdatedAt = time.Now().UTC()

		encoded, err := json.Marshal(sess)
		if err != nil {
			return fmt.Errorf("failed to encode session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		updated = sess
		return nil
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrConflict
}

// Delete removes a session
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping checks connectivity to Redis
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func decodeSession(data []byte) (*Session, error) {
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if sess.Cart == nil {
		sess.Cart = cart.New()
	}
	return &sess, nil
}
