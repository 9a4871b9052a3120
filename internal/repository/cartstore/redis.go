// Package cartstore persists a session's cart in Redis so it survives page
// reloads. Carts live under a fixed namespace keyed by session id; the core
// cart invariants live in the domain type, not here.
package cartstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

const namespace = "cart-storage"

// DefaultTTL bounds how long an abandoned cart is kept. Every save renews it.
const DefaultTTL = 30 * 24 * time.Hour

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies connectivity with a ping.
func New(redisURL string) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewWithClient(client), nil
}

// NewWithClient wraps an existing client; used by tests.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client, ttl: DefaultTTL}
}

func key(sessionID string) string {
	return fmt.Sprintf("%s:%s", namespace, sessionID)
}

// Load returns the session's cart. A missing key is an empty cart, not an
// error.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, key(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &domain.Cart{}, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}
	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

// Save writes the cart and renews its TTL. An empty cart deletes the key.
func (s *Store) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if cart == nil || cart.IsEmpty() {
		return s.Clear(ctx, sessionID)
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Clear deletes the session's cart.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
