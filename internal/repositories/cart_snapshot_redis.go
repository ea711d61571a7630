package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"attire/internal/models"

	"github.com/redis/go-redis/v9"
)

// cartSnapshotTTL bounds how long an abandoned session's cart is kept.
const cartSnapshotTTL = 30 * 24 * time.Hour

// RedisCartSnapshotStore is a Redis implementation of CartSnapshotStore. Carts
// are stored as JSON blobs keyed by session ID.
type RedisCartSnapshotStore struct {
	client *redis.Client
}

// NewRedisCartSnapshotStore creates a new instance of RedisCartSnapshotStore.
func NewRedisCartSnapshotStore(client *redis.Client) *RedisCartSnapshotStore {
	return &RedisCartSnapshotStore{
		client: client,
	}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Save writes the cart snapshot for the session.
func (s *RedisCartSnapshotStore) Save(sessionID string, cart *models.Cart) error {
	body, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}
	if err := s.client.Set(context.Background(), cartKey(sessionID), body, cartSnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot for session %s: %w", sessionID, err)
	}
	return nil
}

// Load reads the cart snapshot for the session, returning (nil, nil) when none
// exists.
func (s *RedisCartSnapshotStore) Load(sessionID string) (*models.Cart, error) {
	body, err := s.client.Get(context.Background(), cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot for session %s: %w", sessionID, err)
	}
	var cart models.Cart
	if err := json.Unmarshal(body, &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart snapshot for session %s: %w", sessionID, err)
	}
	return &cart, nil
}

// Delete removes the cart snapshot for the session.
func (s *RedisCartSnapshotStore) Delete(sessionID string) error {
	if err := s.client.Del(context.Background(), cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot for session %s: %w", sessionID, err)
	}
	return nil
}
