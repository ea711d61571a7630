package repositories

import (
	"attire/internal/models"
)

// CartSnapshotStore persists a serialized cart per shopping session so carts
// and wishlists survive a process restart. Persistence is best-effort and
// advisory; a nil store disables it entirely.
type CartSnapshotStore interface {
	Save(sessionID string, cart *models.Cart) error
	// Load returns (nil, nil) when no snapshot exists for the session.
	Load(sessionID string) (*models.Cart, error)
	Delete(sessionID string) error
}
