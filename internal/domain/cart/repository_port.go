package cart

import "context"

// Repository is the persistence port for Cart.
//
// Storage recommendation (Firestore):
// - collection: carts
// - docId: userId
// - fields: lines, total, itemCount, createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on the "expiresAt" field.
// - expiresAt is refreshed on each cart mutation (handled by the entity's touch()).
type Repository interface {
	// GetByUserID returns (nil, nil) when no cart exists for the user;
	// the application layer treats nil as "empty cart".
	GetByUserID(ctx context.Context, userID string) (*Cart, error)

	// Upsert saves the cart (create or update).
	Upsert(ctx context.Context, c *Cart) error

	// DeleteByUserID deletes the cart for the user (e.g. after an order).
	DeleteByUserID(ctx context.Context, userID string) error
}
