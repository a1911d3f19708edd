package repositories

import (
	"context"

	"smartretail/internal/models"
)

// CartRepository defines the interface for cart data access. No HTTP
// handler uses it yet; the interface pins down the store contract for the
// checkout flows that will.
type CartRepository interface {
	Create(ctx context.Context, cart *models.Cart) error
	GetByUserID(ctx context.Context, userID string) (*models.Cart, error)
}
