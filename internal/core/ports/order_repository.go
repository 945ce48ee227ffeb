package ports

import (
	"context"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// ListByUsername returns the user's orders sorted by creation time
	// descending (newest first).
	ListByUsername(ctx context.Context, username string) ([]domain.Order, error)
}
