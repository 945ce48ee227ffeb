package ports

import (
	"context"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

// MenuCache is a read-through cache for the public menu listing. All
// methods degrade gracefully: a cache failure is never fatal to a request.
type MenuCache interface {
	// Get returns the cached menu and whether it was present.
	Get(ctx context.Context) ([]domain.Pizza, bool)
	Set(ctx context.Context, pizzas []domain.Pizza)
	// Invalidate drops the cached menu; called after every menu mutation.
	Invalidate(ctx context.Context)
}
