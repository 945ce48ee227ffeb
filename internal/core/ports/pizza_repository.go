package ports

import (
	"context"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

// PizzaRepository defines persistence operations for menu items.
type PizzaRepository interface {
	Create(ctx context.Context, pizza *domain.Pizza) (*domain.Pizza, error)
	Update(ctx context.Context, pizza *domain.Pizza) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Pizza, error)
	// ListAvailable returns available pizzas ordered by name.
	ListAvailable(ctx context.Context) ([]domain.Pizza, error)
}
