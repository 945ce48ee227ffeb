package ports

import (
	"context"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

// PizzaInput carries the fields an admin submits when creating or updating
// a menu item.
type PizzaInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
}

// PizzaService defines the menu use-cases. Listing is public; mutations are
// admin-only, enforced by the transport layer's role guard.
type PizzaService interface {
	ListAvailable(ctx context.Context) ([]domain.Pizza, error)
	Create(ctx context.Context, input PizzaInput) (*domain.Pizza, error)
	Update(ctx context.Context, id string, input PizzaInput) (*domain.Pizza, error)
	Delete(ctx context.Context, id string) error
}
