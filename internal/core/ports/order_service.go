package ports

import (
	"context"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

// OrderItemInput is one requested line: a pizza reference and a quantity.
type OrderItemInput struct {
	PizzaID  string
	Quantity int
}

// OrderService defines order placement and history.
type OrderService interface {
	// PlaceOrder prices the requested items against the current menu,
	// snapshotting each unit price, and persists the order with the
	// computed total. Line items keep their submitted order; duplicate
	// pizzas stay separate lines.
	PlaceOrder(ctx context.Context, username string, items []OrderItemInput) (*domain.Order, error)
	ListOrders(ctx context.Context, username string) ([]domain.Order, error)
}
