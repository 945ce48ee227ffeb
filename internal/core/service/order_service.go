package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pizzeria/pizzeria-api/internal/api/metrics"
	"github.com/pizzeria/pizzeria-api/internal/core/domain"
	"github.com/pizzeria/pizzeria-api/internal/core/ports"
)

// OrderService implements order placement and history.
type OrderService struct {
	orders ports.OrderRepository
	pizzas ports.PizzaRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, pizzas ports.PizzaRepository, users ports.UserRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, pizzas: pizzas, users: users, logger: logger}
}

// PlaceOrder resolves every requested line against the current menu,
// snapshots each pizza's price as the line's unit price and persists the
// order with the accumulated total. Lines keep their submitted order and
// duplicate pizzas stay separate lines. The order embeds its items, so the
// final insert is a single atomic write: a pizza vanishing mid-request
// fails the whole call with nothing persisted.
func (s *OrderService) PlaceOrder(ctx context.Context, username string, items []ports.OrderItemInput) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	var total float64
	lines := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		// Quantity bounds are validated at the transport edge; this is a
		// last-line defense only.
		if item.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}

		pizza, err := s.pizzas.FindByID(ctx, item.PizzaID)
		if err != nil {
			return nil, err
		}

		lines = append(lines, domain.OrderItem{
			PizzaID:   pizza.ID,
			PizzaName: pizza.Name,
			Quantity:  item.Quantity,
			UnitPrice: pizza.Price,
		})
		total += pizza.Price * float64(item.Quantity)
	}

	order := &domain.Order{
		Username:  user.Username,
		Status:    domain.OrderPending,
		Total:     total,
		Items:     lines,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to persist order")
		return nil, err
	}

	metrics.OrdersPlacedTotal.Inc()
	metrics.OrderTotalAmount.Observe(created.Total)
	s.logger.Info().
		Str("order_id", created.ID).
		Str("username", created.Username).
		Int("items", len(created.Items)).
		Float64("total", created.Total).
		Msg("order placed")

	return created, nil
}

// ListOrders returns the user's order history, newest first.
func (s *OrderService) ListOrders(ctx context.Context, username string) ([]domain.Order, error) {
	return s.orders.ListByUsername(ctx, username)
}
