package mongo

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

// Seed idempotently provisions the default admin, a demo customer, the
// default menu and one demo order. Intended for development and first-run
// environments; gated by the SEED_DATA config flag.
func Seed(ctx context.Context, users *UserRepository, pizzas *PizzaRepository, orders *OrderRepository, log zerolog.Logger) error {
	if _, err := seedUser(ctx, users, "admin", "admin@pizzeria.com", "admin123", domain.RoleAdmin, log); err != nil {
		return err
	}

	customer, err := seedUser(ctx, users, "carlos_pizzas", "carlos@gmail.com", "carlos123", domain.RoleUser, log)
	if err != nil {
		return err
	}

	menu, err := seedMenu(ctx, pizzas, log)
	if err != nil {
		return err
	}

	return seedDemoOrder(ctx, orders, customer, menu, log)
}

func seedUser(ctx context.Context, users *UserRepository, username, email, password, role string, log zerolog.Logger) (*domain.User, error) {
	existing, err := users.FindByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", username).Str("role", role).Msg("seeded user")
	return created, nil
}

func seedMenu(ctx context.Context, pizzas *PizzaRepository, log zerolog.Logger) ([]domain.Pizza, error) {
	existing, err := pizzas.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	defaults := []domain.Pizza{
		{Name: "Margherita", Description: "Classic tomato sauce and mozzarella", Price: 12.50},
		{Name: "Pepperoni", Description: "Tomato sauce and spicy pepperoni", Price: 15.00},
		{Name: "Four Cheese", Description: "Mozzarella, parmesan, gorgonzola, and fontina", Price: 16.00},
	}

	now := time.Now().UTC()
	created := make([]domain.Pizza, 0, len(defaults))
	for _, p := range defaults {
		p.Available = true
		p.CreatedAt = now
		p.UpdatedAt = now

		saved, err := pizzas.Create(ctx, &p)
		if err != nil {
			return nil, err
		}
		created = append(created, *saved)
	}

	log.Info().Int("count", len(created)).Msg("seeded default menu")
	return created, nil
}

func seedDemoOrder(ctx context.Context, orders *OrderRepository, customer *domain.User, menu []domain.Pizza, log zerolog.Logger) error {
	if customer == nil || len(menu) < 2 {
		return nil
	}

	existing, err := orders.ListByUsername(ctx, customer.Username)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	p1, p2 := menu[0], menu[1]
	order := &domain.Order{
		Username: customer.Username,
		Status:   domain.OrderPending,
		Total:    p1.Price*2 + p2.Price,
		Items: []domain.OrderItem{
			{PizzaID: p1.ID, PizzaName: p1.Name, Quantity: 2, UnitPrice: p1.Price},
			{PizzaID: p2.ID, PizzaName: p2.Name, Quantity: 1, UnitPrice: p2.Price},
		},
		CreatedAt: time.Now().UTC(),
	}

	if _, err := orders.Create(ctx, order); err != nil {
		return err
	}

	log.Info().Str("username", customer.Username).Msg("seeded demo order")
	return nil
}
