package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
	"github.com/pizzeria/pizzeria-api/internal/core/ports"
)

// stubMenuCache records interactions so tests can assert on cache traffic.
type stubMenuCache struct {
	entries     []domain.Pizza
	populated   bool
	sets        int
	invalidates int
}

func (c *stubMenuCache) Get(_ context.Context) ([]domain.Pizza, bool) {
	if !c.populated {
		return nil, false
	}
	return c.entries, true
}

func (c *stubMenuCache) Set(_ context.Context, pizzas []domain.Pizza) {
	c.entries = pizzas
	c.populated = true
	c.sets++
}

func (c *stubMenuCache) Invalidate(_ context.Context) {
	c.entries = nil
	c.populated = false
	c.invalidates++
}

func newPizzaFixture(t *testing.T) (*PizzaService, *stubPizzaRepo, *stubMenuCache) {
	t.Helper()
	repo := newStubPizzaRepo()
	cache := &stubMenuCache{}
	return NewPizzaService(repo, cache, zerolog.Nop()), repo, cache
}

func TestPizzaService_ListAvailable_CacheMissFillsCache(t *testing.T) {
	svc, repo, cache := newPizzaFixture(t)
	repo.add("Margherita", 12.50)

	pizzas, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("ListAvailable returned error: %v", err)
	}
	if len(pizzas) != 1 {
		t.Fatalf("expected 1 pizza, got %d", len(pizzas))
	}
	if cache.sets != 1 {
		t.Fatalf("a miss must populate the cache, sets=%d", cache.sets)
	}
}

func TestPizzaService_ListAvailable_CacheHitSkipsStore(t *testing.T) {
	svc, _, cache := newPizzaFixture(t)
	cache.Set(context.Background(), []domain.Pizza{{ID: "cached", Name: "Margherita", Price: 12.50}})
	cache.sets = 0

	pizzas, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("ListAvailable returned error: %v", err)
	}
	if len(pizzas) != 1 || pizzas[0].ID != "cached" {
		t.Fatalf("expected the cached menu, got %+v", pizzas)
	}
	if cache.sets != 0 {
		t.Fatalf("a hit must not rewrite the cache")
	}
}

func TestPizzaService_Create_InvalidatesCache(t *testing.T) {
	svc, repo, cache := newPizzaFixture(t)

	created, err := svc.Create(context.Background(), ports.PizzaInput{
		Name:        "Four Cheese",
		Description: "Mozzarella, gorgonzola, parmesan and provolone",
		Price:       16.00,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected an assigned id")
	}
	if !created.Available {
		t.Fatalf("new pizzas must start available")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps must be set on create")
	}
	if cache.invalidates != 1 {
		t.Fatalf("create must invalidate the menu cache, invalidates=%d", cache.invalidates)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); err != nil {
		t.Fatalf("created pizza not persisted: %v", err)
	}
}

func TestPizzaService_Update_InvalidatesCache(t *testing.T) {
	svc, repo, cache := newPizzaFixture(t)
	existing := repo.add("Margherita", 12.50)

	updated, err := svc.Update(context.Background(), existing.ID, ports.PizzaInput{
		Name:  "Margherita",
		Price: 13.00,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != 13.00 {
		t.Fatalf("expected price 13.00, got %v", updated.Price)
	}
	if cache.invalidates != 1 {
		t.Fatalf("update must invalidate the menu cache, invalidates=%d", cache.invalidates)
	}
}

func TestPizzaService_Update_UnknownID(t *testing.T) {
	svc, _, cache := newPizzaFixture(t)

	if _, err := svc.Update(context.Background(), "missing", ports.PizzaInput{Name: "X", Price: 1}); err != domain.ErrPizzaNotFound {
		t.Fatalf("expected ErrPizzaNotFound, got %v", err)
	}
	if cache.invalidates != 0 {
		t.Fatalf("a failed update must leave the cache alone")
	}
}

func TestPizzaService_Delete_InvalidatesCache(t *testing.T) {
	svc, repo, cache := newPizzaFixture(t)
	existing := repo.add("Pepperoni", 15.00)

	if err := svc.Delete(context.Background(), existing.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if cache.invalidates != 1 {
		t.Fatalf("delete must invalidate the menu cache, invalidates=%d", cache.invalidates)
	}
	if _, err := repo.FindByID(context.Background(), existing.ID); err != domain.ErrPizzaNotFound {
		t.Fatalf("pizza should be gone, got %v", err)
	}
}

func TestPizzaService_Delete_UnknownID(t *testing.T) {
	svc, _, cache := newPizzaFixture(t)

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrPizzaNotFound {
		t.Fatalf("expected ErrPizzaNotFound, got %v", err)
	}
	if cache.invalidates != 0 {
		t.Fatalf("a failed delete must leave the cache alone")
	}
}
