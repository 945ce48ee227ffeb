package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pizzeria/pizzeria-api/internal/api/metrics"
	"github.com/pizzeria/pizzeria-api/internal/core/domain"
	"github.com/pizzeria/pizzeria-api/internal/core/ports"
)

// PizzaService implements the menu use-cases. Listing goes through the
// menu cache; every mutation invalidates it.
type PizzaService struct {
	repo   ports.PizzaRepository
	cache  ports.MenuCache
	logger zerolog.Logger
}

func NewPizzaService(repo ports.PizzaRepository, cache ports.MenuCache, logger zerolog.Logger) *PizzaService {
	return &PizzaService{repo: repo, cache: cache, logger: logger}
}

// ListAvailable returns the public menu. Cache misses (including cache
// errors, which the cache reports as misses) fall through to the store.
func (s *PizzaService) ListAvailable(ctx context.Context) ([]domain.Pizza, error) {
	if pizzas, ok := s.cache.Get(ctx); ok {
		metrics.MenuCacheTotal.WithLabelValues("hit").Inc()
		return pizzas, nil
	}
	metrics.MenuCacheTotal.WithLabelValues("miss").Inc()

	pizzas, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, pizzas)
	return pizzas, nil
}

func (s *PizzaService) Create(ctx context.Context, input ports.PizzaInput) (*domain.Pizza, error) {
	now := time.Now().UTC()
	pizza := &domain.Pizza{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, pizza)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.logger.Info().Str("pizza_id", created.ID).Str("name", created.Name).Msg("pizza created")
	return created, nil
}

func (s *PizzaService) Update(ctx context.Context, id string, input ports.PizzaInput) (*domain.Pizza, error) {
	pizza, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pizza.Name = input.Name
	pizza.Description = input.Description
	pizza.Price = input.Price
	pizza.ImageURL = input.ImageURL
	pizza.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, pizza); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.logger.Info().Str("pizza_id", pizza.ID).Msg("pizza updated")
	return pizza, nil
}

func (s *PizzaService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	s.logger.Info().Str("pizza_id", id).Msg("pizza deleted")
	return nil
}
