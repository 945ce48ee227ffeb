package handler

import (
	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

// --- Domain → HTTP response ---

func toPizzaResponse(p *domain.Pizza) pizzaResponse {
	return pizzaResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Available:   p.Available,
	}
}

func toPizzaListResponse(pizzas []domain.Pizza) []pizzaResponse {
	out := make([]pizzaResponse, len(pizzas))
	for i := range pizzas {
		out[i] = toPizzaResponse(&pizzas[i])
	}
	return out
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			PizzaID:   item.PizzaID,
			PizzaName: item.PizzaName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return orderResponse{
		ID:        o.ID,
		Status:    string(o.Status),
		Total:     o.Total,
		Items:     items,
		CreatedAt: o.CreatedAt.UTC(),
	}
}

func toOrderListResponse(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	return out
}
