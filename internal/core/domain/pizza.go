package domain

import (
	"errors"
	"time"
)

var ErrPizzaNotFound = errors.New("pizza not found")
var ErrPizzaNameTaken = errors.New("pizza name already exists")

// Pizza is a menu item. Only available pizzas appear on the public menu;
// unavailable ones stay referenced by historical orders.
type Pizza struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
