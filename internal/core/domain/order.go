package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPreparing OrderStatus = "PREPARING"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrEmptyOrder = errors.New("order must have at least one item")
var ErrInvalidQuantity = errors.New("item quantity must be at least 1")

// OrderItem is one line of an order. UnitPrice is the pizza's price at the
// moment the order was placed; later menu price changes never touch it.
type OrderItem struct {
	PizzaID   string  `json:"pizza_id"`
	PizzaName string  `json:"pizza_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is the aggregate persisted at placement time. Items embed directly
// in the document, so a single insert is the atomic unit of work. Total is
// computed once at creation and never recomputed.
type Order struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Status    OrderStatus `json:"status"`
	Total     float64     `json:"total"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}
