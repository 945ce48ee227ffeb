package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzeria/pizzeria-api/internal/core/ports"
)

// OrderHandler handles order placement and history for authenticated users.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Place handles POST /api/orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      placeOrderRequest  true  "Order items"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = ports.OrderItemInput{PizzaID: item.PizzaID, Quantity: item.Quantity}
	}

	order, err := h.service.PlaceOrder(c.Request().Context(), identity.Username, items)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// MyOrders handles GET /api/orders/my-orders, newest first.
//
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   orderResponse
// @Failure      401  {object}  errorResponse
// @Router       /orders/my-orders [get]
func (h *OrderHandler) MyOrders(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListOrders(c.Request().Context(), identity.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderListResponse(orders))
}
