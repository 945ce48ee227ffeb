package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzeria/pizzeria-api/internal/core/ports"
)

// PizzaHandler handles the public menu listing and the admin-only menu
// mutations.
type PizzaHandler struct {
	service ports.PizzaService
}

func NewPizzaHandler(service ports.PizzaService) *PizzaHandler {
	return &PizzaHandler{service: service}
}

// List handles GET /api/pizzas, the public menu. No auth required.
//
// @Summary      List available pizzas
// @Tags         pizzas
// @Produce      json
// @Success      200  {array}  pizzaResponse
// @Router       /pizzas [get]
func (h *PizzaHandler) List(c echo.Context) error {
	pizzas, err := h.service.ListAvailable(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPizzaListResponse(pizzas))
}

// Create handles POST /api/pizzas (admin only).
//
// @Summary      Create a pizza
// @Tags         pizzas
// @Accept       json
// @Produce      json
// @Param        body  body      pizzaRequest  true  "Pizza details"
// @Success      201   {object}  pizzaResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /pizzas [post]
func (h *PizzaHandler) Create(c echo.Context) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	var req pizzaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pizza, err := h.service.Create(c.Request().Context(), ports.PizzaInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPizzaResponse(pizza))
}

// Update handles PUT /api/pizzas/:id (admin only).
//
// @Summary      Update a pizza
// @Tags         pizzas
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Pizza id"
// @Param        body  body      pizzaRequest  true  "Pizza details"
// @Success      200   {object}  pizzaResponse
// @Failure      404   {object}  errorResponse
// @Router       /pizzas/{id} [put]
func (h *PizzaHandler) Update(c echo.Context) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	var req pizzaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pizza, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.PizzaInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPizzaResponse(pizza))
}

// Delete handles DELETE /api/pizzas/:id (admin only).
//
// @Summary      Delete a pizza
// @Tags         pizzas
// @Param        id  path  string  true  "Pizza id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /pizzas/{id} [delete]
func (h *PizzaHandler) Delete(c echo.Context) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
