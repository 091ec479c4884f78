package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

// OrderHandler handles the protected /api/orders routes.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /api/orders. The response body is the new order id,
// exactly as the backend mutation returned it.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {string}  string
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	items := make([]domain.OrderItem, 0, len(req.Products))
	for _, item := range req.Products {
		items = append(items, domain.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	id, err := h.service.Create(c.Request().Context(), ports.NewOrder{
		CustomerID:  req.CustomerID,
		Products:    items,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to create order"})
	}

	return c.JSON(http.StatusCreated, id)
}

// Get handles GET /api/orders/:id.
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch order"})
	}
	return c.JSON(http.StatusOK, order)
}
