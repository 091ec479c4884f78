package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

// ProductHandler handles the protected /api/products routes.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch products"})
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch product"})
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /api/products. The response body is the new product id,
// exactly as the backend mutation returned it.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {string}  string
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	id, err := h.service.Create(c.Request().Context(), ports.NewProduct{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		VendorID:    req.VendorID,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Stock:       *req.Stock,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to create product"})
	}

	return c.JSON(http.StatusCreated, id)
}
