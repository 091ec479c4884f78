package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

// VendorHandler handles the protected /api/vendors routes.
type VendorHandler struct {
	service ports.VendorService
}

func NewVendorHandler(service ports.VendorService) *VendorHandler {
	return &VendorHandler{service: service}
}

// List handles GET /api/vendors.
//
// @Summary      List all vendors
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Vendor
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/vendors [get]
func (h *VendorHandler) List(c echo.Context) error {
	vendors, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch vendors"})
	}
	if vendors == nil {
		vendors = []domain.Vendor{}
	}
	return c.JSON(http.StatusOK, vendors)
}

// Get handles GET /api/vendors/:id.
//
// @Summary      Get a vendor by id
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Vendor id"
// @Success      200  {object}  domain.Vendor
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/vendors/{id} [get]
func (h *VendorHandler) Get(c echo.Context) error {
	vendor, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Vendor not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch vendor"})
	}
	return c.JSON(http.StatusOK, vendor)
}

// Create handles POST /api/vendors. The response body is the new vendor id,
// exactly as the backend mutation returned it.
//
// @Summary      Create a vendor profile
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVendorRequest  true  "Vendor details"
// @Success      201   {string}  string
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/vendors [post]
func (h *VendorHandler) Create(c echo.Context) error {
	var req createVendorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	id, err := h.service.Create(c.Request().Context(), ports.NewVendor{
		UserID:      req.UserID,
		Description: req.Description,
		Rating:      req.Rating,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to create vendor"})
	}

	return c.JSON(http.StatusCreated, id)
}
