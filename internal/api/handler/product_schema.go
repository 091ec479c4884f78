package handler

// createProductRequest mirrors the products:create argument shape: price must
// be strictly positive, stock a non-negative integer, imageUrl a URL.
type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	VendorID    string  `json:"vendorId"    validate:"required"`
	ImageURL    string  `json:"imageUrl"    validate:"required,url"`
	Category    string  `json:"category"    validate:"required"`
	Stock       *int    `json:"stock"       validate:"required,gte=0"`
}
