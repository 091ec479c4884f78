package handler

// createVendorRequest mirrors the vendors:create argument shape. Rating is
// optional; when present it must lie in [0,5].
type createVendorRequest struct {
	UserID      string   `json:"userId"      validate:"required"`
	Description string   `json:"description" validate:"required"`
	Rating      *float64 `json:"rating"      validate:"omitempty,gte=0,lte=5"`
}
