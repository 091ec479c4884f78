package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product mirrors a document in the backend's products table.
type Product struct {
	ID           string  `json:"_id"`
	CreationTime float64 `json:"_creationTime,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	VendorID     string  `json:"vendorId"`
	ImageURL     string  `json:"imageUrl"`
	Category     string  `json:"category"`
	Stock        int     `json:"stock"`
}
