package domain

import "errors"

var ErrVendorNotFound = errors.New("vendor not found")

// Vendor mirrors a document in the backend's vendors table. Rating is
// optional and, when present, lies in [0,5].
type Vendor struct {
	ID           string   `json:"_id"`
	CreationTime float64  `json:"_creationTime,omitempty"`
	UserID       string   `json:"userId"`
	Description  string   `json:"description"`
	Rating       *float64 `json:"rating,omitempty"`
}
