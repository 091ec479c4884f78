package domain

import "errors"

var ErrOrderNotFound = errors.New("order not found")

// OrderItem is one product/quantity pair inside an order.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order mirrors a document in the backend's orders table. Status is a
// free-form string; the backend enforces no state machine on it.
type Order struct {
	ID           string      `json:"_id"`
	CreationTime float64     `json:"_creationTime,omitempty"`
	CustomerID   string      `json:"customerId"`
	Products     []OrderItem `json:"products"`
	TotalAmount  float64     `json:"totalAmount"`
	Status       string      `json:"status"`
}
