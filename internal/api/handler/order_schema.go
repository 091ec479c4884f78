package handler

// orderItemRequest is one product/quantity pair in an order payload.
type orderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

// createOrderRequest mirrors the orders:create argument shape. Status is a
// free-form string; no state machine is enforced on it.
type createOrderRequest struct {
	CustomerID  string             `json:"customerId"  validate:"required"`
	Products    []orderItemRequest `json:"products"    validate:"required,min=1,dive"`
	TotalAmount float64            `json:"totalAmount" validate:"required,gt=0"`
	Status      string             `json:"status"      validate:"required"`
}
