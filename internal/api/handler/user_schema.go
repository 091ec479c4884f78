package handler

// updateUserRequest carries the optional fields of PATCH /api/users/:id.
// Absent fields leave the stored value untouched.
type updateUserRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role"  validate:"omitempty,oneof=admin vendor customer"`
}
