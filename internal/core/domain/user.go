package domain

import "errors"

// Role values accepted at registration time.
const (
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
	RoleCustomer = "customer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User mirrors a document in the backend's users table. The password hash is
// excluded from JSON serialization on top of the backend already stripping it
// from list and get responses.
type User struct {
	ID           string  `json:"_id"`
	CreationTime float64 `json:"_creationTime,omitempty"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	PasswordHash string  `json:"-"`
	CreatedAt    int64   `json:"createdAt"`
}

// Identity is the payload carried by a bearer token: the authenticated
// user's backend id and role.
type Identity struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

var ErrInvalidToken = errors.New("invalid token")
