package convex

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

// UserBackend maps the users port onto the backend's users module.
type UserBackend struct {
	client *Client
}

// NewUserBackend returns a UserBackend backed by the given client.
func NewUserBackend(client *Client) *UserBackend {
	return &UserBackend{client: client}
}

func (b *UserBackend) Create(ctx context.Context, user ports.NewUser) (domain.Identity, error) {
	args := map[string]any{
		"email":    user.Email,
		"password": user.Password,
		"name":     user.Name,
		"role":     user.Role,
	}

	var identity domain.Identity
	if err := b.client.Mutation(ctx, "users:create", args, &identity); err != nil {
		if thrownContains(err, "User already exists") {
			return domain.Identity{}, domain.ErrUserExists
		}
		return domain.Identity{}, fmt.Errorf("users:create: %w", err)
	}
	return identity, nil
}

func (b *UserBackend) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	args := map[string]any{"email": email, "password": password}

	var identity domain.Identity
	if err := b.client.Query(ctx, "users:login", args, &identity); err != nil {
		switch {
		case thrownContains(err, "User not found"):
			return domain.Identity{}, domain.ErrUserNotFound
		case thrownContains(err, "Invalid password"):
			return domain.Identity{}, domain.ErrInvalidCredentials
		}
		return domain.Identity{}, fmt.Errorf("users:login: %w", err)
	}
	return identity, nil
}

func (b *UserBackend) Get(ctx context.Context, id string) (*domain.User, error) {
	var user *domain.User
	if err := b.client.Query(ctx, "users:getUser", map[string]any{"userId": id}, &user); err != nil {
		if thrownContains(err, "User not found") {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("users:getUser: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (b *UserBackend) List(ctx context.Context, role string) ([]domain.User, error) {
	args := map[string]any{}
	if role != "" {
		args["role"] = role
	}

	var users []domain.User
	if err := b.client.Query(ctx, "users:listUsers", args, &users); err != nil {
		return nil, fmt.Errorf("users:listUsers: %w", err)
	}
	return users, nil
}

func (b *UserBackend) Update(ctx context.Context, id string, patch ports.UserPatch) error {
	args := map[string]any{"userId": id}
	if patch.Name != nil {
		args["name"] = *patch.Name
	}
	if patch.Email != nil {
		args["email"] = *patch.Email
	}
	if patch.Role != nil {
		args["role"] = *patch.Role
	}

	if err := b.client.Mutation(ctx, "users:updateUser", args, nil); err != nil {
		if thrownContains(err, "User not found") {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("users:updateUser: %w", err)
	}
	return nil
}

func (b *UserBackend) Delete(ctx context.Context, id string) error {
	if err := b.client.Mutation(ctx, "users:deleteUser", map[string]any{"userId": id}, nil); err != nil {
		if thrownContains(err, "User not found") {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("users:deleteUser: %w", err)
	}
	return nil
}

// thrownContains reports whether err is a function-thrown error whose message
// contains needle. Backend runtimes prefix thrown messages (e.g. "Uncaught
// Error: ..."), so substring matching is the reliable check.
func thrownContains(err error, needle string) bool {
	var se *ServerError
	return errors.As(err, &se) && strings.Contains(se.Message, needle)
}
