package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

type stubUserService struct {
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	listFn   func(ctx context.Context, role string) ([]domain.User, error)
	updateFn func(ctx context.Context, id string, patch ports.UserPatch) error
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context, role string) ([]domain.User, error) {
	return s.listFn(ctx, role)
}

func (s *stubUserService) Update(ctx context.Context, id string, patch ports.UserPatch) error {
	return s.updateFn(ctx, id, patch)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestUserHandler_List_RoleFilter(t *testing.T) {
	stub := &stubUserService{
		listFn: func(_ context.Context, role string) ([]domain.User, error) {
			if role != "vendor" {
				t.Fatalf("expected role filter, got %q", role)
			}
			return []domain.User{{ID: "users|1", Email: "v@example.com", Role: domain.RoleVendor}}, nil
		},
	}
	h := NewUserHandler(stub, zerolog.Nop())

	c, rec := newTestContext(http.MethodGet, "/api/users?role=vendor", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 1 || users[0]["_id"] != "users|1" {
		t.Fatalf("unexpected users: %+v", users)
	}
	// Password material never crosses the wire.
	if strings.Contains(strings.ToLower(rec.Body.String()), "password") {
		t.Fatalf("password leaked: %s", rec.Body.String())
	}
}

func TestUserHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubUserService{
		listFn: func(context.Context, string) ([]domain.User, error) { return nil, nil },
	}
	h := NewUserHandler(stub, zerolog.Nop())

	c, rec := newTestContext(http.MethodGet, "/api/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	stub := &stubUserService{
		getFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub, zerolog.Nop())

	c, rec := newTestContext(http.MethodGet, "/api/users/users|ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("users|ghost")
	_ = h.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Update_Success(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(_ context.Context, id string, patch ports.UserPatch) error {
			if id != "users|1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if patch.Name == nil || *patch.Name != "New Name" {
				t.Fatalf("expected name patch, got %+v", patch)
			}
			if patch.Email != nil || patch.Role != nil {
				t.Fatalf("absent fields must stay nil: %+v", patch)
			}
			return nil
		},
	}
	h := NewUserHandler(stub, zerolog.Nop())

	c, rec := newTestContext(http.MethodPatch, "/api/users/users|1", `{"name":"New Name"}`)
	c.SetParamNames("id")
	c.SetParamValues("users|1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"success":true}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestUserHandler_Update_InvalidEmail(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(context.Context, string, ports.UserPatch) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewUserHandler(stub, zerolog.Nop())

	c, rec := newTestContext(http.MethodPatch, "/api/users/users|1", `{"email":"not-an-email"}`)
	c.SetParamNames("id")
	c.SetParamValues("users|1")
	_ = h.Update(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Update_NotFound(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(context.Context, string, ports.UserPatch) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub, zerolog.Nop())

	c, rec := newTestContext(http.MethodPatch, "/api/users/users|ghost", `{"name":"X"}`)
	c.SetParamNames("id")
	c.SetParamValues("users|ghost")
	_ = h.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	deleted := ""
	stub := &stubUserService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewUserHandler(stub, zerolog.Nop())

	c, rec := newTestContext(http.MethodDelete, "/api/users/users|1", "")
	c.SetParamNames("id")
	c.SetParamValues("users|1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if deleted != "users|1" {
		t.Fatalf("expected delete of users|1, got %q", deleted)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"success":true}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(context.Context, string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub, zerolog.Nop())

	c, rec := newTestContext(http.MethodDelete, "/api/users/users|ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("users|ghost")
	_ = h.Delete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
