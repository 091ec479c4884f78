package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, user ports.NewUser) (ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, user ports.NewUser) (ports.AuthResult, error) {
	return s.registerFn(ctx, user)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

// newTestContext builds an echo context with the validator installed, the way
// the router wires it.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, user ports.NewUser) (ports.AuthResult, error) {
			if user.Email != "alice@example.com" || user.Role != domain.RoleCustomer {
				t.Fatalf("unexpected args: %+v", user)
			}
			return ports.AuthResult{
				Token:    "token123",
				Identity: domain.Identity{UserID: "users|alice", Role: domain.RoleCustomer},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"supersecret","name":"Alice","role":"customer"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["userId"] != "users|alice" || user["role"] != "customer" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Register_BackendFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.NewUser) (ports.AuthResult, error) {
			return ports.AuthResult{}, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"email":"bob@example.com","password":"supersecret","name":"Bob","role":"vendor"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to register user") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.NewUser) (ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return ports.AuthResult{}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"email":"bob@example.com","password":"short","name":"Bob","role":"vendor"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_UnknownRole(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.NewUser) (ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return ports.AuthResult{}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"email":"bob@example.com","password":"supersecret","name":"Bob","role":"superuser"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.NewUser) (ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return ports.AuthResult{}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/register", "not-json")
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (ports.AuthResult, error) {
			if email != "alice@example.com" || password != "supersecret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return ports.AuthResult{
				Token:    "token123",
				Identity: domain.Identity{UserID: "users|alice", Role: domain.RoleAdmin},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"supersecret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_Failure(t *testing.T) {
	// Unknown email and wrong password must produce the same reply.
	for _, cause := range []error{domain.ErrUserNotFound, domain.ErrInvalidCredentials} {
		stub := &stubAuthService{
			loginFn: func(context.Context, string, string) (ports.AuthResult, error) {
				return ports.AuthResult{}, cause
			},
		}
		h := NewAuthHandler(stub)

		c, rec := newTestContext(http.MethodPost, "/auth/login",
			`{"email":"ghost@example.com","password":"whatever"}`)
		_ = h.Login(c)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("cause %v: expected 401, got %d", cause, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Invalid credentials") {
			t.Fatalf("cause %v: unexpected body: %s", cause, rec.Body.String())
		}
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return ports.AuthResult{}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"alice@example.com"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
