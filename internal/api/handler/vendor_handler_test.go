package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

type stubVendorService struct {
	listFn   func(ctx context.Context) ([]domain.Vendor, error)
	getFn    func(ctx context.Context, id string) (*domain.Vendor, error)
	createFn func(ctx context.Context, vendor ports.NewVendor) (string, error)
}

func (s *stubVendorService) List(ctx context.Context) ([]domain.Vendor, error) {
	return s.listFn(ctx)
}

func (s *stubVendorService) Get(ctx context.Context, id string) (*domain.Vendor, error) {
	return s.getFn(ctx, id)
}

func (s *stubVendorService) Create(ctx context.Context, vendor ports.NewVendor) (string, error) {
	return s.createFn(ctx, vendor)
}

func TestVendorHandler_Create_WithRating(t *testing.T) {
	stub := &stubVendorService{
		createFn: func(_ context.Context, vendor ports.NewVendor) (string, error) {
			if vendor.UserID != "users|1" || vendor.Rating == nil || *vendor.Rating != 4.5 {
				t.Fatalf("unexpected args: %+v", vendor)
			}
			return "vendors|new", nil
		},
	}
	h := NewVendorHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/vendors",
		`{"userId":"users|1","description":"Handmade lamps","rating":4.5}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `"vendors|new"` {
		t.Fatalf("expected raw id body, got %s", body)
	}
}

func TestVendorHandler_Create_RatingOptional(t *testing.T) {
	stub := &stubVendorService{
		createFn: func(_ context.Context, vendor ports.NewVendor) (string, error) {
			if vendor.Rating != nil {
				t.Fatalf("absent rating must stay nil: %+v", vendor)
			}
			return "vendors|new", nil
		},
	}
	h := NewVendorHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/vendors",
		`{"userId":"users|1","description":"Handmade lamps"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestVendorHandler_Create_RatingOutOfRange(t *testing.T) {
	for name, body := range map[string]string{
		"above five": `{"userId":"users|1","description":"d","rating":5.5}`,
		"negative":   `{"userId":"users|1","description":"d","rating":-1}`,
	} {
		stub := &stubVendorService{
			createFn: func(context.Context, ports.NewVendor) (string, error) {
				t.Fatalf("%s: service should not be called", name)
				return "", nil
			},
		}
		h := NewVendorHandler(stub)

		c, rec := newTestContext(http.MethodPost, "/api/vendors", body)
		_ = h.Create(c)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestVendorHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubVendorService{
		listFn: func(context.Context) ([]domain.Vendor, error) { return nil, nil },
	}
	h := NewVendorHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/vendors", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestVendorHandler_Get_NotFound(t *testing.T) {
	stub := &stubVendorService{
		getFn: func(context.Context, string) (*domain.Vendor, error) {
			return nil, domain.ErrVendorNotFound
		},
	}
	h := NewVendorHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/vendors/vendors|missing", "")
	c.SetParamNames("id")
	c.SetParamValues("vendors|missing")
	_ = h.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Vendor not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
