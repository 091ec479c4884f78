package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context) ([]domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	createFn func(ctx context.Context, product ports.NewProduct) (string, error)
}

func (s *stubProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, product ports.NewProduct) (string, error) {
	return s.createFn(ctx, product)
}

func TestProductHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubProductService{
		listFn: func(context.Context) ([]domain.Product, error) { return nil, nil },
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	stub := &stubProductService{
		getFn: func(context.Context, string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/products/products|missing", "")
	c.SetParamNames("id")
	c.SetParamValues("products|missing")
	_ = h.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Product not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, product ports.NewProduct) (string, error) {
			if product.Name != "Lamp" || product.Stock != 0 {
				t.Fatalf("unexpected args: %+v", product)
			}
			return "products|new", nil
		},
	}
	h := NewProductHandler(stub)

	// Stock zero is a legal value and must survive validation.
	c, rec := newTestContext(http.MethodPost, "/api/products",
		`{"name":"Lamp","description":"A lamp","price":19.5,"vendorId":"vendors|1","imageUrl":"https://cdn.example.com/lamp.png","category":"home","stock":0}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `"products|new"` {
		t.Fatalf("expected raw id body, got %s", body)
	}
}

func TestProductHandler_Create_Validation(t *testing.T) {
	cases := map[string]string{
		"zero price":     `{"name":"Lamp","description":"d","price":0,"vendorId":"vendors|1","imageUrl":"https://x.com/a.png","category":"home","stock":1}`,
		"negative price": `{"name":"Lamp","description":"d","price":-1,"vendorId":"vendors|1","imageUrl":"https://x.com/a.png","category":"home","stock":1}`,
		"negative stock": `{"name":"Lamp","description":"d","price":5,"vendorId":"vendors|1","imageUrl":"https://x.com/a.png","category":"home","stock":-1}`,
		"missing stock":  `{"name":"Lamp","description":"d","price":5,"vendorId":"vendors|1","imageUrl":"https://x.com/a.png","category":"home"}`,
		"bad image url":  `{"name":"Lamp","description":"d","price":5,"vendorId":"vendors|1","imageUrl":"not-a-url","category":"home","stock":1}`,
		"missing name":   `{"description":"d","price":5,"vendorId":"vendors|1","imageUrl":"https://x.com/a.png","category":"home","stock":1}`,
	}

	for name, body := range cases {
		stub := &stubProductService{
			createFn: func(context.Context, ports.NewProduct) (string, error) {
				t.Fatalf("%s: service should not be called", name)
				return "", nil
			},
		}
		h := NewProductHandler(stub)

		c, rec := newTestContext(http.MethodPost, "/api/products", body)
		_ = h.Create(c)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestProductHandler_Create_BackendFailure(t *testing.T) {
	stub := &stubProductService{
		createFn: func(context.Context, ports.NewProduct) (string, error) {
			return "", context.DeadlineExceeded
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/products",
		`{"name":"Lamp","description":"d","price":5,"vendorId":"vendors|1","imageUrl":"https://x.com/a.png","category":"home","stock":1}`)
	_ = h.Create(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to create product") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
