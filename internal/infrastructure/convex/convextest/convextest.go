// Package convextest provides an in-memory stand-in for a backend deployment,
// speaking the same /api/query and /api/mutation wire protocol as the real
// thing. It reproduces the backend functions' observable behavior: thrown
// error messages, null results for unknown ids, bcrypt password handling, and
// password hashes stripped from every user read.
//
// Intended for tests only.
package convextest

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userDoc struct {
	ID           string `json:"_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	CreatedAt    int64  `json:"createdAt"`
	PasswordHash string `json:"-"`
}

type productDoc struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	VendorID    string  `json:"vendorId"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

type orderItemDoc struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type orderDoc struct {
	ID          string         `json:"_id"`
	CustomerID  string         `json:"customerId"`
	Products    []orderItemDoc `json:"products"`
	TotalAmount float64        `json:"totalAmount"`
	Status      string         `json:"status"`
}

type vendorDoc struct {
	ID          string   `json:"_id"`
	UserID      string   `json:"userId"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating,omitempty"`
}

// Deployment is the in-memory fake. Zero value is not usable; call New.
// It implements http.Handler, so tests wrap it in an httptest.Server.
type Deployment struct {
	mu       sync.Mutex
	users    map[string]*userDoc
	products map[string]*productDoc
	orders   map[string]*orderDoc
	vendors  map[string]*vendorDoc
	calls    []string
}

// New returns an empty Deployment.
func New() *Deployment {
	return &Deployment{
		users:    map[string]*userDoc{},
		products: map[string]*productDoc{},
		orders:   map[string]*orderDoc{},
		vendors:  map[string]*vendorDoc{},
	}
}

// Calls returns the function paths invoked so far, in order.
func (d *Deployment) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

// CallCount returns how many times the given function path was invoked.
func (d *Deployment) CallCount(path string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, c := range d.calls {
		if c == path {
			n++
		}
	}
	return n
}

// SeedUser inserts a user directly (bypassing the wire) and returns its id.
func (d *Deployment) SeedUser(email, password, name, role string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	id := newID("users")
	d.users[id] = &userDoc{
		ID:           id,
		Email:        email,
		Name:         name,
		Role:         role,
		CreatedAt:    time.Now().UnixMilli(),
		PasswordHash: string(hash),
	}
	return id
}

// SeedVendor inserts a vendor directly and returns its id.
func (d *Deployment) SeedVendor(userID, description string, rating *float64) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := newID("vendors")
	d.vendors[id] = &vendorDoc{ID: id, UserID: userID, Description: description, Rating: rating}
	return id
}

type wireRequest struct {
	Path string         `json:"path"`
	Args map[string]any `json:"args"`
}

func (d *Deployment) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	kind := strings.TrimPrefix(r.URL.Path, "/api/")
	if r.URL.Path == "/version" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost || (kind != "query" && kind != "mutation") {
		http.NotFound(w, r)
		return
	}

	var req wireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "malformed request")
		return
	}

	d.mu.Lock()
	d.calls = append(d.calls, req.Path)
	value, err := d.invoke(kind, req.Path, req.Args)
	d.mu.Unlock()

	if err != nil {
		// Real deployments prefix thrown messages this way.
		writeError(w, "Uncaught Error: "+err.Error())
		return
	}
	writeValue(w, value)
}

func (d *Deployment) invoke(kind, path string, args map[string]any) (any, error) {
	type fn struct {
		kind string
		run  func(map[string]any) (any, error)
	}
	table := map[string]fn{
		"users:create":     {"mutation", d.usersCreate},
		"users:login":      {"query", d.usersLogin},
		"users:getUser":    {"query", d.usersGet},
		"users:listUsers":  {"query", d.usersList},
		"users:updateUser": {"mutation", d.usersUpdate},
		"users:deleteUser": {"mutation", d.usersDelete},
		"products:list":    {"query", d.productsList},
		"products:get":     {"query", d.productsGet},
		"products:create":  {"mutation", d.productsCreate},
		"orders:get":       {"query", d.ordersGet},
		"orders:create":    {"mutation", d.ordersCreate},
		"vendors:list":     {"query", d.vendorsList},
		"vendors:get":      {"query", d.vendorsGet},
		"vendors:create":   {"mutation", d.vendorsCreate},
	}

	f, ok := table[path]
	if !ok {
		return nil, fmt.Errorf("Could not find public function for '%s'", path)
	}
	if f.kind != kind {
		return nil, fmt.Errorf("Function %s is a %s, called as %s", path, f.kind, kind)
	}
	return f.run(args)
}

// ── users ─────────────────────────────────────────────────────────────────────

func (d *Deployment) usersCreate(args map[string]any) (any, error) {
	email := str(args, "email")
	for _, u := range d.users {
		if u.Email == email {
			return nil, fmt.Errorf("User already exists")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(str(args, "password")), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	id := newID("users")
	d.users[id] = &userDoc{
		ID:           id,
		Email:        email,
		Name:         str(args, "name"),
		Role:         str(args, "role"),
		CreatedAt:    time.Now().UnixMilli(),
		PasswordHash: string(hash),
	}
	return map[string]any{"userId": id, "role": str(args, "role")}, nil
}

func (d *Deployment) usersLogin(args map[string]any) (any, error) {
	email := str(args, "email")
	for _, u := range d.users {
		if u.Email == email {
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(str(args, "password"))) != nil {
				return nil, fmt.Errorf("Invalid password")
			}
			return map[string]any{"userId": u.ID, "role": u.Role}, nil
		}
	}
	return nil, fmt.Errorf("User not found")
}

func (d *Deployment) usersGet(args map[string]any) (any, error) {
	u, ok := d.users[str(args, "userId")]
	if !ok {
		return nil, fmt.Errorf("User not found")
	}
	return u, nil
}

func (d *Deployment) usersList(args map[string]any) (any, error) {
	role := str(args, "role")
	out := []*userDoc{}
	for _, u := range d.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (d *Deployment) usersUpdate(args map[string]any) (any, error) {
	u, ok := d.users[str(args, "userId")]
	if !ok {
		return nil, fmt.Errorf("User not found")
	}
	if v := str(args, "name"); v != "" {
		u.Name = v
	}
	if v := str(args, "email"); v != "" {
		u.Email = v
	}
	if v := str(args, "role"); v != "" {
		u.Role = v
	}
	return map[string]any{"success": true}, nil
}

func (d *Deployment) usersDelete(args map[string]any) (any, error) {
	id := str(args, "userId")
	if _, ok := d.users[id]; !ok {
		return nil, fmt.Errorf("User not found")
	}
	delete(d.users, id)
	return map[string]any{"success": true}, nil
}

// ── products ──────────────────────────────────────────────────────────────────

func (d *Deployment) productsList(map[string]any) (any, error) {
	out := []*productDoc{}
	for _, p := range d.products {
		out = append(out, p)
	}
	return out, nil
}

func (d *Deployment) productsGet(args map[string]any) (any, error) {
	// Missing ids yield null, not an error.
	return d.products[str(args, "id")], nil
}

func (d *Deployment) productsCreate(args map[string]any) (any, error) {
	id := newID("products")
	d.products[id] = &productDoc{
		ID:          id,
		Name:        str(args, "name"),
		Description: str(args, "description"),
		Price:       num(args, "price"),
		VendorID:    str(args, "vendorId"),
		ImageURL:    str(args, "imageUrl"),
		Category:    str(args, "category"),
		Stock:       int(num(args, "stock")),
	}
	return id, nil
}

// ── orders ────────────────────────────────────────────────────────────────────

func (d *Deployment) ordersGet(args map[string]any) (any, error) {
	return d.orders[str(args, "id")], nil
}

func (d *Deployment) ordersCreate(args map[string]any) (any, error) {
	id := newID("orders")
	order := &orderDoc{
		ID:          id,
		CustomerID:  str(args, "customerId"),
		TotalAmount: num(args, "totalAmount"),
		Status:      str(args, "status"),
	}
	if items, ok := args["products"].([]any); ok {
		for _, raw := range items {
			if m, ok := raw.(map[string]any); ok {
				order.Products = append(order.Products, orderItemDoc{
					ProductID: str(m, "productId"),
					Quantity:  int(num(m, "quantity")),
				})
			}
		}
	}
	d.orders[id] = order
	return id, nil
}

// ── vendors ───────────────────────────────────────────────────────────────────

func (d *Deployment) vendorsList(map[string]any) (any, error) {
	out := []*vendorDoc{}
	for _, v := range d.vendors {
		out = append(out, v)
	}
	return out, nil
}

func (d *Deployment) vendorsGet(args map[string]any) (any, error) {
	return d.vendors[str(args, "id")], nil
}

func (d *Deployment) vendorsCreate(args map[string]any) (any, error) {
	id := newID("vendors")
	v := &vendorDoc{
		ID:          id,
		UserID:      str(args, "userId"),
		Description: str(args, "description"),
	}
	if r, ok := args["rating"].(float64); ok {
		v.Rating = &r
	}
	d.vendors[id] = v
	return id, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func newID(table string) string {
	return table + "|" + uuid.NewString()[:13]
}

func str(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func num(args map[string]any, key string) float64 {
	n, _ := args[key].(float64)
	return n
}

func writeValue(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "value": value})
}

func writeError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "error", "errorMessage": message})
}
