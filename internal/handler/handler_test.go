package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/RostislavK636/B2B-marketplace/internal/config"
	"github.com/RostislavK636/B2B-marketplace/internal/domain"
	"github.com/RostislavK636/B2B-marketplace/internal/handler"
	"github.com/RostislavK636/B2B-marketplace/internal/handler/middleware"
	"github.com/RostislavK636/B2B-marketplace/internal/service"
	"github.com/RostislavK636/B2B-marketplace/internal/session"
	"github.com/RostislavK636/B2B-marketplace/pkg/hash"
	"github.com/RostislavK636/B2B-marketplace/pkg/validator"
)

const testCookieName = "b2b_session"

type fakeSellerRepo struct {
	mu      sync.Mutex
	nextID  int64
	sellers map[int64]*domain.Seller
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{sellers: make(map[int64]*domain.Seller)}
}

func (r *fakeSellerRepo) Create(_ context.Context, seller *domain.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.sellers {
		if existing.Email == seller.Email {
			return domain.ErrEmailTaken
		}
	}

	r.nextID++
	seller.ID = r.nextID
	copied := *seller
	r.sellers[seller.ID] = &copied
	return nil
}

func (r *fakeSellerRepo) GetByID(_ context.Context, id int64) (*domain.Seller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seller, ok := r.sellers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *seller
	return &copied, nil
}

func (r *fakeSellerRepo) GetByEmail(_ context.Context, email string) (*domain.Seller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, seller := range r.sellers {
		if seller.Email == email {
			copied := *seller
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSellerRepo) List(_ context.Context) ([]*domain.Seller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Seller
	for _, seller := range r.sellers {
		copied := *seller
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSellerRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sellers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sellers, id)
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*domain.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	product.ID = r.nextID
	for i := range product.PriceRanges {
		r.nextID++
		product.PriceRanges[i].ID = r.nextID
		product.PriceRanges[i].ProductID = product.ID
	}
	if product.Details != nil {
		r.nextID++
		product.Details.ID = r.nextID
		product.Details.ProductID = product.ID
	}

	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) ListBySeller(_ context.Context, sellerID int64) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Product
	for _, product := range r.products {
		if product.SellerID == sellerID {
			copied := *product
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DeleteBySeller(_ context.Context, sellerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, product := range r.products {
		if product.SellerID == sellerID {
			delete(r.products, id)
		}
	}
	return nil
}

type testEnv struct {
	app     *fiber.App
	sellers *fakeSellerRepo
	store   *session.MemoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	sellerRepo := newFakeSellerRepo()
	productRepo := newFakeProductRepo()
	store := session.NewMemoryStore(time.Hour)

	hasher := hash.New(hash.Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	validate := validator.NewValidator()

	sessionCfg := config.SessionConfig{
		TTL:        time.Hour,
		CookieName: testCookieName,
	}

	authService := service.NewAuthService(sellerRepo, store, hasher)
	sellerService := service.NewSellerService(sellerRepo)
	productService := service.NewProductService(productRepo)

	app := fiber.New()
	handler.SetupRoutes(
		app,
		handler.NewAuthHandler(authService, validate, sessionCfg),
		handler.NewSellerHandler(sellerService, authService),
		handler.NewProductHandler(productService, validate),
		handler.NewHealthHandler(),
		middleware.RequireSession(authService, sessionCfg.CookieName),
	)

	return &testEnv{app: app, sellers: sellerRepo, store: store}
}

func (e *testEnv) request(t *testing.T, method, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()

	defer resp.Body.Close()
	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// sessionCookie returns the live session cookie set on resp, nil if none.
func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == testCookieName && c.Value != "" && c.MaxAge >= 0 {
			return c
		}
	}
	return nil
}

func registrationBody(email string) map[string]any {
	return map[string]any{
		"name":        "Ada",
		"surname":     "Lovelace",
		"email":       email,
		"phoneNumber": "+4912345678",
		"password":    "s3cret-pass",
		"company":     "Analytical Engines GmbH",
		"taxpayerId":  "DE123456789",
	}
}

func (e *testEnv) register(t *testing.T, email string) *http.Cookie {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/api/v1/registration", registrationBody(email), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	decodeBody(t, resp)
	return cookie
}
