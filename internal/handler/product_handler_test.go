package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productBody(name string) map[string]any {
	return map[string]any{
		"name":                name,
		"availability":        5000,
		"description":         "Full lot",
		"detailedDescription": "Palletized, ready to ship",
		"productPriceRanges": []map[string]any{
			{"initialQuantity": 1, "finalQuantity": 99, "pricePerRange": 1200},
			{"initialQuantity": 100, "finalQuantity": 999, "pricePerRange": 950},
		},
		"productDetails": map[string]any{
			"size":         "120x80",
			"material":     "wood",
			"loadCapacity": "1500kg",
		},
	}
}

func TestProductsRequireSession(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/v1/products", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/v1/products", productBody("pallets"), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodDelete, "/api/v1/products", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductCreateAndList(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.register(t, "a@x.com")

	resp := env.request(t, http.MethodPost, "/api/v1/products", productBody("EUR pallet"), cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["success"])

	resp = env.request(t, http.MethodGet, "/api/v1/products", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	products := decodeList(t, resp)
	require.Len(t, products, 1)

	product := products[0]
	assert.Equal(t, "EUR pallet", product["name"])
	// Rating counters are server-owned and start at zero
	assert.Equal(t, float64(0), product["averageRating"])
	assert.Equal(t, float64(0), product["numberOfReviews"])

	ranges, ok := product["productPriceRanges"].([]any)
	require.True(t, ok)
	assert.Len(t, ranges, 2)
	require.NotNil(t, product["productDetails"])
}

func TestProductListingIsSellerScoped(t *testing.T) {
	env := newTestEnv(t)
	first := env.register(t, "a@x.com")
	second := env.register(t, "b@x.com")

	resp := env.request(t, http.MethodPost, "/api/v1/products", productBody("bricks"), first)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.request(t, http.MethodPost, "/api/v1/products", productBody("sand"), second)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/v1/products", nil, first)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mine := decodeList(t, resp)
	require.Len(t, mine, 1)
	assert.Equal(t, "bricks", mine[0]["name"])

	resp = env.request(t, http.MethodGet, "/api/v1/products", nil, second)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	theirs := decodeList(t, resp)
	require.Len(t, theirs, 1)
	assert.Equal(t, "sand", theirs[0]["name"])

	// Fetching another seller's product by ID reads as missing
	theirID := int64(theirs[0]["id"].(float64))
	resp = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/products/%d", theirID), nil, first)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductDeleteAllIsSellerScoped(t *testing.T) {
	env := newTestEnv(t)
	first := env.register(t, "a@x.com")
	second := env.register(t, "b@x.com")

	env.request(t, http.MethodPost, "/api/v1/products", productBody("bricks"), first)
	env.request(t, http.MethodPost, "/api/v1/products", productBody("tiles"), first)
	env.request(t, http.MethodPost, "/api/v1/products", productBody("sand"), second)

	resp := env.request(t, http.MethodDelete, "/api/v1/products", nil, first)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/v1/products", nil, first)
	assert.Empty(t, decodeList(t, resp))

	resp = env.request(t, http.MethodGet, "/api/v1/products", nil, second)
	assert.Len(t, decodeList(t, resp), 1)
}

func TestProductDeleteOne(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.register(t, "a@x.com")

	env.request(t, http.MethodPost, "/api/v1/products", productBody("bricks"), cookie)

	resp := env.request(t, http.MethodGet, "/api/v1/products", nil, cookie)
	products := decodeList(t, resp)
	require.Len(t, products, 1)
	id := int64(products[0]["id"].(float64))

	resp = env.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", id), nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", id), nil, cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
