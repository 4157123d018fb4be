package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamanlab/bank-advisor-be/internal/catalog"
	"github.com/zamanlab/bank-advisor-be/internal/models"
)

func newProductApp() *fiber.App {
	h := NewProductHandler(catalog.New())
	app := fiber.New()
	app.Get("/api/products", h.ListProducts)
	app.Get("/api/products/search", h.SearchProducts)
	app.Get("/api/products/categories", h.GetCategories)
	app.Get("/api/products/islamic", h.GetIslamicProducts)
	app.Get("/api/products/:id", h.GetProduct)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestListProducts(t *testing.T) {
	app := newProductApp()

	resp, body := doRequest(t, app, "/api/products")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	require.NoError(t, json.Unmarshal(body["products"], &products))
	assert.Len(t, products, 12)
}

func TestListProducts_Filters(t *testing.T) {
	app := newProductApp()

	resp, body := doRequest(t, app, "/api/products?target=retail&islamic=true")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	require.NoError(t, json.Unmarshal(body["products"], &products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, models.TargetRetail, p.Target)
		assert.True(t, p.Islamic)
	}
}

func TestListProducts_BadBoolean(t *testing.T) {
	app := newProductApp()

	resp, _ := doRequest(t, app, "/api/products?islamic=maybe")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchProducts_RequiresQuery(t *testing.T) {
	app := newProductApp()

	resp, body := doRequest(t, app, "/api/products/search")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body["error"]), "q is required")
}

func TestSearchProducts(t *testing.T) {
	app := newProductApp()

	resp, body := doRequest(t, app, "/api/products/search?q=mortgage")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var results []models.Product
	require.NoError(t, json.Unmarshal(body["results"], &results))
	require.Len(t, results, 1)
	assert.Equal(t, "islamic_mortgage", results[0].ID)
}

func TestGetProduct_NotFound(t *testing.T) {
	app := newProductApp()

	resp, body := doRequest(t, app, "/api/products/no_such_product")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body["error"]), "not found")
}

func TestGetCategories(t *testing.T) {
	app := newProductApp()

	resp, body := doRequest(t, app, "/api/products/categories")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stats models.CatalogStats
	require.NoError(t, json.Unmarshal(body["stats"], &stats))
	assert.Equal(t, 12, stats.TotalProducts)
}
