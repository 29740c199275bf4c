package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdstudios/storefront/internal/catalog"
)

func TestHandleListProducts_FiltersByCategory(t *testing.T) {
	h := NewProductHandler()

	c, rec := newTestContext(t, http.MethodGet, "/api/products?category=Hats", nil)

	require.NoError(t, h.HandleListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	products := body["products"].([]interface{})
	require.NotEmpty(t, products)
	for _, raw := range products {
		p := raw.(map[string]interface{})
		assert.Equal(t, "Hats", p["category"])
		assert.False(t, p["requires_size"].(bool), "hats are one-size")
	}
	assert.NotEmpty(t, body["categories"])
}

func TestHandleGetProduct(t *testing.T) {
	h := NewProductHandler()

	c, rec := newTestContext(t, http.MethodGet, "/api/products/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues("td-bomber-black")

	require.NoError(t, h.HandleGetProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "TD BOMBER (Black)", body["name"])
	assert.Equal(t, float64(12000), body["price_cents"])
	assert.Equal(t, "$120.00", body["price_display"])
	assert.True(t, body["requires_size"].(bool))
}

func TestHandleGetProduct_NotFound(t *testing.T) {
	h := NewProductHandler()

	c, _ := newTestContext(t, http.MethodGet, "/api/products/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.HandleGetProduct(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestHandleListCustomProducts(t *testing.T) {
	h := NewProductHandler()

	c, rec := newTestContext(t, http.MethodGet, "/api/custom/products", nil)

	require.NoError(t, h.HandleListCustomProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	products := body["products"].([]interface{})
	require.Len(t, products, len(catalog.CustomDesigns()))

	first := products[0].(map[string]interface{})
	assert.Equal(t, "mylar-1-design", first["id"])
	assert.Equal(t, "$40.00", first["price_display"])

	last := products[len(products)-1].(map[string]interface{})
	assert.Equal(t, "mylar-4plus-designs", last["id"])
	assert.NotEmpty(t, last["quantity_options"], "tiered product exposes its quantity pricing")
}

func TestHandleSitemap(t *testing.T) {
	h := NewSitemapHandler("https://tdstudios.example")

	c, rec := newTestContext(t, http.MethodGet, "/sitemap.xml", nil)

	require.NoError(t, h.HandleSitemap(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get(echo.HeaderContentType))

	xmlBody := rec.Body.String()
	assert.Contains(t, xmlBody, "<loc>https://tdstudios.example/shop</loc>")
	assert.Contains(t, xmlBody, "<loc>https://tdstudios.example/product/td-beanie</loc>")
	assert.Contains(t, xmlBody, "<loc>https://tdstudios.example/mylars/mylar-4plus-designs</loc>")
}
