package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicRoutes(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"Health check", "GET", "/healthz", http.StatusOK},
		{"Sitemap", "GET", "/sitemap.xml", http.StatusOK},

		{"Product listing", "GET", "/api/products", http.StatusOK},
		{"Product detail", "GET", "/api/products/td-beanie", http.StatusOK},
		{"Missing product", "GET", "/api/products/nope", http.StatusNotFound},
		{"Custom product listing", "GET", "/api/custom/products", http.StatusOK},

		{"Cart fetch", "GET", "/api/cart", http.StatusOK},
		{"Payment QR", "GET", "/api/custom/payment-qr", http.StatusOK},

		{"Checkout success redirect", "GET", "/success", http.StatusFound},
		{"Checkout cancel redirect", "GET", "/cancel", http.StatusFound},

		{"Sign-in page", "GET", "/auth", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code,
				"Route %s %s should return %d, got %d",
				tt.method, tt.path, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleGatedRoutes(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"Admin area", "/admin", http.StatusFound, "/auth"},
		{"Admin orders", "/admin/orders", http.StatusFound, "/auth"},
		{"Brand area", "/brand", http.StatusFound, "/auth"},
		{"Role home router", "/home", http.StatusFound, "/auth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}

func TestMeRequiresSession(t *testing.T) {
	e, _ := setupTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookRouteRegistered(t *testing.T) {
	e, _ := setupTestEcho(t)

	// No signature header: the route exists and the handler rejects the
	// event before any dispatch.
	req := httptest.NewRequest(http.MethodPost, "/api/webhook", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No signature")
}

func TestCheckoutRouteRejectsGet(t *testing.T) {
	e, _ := setupTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/checkout/session", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSuccessRedirectClearsCart(t *testing.T) {
	e, _ := setupTestEcho(t)

	// seed the session cart
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId":"td-beanie"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "td_session", Value: "sess-success"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/success?session_id=cs_test_1", nil)
	req.AddCookie(&http.Cookie{Name: "td_session", Value: "sess-success"})
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/shop", rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "td_session", Value: "sess-success"})
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subtotal_cents":0`)
}
