package service

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/tdstudios/storefront/storage"
)

// setupTestService creates a service instance backed by an in-memory
// database.
func setupTestService(t *testing.T) *Service {
	t.Helper()

	store, cleanup, err := storage.NewTestStorage()
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	t.Cleanup(cleanup)

	config := &Config{
		Environment: "test",
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
	}
	config.Payments.CashTag = "$tdiorio23"
	config.Pricing.TaxRate = 0.0875
	config.Pricing.DeliveryFeeCents = 499
	config.Stripe.WebhookSecret = "whsec_test"
	config.Relay.Endpoint = "http://127.0.0.1:0"

	return New(store, config)
}

// setupTestEcho creates an Echo instance with all routes registered.
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	svc := setupTestService(t)
	svc.RegisterRoutes(e)
	return e, svc
}
