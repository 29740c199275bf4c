package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v80"
	"github.com/tdstudios/storefront/internal/cart"
)

// sessionSpy stands in for the gateway's session-creation call.
type sessionSpy struct {
	calls   int
	params  *stripe.CheckoutSessionParams
	session *stripe.CheckoutSession
	err     error
}

func newStubbedCheckoutHandler(carts *cart.Service) (*CheckoutHandler, *sessionSpy) {
	spy := &sessionSpy{
		session: &stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/pay/cs_test_123"},
	}
	h := &CheckoutHandler{
		carts:            carts,
		taxRate:          0.0875,
		deliveryFeeCents: 499,
		createSession: func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			spy.calls++
			spy.params = params
			if spy.err != nil {
				return nil, spy.err
			}
			return spy.session, nil
		},
	}
	return h, spy
}

func TestHandleCreateSession_ReturnsSessionID(t *testing.T) {
	h, spy := newStubbedCheckoutHandler(nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/checkout/session", CreateSessionRequest{
		Items: []CheckoutItem{
			{Name: "TD BOMBER (Black)", Price: 120.00, Quantity: 1, Image: "/products/td-bomber-black.jpg"},
			{Name: "TD STUDIOS BEANIE", Price: 40.00, Quantity: 2},
		},
		CustomerEmail: "buyer@example.com",
	})

	require.NoError(t, h.HandleCreateSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "cs_test_123", body["id"])

	require.Equal(t, 1, spy.calls)
	require.Len(t, spy.params.LineItems, 2)
	assert.Equal(t, int64(12000), *spy.params.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, int64(4000), *spy.params.LineItems[1].PriceData.UnitAmount)
	assert.Equal(t, int64(2), *spy.params.LineItems[1].Quantity)
	assert.Equal(t, "buyer@example.com", *spy.params.CustomerEmail)
	assert.Contains(t, *spy.params.SuccessURL, "/success?session_id={CHECKOUT_SESSION_ID}")
	assert.Contains(t, *spy.params.CancelURL, "/shop")
}

func TestHandleCreateSession_ConvertsFloatPricesOnce(t *testing.T) {
	h, spy := newStubbedCheckoutHandler(nil)

	c, _ := newTestContext(t, http.MethodPost, "/api/checkout/session", CreateSessionRequest{
		Items: []CheckoutItem{{Name: "Pin", Price: 19.99, Quantity: 1}},
	})

	require.NoError(t, h.HandleCreateSession(c))
	require.Equal(t, 1, spy.calls)
	assert.Equal(t, int64(1999), *spy.params.LineItems[0].PriceData.UnitAmount)
}

func TestHandleCreateSession_GetIsMethodNotAllowed(t *testing.T) {
	h, spy := newStubbedCheckoutHandler(nil)

	e := echo.New()
	e.POST("/api/checkout/session", h.HandleCreateSession)

	req := httptest.NewRequest(http.MethodGet, "/api/checkout/session", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, 0, spy.calls, "a rejected method must not touch the gateway")
}

func TestHandleCreateSession_EmptyCartRejected(t *testing.T) {
	h, spy := newStubbedCheckoutHandler(nil)

	c, _ := newTestContext(t, http.MethodPost, "/api/checkout/session", CreateSessionRequest{})

	err := h.HandleCreateSession(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, 0, spy.calls)
}

func TestHandleCreateSession_GatewayErrorSurfacedVerbatim(t *testing.T) {
	h, spy := newStubbedCheckoutHandler(nil)
	spy.err = errors.New("Invalid currency: xyz")

	c, rec := newTestContext(t, http.MethodPost, "/api/checkout/session", CreateSessionRequest{
		Items: []CheckoutItem{{Name: "Pin", Price: 10, Quantity: 1}},
	})

	require.NoError(t, h.HandleCreateSession(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "Invalid currency: xyz", body["error"], "gateway message passes through as-is")
	assert.Equal(t, 1, spy.calls, "exactly one attempt, no retry")
}

func TestHandleCreateSessionFromCart_AddsDeliveryAndTaxLines(t *testing.T) {
	_, queries := newTestDB(t)
	carts := cart.NewService(queries)
	ctx := context.Background()

	_, err := carts.Add(ctx, "sess1", "td-beanie", "")
	require.NoError(t, err)
	_, err = carts.Add(ctx, "sess1", "td-beanie", "")
	require.NoError(t, err)

	h, spy := newStubbedCheckoutHandler(carts)

	c, rec := newTestContext(t, http.MethodPost, "/api/checkout/session-from-cart", nil)
	c.Request().AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess1"})

	require.NoError(t, h.HandleCreateSessionFromCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, 1, spy.calls)
	require.Len(t, spy.params.LineItems, 3, "one product line plus delivery plus tax")

	// subtotal 8000 -> delivery 499, tax round(8000*0.0875)=700
	assert.Equal(t, int64(4000), *spy.params.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, int64(2), *spy.params.LineItems[0].Quantity)
	assert.Equal(t, "Delivery", *spy.params.LineItems[1].PriceData.ProductData.Name)
	assert.Equal(t, int64(499), *spy.params.LineItems[1].PriceData.UnitAmount)
	assert.Equal(t, "Sales Tax", *spy.params.LineItems[2].PriceData.ProductData.Name)
	assert.Equal(t, int64(700), *spy.params.LineItems[2].PriceData.UnitAmount)

	assert.Equal(t, "sess1", spy.params.Metadata["session_id"])
}

func TestHandleCreateSessionFromCart_EmptyCart(t *testing.T) {
	_, queries := newTestDB(t)
	h, spy := newStubbedCheckoutHandler(cart.NewService(queries))

	c, _ := newTestContext(t, http.MethodPost, "/api/checkout/session-from-cart", nil)
	c.Request().AddCookie(&http.Cookie{Name: SessionCookieName, Value: "empty-sess"})

	err := h.HandleCreateSessionFromCart(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, 0, spy.calls)
}
