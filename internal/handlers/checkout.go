package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v80"
	checkoutsession "github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/tdstudios/storefront/internal/cart"
	"github.com/tdstudios/storefront/internal/pricing"
)

// CheckoutHandler creates Stripe hosted checkout sessions for standard
// merchandise. Gateway failures are terminal for the attempt: the error is
// surfaced to the caller as-is and the buyer resubmits.
type CheckoutHandler struct {
	carts            *cart.Service
	taxRate          float64
	deliveryFeeCents int64

	// swapped for a stub in tests
	createSession func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func NewCheckoutHandler(secretKey string, carts *cart.Service, taxRate float64, deliveryFeeCents int64) *CheckoutHandler {
	stripe.Key = secretKey
	return &CheckoutHandler{
		carts:            carts,
		taxRate:          taxRate,
		deliveryFeeCents: deliveryFeeCents,
		createSession:    checkoutsession.New,
	}
}

type CheckoutItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

type CreateSessionRequest struct {
	Items         []CheckoutItem `json:"items"`
	CustomerEmail string         `json:"customerEmail,omitempty"`
}

// HandleCreateSession accepts the cart line items from the client, converts
// prices to integer cents at this boundary, and returns the opaque session
// ID the client redirects to.
func (h *CheckoutHandler) HandleCreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if len(req.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Cart is empty")
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid quantity for %q", item.Name))
		}

		priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String("usd"),
			UnitAmount: stripe.Int64(pricing.DollarsToCents(item.Price)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(item.Name),
			},
		}
		if item.Image != "" {
			priceData.ProductData.Images = []*string{stripe.String(item.Image)}
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: priceData,
			Quantity:  stripe.Int64(item.Quantity),
		})
	}

	params := h.sessionParams(c, lineItems)
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	session, err := h.createSession(params)
	if err != nil {
		slog.Error("failed to create checkout session", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"id": session.ID})
}

// HandleCreateSessionFromCart builds the checkout session from the
// server-side session cart instead of a client-supplied item list. The
// delivery fee and tax are added as their own line items so the gateway
// total matches the price breakdown shown in the cart.
func (h *CheckoutHandler) HandleCreateSessionFromCart(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, err := getOrCreateSessionID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Session error")
	}

	current, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		slog.Error("failed to load cart for checkout", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cart")
	}
	if len(current.Lines) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Cart is empty")
	}

	breakdown, err := pricing.Calculate(current.SubtotalCents, h.deliveryFeeCents, h.taxRate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var lineItems []*stripe.CheckoutSessionLineItemParams
	for _, line := range current.Lines {
		name := line.Name
		if line.Size != "" {
			name = fmt.Sprintf("%s — %s", line.Name, line.Size)
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("usd"),
				UnitAmount: stripe.Int64(line.UnitPriceCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:     stripe.String(name),
					Metadata: map[string]string{"product_id": line.ProductID},
				},
			},
			Quantity: stripe.Int64(line.Quantity),
		})
	}

	lineItems = append(lineItems,
		&stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("usd"),
				UnitAmount: stripe.Int64(breakdown.DeliveryFeeCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Delivery"),
				},
			},
			Quantity: stripe.Int64(1),
		},
		&stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("usd"),
				UnitAmount: stripe.Int64(breakdown.TaxCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Sales Tax"),
				},
			},
			Quantity: stripe.Int64(1),
		},
	)

	params := h.sessionParams(c, lineItems)
	params.Metadata = map[string]string{"session_id": sessionID}

	session, err := h.createSession(params)
	if err != nil {
		slog.Error("failed to create checkout session from cart", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"id": session.ID})
}

// sessionParams builds the common hosted-checkout parameters; the success
// and cancel URLs are derived from the originating host.
func (h *CheckoutHandler) sessionParams(c echo.Context, lineItems []*stripe.CheckoutSessionLineItemParams) *stripe.CheckoutSessionParams {
	origin := fmt.Sprintf("%s://%s", c.Scheme(), c.Request().Host)
	return &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: []*string{stripe.String("card")},
		LineItems:          lineItems,
		SuccessURL:         stripe.String(origin + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(origin + "/shop"),
	}
}
