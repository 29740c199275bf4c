package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/tdstudios/storefront/internal/catalog"
	"github.com/tdstudios/storefront/internal/order"
	"github.com/tdstudios/storefront/internal/relay"
)

// CustomOrderHandler runs the manual quote/order path for the
// custom-design line. Payment is collected person-to-person via Cash App;
// the relay delivery of order details is decoupled from it so the two fail
// independently and visibly.
type CustomOrderHandler struct {
	relay   *relay.Client
	cashTag string
}

func NewCustomOrderHandler(relayClient *relay.Client, cashTag string) *CustomOrderHandler {
	return &CustomOrderHandler{
		relay:   relayClient,
		cashTag: cashTag,
	}
}

type CustomOrderRequest struct {
	ProductID   string   `json:"productId"`
	Quantity    int64    `json:"quantity,omitempty"`
	ContactName string   `json:"contactName"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	SocialMedia string   `json:"socialMedia,omitempty"`
	DesignNotes string   `json:"designNotes"`
	FileNames   []string `json:"fileNames,omitempty"`
}

type CustomOrderResponse struct {
	Status     string `json:"status"`
	PaymentURL string `json:"paymentUrl,omitempty"`
	QRCodeURL  string `json:"qrCodeUrl,omitempty"`
	Warning    string `json:"warning,omitempty"`
}

// HandleSubmit validates the submission, relays the order details and
// returns the payment link for priced products. Validation failures never
// reach the relay.
func (h *CustomOrderHandler) HandleSubmit(c echo.Context) error {
	var req CustomOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	product, ok := catalog.FindCustom(req.ProductID)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown product")
	}

	if strings.TrimSpace(req.ContactName) == "" || strings.TrimSpace(req.DesignNotes) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Enter your name and design notes.")
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	submission := order.ManualQuote{
		ProductName: product.Name,
		PriceCents:  product.PriceCentsFor(quantity),
		QuoteOnly:   product.QuoteOnly(),
		Quantity:    quantity,
		ContactName: req.ContactName,
		Phone:       req.PhoneNumber,
		Social:      req.SocialMedia,
		DesignNotes: req.DesignNotes,
		FileNames:   req.FileNames,
		CashTag:     h.cashTag,
		SubmittedAt: time.Now(),
	}

	relayErr := h.relay.Send(c.Request().Context(), relay.Notification{
		Subject: submission.Subject(),
		Message: submission.NotifyMessage(),
		Fields:  submission.Fields(),
	})

	if submission.QuoteOnly {
		if relayErr != nil {
			slog.Error("failed to relay quote request", "error", relayErr, "product", product.Name)
			return echo.NewHTTPError(http.StatusBadGateway, "We couldn't submit your quote request. Please try again.")
		}
		return c.JSON(http.StatusOK, CustomOrderResponse{Status: "quote_requested"})
	}

	resp := CustomOrderResponse{
		Status:     "order_submitted",
		PaymentURL: submission.PaymentURL(),
		QRCodeURL:  "/api/custom/payment-qr",
	}
	if relayErr != nil {
		// The buyer can still pay; only the detail delivery is degraded.
		slog.Error("failed to relay order details", "error", relayErr, "product", product.Name)
		resp.Warning = "We couldn't submit your details. We'll still open Cash App."
	}

	return c.JSON(http.StatusOK, resp)
}

// HandlePaymentQR serves a QR code for the Cash App payment profile so the
// buyer can pay from another device.
func (h *CustomOrderHandler) HandlePaymentQR(c echo.Context) error {
	png, err := qrcode.Encode("https://cash.app/"+h.cashTag, qrcode.Medium, 256)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate QR code")
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
