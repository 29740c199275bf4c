// Package order models the two order-submission paths the store has:
// gateway checkout for standard merchandise and the manual quote/order
// flow for the custom-design line. They share no behavior today; the
// Submission interface exists as the seam for a future unification.
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/tdstudios/storefront/internal/pricing"
)

// Submission is an order handed off to an external settlement channel.
type Submission interface {
	// Subject is the human-readable notification subject line.
	Subject() string
}

// GatewayCheckout is a Stripe-hosted checkout attempt.
type GatewayCheckout struct {
	SessionID     string
	CustomerEmail string
	AmountCents   int64
	PaymentID     string
	Status        string
	CompletedAt   time.Time
}

func (g GatewayCheckout) Subject() string {
	return fmt.Sprintf("New Store Order — %s", pricing.FormatCents(g.AmountCents))
}

// NotifyMessage renders the completed-checkout notification body sent to
// the relay: payment id, amount, buyer email, status, timestamp and a
// dashboard deep-link.
func (g GatewayCheckout) NotifyMessage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "💰 PAYMENT RECEIVED\n")
	fmt.Fprintf(&b, "Payment: %s\n", g.PaymentID)
	fmt.Fprintf(&b, "Amount: %s\n", pricing.FormatCents(g.AmountCents))
	fmt.Fprintf(&b, "Email: %s\n", valueOr(g.CustomerEmail, "N/A"))
	fmt.Fprintf(&b, "Status: %s\n", g.Status)
	fmt.Fprintf(&b, "⏰ %s\n", g.CompletedAt.Format("1/2/2006, 3:04:05 PM"))
	fmt.Fprintf(&b, "https://dashboard.stripe.com/payments/%s", g.PaymentID)
	return b.String()
}

// ManualQuote is a custom-design order or quote request settled outside
// the gateway via a peer-to-peer payment app.
type ManualQuote struct {
	ProductName string
	PriceCents  int64
	QuoteOnly   bool
	Quantity    int64
	ContactName string
	Phone       string
	Social      string
	DesignNotes string
	FileNames   []string
	CashTag     string
	SubmittedAt time.Time
}

func (m ManualQuote) Subject() string {
	if m.QuoteOnly {
		return fmt.Sprintf("New Quote Request — %s", m.ProductName)
	}
	return fmt.Sprintf("New Mylar Order — %s (%s)", m.ProductName, pricing.FormatCents(m.PriceCents))
}

// PriceDisplay is the price as shown to both buyer and relay, with the
// zero-price sentinel rendered as a quote prompt.
func (m ManualQuote) PriceDisplay() string {
	if m.QuoteOnly {
		return "Message for Pricing"
	}
	return pricing.FormatCents(m.PriceCents)
}

// NotifyMessage renders the relay body for the manual path.
func (m ManualQuote) NotifyMessage() string {
	files := "None"
	if len(m.FileNames) > 0 {
		files = strings.Join(m.FileNames, ", ")
	}

	var b strings.Builder
	if m.QuoteOnly {
		b.WriteString("💬 NEW QUOTE REQUEST\n")
	} else {
		b.WriteString("🛍️ NEW MYLAR BAG ORDER\n")
	}
	fmt.Fprintf(&b, "Product: %s\n", m.ProductName)
	fmt.Fprintf(&b, "Price: %s\n", m.PriceDisplay())
	fmt.Fprintf(&b, "Qty: %d\n", m.Quantity)
	fmt.Fprintf(&b, "Name: %s\n", m.ContactName)
	fmt.Fprintf(&b, "Phone: %s\n", valueOr(m.Phone, "N/A"))
	fmt.Fprintf(&b, "Social: %s\n", valueOr(m.Social, "N/A"))
	fmt.Fprintf(&b, "Notes: %s\n", m.DesignNotes)
	fmt.Fprintf(&b, "Files: %s\n", files)
	fmt.Fprintf(&b, "⏰ %s", m.SubmittedAt.Format("1/2/2006, 3:04:05 PM"))
	if !m.QuoteOnly {
		fmt.Fprintf(&b, "\n💳 Cash App: %s", m.CashTag)
	}
	return b.String()
}

// Fields returns the discrete relay fields mirrored alongside the message.
func (m ManualQuote) Fields() map[string]string {
	files := "None"
	if len(m.FileNames) > 0 {
		files = strings.Join(m.FileNames, ", ")
	}
	return map[string]string{
		"contactName": m.ContactName,
		"productName": m.ProductName,
		"price":       m.PriceDisplay(),
		"quantity":    fmt.Sprintf("%d", m.Quantity),
		"designNotes": m.DesignNotes,
		"socialMedia": valueOr(m.Social, "N/A"),
		"phoneNumber": valueOr(m.Phone, "N/A"),
		"files":       files,
	}
}

// PaymentURL is the peer-to-peer payment profile the buyer sends the
// quoted amount to. The buyer enters the amount manually.
func (m ManualQuote) PaymentURL() string {
	return "https://cash.app/" + m.CashTag
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
