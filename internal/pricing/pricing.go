// Package pricing derives the order price breakdown from a cart subtotal.
// All arithmetic is in integer cents; float dollars exist only at the
// display boundary.
package pricing

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAmount is returned when a caller passes a negative subtotal.
var ErrInvalidAmount = errors.New("invalid amount")

// Breakdown is the derived price summary for an order. The invariant
// TotalCents == SubtotalCents + DeliveryFeeCents + TaxCents always holds.
type Breakdown struct {
	SubtotalCents    int64 `json:"subtotal_cents"`
	DeliveryFeeCents int64 `json:"delivery_fee_cents"`
	TaxCents         int64 `json:"tax_cents"`
	TotalCents       int64 `json:"total_cents"`
}

// Calculate computes tax and grand total for a subtotal. Tax is rounded to
// the nearest cent, never truncated. A zero subtotal yields zero tax and a
// total equal to the delivery fee; that falls out of the formula rather
// than being special-cased. A negative subtotal is a contract violation.
func Calculate(subtotalCents, deliveryFeeCents int64, taxRate float64) (Breakdown, error) {
	if subtotalCents < 0 {
		return Breakdown{}, fmt.Errorf("%w: subtotal %d cents", ErrInvalidAmount, subtotalCents)
	}

	taxCents := int64(math.Round(float64(subtotalCents) * taxRate))

	return Breakdown{
		SubtotalCents:    subtotalCents,
		DeliveryFeeCents: deliveryFeeCents,
		TaxCents:         taxCents,
		TotalCents:       subtotalCents + deliveryFeeCents + taxCents,
	}, nil
}

// DollarsToCents converts a major-unit price to integer cents. Used once at
// the external boundary where the checkout request carries float dollars.
func DollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// FormatCents formats cents as dollars (e.g., 4854 -> "$48.54").
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
