// Package cart manages session-scoped shopping carts. Lines merge on
// (product, size): repeat adds increment quantity, removes decrement and
// drop the line at zero. The subtotal is always recomputed from the
// current lines so it can never drift from them.
package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/tdstudios/storefront/internal/catalog"
	"github.com/tdstudios/storefront/storage/db"
)

var (
	// ErrUnknownProduct is returned when the product ID is not in the catalog
	// or the product is inactive.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrSizeRequired is returned when a sized category item is added
	// without a size selection.
	ErrSizeRequired = errors.New("size required")
)

// Line is one cart entry.
type Line struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Size           string `json:"size,omitempty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int64  `json:"quantity"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// Cart is the materialized view of a session's cart.
type Cart struct {
	Lines         []Line `json:"lines"`
	SubtotalCents int64  `json:"subtotal_cents"`
}

// Service mutates and reads carts stored per session.
type Service struct {
	queries *db.Queries
}

func NewService(queries *db.Queries) *Service {
	return &Service{queries: queries}
}

// Add puts one unit of the product into the session cart, merging with an
// existing (product, size) line when present.
func (s *Service) Add(ctx context.Context, sessionID, productID, size string) (Cart, error) {
	product, ok := catalog.Find(productID)
	if !ok {
		return Cart{}, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	if catalog.RequiresSize(product.Category) && size == "" {
		return Cart{}, fmt.Errorf("%w: %s", ErrSizeRequired, productID)
	}

	existing, err := s.queries.GetCartItem(ctx, db.GetCartItemParams{
		SessionID: sessionID,
		ProductID: productID,
		Size:      size,
	})
	switch {
	case err == nil:
		if err := s.queries.UpdateCartItemQuantity(ctx, db.UpdateCartItemQuantityParams{
			Quantity: existing.Quantity + 1,
			ID:       existing.ID,
		}); err != nil {
			return Cart{}, fmt.Errorf("failed to increment cart item: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.queries.CreateCartItem(ctx, db.CreateCartItemParams{
			ID:          ulid.Make().String(),
			SessionID:   sessionID,
			ProductID:   productID,
			ProductName: product.Name,
			Size:        size,
			PriceCents:  product.PriceCents,
			Quantity:    1,
		}); err != nil {
			return Cart{}, fmt.Errorf("failed to create cart item: %w", err)
		}
	default:
		return Cart{}, fmt.Errorf("failed to look up cart item: %w", err)
	}

	return s.Get(ctx, sessionID)
}

// Remove takes one unit of the (product, size) line out of the cart,
// deleting the line when its quantity reaches zero. Removing a line that
// does not exist is a no-op, not an error.
func (s *Service) Remove(ctx context.Context, sessionID, productID, size string) (Cart, error) {
	existing, err := s.queries.GetCartItem(ctx, db.GetCartItemParams{
		SessionID: sessionID,
		ProductID: productID,
		Size:      size,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return s.Get(ctx, sessionID)
	}
	if err != nil {
		return Cart{}, fmt.Errorf("failed to look up cart item: %w", err)
	}

	if existing.Quantity > 1 {
		if err := s.queries.UpdateCartItemQuantity(ctx, db.UpdateCartItemQuantityParams{
			Quantity: existing.Quantity - 1,
			ID:       existing.ID,
		}); err != nil {
			return Cart{}, fmt.Errorf("failed to decrement cart item: %w", err)
		}
	} else {
		if err := s.queries.DeleteCartItem(ctx, existing.ID); err != nil {
			return Cart{}, fmt.Errorf("failed to delete cart item: %w", err)
		}
	}

	return s.Get(ctx, sessionID)
}

// Clear empties the session cart. Used after order completion or explicit
// abandonment.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.queries.ClearCartBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Get returns the cart with the subtotal recomputed from its lines.
func (s *Service) Get(ctx context.Context, sessionID string) (Cart, error) {
	items, err := s.queries.ListCartItemsBySession(ctx, sessionID)
	if err != nil {
		return Cart{}, fmt.Errorf("failed to list cart items: %w", err)
	}

	cart := Cart{Lines: make([]Line, 0, len(items))}
	for _, item := range items {
		line := Line{
			ProductID:      item.ProductID,
			Name:           item.ProductName,
			Size:           item.Size,
			UnitPriceCents: item.PriceCents,
			Quantity:       item.Quantity,
			LineTotalCents: item.PriceCents * item.Quantity,
		}
		cart.Lines = append(cart.Lines, line)
		cart.SubtotalCents += line.LineTotalCents
	}

	return cart, nil
}
