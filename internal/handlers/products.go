package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tdstudios/storefront/internal/catalog"
	"github.com/tdstudios/storefront/internal/pricing"
)

type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

type productResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	PriceCents   int64    `json:"price_cents"`
	PriceDisplay string   `json:"price_display"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	RequiresSize bool     `json:"requires_size"`
	Tags         []string `json:"tags,omitempty"`
}

type customProductResponse struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Description     string                   `json:"description,omitempty"`
	BasePriceCents  int64                    `json:"base_price_cents"`
	PriceDisplay    string                   `json:"price_display"`
	Image           string                   `json:"image"`
	Category        string                   `json:"category"`
	QuoteOnly       bool                     `json:"quote_only"`
	QuantityOptions []catalog.QuantityOption `json:"quantity_options,omitempty"`
}

// HandleListProducts returns the active merchandise catalog, optionally
// filtered by category.
func (h *ProductHandler) HandleListProducts(c echo.Context) error {
	category := c.QueryParam("category")

	var out []productResponse
	for _, p := range catalog.Merch() {
		if !p.Active {
			continue
		}
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		out = append(out, newProductResponse(p))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products":   out,
		"categories": catalog.Categories(),
	})
}

// HandleGetProduct returns one merchandise product by ID.
func (h *ProductHandler) HandleGetProduct(c echo.Context) error {
	p, ok := catalog.Find(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	return c.JSON(http.StatusOK, newProductResponse(p))
}

// HandleListCustomProducts returns the custom-design line.
func (h *ProductHandler) HandleListCustomProducts(c echo.Context) error {
	var out []customProductResponse
	for _, p := range catalog.CustomDesigns() {
		if !p.Active {
			continue
		}
		display := pricing.FormatCents(p.BasePriceCents)
		if p.QuoteOnly() {
			display = "Message for Pricing"
		}
		out = append(out, customProductResponse{
			ID:              p.ID,
			Name:            p.Name,
			Description:     p.Description,
			BasePriceCents:  p.BasePriceCents,
			PriceDisplay:    display,
			Image:           p.Image,
			Category:        p.Category,
			QuoteOnly:       p.QuoteOnly(),
			QuantityOptions: p.QuantityOptions,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"products": out})
}

func newProductResponse(p catalog.Product) productResponse {
	return productResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		PriceCents:   p.PriceCents,
		PriceDisplay: pricing.FormatCents(p.PriceCents),
		Image:        p.Image,
		Category:     p.Category,
		RequiresSize: catalog.RequiresSize(p.Category),
		Tags:         p.Tags,
	}
}
