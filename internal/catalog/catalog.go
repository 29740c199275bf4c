// Package catalog holds the store's reference product data. Products are
// immutable in-repo arrays; the shop and custom-design lines are looked up
// by ID at cart and order time.
package catalog

// Product is a standard merchandise item sold through gateway checkout.
type Product struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
	Image       string
	Category    string
	Active      bool
	Tags        []string
}

// QuantityOption is a quantity/price tier for custom-design products.
type QuantityOption struct {
	Quantity   int64
	PriceCents int64
}

// CustomProduct is a custom-design item ordered through the manual
// quote/order path. A BasePriceCents of 0 means "message for pricing".
type CustomProduct struct {
	ID                 string
	Name               string
	Description        string
	BasePriceCents     int64
	Image              string
	Category           string
	Active             bool
	HasQuantityOptions bool
	QuantityOptions    []QuantityOption
}

// QuoteOnly reports whether the product has no fixed price and orders
// become quote requests instead.
func (p CustomProduct) QuoteOnly() bool {
	return p.BasePriceCents == 0
}

// PriceCentsFor returns the price for the requested quantity, falling back
// to the base price when the product has no quantity tiers or the quantity
// does not match a tier.
func (p CustomProduct) PriceCentsFor(quantity int64) int64 {
	if !p.HasQuantityOptions {
		return p.BasePriceCents
	}
	for _, opt := range p.QuantityOptions {
		if opt.Quantity == quantity {
			return opt.PriceCents
		}
	}
	return p.BasePriceCents
}

// sized categories require a size selection before an item can be carted
var sizedCategories = map[string]bool{
	"Apparel":   true,
	"Outerwear": true,
}

// RequiresSize reports whether products in the category need a size variant.
func RequiresSize(category string) bool {
	return sizedCategories[category]
}

// Find returns the active merchandise product with the given ID.
func Find(id string) (Product, bool) {
	for _, p := range Merch() {
		if p.ID == id && p.Active {
			return p, true
		}
	}
	return Product{}, false
}

// FindCustom returns the active custom-design product with the given ID.
func FindCustom(id string) (CustomProduct, bool) {
	for _, p := range CustomDesigns() {
		if p.ID == id && p.Active {
			return p, true
		}
	}
	return CustomProduct{}, false
}

// Categories returns the distinct merchandise categories in catalog order.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range Merch() {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
