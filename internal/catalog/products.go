package catalog

var merch = []Product{
	{ID: "serious-inquiries-keychain", Name: "SERIOUS INQUIRIES ONLY Keychain", PriceCents: 1200, Image: "/products/serious-inquiries-keychain.png", Category: "Accessories", Active: true, Tags: []string{"Serious Inquiries Only"}},
	{ID: "serious-inquiries-pin", Name: "SERIOUS INQUIRIES ONLY Pin", PriceCents: 1000, Image: "/products/serious-inquiries-pin.png", Category: "Accessories", Active: true, Tags: []string{"Serious Inquiries Only"}},
	{ID: "serious-inquiries-crop-tee", Name: "SERIOUS INQUIRIES ONLY Crop Tee (Women's)", PriceCents: 3500, Image: "/products/serious-inquiries-crop-tee.png", Category: "Apparel", Active: true, Tags: []string{"Serious Inquiries Only"}},
	{ID: "td-bomber-black", Name: "TD BOMBER (Black)", PriceCents: 12000, Image: "/products/td-bomber-black.jpg", Category: "Outerwear", Active: true},
	{ID: "td-bomber-white", Name: "TD BOMBER (White)", PriceCents: 12000, Image: "/products/td-bomber-white.png", Category: "Outerwear", Active: true},
	{ID: "td-hoodie-black", Name: "TD HOODIE (Black)", PriceCents: 10000, Image: "/products/td-hoodie-black.png", Category: "Outerwear", Active: true},
	{ID: "td-beanie", Name: "TD STUDIOS BEANIE", PriceCents: 4000, Image: "/products/td-beanie.png", Category: "Hats", Active: true},
	{ID: "td-championship-hat-black", Name: "TD STUDIOS CHAMPIONSHIP HAT (Black)", PriceCents: 4000, Image: "/products/td-championship-hat-black.png", Category: "Hats", Active: true},
	{ID: "td-championship-hat-white", Name: "TD STUDIOS CHAMPIONSHIP HAT (White)", PriceCents: 4000, Image: "/products/td-championship-hat-white.png", Category: "Hats", Active: true},
	{ID: "serious-inquiries-only-black", Name: "SERIOUS INQUIRIES ONLY (Black)", PriceCents: 4500, Image: "/products/serious-inquiries-only-black.png", Category: "Hats", Active: true},
	{ID: "serious-inquiries-only-white", Name: "SERIOUS INQUIRIES ONLY (White)", PriceCents: 4500, Image: "/products/serious-inquiries-only-white.png", Category: "Hats", Active: true},
}

// Merch returns the standard merchandise catalog.
func Merch() []Product {
	return merch
}
