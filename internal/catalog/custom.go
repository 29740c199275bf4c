package catalog

var customDesigns = []CustomProduct{
	{
		ID:             "mylar-1-design",
		Name:           "1 Design",
		Description:    "Custom mylar bag design service for 1 unique design",
		BasePriceCents: 4000,
		Image:          "/products/mylar-1-design.png",
		Category:       "Mylar Bags",
		Active:         true,
	},
	{
		ID:             "mylar-2-designs",
		Name:           "2 Designs",
		Description:    "Custom mylar bag design service for 2 unique designs",
		BasePriceCents: 6000,
		Image:          "/products/mylar-2-designs.png",
		Category:       "Mylar Bags",
		Active:         true,
	},
	{
		ID:             "mylar-3-designs",
		Name:           "3 Designs",
		Description:    "Custom mylar bag design service for 3 unique designs",
		BasePriceCents: 8500,
		Image:          "/products/mylar-3-designs.png",
		Category:       "Mylar Bags",
		Active:         true,
	},
	{
		ID:                 "mylar-4plus-designs",
		Name:               "4+ Designs",
		Description:        "Custom mylar bag design service for 4 or more unique designs",
		BasePriceCents:     10000,
		Image:              "/products/mylar-4plus-designs.png",
		Category:           "Mylar Bags",
		Active:             true,
		HasQuantityOptions: true,
		QuantityOptions: []QuantityOption{
			{Quantity: 4, PriceCents: 10000},
			{Quantity: 5, PriceCents: 12500},
			{Quantity: 6, PriceCents: 15000},
			{Quantity: 7, PriceCents: 17500},
			{Quantity: 8, PriceCents: 20000},
			{Quantity: 9, PriceCents: 22500},
			{Quantity: 10, PriceCents: 25000},
			{Quantity: 11, PriceCents: 27500},
			{Quantity: 12, PriceCents: 30000},
			{Quantity: 13, PriceCents: 32500},
			{Quantity: 14, PriceCents: 35000},
			{Quantity: 15, PriceCents: 37500},
			{Quantity: 16, PriceCents: 40000},
			{Quantity: 17, PriceCents: 42500},
			{Quantity: 18, PriceCents: 45000},
			{Quantity: 19, PriceCents: 47500},
			{Quantity: 20, PriceCents: 50000},
		},
	},
}

// CustomDesigns returns the custom-design product line.
func CustomDesigns() []CustomProduct {
	return customDesigns
}
