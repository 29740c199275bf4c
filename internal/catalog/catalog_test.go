package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	p, ok := Find("td-beanie")
	require.True(t, ok)
	assert.Equal(t, "TD STUDIOS BEANIE", p.Name)
	assert.Equal(t, int64(4000), p.PriceCents)

	_, ok = Find("not-a-product")
	assert.False(t, ok)
}

func TestRequiresSize(t *testing.T) {
	assert.True(t, RequiresSize("Apparel"))
	assert.True(t, RequiresSize("Outerwear"))
	assert.False(t, RequiresSize("Hats"))
	assert.False(t, RequiresSize("Mylar Bags"))
}

func TestPriceCentsForTiers(t *testing.T) {
	p, ok := FindCustom("mylar-4plus-designs")
	require.True(t, ok)

	assert.Equal(t, int64(10000), p.PriceCentsFor(4))
	assert.Equal(t, int64(25000), p.PriceCentsFor(10))
	assert.Equal(t, int64(50000), p.PriceCentsFor(20))

	// quantities outside the tier table fall back to the base price
	assert.Equal(t, int64(10000), p.PriceCentsFor(99))
}

func TestPriceCentsForFlatPriced(t *testing.T) {
	p, ok := FindCustom("mylar-2-designs")
	require.True(t, ok)
	assert.Equal(t, int64(6000), p.PriceCentsFor(1))
	assert.Equal(t, int64(6000), p.PriceCentsFor(7))
	assert.False(t, p.QuoteOnly())
}

func TestCategoriesCoverMerch(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)

	seen := make(map[string]bool, len(cats))
	for _, c := range cats {
		seen[c] = true
	}
	for _, p := range Merch() {
		assert.True(t, seen[p.Category], "category %q missing from Categories()", p.Category)
	}
}
