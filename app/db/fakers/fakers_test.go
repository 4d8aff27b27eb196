package fakers

import (
	"testing"

	"github.com/ssapkota/hamropasal/app/utils/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFakerDerivesPrice(t *testing.T) {
	category := CategoryFaker()
	require.NotEmpty(t, category.SubCategories)

	product := ProductFaker(category, &category.SubCategories[0])

	assert.Equal(t, category.ID, product.CategoryID)
	assert.Equal(t, category.SubCategories[0].ID, product.SubCategoryID)
	assert.True(t, product.Price.Equal(calc.SellingPrice(product.MarkPrice, product.DiscountPercent)))
	assert.NotEmpty(t, product.Slug)
}

func TestOfferFakerLinksActiveOffer(t *testing.T) {
	category := CategoryFaker()
	product := ProductFaker(category, &category.SubCategories[0])

	offer := OfferFaker(product)

	assert.True(t, offer.IsActive)
	require.NotNil(t, offer.ProductID)
	assert.Equal(t, product.ID, *offer.ProductID)
}
