package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price int64) *Product {
	return &Product{
		ID:    id,
		Name:  "Product " + id,
		Price: decimal.NewFromInt(price),
		Image: "/images/products/" + id + ".jpg",
	}
}

func TestCartAddNewLine(t *testing.T) {
	cart := NewCart()
	cart.Add("user-1", testProduct("p1", 11400))

	require.Len(t, cart.Lines, 1)
	line := cart.Lines["p1"]
	assert.Equal(t, "user-1", line.UserID)
	assert.Equal(t, "Product p1", line.Name)
	assert.Equal(t, 1, line.Qty)
	assert.True(t, line.Price.Equal(decimal.NewFromInt(11400)))
}

func TestCartAddIncrementsExistingLine(t *testing.T) {
	cart := NewCart()
	product := testProduct("p1", 11400)

	cart.Add("user-1", product)
	cart.Add("user-1", product)
	cart.Add("user-1", product)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines["p1"].Qty)
	assert.True(t, cart.Lines["p1"].LineTotal().Equal(decimal.NewFromInt(34200)))
}

func TestCartAddKeepsPriceSnapshot(t *testing.T) {
	cart := NewCart()
	product := testProduct("p1", 100)
	cart.Add("user-1", product)

	// A later price change must not affect the line already in the cart.
	product.Price = decimal.NewFromInt(999)
	cart.Add("user-1", product)

	assert.True(t, cart.Lines["p1"].Price.Equal(decimal.NewFromInt(100)))
}

func TestCartDecrementRemovesAtOne(t *testing.T) {
	cart := NewCart()
	cart.Add("user-1", testProduct("p1", 100))

	cart.Decrement("p1")
	assert.Empty(t, cart.Lines)
	assert.True(t, cart.IsEmpty())
}

func TestCartDecrementIsInverseOfAdd(t *testing.T) {
	cart := NewCart()
	product := testProduct("p1", 100)

	cart.Add("user-1", product)
	cart.Add("user-1", product)
	cart.Decrement("p1")

	assert.Equal(t, 1, cart.Lines["p1"].Qty)
}

func TestCartDecrementAbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add("user-1", testProduct("p1", 100))

	cart.Decrement("missing")

	assert.Len(t, cart.Lines, 1)
}

func TestCartRemoveDropsWholeLine(t *testing.T) {
	cart := NewCart()
	product := testProduct("p1", 100)
	cart.Add("user-1", product)
	cart.Add("user-1", product)
	cart.Add("user-1", product)

	cart.Remove("p1")

	assert.True(t, cart.IsEmpty())
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.Add("user-1", testProduct("p1", 100))
	cart.Add("user-1", testProduct("p2", 200))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCartItemCountSumsQuantities(t *testing.T) {
	cart := NewCart()
	p1 := testProduct("p1", 100)
	cart.Add("user-1", p1)
	cart.Add("user-1", p1)
	cart.Add("user-1", testProduct("p2", 200))

	assert.Equal(t, 3, cart.ItemCount())
}

func TestCartTotalSumsLineTotals(t *testing.T) {
	cart := NewCart()
	p1 := testProduct("p1", 11400)
	cart.Add("user-1", p1)
	cart.Add("user-1", p1)
	cart.Add("user-1", p1)
	cart.Add("user-1", testProduct("p2", 50))

	assert.True(t, cart.Total().Equal(decimal.NewFromInt(34250)))
}
