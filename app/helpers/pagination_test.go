package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 1, ParsePage("2.5"))
	assert.Equal(t, 7, ParsePage("7"))
}

func TestPaginate(t *testing.T) {
	p := Paginate(20, 1, 9)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 0, p.Offset())

	p = Paginate(20, 3, 9)
	assert.Equal(t, 18, p.Offset())

	// An empty result set still reports one page.
	p = Paginate(0, 1, 9)
	assert.Equal(t, 1, p.TotalPages)

	// Exact multiple does not add a trailing empty page.
	p = Paginate(18, 1, 9)
	assert.Equal(t, 2, p.TotalPages)
}

func TestPaginateClampsPageBelowOne(t *testing.T) {
	p := Paginate(20, 0, 9)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Offset())
}
