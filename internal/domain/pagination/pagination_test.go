package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Request{Page: 1, Limit: 10}, Request{}.Normalize())
	assert.Equal(t, Request{Page: 3, Limit: 100}, Request{Page: 3, Limit: 500}.Normalize())
	assert.Equal(t, 20, Request{Page: 3, Limit: 10}.Offset())
}

func TestNewEmptyPage(t *testing.T) {
	p := New[string](nil, 0, Request{Page: 1, Limit: 10})

	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.Equal(t, int64(0), p.Meta.TotalItems)
	assert.Equal(t, 0, p.Meta.TotalPages)
	assert.Equal(t, 1, p.Meta.CurrentPage)
}

func TestNewRoundsPagesUp(t *testing.T) {
	p := New([]int{1, 2}, 21, Request{Page: 3, Limit: 10})

	assert.Equal(t, 3, p.Meta.TotalPages)
	assert.Equal(t, 2, p.Meta.ItemCount)
	assert.Equal(t, 10, p.Meta.ItemsPerPage)
}

func TestMapKeepsMeta(t *testing.T) {
	p := New([]int{1, 2}, 2, Request{})
	out := Map(p, func(i int) int { return i * 10 })

	assert.Equal(t, []int{10, 20}, out.Items)
	assert.Equal(t, p.Meta, out.Meta)
}
