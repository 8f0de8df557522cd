package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNormalize(t *testing.T) {
	cases := []struct {
		name       string
		page       Page
		wantLimit  int
		wantOffset int
	}{
		{"defaults", Page{}, 10, 0},
		{"first page", Page{Number: 1, Size: 20}, 20, 0},
		{"third page", Page{Number: 3, Size: 20}, 20, 40},
		{"zero number clamps to one", Page{Number: 0, Size: 5}, 5, 0},
		{"negative number clamps to one", Page{Number: -2, Size: 5}, 5, 0},
		{"oversize clamps to hundred", Page{Number: 2, Size: 500}, 100, 100},
		{"max size passes", Page{Number: 1, Size: 100}, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := tc.page.Normalize()
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}

func TestPageClamped(t *testing.T) {
	clamped := Page{Number: 0, Size: 500}.Clamped()
	assert.Equal(t, 1, clamped.Number)
	assert.Equal(t, 100, clamped.Size)

	clamped = Page{Number: 4, Size: 25}.Clamped()
	assert.Equal(t, 4, clamped.Number)
	assert.Equal(t, 25, clamped.Size)
}
