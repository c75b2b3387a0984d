package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 50, H: 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Point{110, 105}, true},
		{"top-left corner", Point{100, 100}, true},
		{"bottom-right corner", Point{150, 120}, true},
		{"on right edge", Point{150, 110}, true},
		{"left of rect", Point{99.9, 110}, false},
		{"below rect", Point{110, 120.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.True(t, a.Intersects(Rect{X: 10, Y: 10, W: 5, H: 5}), "touching corners intersect")
	assert.False(t, a.Intersects(Rect{X: 11, Y: 0, W: 5, H: 5}))
}

func TestRectExpand(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}.Expand(5)
	assert.Equal(t, Rect{X: 5, Y: 15, W: 40, H: 50}, r)
}

func TestHitTestExtractionOrderWins(t *testing.T) {
	first := TextRegion{ID: 1, Text: "first", Bounds: Rect{X: 0, Y: 0, W: 100, H: 100}}
	second := TextRegion{ID: 2, Text: "second", Bounds: Rect{X: 50, Y: 50, W: 100, H: 100}}

	// Both contain (60, 60); extraction order breaks the tie.
	hit, ok := HitTest([]TextRegion{first, second}, Point{60, 60})
	assert.True(t, ok)
	assert.Equal(t, 1, hit.ID)

	hit, ok = HitTest([]TextRegion{second, first}, Point{60, 60})
	assert.True(t, ok)
	assert.Equal(t, 2, hit.ID)
}

func TestHitTestMiss(t *testing.T) {
	regions := []TextRegion{
		{ID: 1, Bounds: Rect{X: 0, Y: 0, W: 10, H: 10}},
	}
	_, ok := HitTest(regions, Point{50, 50})
	assert.False(t, ok)

	_, ok = HitTest(nil, Point{0, 0})
	assert.False(t, ok)
}

func TestFindNear(t *testing.T) {
	regions := []TextRegion{
		{ID: 1, Bounds: Rect{X: 100, Y: 100, W: 50, H: 20}},
		{ID: 2, Bounds: Rect{X: 200, Y: 100, W: 50, H: 20}},
	}

	r, ok := FindNear(regions, 103, 97, 5)
	assert.True(t, ok)
	assert.Equal(t, 1, r.ID)

	// Exactly at tolerance is a miss: the comparison is strict.
	_, ok = FindNear(regions, 105, 100, 5)
	assert.False(t, ok)

	r, ok = FindNear(regions, 201, 101, 5)
	assert.True(t, ok)
	assert.Equal(t, 2, r.ID)
}
