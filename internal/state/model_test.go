package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapToCanvas(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float32
		boxW, boxH float32
		want       Point
	}{
		{"origin", 0, 0, 500, 300, Point{0, 0}},
		{"far corner", 500, 300, 500, 300, Point{CanvasWidth, CanvasHeight}},
		{"identity box", 250, 150, CanvasWidth, CanvasHeight, Point{250, 150}},
		{"half-size box doubles", 100, 50, 500, 300, Point{200, 100}},
		{"axes scale independently", 100, 100, 500, 600, Point{200, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapToCanvas(tt.x, tt.y, tt.boxW, tt.boxH)
			assert.InDelta(t, tt.want.X, got.X, 1e-4)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-4)
		})
	}
}

func TestMapToCanvasLinearity(t *testing.T) {
	// Doubling the box width halves the mapped x for the same widget delta.
	narrow := MapToCanvas(120, 0, 400, 300)
	wide := MapToCanvas(120, 0, 800, 300)
	assert.InDelta(t, narrow.X/2, wide.X, 1e-4)
}

func TestBounds(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)

	_, ok = Bounds([]Stroke{{}})
	assert.False(t, ok)

	box, ok := Bounds([]Stroke{
		{Points: []Point{{10, 20}, {30, 5}}},
		{Points: []Point{{-2, 40}}},
	})
	assert.True(t, ok)
	assert.Equal(t, float32(-2), box.MinX)
	assert.Equal(t, float32(5), box.MinY)
	assert.Equal(t, float32(30), box.MaxX)
	assert.Equal(t, float32(40), box.MaxY)
	assert.Equal(t, float32(32), box.Width())
	assert.Equal(t, float32(35), box.Height())
}

func TestBoundsSinglePoint(t *testing.T) {
	box, ok := Bounds([]Stroke{{Points: []Point{{7, 9}}}})
	assert.True(t, ok)
	assert.Equal(t, Rect{MinX: 7, MinY: 9, MaxX: 7, MaxY: 9}, box)
	assert.Equal(t, float32(0), box.Width())
}
