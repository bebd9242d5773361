package state

import (
	"image/color"
	"time"
)

// The board works in a fixed logical coordinate space. Input positions and
// exported images are expressed in these units, so resizing the window
// never moves existing ink.
const (
	CanvasWidth  float32 = 1000
	CanvasHeight float32 = 600
)

// Point is a single sampled pen position in logical canvas space.
type Point struct{ X, Y float32 }

// Stroke is one committed pen gesture: the points sampled while the
// pointer was down, plus the color and width selected when it ended.
type Stroke struct {
	ID     string
	Points []Point
	Color  color.NRGBA
	Width  float32
	Time   time.Time
}

// MapToCanvas converts a widget-local position into logical canvas space.
// Axes scale independently, so a stretched widget stretches the drawing
// with it. boxW and boxH must be positive.
func MapToCanvas(x, y, boxW, boxH float32) Point {
	return Point{
		X: x * CanvasWidth / boxW,
		Y: y * CanvasHeight / boxH,
	}
}

// Rect is an axis-aligned box in logical canvas space.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

func (r Rect) Width() float32  { return r.MaxX - r.MinX }
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// Bounds computes the bounding box of every point in the given strokes.
// ok is false when the strokes contain no points at all.
func Bounds(strokes []Stroke) (box Rect, ok bool) {
	for _, s := range strokes {
		for _, p := range s.Points {
			if !ok {
				box = Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				ok = true
				continue
			}
			if p.X < box.MinX {
				box.MinX = p.X
			}
			if p.X > box.MaxX {
				box.MaxX = p.X
			}
			if p.Y < box.MinY {
				box.MinY = p.Y
			}
			if p.Y > box.MaxY {
				box.MaxY = p.Y
			}
		}
	}
	return box, ok
}
