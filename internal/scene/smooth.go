package scene

import "InkPad/internal/state"

// Smooth converts a recorded point stream into the curve drawn for it.
// Over n points:
//
//	n < 2:  empty path, nothing visible yet.
//	n == 2: a single straight segment.
//	n >= 3: a chain of quadratic segments. Interior point P[i] is the
//	        control point of a segment ending at the midpoint of P[i] and
//	        P[i+1], so consecutive segments share endpoints and corners
//	        come out rounded. A final straight segment runs to the last
//	        sample, keeping the curve pinned to the newest point.
//
// The path is rebuilt from the full stream on every call; strokes are
// bounded by gesture length, never decimated.
func Smooth(pts []state.Point) Path {
	var p Path
	if len(pts) < 2 {
		return p
	}
	p.MoveTo(pts[0])
	if len(pts) == 2 {
		p.LineTo(pts[1])
		return p
	}
	for i := 1; i < len(pts)-1; i++ {
		p.QuadTo(pts[i], midpoint(pts[i], pts[i+1]))
	}
	p.LineTo(pts[len(pts)-1])
	return p
}

func midpoint(a, b state.Point) state.Point {
	return state.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
