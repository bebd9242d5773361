// Package render rasterizes strokes with the same rasterizer the export
// pipeline uses, so the live board and the exported images agree.
package render

import (
	"image"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"InkPad/internal/scene"
	"InkPad/internal/state"
)

// Strokes draws the given strokes into dst. Geometry scales from logical
// canvas space by sx and sy (device pixels per logical unit, per axis);
// stroke widths scale by the average of the two so ink keeps its weight
// when the widget is stretched. dst is left untouched wherever no ink
// lands, so the caller chooses the background.
func Strokes(dst *image.RGBA, strokes []state.Stroke, sx, sy float64) {
	b := dst.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	dasher := rasterx.NewDasher(b.Dx(), b.Dy(), scanner)
	widthScale := (sx + sy) / 2

	for _, s := range strokes {
		p := scene.Smooth(s.Points)
		if p.Empty() {
			continue
		}
		scanner.SetColor(s.Color)
		dasher.SetStroke(toFixed(float64(s.Width)*widthScale), toFixed(4),
			rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
		feed(dasher, p, sx, sy)
		dasher.Draw()
		dasher.Clear()
	}
}

func feed(d *rasterx.Dasher, p scene.Path, sx, sy float64) {
	for _, c := range p.Cmds {
		switch c.Kind {
		case scene.CmdMoveTo:
			d.Start(fixedPoint(c.To, sx, sy))
		case scene.CmdLineTo:
			d.Line(fixedPoint(c.To, sx, sy))
		case scene.CmdQuadTo:
			d.QuadBezier(fixedPoint(c.Ctrl, sx, sy), fixedPoint(c.To, sx, sy))
		}
	}
	d.Stop(false)
}

func fixedPoint(p state.Point, sx, sy float64) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X)*sx, float64(p.Y)*sy)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
