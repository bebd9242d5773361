package export

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"InkPad/internal/scene"
	"InkPad/internal/state"
)

// A4 landscape, millimetres.
const (
	pageW      = 297.0
	pageH      = 210.0
	pageMargin = 10.0
)

// PDF writes the committed strokes as vector paths on a single A4
// landscape page, scaled so the drawn content fills the page inside the
// margins. Returns the written path.
func PDF(strokes []state.Stroke, dir string) (string, error) {
	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	box := contentBox(strokes)
	innerW := float64(pageW - 2*pageMargin)
	innerH := float64(pageH - 2*pageMargin)
	s := innerW / float64(box.Width())
	if v := innerH / float64(box.Height()); v < s {
		s = v
	}
	offX := pageMargin + (innerW-float64(box.Width())*s)/2 - float64(box.MinX)*s
	offY := pageMargin + (innerH-float64(box.Height())*s)/2 - float64(box.MinY)*s

	for _, st := range strokes {
		path := scene.Smooth(st.Points)
		if path.Empty() {
			continue
		}
		p.SetDrawColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
		p.SetLineWidth(float64(st.Width) * s)
		for _, c := range path.Cmds {
			x := offX + float64(c.To.X)*s
			y := offY + float64(c.To.Y)*s
			switch c.Kind {
			case scene.CmdMoveTo:
				p.MoveTo(x, y)
			case scene.CmdLineTo:
				p.LineTo(x, y)
			case scene.CmdQuadTo:
				p.CurveTo(offX+float64(c.Ctrl.X)*s, offY+float64(c.Ctrl.Y)*s, x, y)
			}
		}
		p.DrawPath("D")
	}

	out := filepath.Join(dir, Filename("pdf"))
	if err := p.OutputFileAndClose(out); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	log.Printf("[export] wrote %s (%d strokes)", out, len(strokes))
	return out, nil
}

// contentBox is the drawn content's bounding box padded by the widest
// stroke, so thick ink is not clipped by the page fit. An empty drawing
// falls back to the whole canvas.
func contentBox(strokes []state.Stroke) state.Rect {
	box, ok := state.Bounds(strokes)
	if !ok {
		return state.Rect{MaxX: state.CanvasWidth, MaxY: state.CanvasHeight}
	}
	var widest float32
	for _, s := range strokes {
		if s.Width > widest {
			widest = s.Width
		}
	}
	pad := widest/2 + 4
	box.MinX -= pad
	box.MinY -= pad
	box.MaxX += pad
	box.MaxY += pad
	return box
}
