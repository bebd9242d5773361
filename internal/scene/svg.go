package scene

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"InkPad/internal/state"
)

const xmlns = "http://www.w3.org/2000/svg"

// SVG serializes strokes as a standalone SVG document sized to the logical
// canvas, namespace inlined, one smoothed <path> per stroke. The
// background stays transparent; raster export composes over white.
func SVG(strokes []state.Stroke) string {
	w, h := int(state.CanvasWidth), int(state.CanvasHeight)
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"%s\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", xmlns, w, h, w, h)
	for _, s := range strokes {
		p := Smooth(s.Points)
		if p.Empty() {
			continue
		}
		fmt.Fprintf(&b, "  <path d=\"%s\" fill=\"none\" stroke=\"%s\"", PathData(p), HexColor(s.Color))
		if s.Color.A != 0xff {
			fmt.Fprintf(&b, " stroke-opacity=\"%s\"", coord(float32(s.Color.A)/255))
		}
		fmt.Fprintf(&b, " stroke-width=\"%s\" stroke-linecap=\"round\" stroke-linejoin=\"round\"/>\n", coord(s.Width))
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// WriteSVG writes the serialized document to w.
func WriteSVG(w io.Writer, strokes []state.Stroke) error {
	_, err := io.WriteString(w, SVG(strokes))
	return err
}

// PathData renders a path as SVG path data ("M 0 0 Q 10 0 15 0 L 20 0").
func PathData(p Path) string {
	var b strings.Builder
	for i, c := range p.Cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Kind {
		case CmdMoveTo:
			b.WriteString("M " + coord(c.To.X) + " " + coord(c.To.Y))
		case CmdLineTo:
			b.WriteString("L " + coord(c.To.X) + " " + coord(c.To.Y))
		case CmdQuadTo:
			b.WriteString("Q " + coord(c.Ctrl.X) + " " + coord(c.Ctrl.Y) + " " + coord(c.To.X) + " " + coord(c.To.Y))
		}
	}
	return b.String()
}

func coord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// HexColor formats c as a #rrggbb attribute value. Alpha is carried
// separately as stroke-opacity.
func HexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor reads #rgb or #rrggbb, with or without the leading hash.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		v, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
		r := uint8(v >> 8 & 0xf)
		g := uint8(v >> 4 & 0xf)
		b := uint8(v & 0xf)
		return color.NRGBA{R: r*16 + r, G: g*16 + g, B: b*16 + b, A: 0xff}, nil
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.NRGBA{}, fmt.Errorf("bad color %q", s)
}
