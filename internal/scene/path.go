// Package scene turns recorded point streams into vector paths and
// serializes the whole drawing as a standalone SVG document.
package scene

import "InkPad/internal/state"

// CmdKind selects which fields of a Cmd are meaningful.
type CmdKind uint8

const (
	CmdMoveTo CmdKind = iota
	CmdLineTo
	CmdQuadTo
)

func (k CmdKind) String() string {
	switch k {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdQuadTo:
		return "QuadTo"
	}
	return "Unknown"
}

// Cmd is one path command in logical canvas space. Ctrl is only set for
// CmdQuadTo.
type Cmd struct {
	Kind CmdKind
	To   state.Point
	Ctrl state.Point
}

// Path is a flat command list ready for any of the backends: the SVG
// writer, the rasterizer, or the PDF exporter.
type Path struct {
	Cmds []Cmd
}

func (p *Path) MoveTo(pt state.Point) {
	p.Cmds = append(p.Cmds, Cmd{Kind: CmdMoveTo, To: pt})
}

func (p *Path) LineTo(pt state.Point) {
	p.Cmds = append(p.Cmds, Cmd{Kind: CmdLineTo, To: pt})
}

func (p *Path) QuadTo(ctrl, pt state.Point) {
	p.Cmds = append(p.Cmds, Cmd{Kind: CmdQuadTo, To: pt, Ctrl: ctrl})
}

// Empty reports whether the path draws nothing.
func (p Path) Empty() bool {
	return len(p.Cmds) == 0
}
