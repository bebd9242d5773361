package ui

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"InkPad/internal/render"
	"InkPad/internal/state"
)

// BoardWidget is the drawing surface. It owns the gesture recorder and the
// stroke history, maps widget positions into logical canvas space, and
// paints through the software rasterizer.
type BoardWidget struct {
	widget.BaseWidget
	board    *state.Board
	recorder *state.Recorder

	currentColor color.NRGBA
	currentWidth float32

	status *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)

func NewBoardWidget(board *state.Board) *BoardWidget {
	b := &BoardWidget{
		board:        board,
		recorder:     state.NewRecorder(board),
		currentColor: color.NRGBA{A: 255},
		currentWidth: 3.0,
		status:       widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) SetColor(c color.NRGBA) {
	b.currentColor = c
}

func (b *BoardWidget) SetWidth(w float32) {
	b.currentWidth = w
}

// Strokes returns a copy of the committed history.
func (b *BoardWidget) Strokes() []state.Stroke {
	return b.board.Strokes()
}

// Undo removes the most recent stroke, if any.
func (b *BoardWidget) Undo() {
	if b.board.UndoLast() {
		b.SetStatus(fmt.Sprintf("Undone, %d strokes left", b.board.Len()))
	} else {
		b.SetStatus("Nothing to undo")
	}
	b.Refresh()
}

// Clear drops the whole drawing.
func (b *BoardWidget) Clear() {
	if n := b.board.Clear(); n > 0 {
		b.SetStatus(fmt.Sprintf("Cleared %d strokes", n))
	} else {
		b.SetStatus("Board is empty")
	}
	b.Refresh()
}

func (b *BoardWidget) SetStatus(text string) {
	b.status.SetText(text)
}

// StatusBar is the label the window places below the board.
func (b *BoardWidget) StatusBar() fyne.CanvasObject {
	return b.status
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if b.recorder.Start(b.mapToCanvas(e.Position)) {
		b.Refresh()
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.finishStroke()
}

// Dragged extends the active stroke. Drag events keep coming to the widget
// where the drag began even after the cursor leaves it, so a gesture
// survives leaving the canvas. A drag arriving while idle (touch input has
// no mouse-down) starts the stroke instead.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.recorder.Drawing() {
		if b.recorder.Start(b.mapToCanvas(e.Position)) {
			b.Refresh()
		}
		return
	}
	b.recorder.Move(b.mapToCanvas(e.Position))
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {
	b.finishStroke()
}

// finishStroke commits or discards the active gesture. Color and width are
// read here, at release, so mid-gesture control changes restyle the whole
// stroke. A drag release fires both MouseUp and DragEnd; the recorder goes
// idle on the first, making the second a no-op.
func (b *BoardWidget) finishStroke() {
	if s, ok := b.recorder.End(b.currentColor, b.currentWidth); ok {
		b.SetStatus(fmt.Sprintf("Stroke committed (%d points)", len(s.Points)))
	}
	b.Refresh()
}

func (b *BoardWidget) mapToCanvas(pos fyne.Position) state.Point {
	sz := b.Size()
	return state.MapToCanvas(pos.X, pos.Y, sz.Width, sz.Height)
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.ink = canvas.NewRaster(r.draw)
	return r
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	ink        *canvas.Raster
}

// draw regenerates the raster at the widget's current pixel size. The
// in-progress stroke is appended with the live color and width, so it
// previews exactly what a commit right now would look like.
func (r *boardRenderer) draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	strokes := r.board.board.Strokes()
	if pts := r.board.recorder.ActivePoints(); len(pts) > 0 {
		strokes = append(strokes, state.Stroke{
			Points: pts,
			Color:  r.board.currentColor,
			Width:  r.board.currentWidth,
		})
	}
	sx := float64(w) / float64(state.CanvasWidth)
	sy := float64(h) / float64(state.CanvasHeight)
	render.Strokes(img, strokes, sx, sy)
	return img
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.ink.Resize(size)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.ink}
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (b *BoardWidget) Cursor() desktop.Cursor { return desktop.CrosshairCursor }

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

// MouseOut does not end the gesture; only a release does.
func (b *BoardWidget) MouseOut() {}

func (r *boardRenderer) Destroy() {}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 200)
}
