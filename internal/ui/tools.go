package ui

import (
	"image/color"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"InkPad/internal/config"
	"InkPad/internal/export"
)

const eraserWidth = 20.0

// palette shown as swatches. The eraser paints in the background white.
var palette = []color.NRGBA{
	{A: 255},                         // black
	{R: 255, A: 255},                 // red
	{G: 255, A: 255},                 // green
	{B: 255, A: 255},                 // blue
	{R: 255, G: 255, A: 255},         // yellow
	{R: 255, G: 255, B: 255, A: 255}, // white
}

// --- Custom widget for color swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The main toolbar ---

// NewToolbar wires the pen controls and the board actions. win receives
// the error dialog when an export fails.
func NewToolbar(board *BoardWidget, cfg config.Config, win fyne.Window) fyne.CanvasObject {
	// Pen memory for switching back from the eraser.
	lastColor := cfg.Color()

	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(float64(cfg.DefaultWidth))
	strokeSlider.OnChanged = func(val float64) {
		board.SetWidth(float32(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			board.SetColor(lastColor)
			board.SetWidth(float32(strokeSlider.Value))
		}), // Pen
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			board.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			board.SetWidth(eraserWidth)
		}), // Eraser
	)

	onColorTapped := func(c color.NRGBA) {
		lastColor = c
		board.SetColor(c)
	}
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	exportFailed := func(err error) {
		log.Printf("[export] failed: %v", err)
		board.SetStatus("Export failed")
		dialog.ShowError(err, win)
	}
	exported := func(path string, err error) {
		if err != nil {
			exportFailed(err)
			return
		}
		board.SetStatus("Saved " + filepath.Base(path))
	}

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
		widget.NewToolbarAction(theme.ContentClearIcon(), board.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FileImageIcon(), func() {
			exported(export.PNG(board.Strokes(), cfg.ExportDir))
		}), // PNG
		widget.NewToolbarAction(theme.DocumentIcon(), func() {
			exported(export.PDF(board.Strokes(), cfg.ExportDir))
		}), // PDF
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			exported(export.SVG(board.Strokes(), cfg.ExportDir))
		}), // SVG
	)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
		actions,
	)
}
