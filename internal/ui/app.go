package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"InkPad/internal/config"
	"InkPad/internal/state"
)

// RunApp builds the window and blocks until it closes.
func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("InkPad")
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	board := NewBoardWidget(state.NewBoard())
	board.SetColor(cfg.Color())
	board.SetWidth(cfg.DefaultWidth)

	toolbar := NewToolbar(board, cfg, myWindow)
	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, board)
	myWindow.SetContent(content)

	// Ctrl+Z (Cmd+Z on macOS) undoes the last stroke.
	undoKey := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	myWindow.Canvas().AddShortcut(undoKey, func(fyne.Shortcut) {
		board.Undo()
	})

	myWindow.ShowAndRun()
}
