package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"StarBattle/internal/config"
	"StarBattle/internal/overlay"
	"StarBattle/internal/state"
)

// RunApp opens the board window and blocks until it is closed.
func RunApp(cfg *config.Config, pz *state.Puzzle, logger *slog.Logger) {
	myApp := app.NewWithID("io.starbattle.board")
	myWindow := myApp.NewWindow("Star Battle")
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	board := NewBoard(overlay.New(cfg.OverlayStyle(), logger), cfg.GlyphStyle(), logger)
	s := newSession(board, pz, cfg.DisplayFlags(), cfg.Palette(), cfg.GlyphStyle(), logger)

	board.Picker().OnAssign = func(i int) {
		picker := dialog.NewColorPicker("Custom color", "Pick a color for this slot", func(c color.Color) {
			s.assignCustom(i, c)
		}, myWindow)
		picker.Advanced = true
		picker.Show()
	}

	toolbar := newToolbar(s, myWindow)
	content := container.NewBorder(
		toolbar,
		container.NewHBox(widget.NewLabel("Color:"), board.Picker().Content(), layout.NewSpacer()),
		nil, nil,
		board.Content(),
	)
	myWindow.SetContent(content)
	s.renderAll()
	myWindow.ShowAndRun()
}

// --- The Main Toolbar ---
func newToolbar(s *session, win fyne.Window) fyne.CanvasObject {
	toolLabel := widget.NewLabel("Tool: mark")
	setTool := func(t tool, name string) func() {
		return func() {
			s.tool = t
			toolLabel.SetText("Tool: " + name)
		}
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ConfirmIcon(), setTool(toolMark, "mark")),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), setTool(toolInk, "ink")),
		widget.NewToolbarAction(theme.ViewFullScreenIcon(), setTool(toolBorder, "border")),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), s.clearInk),
		widget.NewToolbarAction(theme.ContentClearIcon(), s.clearBorders),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { exportDialog(s, win) }),
	)

	markX := newCheck("X marks", s.display.MarkIsX, s.setMarkIsX)
	highlight := newCheck("Errors", s.display.HighlightErrors, s.setHighlightErrors)
	solution := newCheck("Solution", s.display.ViewingSolution, s.setViewingSolution)
	mono := newCheck("Monochrome", s.display.Monochrome, s.setMonochrome)

	// --- Ink Width Slider ---
	widthSlider := widget.NewSlider(1.0, 30.0)
	widthSlider.SetValue(s.inkWidth)
	widthSlider.OnChanged = func(val float64) {
		s.inkWidth = val
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), widthSlider)

	return container.NewHBox(
		tb,
		toolLabel,
		widget.NewSeparator(),
		markX, highlight, solution, mono,
		widget.NewSeparator(),
		widget.NewLabel("Ink:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}

// newCheck sets the initial state before wiring changed so startup does not
// fire the callback.
func newCheck(label string, checked bool, changed func(bool)) *widget.Check {
	c := widget.NewCheck(label, nil)
	c.SetChecked(checked)
	c.OnChanged = changed
	return c
}

func exportDialog(s *session, win fyne.Window) {
	save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()
		if err := s.exportTo(w); err != nil {
			s.logger.Error("pdf export failed", "uri", w.URI().String(), "error", err)
			dialog.ShowError(err, win)
			return
		}
		s.logger.Info("board exported", "uri", w.URI().String())
	}, win)
	save.SetFileName("starbattle.pdf")
	save.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	save.Show()
}
