// Package ui holds the fyne widgets that show a Star Battle board: the cell
// grid, the overlay view stacked above it and the color picker.
package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"StarBattle/internal/glyph"
	"StarBattle/internal/logging"
	"StarBattle/internal/overlay"
	"StarBattle/internal/render"
	"StarBattle/internal/state"
)

// GridView is what RenderGrid draws.
type GridView struct {
	Regions    state.RegionGrid
	Marks      state.MarkGrid
	Monochrome bool
	MarkIsX    bool
}

// Board renders a puzzle. It holds widget handles only; the caller owns the
// puzzle state and passes it into every call.
type Board struct {
	OnCellTapped func(at state.Coord)
	// OnDrag receives pointer positions in overlay pixels, with the cell
	// under the pointer when inGrid is true.
	OnDrag    func(p state.Point, at state.Coord, inGrid bool)
	OnDragEnd func()

	comp   *overlay.Compositor
	style  glyph.Style
	logger *slog.Logger

	cells   [][]*cellWidget
	grid    *fyne.Container
	view    *overlayView
	content *fyne.Container
	picker  *ColorPicker

	scene overlay.Scene
}

// NewBoard creates an empty board drawing overlays through comp.
func NewBoard(comp *overlay.Compositor, style glyph.Style, logger *slog.Logger) *Board {
	if logger == nil {
		logger = logging.Nop()
	}
	if comp == nil {
		comp = overlay.New(overlay.DefaultStyle(), logger)
	}
	b := &Board{
		comp:   comp,
		style:  style,
		logger: logger,
		picker: NewColorPicker(),
	}
	b.grid = container.New(&squareGridLayout{})
	b.view = newOverlayView(b)
	b.content = container.NewStack(b.grid, b.view)
	return b
}

// Content is the board's canvas object: the grid with the overlay on top.
func (b *Board) Content() fyne.CanvasObject { return b.content }

// Picker returns the color picker rendered by RenderColorPicker.
func (b *Board) Picker() *ColorPicker { return b.picker }

// Dim returns the side length of the rendered grid.
func (b *Board) Dim() int { return len(b.cells) }

// RenderGrid replaces the grid with a fresh one built from v, then sizes and
// repaints the overlay. Empty regions clear the board.
func (b *Board) RenderGrid(v GridView, scene overlay.Scene) {
	b.cells = nil
	b.grid.Objects = nil
	b.scene = scene

	plan, ok := render.BuildGrid(v.Regions, v.Marks, v.Monochrome)
	if !ok {
		b.logger.Debug("grid cleared")
		b.grid.Layout = &squareGridLayout{}
		b.grid.Refresh()
		b.view.show(nil)
		return
	}

	b.cells = make([][]*cellWidget, plan.Dim)
	objects := make([]fyne.CanvasObject, 0, plan.Dim*plan.Dim)
	for r := 0; r < plan.Dim; r++ {
		b.cells[r] = make([]*cellWidget, plan.Dim)
		for c := 0; c < plan.Dim; c++ {
			var cell render.Cell
			if c < len(plan.Cells[r]) {
				cell = plan.Cells[r][c]
			} else {
				// Ragged region rows still get a square grid.
				cell = render.Cell{Coord: state.Coord{Row: r, Col: c}}
				if !v.Monochrome {
					cell.Background = color.White
				}
			}
			w := newCellWidget(cell, b.style)
			b.cells[r][c] = w
			objects = append(objects, w)
		}
	}
	b.grid.Layout = &squareGridLayout{dim: plan.Dim}
	b.grid.Objects = objects
	b.grid.Refresh()
	b.logger.Debug("grid rebuilt", "dim", plan.Dim, "monochrome", v.Monochrome)

	b.RenderAllMarks(v.Marks, v.MarkIsX)
	b.ResizeOverlay(scene)
}

// RenderAllMarks redraws every cell's glyph from marks. Cells without a
// widget or without a row in marks are skipped.
func (b *Board) RenderAllMarks(marks state.MarkGrid, markIsX bool) {
	skipped := 0
	for r, row := range b.cells {
		for c, w := range row {
			if w == nil {
				skipped++
				continue
			}
			if r >= len(marks) || c >= len(marks[r]) {
				skipped++
				continue
			}
			w.setGlyph(render.GlyphFor(marks[r][c], markIsX))
		}
	}
	if skipped > 0 {
		b.logger.Warn("marks not applied to every cell", "skipped", skipped, "dim", len(b.cells))
	}
}

// UpdateViolations clears every error flag, then flags the stars that break
// a rule. With enabled false it only clears.
func (b *Board) UpdateViolations(marks state.MarkGrid, regions state.RegionGrid, quota int, enabled bool) {
	bad := render.Violations(marks, regions, quota, enabled)
	for _, row := range b.cells {
		for _, w := range row {
			if w != nil {
				w.setInvalid(false)
			}
		}
	}
	for at := range bad {
		if w := b.cellWidget(at); w != nil {
			w.setInvalid(true)
		}
	}
	if bad.Len() > 0 {
		b.logger.Debug("violations", "count", bad.Len())
	}
}

// ResizeOverlay matches the overlay surfaces to the grid's current size and
// repaints them.
func (b *Board) ResizeOverlay(scene overlay.Scene) {
	b.scene = scene
	size := b.grid.Size()
	scale := b.pixelScale()
	b.comp.Resize(int(size.Width*scale), int(size.Height*scale), scene)
	b.view.show(b.comp.Image())
}

// RedrawOverlays repaints the overlay without resizing it.
func (b *Board) RedrawOverlays(scene overlay.Scene) {
	b.scene = scene
	b.comp.Repaint(scene)
	b.view.show(b.comp.Image())
}

// RenderColorPicker rebuilds the picker's swatches from p.
func (b *Board) RenderColorPicker(p state.Palette) {
	b.picker.Render(p)
}

// Ink paints a stroke into the ink buffer and shows it.
func (b *Board) Ink(s state.InkStroke) {
	b.comp.Ink(s)
	b.RedrawOverlays(b.scene)
}

// ClearInk erases all ink and repaints.
func (b *Board) ClearInk() {
	b.comp.ClearInk()
	b.RedrawOverlays(b.scene)
}

func (b *Board) cellWidget(at state.Coord) *cellWidget {
	if at.Row < 0 || at.Row >= len(b.cells) {
		return nil
	}
	row := b.cells[at.Row]
	if at.Col < 0 || at.Col >= len(row) {
		return nil
	}
	return row[at.Col]
}

func (b *Board) pixelScale() float32 {
	if c := fyne.CurrentApp(); c != nil {
		if cv := c.Driver().CanvasForObject(b.content); cv != nil && cv.Scale() > 0 {
			return cv.Scale()
		}
	}
	return 1
}

func (b *Board) locate(pos fyne.Position) (state.Coord, bool) {
	row, col, ok := cellAt(pos, b.grid.Size(), len(b.cells))
	return state.Coord{Row: row, Col: col}, ok
}

func (b *Board) tapped(pos fyne.Position) {
	at, ok := b.locate(pos)
	if !ok || b.OnCellTapped == nil {
		return
	}
	b.OnCellTapped(at)
}

func (b *Board) dragged(pos fyne.Position) {
	if b.OnDrag == nil {
		return
	}
	at, ok := b.locate(pos)
	scale := b.pixelScale()
	b.OnDrag(state.Point{X: float64(pos.X * scale), Y: float64(pos.Y * scale)}, at, ok)
}

func (b *Board) dragEnded() {
	if b.OnDragEnd != nil {
		b.OnDragEnd()
	}
}
