package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"StarBattle/internal/glyph"
	"StarBattle/internal/render"
	"StarBattle/internal/state"
)

const (
	thickBorder = 3
	thinBorder  = 0.5
	cellMinSize = 28
)

var (
	monochromeFill = color.White
	gridLineColor  = color.Gray{Y: 170}
	regionLine     = color.Black
)

// cellWidget is one square of the board.
type cellWidget struct {
	widget.BaseWidget
	at         state.Coord
	background color.Color
	thick      state.Side
	glyph      render.Glyph
	invalid    bool
	style      glyph.Style
}

var _ fyne.Widget = (*cellWidget)(nil)

func newCellWidget(plan render.Cell, style glyph.Style) *cellWidget {
	c := &cellWidget{
		at:         plan.Coord,
		background: plan.Background,
		thick:      plan.Thick,
		style:      style,
	}
	c.ExtendBaseWidget(c)
	return c
}

// setGlyph swaps the drawn symbol and refreshes only when it changed.
func (c *cellWidget) setGlyph(g render.Glyph) {
	if c.glyph == g {
		return
	}
	c.glyph = g
	c.Refresh()
}

func (c *cellWidget) setInvalid(invalid bool) {
	if c.invalid == invalid {
		return
	}
	c.invalid = invalid
	c.Refresh()
}

func (c *cellWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &cellRenderer{cell: c}
	r.background = canvas.NewRectangle(monochromeFill)
	r.outline = canvas.NewRectangle(color.Transparent)
	r.outline.StrokeColor = gridLineColor
	r.outline.StrokeWidth = thinBorder
	r.mark = canvas.NewRaster(r.drawMark)
	for i := range r.sides {
		r.sides[i] = canvas.NewRectangle(regionLine)
	}
	r.Refresh()
	return r
}

type cellRenderer struct {
	cell       *cellWidget
	background *canvas.Rectangle
	outline    *canvas.Rectangle
	mark       *canvas.Raster
	// sides follow state.AllSides order: top, bottom, left, right.
	sides [4]*canvas.Rectangle
}

func (r *cellRenderer) drawMark(w, h int) image.Image {
	img := glyph.Draw(r.cell.glyph, w, h, r.cell.invalid, r.cell.style)
	if img == nil {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return img
}

func (r *cellRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.outline.Resize(size)
	r.mark.Resize(size)

	top, bottom, left, right := r.sides[0], r.sides[1], r.sides[2], r.sides[3]
	top.Move(fyne.NewPos(0, 0))
	top.Resize(fyne.NewSize(size.Width, thickBorder))
	bottom.Move(fyne.NewPos(0, size.Height-thickBorder))
	bottom.Resize(fyne.NewSize(size.Width, thickBorder))
	left.Move(fyne.NewPos(0, 0))
	left.Resize(fyne.NewSize(thickBorder, size.Height))
	right.Move(fyne.NewPos(size.Width-thickBorder, 0))
	right.Resize(fyne.NewSize(thickBorder, size.Height))
}

func (r *cellRenderer) MinSize() fyne.Size {
	return fyne.NewSize(cellMinSize, cellMinSize)
}

func (r *cellRenderer) Refresh() {
	if r.cell.background != nil {
		r.background.FillColor = r.cell.background
	} else {
		r.background.FillColor = monochromeFill
	}
	r.background.Refresh()

	for i, s := range state.AllSides {
		if r.cell.thick&s != 0 {
			r.sides[i].Show()
		} else {
			r.sides[i].Hide()
		}
	}
	r.mark.Refresh()
}

func (r *cellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.outline, r.mark, r.sides[0], r.sides[1], r.sides[2], r.sides[3]}
}

func (r *cellRenderer) Destroy() {}
