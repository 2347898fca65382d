package ui

import "fyne.io/fyne/v2"

// squareGridLayout places dim×dim objects row-major with no padding, so cell
// geometry is exactly size/dim and lines up with the overlay.
type squareGridLayout struct {
	dim int
}

func (g *squareGridLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if g.dim <= 0 {
		return
	}
	cw := size.Width / float32(g.dim)
	ch := size.Height / float32(g.dim)
	for i, o := range objects {
		row, col := i/g.dim, i%g.dim
		o.Move(fyne.NewPos(float32(col)*cw, float32(row)*ch))
		o.Resize(fyne.NewSize(cw, ch))
	}
}

func (g *squareGridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if g.dim <= 0 {
		return fyne.NewSize(0, 0)
	}
	var cell fyne.Size
	for _, o := range objects {
		cell = cell.Max(o.MinSize())
	}
	return fyne.NewSize(cell.Width*float32(g.dim), cell.Height*float32(g.dim))
}

// cellAt maps a position inside a grid of the given size to its cell.
func cellAt(pos fyne.Position, size fyne.Size, dim int) (row, col int, ok bool) {
	if dim <= 0 || size.Width <= 0 || size.Height <= 0 {
		return 0, 0, false
	}
	if pos.X < 0 || pos.Y < 0 || pos.X >= size.Width || pos.Y >= size.Height {
		return 0, 0, false
	}
	col = int(pos.X / (size.Width / float32(dim)))
	row = int(pos.Y / (size.Height / float32(dim)))
	if row >= dim || col >= dim {
		return 0, 0, false
	}
	return row, col, true
}
