package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// overlayView shows the compositor's visible surface stretched over the grid
// and turns pointer input into board callbacks.
type overlayView struct {
	widget.BaseWidget
	board *Board
	image *canvas.Image
	last  fyne.Size
}

var (
	_ fyne.Tappable  = (*overlayView)(nil)
	_ fyne.Draggable = (*overlayView)(nil)
)

func newOverlayView(b *Board) *overlayView {
	v := &overlayView{board: b}
	v.image = canvas.NewImageFromImage(nil)
	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScaleFastest
	v.ExtendBaseWidget(v)
	return v
}

// show swaps in a new frame. A nil image hides the overlay.
func (v *overlayView) show(img image.Image) {
	v.image.Image = img
	if img == nil {
		v.image.Hide()
	} else {
		v.image.Show()
	}
	v.image.Refresh()
}

func (v *overlayView) Tapped(ev *fyne.PointEvent) {
	v.board.tapped(ev.Position)
}

func (v *overlayView) Dragged(ev *fyne.DragEvent) {
	v.board.dragged(ev.Position)
}

func (v *overlayView) DragEnd() {
	v.board.dragEnded()
}

func (v *overlayView) CreateRenderer() fyne.WidgetRenderer {
	return &overlayRenderer{view: v}
}

type overlayRenderer struct {
	view *overlayView
}

func (r *overlayRenderer) Layout(size fyne.Size) {
	r.view.image.Resize(size)
	if size == r.view.last {
		return
	}
	r.view.last = size
	r.view.board.ResizeOverlay(r.view.board.scene)
}

func (r *overlayRenderer) MinSize() fyne.Size { return fyne.NewSize(0, 0) }

func (r *overlayRenderer) Refresh() { r.view.image.Refresh() }

func (r *overlayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.image}
}

func (r *overlayRenderer) Destroy() {}
