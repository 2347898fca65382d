package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"StarBattle/internal/render"
	"StarBattle/internal/state"
)

const swatchSize = 32

var (
	swatchOutline  = color.Gray{Y: 150}
	selectedStroke = color.Black
	emptySlotFill  = color.Gray{Y: 235}
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	swatch   render.Swatch
	OnTapped func(render.Swatch)
}

func newColorSwatch(s render.Swatch, tapped func(render.Swatch)) *colorSwatch {
	cs := &colorSwatch{swatch: s, OnTapped: tapped}
	cs.ExtendBaseWidget(cs)
	return cs
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	fill := emptySlotFill
	if !s.swatch.Empty {
		fill = s.swatch.Color.RGBA()
	}
	rect := canvas.NewRectangle(fill)
	rect.SetMinSize(fyne.NewSize(swatchSize, swatchSize))

	border := canvas.NewRectangle(color.Transparent)
	switch {
	case s.swatch.Selected:
		border.StrokeColor = selectedStroke
		border.StrokeWidth = 3
	case s.swatch.Empty:
		border.StrokeColor = color.Gray{Y: 200}
		border.StrokeWidth = 1
	default:
		border.StrokeColor = swatchOutline
		border.StrokeWidth = 1
	}

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.swatch)
	}
}

// ColorPicker shows the palette as a row of swatches. It reports taps and
// never edits the palette itself.
type ColorPicker struct {
	// OnSelect is called with the color of a tapped filled swatch.
	OnSelect func(state.Color)
	// OnAssign is called with the slot index of a tapped empty custom slot.
	OnAssign func(index int)

	box      *fyne.Container
	swatches []*colorSwatch
}

func NewColorPicker() *ColorPicker {
	return &ColorPicker{box: container.NewHBox()}
}

// Content is the picker's canvas object.
func (p *ColorPicker) Content() fyne.CanvasObject { return p.box }

// Render rebuilds the swatch row from palette.
func (p *ColorPicker) Render(palette state.Palette) {
	list := render.Swatches(palette)
	p.swatches = make([]*colorSwatch, len(list))
	objects := make([]fyne.CanvasObject, len(list))
	for i, s := range list {
		cs := newColorSwatch(s, p.tapped)
		p.swatches[i] = cs
		objects[i] = cs
	}
	p.box.Objects = objects
	p.box.Refresh()
}

func (p *ColorPicker) tapped(s render.Swatch) {
	if s.Empty {
		if p.OnAssign != nil {
			p.OnAssign(s.CustomIndex)
		}
		return
	}
	if p.OnSelect != nil {
		p.OnSelect(s.Color)
	}
}
