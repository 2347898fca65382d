// Package overlay composes the drawing layers that sit above the board: the
// free-form ink buffer, custom border paths and the solution overlay.
//
// The compositor keeps two surfaces. The buffer holds ink and survives
// resizes by being stretched to the new size. The visible surface is rebuilt
// on every repaint in a fixed order:
//
//  1. clear
//  2. ink buffer
//  3. custom borders, completed paths first, then the path being drawn
//  4. solution overlay, when the scene asks for it
package overlay

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"StarBattle/internal/logging"
	"StarBattle/internal/render"
	"StarBattle/internal/state"
)

// Scene is the state a repaint reads.
type Scene struct {
	Dim     int
	Borders []state.BorderPath
	// Pending is the border currently being drawn; it paints last.
	Pending         state.BorderPath
	Solution        state.SolutionGrid
	ViewingSolution bool
}

// Style configures overlay painting.
type Style struct {
	BorderThickness float64
	SolutionFill    color.Color
	ShadowColor     color.Color
	ShadowBlur      float64
	// RadiusDivisor sets the solution circle radius to cellWidth/RadiusDivisor.
	RadiusDivisor float64
}

// DefaultStyle returns the stock overlay look.
func DefaultStyle() Style {
	return Style{
		BorderThickness: 8,
		SolutionFill:    color.NRGBA{R: 252, G: 211, B: 77, A: 179},
		ShadowColor:     color.NRGBA{A: 179},
		ShadowBlur:      15,
		RadiusDivisor:   3.5,
	}
}

// Compositor owns the visible and buffer surfaces.
type Compositor struct {
	visible *surface
	buffer  *surface
	style   Style
	logger  *slog.Logger
}

// New creates an unsized compositor. A nil logger discards output.
func New(style Style, logger *slog.Logger) *Compositor {
	if logger == nil {
		logger = logging.Nop()
	}
	if style.RadiusDivisor <= 0 {
		style.RadiusDivisor = DefaultStyle().RadiusDivisor
	}
	return &Compositor{
		visible: newSurface(0, 0),
		buffer:  newSurface(0, 0),
		style:   style,
		logger:  logger,
	}
}

// Size returns the visible surface size in pixels.
func (c *Compositor) Size() (int, int) {
	return c.visible.width(), c.visible.height()
}

// BufferSize returns the ink buffer size in pixels.
func (c *Compositor) BufferSize() (int, int) {
	return c.buffer.width(), c.buffer.height()
}

// Resize sets both surfaces to w×h and repaints. Existing ink is stretched
// onto the new buffer. A zero target empties the visible surface but keeps
// the buffer so its ink is back on the next non-empty resize.
func (c *Compositor) Resize(w, h int, scene Scene) {
	ow, oh := c.BufferSize()
	c.logger.Debug("overlay resize", "from_w", ow, "from_h", oh, "to_w", w, "to_h", h)

	c.visible.resize(w, h)
	if w <= 0 || h <= 0 {
		return
	}
	if ow != w || oh != h {
		captured := c.buffer.snapshot()
		c.buffer.resize(w, h)
		if captured != nil {
			c.buffer.stretchFrom(captured)
		}
	}
	c.Repaint(scene)
}

// Repaint rebuilds the visible surface from the buffer and the scene.
func (c *Compositor) Repaint(scene Scene) {
	if c.visible.empty() {
		return
	}
	c.visible.clear()
	c.visible.composite(c.buffer.snapshot())
	c.paintBorders(scene)
	if scene.ViewingSolution {
		c.paintSolution(scene)
	}
}

// Image returns a copy of the visible surface, nil when it is empty.
func (c *Compositor) Image() image.Image {
	img := c.visible.snapshot()
	if img == nil {
		return nil
	}
	return img
}

// BufferImage returns a copy of the ink buffer, nil when it is empty.
func (c *Compositor) BufferImage() image.Image {
	img := c.buffer.snapshot()
	if img == nil {
		return nil
	}
	return img
}

// Ink paints a stroke onto the buffer. Call Repaint to show it.
func (c *Compositor) Ink(s state.InkStroke) {
	if c.buffer.empty() || len(s.Points) == 0 {
		return
	}
	dc := c.buffer.dc
	width := s.Width
	if width <= 0 {
		width = 1
	}
	dc.SetColor(s.Color.RGBA())
	if len(s.Points) == 1 {
		p := s.Points[0]
		dc.DrawCircle(p.X, p.Y, width/2)
		_ = dc.Fill()
		return
	}
	dc.SetLineWidth(width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, p := range s.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	_ = dc.Stroke()
}

// ClearInk erases the buffer.
func (c *Compositor) ClearInk() {
	c.buffer.clear()
}

func (c *Compositor) cellSize(dim int) (float64, float64) {
	w, h := c.Size()
	return float64(w) / float64(dim), float64(h) / float64(dim)
}

func (c *Compositor) paintBorders(scene Scene) {
	if scene.Dim <= 0 {
		return
	}
	paths := scene.Borders
	if scene.Pending.Cells.Len() > 0 {
		paths = append(paths[:len(paths):len(paths)], scene.Pending)
	}
	if len(paths) == 0 {
		return
	}

	cw, ch := c.cellSize(scene.Dim)
	dc := c.visible.dc
	for _, p := range paths {
		dc.SetColor(p.Color.RGBA())
		for _, e := range render.ExteriorEdges(p.Cells) {
			r := render.EdgeRect(e, cw, ch, c.style.BorderThickness)
			dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		}
		_ = dc.Fill()
	}
}

// shadowRings is the number of translucent rings that approximate the
// shadow blur.
const shadowRings = 6

func (c *Compositor) paintSolution(scene Scene) {
	if scene.Dim <= 0 || scene.Solution == nil {
		return
	}
	cw, ch := c.cellSize(scene.Dim)
	radius := cw / c.style.RadiusDivisor
	dc := c.visible.dc

	var centers [][2]float64
	for r := 0; r < scene.Dim && r < len(scene.Solution); r++ {
		for col := 0; col < scene.Dim && col < len(scene.Solution[r]); col++ {
			if scene.Solution[r][col] {
				centers = append(centers, [2]float64{float64(col)*cw + cw/2, float64(r)*ch + ch/2})
			}
		}
	}
	if len(centers) == 0 {
		return
	}

	shadow := softShadow(c.style.ShadowColor, c.style.ShadowBlur)
	for _, ring := range shadow {
		dc.SetColor(ring.color)
		for _, p := range centers {
			dc.DrawCircle(p[0], p[1], radius+ring.spread)
		}
		_ = dc.Fill()
	}

	dc.SetColor(c.style.SolutionFill)
	for _, p := range centers {
		dc.DrawCircle(p[0], p[1], radius)
	}
	_ = dc.Fill()
}

type shadowRing struct {
	spread float64
	color  color.Color
}

// softShadow splits a shadow of the given blur into rings, widest and
// faintest first, whose stacked alpha reaches the shadow color's alpha at
// the disc edge.
func softShadow(col color.Color, blur float64) []shadowRing {
	if col == nil || blur <= 0 {
		return nil
	}
	base := color.NRGBAModel.Convert(col).(color.NRGBA)
	if base.A == 0 {
		return nil
	}
	total := float64(base.A) / 255
	// Equal per-ring alpha a with 1-(1-a)^n == total.
	a := 1 - math.Pow(1-total, 1/float64(shadowRings))
	rings := make([]shadowRing, 0, shadowRings)
	for i := shadowRings; i >= 1; i-- {
		rings = append(rings, shadowRing{
			spread: blur * float64(i) / float64(shadowRings),
			color:  color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(math.Round(a * 255))},
		})
	}
	return rings
}
