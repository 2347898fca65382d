// Package glyph rasterizes the cell mark symbols.
package glyph

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"StarBattle/internal/render"
)

// Style holds the colors used for marks.
type Style struct {
	Star    color.Color
	Invalid color.Color
	Blocked color.Color
}

// DefaultStyle matches the board's default theme.
func DefaultStyle() Style {
	return Style{
		Star:    color.NRGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff},
		Invalid: color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff},
		Blocked: color.NRGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff},
	}
}

// Draw renders g centered in a w×h transparent image. invalid switches a
// star to the error color. It returns nil for a zero-sized target.
func Draw(g render.Glyph, w, h int, invalid bool, st Style) image.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()

	cx, cy := float64(w)/2, float64(h)/2
	size := math.Min(float64(w), float64(h))

	switch g {
	case render.GlyphStar:
		col := st.Star
		if invalid {
			col = st.Invalid
		}
		dc.SetColor(col)
		star(dc, cx, cy, size*0.38, size*0.16)
		_ = dc.Fill()
	case render.GlyphCross:
		arm := size * 0.2
		dc.SetColor(st.Blocked)
		dc.SetLineWidth(math.Max(1, size*0.07))
		dc.SetLineCap(gg.LineCapRound)
		dc.DrawLine(cx-arm, cy-arm, cx+arm, cy+arm)
		dc.DrawLine(cx-arm, cy+arm, cx+arm, cy-arm)
		_ = dc.Stroke()
	case render.GlyphDot:
		dc.SetColor(st.Blocked)
		dc.DrawCircle(cx, cy, math.Max(1, size*0.08))
		_ = dc.Fill()
	}
	return dc.Image()
}

// star adds a five-pointed star path with the given outer and inner radii.
func star(dc *gg.Context, cx, cy, outer, inner float64) {
	for i, p := range StarPoints(cx, cy, outer, inner) {
		if i == 0 {
			dc.MoveTo(p[0], p[1])
		} else {
			dc.LineTo(p[0], p[1])
		}
	}
	dc.ClosePath()
}

// StarPoints returns the ten vertices of the star outline, for backends
// that take polygons instead of paths.
func StarPoints(cx, cy, outer, inner float64) [10][2]float64 {
	var pts [10][2]float64
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}
