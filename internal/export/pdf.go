// Package export writes printable copies of a board.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"StarBattle/internal/glyph"
	"StarBattle/internal/render"
	"StarBattle/internal/state"
)

// ErrEmptyBoard is returned when there is no grid to print.
var ErrEmptyBoard = errors.New("export: empty board")

// PrintView is the board state a page is drawn from.
type PrintView struct {
	Regions state.RegionGrid
	Marks   state.MarkGrid
	Quota   int
	Display state.Display
	Style   glyph.Style
}

const (
	pageMargin  = 15.0  // mm
	boardSide   = 180.0 // mm, fits A4 portrait with margins
	thinLine    = 0.2
	regionLine  = 0.9
	markLine    = 0.6
	starOuter   = 0.38
	starInner   = 0.16
	dotFraction = 0.12
)

// ExportPDF writes v to a PDF file at path.
func ExportPDF(path string, v PrintView) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Render(f, v); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Render writes v as a one-page A4 PDF to w.
func Render(w io.Writer, v PrintView) error {
	plan, ok := render.BuildGrid(v.Regions, v.Marks, v.Display.Monochrome)
	if !ok {
		return ErrEmptyBoard
	}
	bad := render.Violations(v.Marks, v.Regions, v.Quota, v.Display.HighlightErrors)

	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("Star Battle", true)
	p.AddPage()

	cell := boardSide / float64(plan.Dim)
	origin := func(at state.Coord) (float64, float64) {
		return pageMargin + float64(at.Col)*cell, pageMargin + float64(at.Row)*cell
	}

	// Fills and thin grid.
	p.SetDrawColor(170, 170, 170)
	p.SetLineWidth(thinLine)
	for _, row := range plan.Cells {
		for _, c := range row {
			x, y := origin(c.Coord)
			style := "D"
			if c.Background != nil {
				setFill(p, c.Background)
				style = "FD"
			}
			p.Rect(x, y, cell, cell, style)
		}
	}

	// Region borders, plus the board outline.
	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(regionLine)
	p.SetLineCapStyle("square")
	for _, row := range plan.Cells {
		for _, c := range row {
			x, y := origin(c.Coord)
			if c.Thick&state.SideTop != 0 {
				p.Line(x, y, x+cell, y)
			}
			if c.Thick&state.SideBottom != 0 {
				p.Line(x, y+cell, x+cell, y+cell)
			}
			if c.Thick&state.SideLeft != 0 {
				p.Line(x, y, x, y+cell)
			}
			if c.Thick&state.SideRight != 0 {
				p.Line(x+cell, y, x+cell, y+cell)
			}
		}
	}
	p.Rect(pageMargin, pageMargin, boardSide, boardSide, "D")

	// Marks.
	p.SetLineCapStyle("round")
	p.SetLineWidth(markLine)
	for _, row := range plan.Cells {
		for _, c := range row {
			x, y := origin(c.Coord)
			cx, cy := x+cell/2, y+cell/2
			switch render.GlyphFor(c.Mark, v.Display.MarkIsX) {
			case render.GlyphStar:
				col := v.Style.Star
				if bad.Has(c.Coord) {
					col = v.Style.Invalid
				}
				setFill(p, col)
				pts := glyph.StarPoints(cx, cy, cell*starOuter, cell*starInner)
				poly := make([]gofpdf.PointType, len(pts))
				for i, pt := range pts {
					poly[i] = gofpdf.PointType{X: pt[0], Y: pt[1]}
				}
				p.Polygon(poly, "F")
			case render.GlyphCross:
				setDraw(p, v.Style.Blocked)
				d := cell * 0.2
				p.Line(cx-d, cy-d, cx+d, cy+d)
				p.Line(cx-d, cy+d, cx+d, cy-d)
			case render.GlyphDot:
				setFill(p, v.Style.Blocked)
				p.Circle(cx, cy, cell*dotFraction, "F")
			}
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func rgb(c color.Color) (int, int, int) {
	if c == nil {
		return 0, 0, 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B)
}

func setFill(p *gofpdf.Fpdf, c color.Color) {
	r, g, b := rgb(c)
	p.SetFillColor(r, g, b)
}

func setDraw(p *gofpdf.Fpdf, c color.Color) {
	r, g, b := rgb(c)
	p.SetDrawColor(r, g, b)
}
