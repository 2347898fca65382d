package state

import (
	"image/color"
	"sort"
	"strings"

	"github.com/gogpu/gg"
)

// Mark is the symbol a player placed in a cell.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkStar
	MarkBlocked
)

type RegionGrid [][]int

type MarkGrid [][]Mark

// SolutionGrid holds true where the solution places a star.
type SolutionGrid [][]bool

// At returns the mark at c, or MarkEmpty when c is outside the grid.
func (g MarkGrid) At(c Coord) Mark {
	if c.Row < 0 || c.Row >= len(g) || c.Col < 0 || c.Col >= len(g[c.Row]) {
		return MarkEmpty
	}
	return g[c.Row][c.Col]
}

// Puzzle is the immutable part of a loaded board.
type Puzzle struct {
	Dim            int
	Regions        RegionGrid
	StarsPerRegion int
	Solution       SolutionGrid
	Marks          MarkGrid
}

// Display carries the global display preferences.
type Display struct {
	Monochrome      bool
	MarkIsX         bool
	HighlightErrors bool
	ViewingSolution bool
}

// Color is a "#rrggbb" or "#rrggbbaa" string.
type Color string

func (c Color) normalized() string {
	return strings.ToLower(strings.TrimSpace(string(c)))
}

// IsEmpty reports whether c names no color (an unassigned custom slot).
func (c Color) IsEmpty() bool { return c.normalized() == "" }

// Equal compares two colors ignoring case and surrounding space.
func (c Color) Equal(o Color) bool {
	return !c.IsEmpty() && c.normalized() == o.normalized()
}

// RGBA decodes the hex string. Malformed input decodes to black.
func (c Color) RGBA() color.Color {
	return gg.Hex(c.normalized()).Color()
}

// Palette is the color picker's view: fixed presets, user slots and the
// active color.
type Palette struct {
	Presets []Color
	Custom  []Color
	Current Color
}

// BorderPath is a user-drawn set of cells outlined in one color.
type BorderPath struct {
	ID    string
	Cells CoordSet
	Color Color
}

// Point is a position on the ink buffer, in pixels.
type Point struct{ X, Y float64 }

// InkStroke is one free-form pen stroke.
type InkStroke struct {
	ID     string
	Points []Point
	Color  Color
	Width  float64
}

// Coord addresses a cell.
type Coord struct{ Row, Col int }

// Side names one edge of a cell.
type Side uint8

const (
	SideTop Side = 1 << iota
	SideRight
	SideBottom
	SideLeft
)

// AllSides lists the sides in paint order.
var AllSides = [4]Side{SideTop, SideBottom, SideLeft, SideRight}

// Neighbor returns the orthogonal neighbor across side s.
func (c Coord) Neighbor(s Side) Coord {
	switch s {
	case SideTop:
		return Coord{c.Row - 1, c.Col}
	case SideBottom:
		return Coord{c.Row + 1, c.Col}
	case SideLeft:
		return Coord{c.Row, c.Col - 1}
	case SideRight:
		return Coord{c.Row, c.Col + 1}
	}
	return c
}

// Adjacent8 returns the eight surrounding coordinates, some possibly out of
// bounds.
func (c Coord) Adjacent8() [8]Coord {
	var out [8]Coord
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out[i] = Coord{c.Row + dr, c.Col + dc}
			i++
		}
	}
	return out
}

// CoordSet is a set of cells.
type CoordSet map[Coord]struct{}

func NewCoordSet(cs ...Coord) CoordSet {
	s := make(CoordSet, len(cs))
	for _, c := range cs {
		s.Add(c)
	}
	return s
}

func (s CoordSet) Add(c Coord) { s[c] = struct{}{} }

func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

func (s CoordSet) Len() int { return len(s) }

// Sorted returns the members in row-major order.
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
