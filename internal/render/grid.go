// Package render plans what the board should look like. Every function is a
// pure transformation of the state it is handed; painting happens in the ui,
// overlay and export packages.
package render

import (
	"image/color"

	"github.com/gogpu/gg"

	"StarBattle/internal/state"
)

// hueStep spreads consecutive region ids around the color wheel.
const hueStep = 67

// HSL is a color in hue degrees and saturation/lightness percent.
type HSL struct {
	H, S, L int
}

// RegionHSL returns the procedural color for a region id. Odd ids get the
// muted preset, even ids the bright one.
func RegionHSL(regionID int) HSL {
	hue := (regionID * hueStep) % 360
	if hue < 0 {
		hue += 360
	}
	if regionID%2 != 0 {
		return HSL{H: hue, S: 65, L: 77}
	}
	return HSL{H: hue, S: 100, L: 90}
}

// RGBA converts to a display color.
func (h HSL) RGBA() color.Color {
	return gg.HSL(float64(h.H), float64(h.S)/100, float64(h.L)/100).Color()
}

// RegionColor is RegionHSL(regionID).RGBA().
func RegionColor(regionID int) color.Color {
	return RegionHSL(regionID).RGBA()
}

// Cell is the plan for one grid cell.
type Cell struct {
	state.Coord
	Region int
	// Background is nil in monochrome mode.
	Background color.Color
	// Thick holds the sides that separate this cell from another region.
	Thick state.Side
	Mark  state.Mark
}

// Layout is the plan for a whole board, indexed [row][col].
type Layout struct {
	Dim   int
	Cells [][]Cell
}

// BuildGrid plans the board. It reports false when there is nothing to
// render.
func BuildGrid(regions state.RegionGrid, marks state.MarkGrid, monochrome bool) (Layout, bool) {
	dim := len(regions)
	if dim == 0 {
		return Layout{}, false
	}

	l := Layout{Dim: dim, Cells: make([][]Cell, dim)}
	for r := 0; r < dim; r++ {
		l.Cells[r] = make([]Cell, len(regions[r]))
		for c := range regions[r] {
			at := state.Coord{Row: r, Col: c}
			id := regions[r][c]
			cell := Cell{
				Coord:  at,
				Region: id,
				Thick:  ThickSides(regions, at),
				Mark:   marks.At(at),
			}
			if !monochrome {
				cell.Background = RegionColor(id)
			}
			l.Cells[r][c] = cell
		}
	}
	return l, true
}

// ThickSides returns the sides of at whose in-bounds neighbor belongs to a
// different region.
func ThickSides(regions state.RegionGrid, at state.Coord) state.Side {
	id, ok := regionAt(regions, at)
	if !ok {
		return 0
	}
	var sides state.Side
	for _, s := range state.AllSides {
		n, ok := regionAt(regions, at.Neighbor(s))
		if ok && n != id {
			sides |= s
		}
	}
	return sides
}

func regionAt(regions state.RegionGrid, c state.Coord) (int, bool) {
	if c.Row < 0 || c.Row >= len(regions) || c.Col < 0 || c.Col >= len(regions[c.Row]) {
		return 0, false
	}
	return regions[c.Row][c.Col], true
}
