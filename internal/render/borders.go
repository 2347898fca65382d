package render

import "StarBattle/internal/state"

// Edge is one exterior side of a cell in a border path.
type Edge struct {
	state.Coord
	Side state.Side
}

// ExteriorEdges returns the outline of a cell set: every side of a member
// whose neighbor is not a member. Seams between two members are omitted.
// Edges come out in row-major cell order, sides in top, bottom, left, right
// order.
func ExteriorEdges(cells state.CoordSet) []Edge {
	var out []Edge
	for _, c := range cells.Sorted() {
		for _, s := range state.AllSides {
			if !cells.Has(c.Neighbor(s)) {
				out = append(out, Edge{Coord: c, Side: s})
			}
		}
	}
	return out
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// EdgeRect returns the strip to fill for edge e on a board with the given
// cell size and stroke thickness.
func EdgeRect(e Edge, cellW, cellH, thickness float64) Rect {
	x := float64(e.Col) * cellW
	y := float64(e.Row) * cellH
	switch e.Side {
	case state.SideTop:
		return Rect{x, y, cellW, thickness}
	case state.SideBottom:
		return Rect{x, y + cellH - thickness, cellW, thickness}
	case state.SideLeft:
		return Rect{x, y, thickness, cellH}
	default:
		return Rect{x + cellW - thickness, y, thickness, cellH}
	}
}
