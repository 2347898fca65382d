package render

import "StarBattle/internal/state"

// Violations returns every star that breaks a rule: a star in one of its
// eight neighbors, or more than quota stars in its row, column or region.
// The set is rebuilt from scratch on each call. When enabled is false the
// result is empty.
func Violations(marks state.MarkGrid, regions state.RegionGrid, quota int, enabled bool) state.CoordSet {
	bad := state.NewCoordSet()
	if !enabled {
		return bad
	}

	dim := len(marks)
	rowCount := make([]int, dim)
	colCount := make(map[int]int)
	regionCount := make(map[int]int)
	var stars []state.Coord

	for r := range marks {
		for c, m := range marks[r] {
			if m != state.MarkStar {
				continue
			}
			at := state.Coord{Row: r, Col: c}
			stars = append(stars, at)
			rowCount[r]++
			colCount[c]++
			if id, ok := regionAt(regions, at); ok {
				regionCount[id]++
			}
		}
	}

	for _, at := range stars {
		if rowCount[at.Row] > quota || colCount[at.Col] > quota {
			bad.Add(at)
			continue
		}
		if id, ok := regionAt(regions, at); ok && regionCount[id] > quota {
			bad.Add(at)
			continue
		}
		for _, n := range at.Adjacent8() {
			if marks.At(n) == state.MarkStar {
				bad.Add(at)
				break
			}
		}
	}
	return bad
}
