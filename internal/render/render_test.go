package render

import (
	"testing"

	"StarBattle/internal/state"
)

func TestRegionHSL(t *testing.T) {
	tests := []struct {
		id   int
		want HSL
	}{
		{0, HSL{0, 100, 90}},
		{1, HSL{67, 65, 77}},
		{2, HSL{134, 100, 90}},
		{6, HSL{42, 100, 90}},
		{11, HSL{17, 65, 77}},
		{-1, HSL{293, 65, 77}},
	}
	for _, tt := range tests {
		if got := RegionHSL(tt.id); got != tt.want {
			t.Errorf("RegionHSL(%d) = %+v, want %+v", tt.id, got, tt.want)
		}
	}
}

func TestRegionHSLDeterministic(t *testing.T) {
	for id := 0; id < 50; id++ {
		got := RegionHSL(id)
		if got.H != (id*67)%360 {
			t.Errorf("id %d: hue %d", id, got.H)
		}
		if got != RegionHSL(id) {
			t.Errorf("id %d: not deterministic", id)
		}
	}
}

func TestBuildGridEmpty(t *testing.T) {
	if _, ok := BuildGrid(nil, nil, false); ok {
		t.Error("expected no layout for nil regions")
	}
	if _, ok := BuildGrid(state.RegionGrid{}, nil, false); ok {
		t.Error("expected no layout for empty regions")
	}
}

func TestBuildGridBorders(t *testing.T) {
	regions := state.RegionGrid{
		{0, 0, 1},
		{2, 0, 1},
		{2, 2, 1},
	}
	l, ok := BuildGrid(regions, nil, false)
	if !ok {
		t.Fatal("expected a layout")
	}

	tests := []struct {
		at   state.Coord
		want state.Side
	}{
		{state.Coord{0, 0}, state.SideBottom},
		{state.Coord{0, 1}, state.SideRight},
		{state.Coord{0, 2}, state.SideLeft},
		{state.Coord{1, 1}, state.SideLeft | state.SideRight | state.SideBottom},
		{state.Coord{2, 2}, state.SideLeft},
		{state.Coord{2, 0}, 0},
	}
	for _, tt := range tests {
		if got := l.Cells[tt.at.Row][tt.at.Col].Thick; got != tt.want {
			t.Errorf("cell %v: thick = %04b, want %04b", tt.at, got, tt.want)
		}
	}
}

// Every thick marker must point at an in-bounds neighbor of another region.
func TestBuildGridBorderProperty(t *testing.T) {
	regions := state.RegionGrid{
		{0, 0, 1, 1},
		{0, 2, 2, 1},
		{3, 2, 2, 1},
		{3, 3, 3, 1},
	}
	l, _ := BuildGrid(regions, nil, true)
	for r := range l.Cells {
		for c, cell := range l.Cells[r] {
			for _, s := range state.AllSides {
				n := cell.Neighbor(s)
				inBounds := n.Row >= 0 && n.Row < 4 && n.Col >= 0 && n.Col < 4
				want := inBounds && regions[n.Row][n.Col] != regions[r][c]
				if got := cell.Thick&s != 0; got != want {
					t.Errorf("cell (%d,%d) side %d: got %v, want %v", r, c, s, got, want)
				}
			}
		}
	}
}

func TestBuildGridColorsAndMarks(t *testing.T) {
	regions := state.RegionGrid{{0, 1}, {0, 1}}
	marks := state.MarkGrid{{state.MarkStar, state.MarkEmpty}, {state.MarkBlocked}}

	l, _ := BuildGrid(regions, marks, false)
	if l.Cells[0][0].Background == nil {
		t.Error("expected a background in color mode")
	}
	if l.Cells[0][0].Mark != state.MarkStar || l.Cells[1][0].Mark != state.MarkBlocked {
		t.Error("marks not carried into the layout")
	}
	if l.Cells[1][1].Mark != state.MarkEmpty {
		t.Error("missing mark must plan as empty")
	}

	mono, _ := BuildGrid(regions, marks, true)
	for r := range mono.Cells {
		for c := range mono.Cells[r] {
			if mono.Cells[r][c].Background != nil {
				t.Errorf("cell (%d,%d) has a background in monochrome mode", r, c)
			}
		}
	}
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		mark    state.Mark
		markIsX bool
		want    Glyph
	}{
		{state.MarkEmpty, true, GlyphNone},
		{state.MarkStar, false, GlyphStar},
		{state.MarkBlocked, true, GlyphCross},
		{state.MarkBlocked, false, GlyphDot},
		{state.Mark(9), true, GlyphNone},
	}
	for _, tt := range tests {
		if got := GlyphFor(tt.mark, tt.markIsX); got != tt.want {
			t.Errorf("GlyphFor(%d, %v) = %v, want %v", tt.mark, tt.markIsX, got, tt.want)
		}
	}
}

func grid(rows ...string) state.MarkGrid {
	g := make(state.MarkGrid, len(rows))
	for r, row := range rows {
		g[r] = make([]state.Mark, len(row))
		for c, ch := range row {
			switch ch {
			case '*':
				g[r][c] = state.MarkStar
			case 'x':
				g[r][c] = state.MarkBlocked
			}
		}
	}
	return g
}

func distinctRegions(dim int) state.RegionGrid {
	g := make(state.RegionGrid, dim)
	for r := range g {
		g[r] = make([]int, dim)
		for c := range g[r] {
			g[r][c] = r*dim + c
		}
	}
	return g
}

func TestViolations(t *testing.T) {
	tests := []struct {
		name    string
		marks   state.MarkGrid
		regions state.RegionGrid
		quota   int
		want    []state.Coord
	}{
		{
			name:    "valid placement",
			marks:   grid("*...", "..*.", "....", "...."),
			regions: distinctRegions(4),
			quota:   1,
		},
		{
			name:    "diagonal neighbors",
			marks:   grid("*...", ".*..", "....", "...*"),
			regions: distinctRegions(4),
			quota:   1,
			want:    []state.Coord{{0, 0}, {1, 1}},
		},
		{
			name:    "row over quota",
			marks:   grid("*.*.", "....", "....", "...."),
			regions: distinctRegions(4),
			quota:   1,
			want:    []state.Coord{{0, 0}, {0, 2}},
		},
		{
			name:    "row at quota two",
			marks:   grid("*.*.", "....", "....", "...."),
			regions: distinctRegions(4),
			quota:   2,
		},
		{
			name:    "column over quota",
			marks:   grid(".*..", "....", ".*..", "...."),
			regions: distinctRegions(4),
			quota:   1,
			want:    []state.Coord{{0, 1}, {2, 1}},
		},
		{
			name:  "region over quota",
			marks: grid("*.x.", "....", "..*.", "...."),
			regions: state.RegionGrid{
				{0, 0, 0, 1},
				{0, 0, 0, 1},
				{0, 0, 0, 1},
				{2, 2, 2, 1},
			},
			quota: 1,
			want:  []state.Coord{{0, 0}, {2, 2}},
		},
		{
			name:    "blocked marks never count",
			marks:   grid("xx..", "xx..", "....", "...."),
			regions: distinctRegions(4),
			quota:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Violations(tt.marks, tt.regions, tt.quota, true)
			want := state.NewCoordSet(tt.want...)
			if got.Len() != want.Len() {
				t.Fatalf("got %v, want %v", got.Sorted(), want.Sorted())
			}
			for c := range want {
				if !got.Has(c) {
					t.Errorf("missing %v in %v", c, got.Sorted())
				}
			}
		})
	}
}

func TestViolationsDisabled(t *testing.T) {
	marks := grid("**", "**")
	if got := Violations(marks, distinctRegions(2), 1, false); got.Len() != 0 {
		t.Errorf("expected no violations when disabled, got %v", got.Sorted())
	}
}

func TestViolationsIdempotent(t *testing.T) {
	marks := grid("*.*..", ".....", "*...*", ".*...", "....*")
	regions := distinctRegions(5)
	first := Violations(marks, regions, 1, true).Sorted()
	second := Violations(marks, regions, 1, true).Sorted()
	if len(first) != len(second) {
		t.Fatalf("first %v, second %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("first %v, second %v", first, second)
		}
	}
}

func TestExteriorEdgesSingleCell(t *testing.T) {
	edges := ExteriorEdges(state.NewCoordSet(state.Coord{1, 1}))
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(edges))
	}
	var sides state.Side
	for _, e := range edges {
		sides |= e.Side
	}
	if sides != state.SideTop|state.SideBottom|state.SideLeft|state.SideRight {
		t.Errorf("missing sides: %04b", sides)
	}
}

func TestExteriorEdgesDomino(t *testing.T) {
	a, b := state.Coord{0, 0}, state.Coord{0, 1}
	edges := ExteriorEdges(state.NewCoordSet(a, b))
	if len(edges) != 6 {
		t.Fatalf("expected 6 edges, got %d: %v", len(edges), edges)
	}
	for _, e := range edges {
		if e.Coord == a && e.Side == state.SideRight {
			t.Error("shared seam painted on left cell")
		}
		if e.Coord == b && e.Side == state.SideLeft {
			t.Error("shared seam painted on right cell")
		}
	}
}

func TestExteriorEdgesEmpty(t *testing.T) {
	if edges := ExteriorEdges(state.NewCoordSet()); len(edges) != 0 {
		t.Errorf("expected no edges, got %v", edges)
	}
}

func TestEdgeRect(t *testing.T) {
	at := state.Coord{Row: 1, Col: 2}
	tests := []struct {
		side state.Side
		want Rect
	}{
		{state.SideTop, Rect{100, 50, 50, 8}},
		{state.SideBottom, Rect{100, 92, 50, 8}},
		{state.SideLeft, Rect{100, 50, 8, 50}},
		{state.SideRight, Rect{142, 50, 8, 50}},
	}
	for _, tt := range tests {
		if got := EdgeRect(Edge{Coord: at, Side: tt.side}, 50, 50, 8); got != tt.want {
			t.Errorf("side %d: got %+v, want %+v", tt.side, got, tt.want)
		}
	}
}

func TestSwatches(t *testing.T) {
	p := state.Palette{
		Presets: []state.Color{"#000000", "#ff0000"},
		Custom:  []state.Color{"", "#00ff00", ""},
		Current: "#00FF00",
	}
	got := Swatches(p)
	if len(got) != 5 {
		t.Fatalf("expected 5 swatches, got %d", len(got))
	}

	selected := 0
	for _, s := range got {
		if s.Selected {
			selected++
		}
	}
	if selected != 1 || !got[3].Selected {
		t.Errorf("expected only the custom green swatch selected: %+v", got)
	}
	if !got[2].Empty || got[2].CustomIndex != 0 || !got[4].Empty || got[4].CustomIndex != 2 {
		t.Errorf("empty slots not tagged with their index: %+v", got)
	}
	if got[0].CustomIndex != -1 {
		t.Errorf("preset carries a custom index: %+v", got[0])
	}
}

func TestSwatchesNoMatch(t *testing.T) {
	p := state.Palette{
		Presets: []state.Color{"#000000"},
		Custom:  []state.Color{""},
		Current: "#123456",
	}
	for _, s := range Swatches(p) {
		if s.Selected {
			t.Errorf("unexpected selected swatch %+v", s)
		}
	}
}
