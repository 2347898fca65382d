package state

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidPuzzle is wrapped by every puzzle validation failure.
var ErrInvalidPuzzle = errors.New("invalid puzzle")

// puzzleFile is the on-disk TOML layout.
type puzzleFile struct {
	Stars    int     `toml:"stars"`
	Regions  [][]int `toml:"regions"`
	Solution [][]int `toml:"solution"`
	Marks    [][]int `toml:"marks"`
}

// LoadPuzzle reads a puzzle from a TOML file.
func LoadPuzzle(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle %s: %w", path, err)
	}
	p, err := ParsePuzzle(data)
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", path, err)
	}
	return p, nil
}

// ParsePuzzle decodes and validates a TOML puzzle document.
func ParsePuzzle(data []byte) (*Puzzle, error) {
	var f puzzleFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPuzzle, err)
	}

	dim := len(f.Regions)
	if dim == 0 {
		return nil, fmt.Errorf("%w: no regions", ErrInvalidPuzzle)
	}
	for r, row := range f.Regions {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: region row %d has %d cells, want %d", ErrInvalidPuzzle, r, len(row), dim)
		}
	}
	if f.Stars < 1 {
		return nil, fmt.Errorf("%w: stars must be at least 1, got %d", ErrInvalidPuzzle, f.Stars)
	}

	p := &Puzzle{
		Dim:            dim,
		Regions:        RegionGrid(f.Regions),
		StarsPerRegion: f.Stars,
		Marks:          EmptyMarks(dim),
	}

	if f.Solution != nil {
		if err := checkSquare("solution", f.Solution, dim); err != nil {
			return nil, err
		}
		p.Solution = make(SolutionGrid, dim)
		for r, row := range f.Solution {
			p.Solution[r] = make([]bool, dim)
			for c, v := range row {
				p.Solution[r][c] = v == 1
			}
		}
	}

	if f.Marks != nil {
		if err := checkSquare("marks", f.Marks, dim); err != nil {
			return nil, err
		}
		for r, row := range f.Marks {
			for c, v := range row {
				if v < int(MarkEmpty) || v > int(MarkBlocked) {
					return nil, fmt.Errorf("%w: mark %d at (%d,%d)", ErrInvalidPuzzle, v, r, c)
				}
				p.Marks[r][c] = Mark(v)
			}
		}
	}
	return p, nil
}

func checkSquare(name string, g [][]int, dim int) error {
	if len(g) != dim {
		return fmt.Errorf("%w: %s has %d rows, want %d", ErrInvalidPuzzle, name, len(g), dim)
	}
	for r, row := range g {
		if len(row) != dim {
			return fmt.Errorf("%w: %s row %d has %d cells, want %d", ErrInvalidPuzzle, name, r, len(row), dim)
		}
	}
	return nil
}

// EmptyMarks returns a dim×dim grid of MarkEmpty.
func EmptyMarks(dim int) MarkGrid {
	g := make(MarkGrid, dim)
	for r := range g {
		g[r] = make([]Mark, dim)
	}
	return g
}

// SamplePuzzle is a built-in one-star 5×5 board.
func SamplePuzzle() *Puzzle {
	regions := RegionGrid{
		{0, 1, 1, 1, 2},
		{0, 0, 1, 2, 2},
		{0, 3, 2, 2, 2},
		{3, 3, 3, 4, 4},
		{3, 3, 4, 4, 4},
	}
	sol := SolutionGrid{
		{false, false, true, false, false},
		{true, false, false, false, false},
		{false, false, false, true, false},
		{false, true, false, false, false},
		{false, false, false, false, true},
	}
	return &Puzzle{
		Dim:            5,
		Regions:        regions,
		StarsPerRegion: 1,
		Solution:       sol,
		Marks:          EmptyMarks(5),
	}
}
