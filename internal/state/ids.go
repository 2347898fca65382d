package state

import (
	"github.com/google/uuid"
)

// NewBorderPath creates a border path with a fresh ID.
func NewBorderPath(col Color, cells ...Coord) BorderPath {
	return BorderPath{
		ID:    uuid.NewString(),
		Cells: NewCoordSet(cells...),
		Color: col,
	}
}

// NewInkStroke creates a stroke with a fresh ID.
func NewInkStroke(col Color, width float64, points ...Point) InkStroke {
	return InkStroke{
		ID:     uuid.NewString(),
		Points: points,
		Color:  col,
		Width:  width,
	}
}
