package ui

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"

	"StarBattle/internal/export"
	"StarBattle/internal/glyph"
	"StarBattle/internal/logging"
	"StarBattle/internal/overlay"
	"StarBattle/internal/state"
)

type tool int

const (
	toolMark tool = iota
	toolInk
	toolBorder
)

const defaultInkWidth = 4.0

// session owns the puzzle and display state behind the window and pushes
// every change into the board.
type session struct {
	board  *Board
	glyphs glyph.Style
	logger *slog.Logger

	puzzle  *state.Puzzle
	display state.Display
	palette state.Palette

	borders  []state.BorderPath
	pending  state.BorderPath
	tool     tool
	inkWidth float64
	lastInk  *state.Point
}

func newSession(b *Board, pz *state.Puzzle, d state.Display, p state.Palette, g glyph.Style, logger *slog.Logger) *session {
	if logger == nil {
		logger = logging.Nop()
	}
	s := &session{
		board:    b,
		glyphs:   g,
		logger:   logger,
		puzzle:   pz,
		display:  d,
		palette:  p,
		inkWidth: defaultInkWidth,
	}
	b.OnCellTapped = s.cellTapped
	b.OnDrag = s.drag
	b.OnDragEnd = s.dragEnd
	b.picker.OnSelect = s.selectColor
	return s
}

func (s *session) scene() overlay.Scene {
	return overlay.Scene{
		Dim:             s.puzzle.Dim,
		Borders:         s.borders,
		Pending:         s.pending,
		Solution:        s.puzzle.Solution,
		ViewingSolution: s.display.ViewingSolution,
	}
}

func (s *session) renderAll() {
	s.board.RenderGrid(GridView{
		Regions:    s.puzzle.Regions,
		Marks:      s.puzzle.Marks,
		Monochrome: s.display.Monochrome,
		MarkIsX:    s.display.MarkIsX,
	}, s.scene())
	s.checkViolations()
	s.board.RenderColorPicker(s.palette)
}

func (s *session) checkViolations() {
	s.board.UpdateViolations(s.puzzle.Marks, s.puzzle.Regions, s.puzzle.StarsPerRegion, s.display.HighlightErrors)
}

func (s *session) setMonochrome(on bool) {
	s.display.Monochrome = on
	s.renderAll()
}

func (s *session) setMarkIsX(on bool) {
	s.display.MarkIsX = on
	s.board.RenderAllMarks(s.puzzle.Marks, on)
}

func (s *session) setHighlightErrors(on bool) {
	s.display.HighlightErrors = on
	s.checkViolations()
}

func (s *session) setViewingSolution(on bool) {
	s.display.ViewingSolution = on
	s.board.RedrawOverlays(s.scene())
}

// cellTapped cycles empty → star → blocked → empty.
func (s *session) cellTapped(at state.Coord) {
	if s.tool != toolMark {
		return
	}
	if at.Row >= len(s.puzzle.Marks) || at.Col >= len(s.puzzle.Marks[at.Row]) {
		return
	}
	m := &s.puzzle.Marks[at.Row][at.Col]
	switch *m {
	case state.MarkEmpty:
		*m = state.MarkStar
	case state.MarkStar:
		*m = state.MarkBlocked
	default:
		*m = state.MarkEmpty
	}
	s.board.RenderAllMarks(s.puzzle.Marks, s.display.MarkIsX)
	s.checkViolations()
}

func (s *session) drag(p state.Point, at state.Coord, inGrid bool) {
	switch s.tool {
	case toolInk:
		from := p
		if s.lastInk != nil {
			from = *s.lastInk
		}
		s.board.Ink(state.NewInkStroke(s.palette.Current, s.inkWidth, from, p))
		s.lastInk = &p
	case toolBorder:
		if !inGrid {
			return
		}
		if s.pending.Cells == nil {
			s.pending = state.NewBorderPath(s.palette.Current)
		}
		if s.pending.Cells.Has(at) {
			return
		}
		s.pending.Cells.Add(at)
		s.board.RedrawOverlays(s.scene())
	}
}

func (s *session) dragEnd() {
	s.lastInk = nil
	if s.pending.Cells.Len() == 0 {
		return
	}
	s.borders = append(s.borders, s.pending)
	s.logger.Debug("border added", "id", s.pending.ID, "cells", s.pending.Cells.Len())
	s.pending = state.BorderPath{}
	s.board.RedrawOverlays(s.scene())
}

func (s *session) clearInk() {
	s.board.ClearInk()
}

func (s *session) clearBorders() {
	s.borders = nil
	s.pending = state.BorderPath{}
	s.board.RedrawOverlays(s.scene())
}

func (s *session) selectColor(c state.Color) {
	s.palette.Current = c
	s.board.RenderColorPicker(s.palette)
}

// assignCustom stores c in custom slot i and selects it.
func (s *session) assignCustom(i int, c color.Color) {
	if i < 0 || i >= len(s.palette.Custom) {
		return
	}
	hex := toHex(c)
	s.palette.Custom[i] = hex
	s.selectColor(hex)
}

func (s *session) printView() export.PrintView {
	return export.PrintView{
		Regions: s.puzzle.Regions,
		Marks:   s.puzzle.Marks,
		Quota:   s.puzzle.StarsPerRegion,
		Display: s.display,
		Style:   s.glyphs,
	}
}

func (s *session) exportTo(w io.Writer) error {
	return export.Render(w, s.printView())
}

func toHex(c color.Color) state.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return state.Color(fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B))
	}
	return state.Color(fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A))
}
