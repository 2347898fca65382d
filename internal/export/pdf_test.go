package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"StarBattle/internal/glyph"
	"StarBattle/internal/state"
)

func sampleView() PrintView {
	pz := state.SamplePuzzle()
	marks := state.EmptyMarks(pz.Dim)
	marks[0][0] = state.MarkStar
	marks[0][1] = state.MarkStar
	marks[2][2] = state.MarkBlocked
	return PrintView{
		Regions: pz.Regions,
		Marks:   marks,
		Quota:   pz.StarsPerRegion,
		Display: state.Display{MarkIsX: true, HighlightErrors: true},
		Style:   glyph.DefaultStyle(),
	}
}

func TestRenderWritesPDF(t *testing.T) {
	for _, mono := range []bool{false, true} {
		v := sampleView()
		v.Display.Monochrome = mono
		var buf bytes.Buffer
		if err := Render(&buf, v); err != nil {
			t.Fatalf("Render(monochrome=%v) error: %v", mono, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
			t.Errorf("output is not a PDF: %q", buf.Bytes()[:8])
		}
	}
}

func TestRenderEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, PrintView{})
	if !errors.Is(err, ErrEmptyBoard) {
		t.Fatalf("expected ErrEmptyBoard, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("wrote output for an empty board")
	}
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	if err := ExportPDF(path, sampleView()); err != nil {
		t.Fatalf("ExportPDF() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("exported file is not a PDF")
	}
}

func TestExportPDFBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "board.pdf")
	if err := ExportPDF(path, sampleView()); err == nil {
		t.Error("expected an error for an unwritable path")
	}
}
