package render

import "StarBattle/internal/state"

// Swatch is one slot in the color picker.
type Swatch struct {
	Color state.Color
	// Empty marks an unassigned custom slot.
	Empty bool
	// CustomIndex is the slot index for custom swatches, -1 for presets.
	CustomIndex int
	Selected    bool
}

// Swatches lists presets then custom slots, flagging the ones equal to the
// current color.
func Swatches(p state.Palette) []Swatch {
	out := make([]Swatch, 0, len(p.Presets)+len(p.Custom))
	for _, col := range p.Presets {
		out = append(out, Swatch{
			Color:       col,
			CustomIndex: -1,
			Selected:    col.Equal(p.Current),
		})
	}
	for i, col := range p.Custom {
		if col.IsEmpty() {
			out = append(out, Swatch{Empty: true, CustomIndex: i})
			continue
		}
		out = append(out, Swatch{
			Color:       col,
			CustomIndex: i,
			Selected:    col.Equal(p.Current),
		})
	}
	return out
}
