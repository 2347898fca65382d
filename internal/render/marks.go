package render

import "StarBattle/internal/state"

// Glyph is the symbol drawn for a mark.
type Glyph uint8

const (
	GlyphNone Glyph = iota
	GlyphStar
	GlyphCross
	GlyphDot
)

func (g Glyph) String() string {
	switch g {
	case GlyphStar:
		return "star"
	case GlyphCross:
		return "cross"
	case GlyphDot:
		return "dot"
	default:
		return "none"
	}
}

// GlyphFor maps a mark to its symbol. Blocked cells follow the X/dot
// preference; unknown marks draw nothing.
func GlyphFor(m state.Mark, markIsX bool) Glyph {
	switch m {
	case state.MarkStar:
		return GlyphStar
	case state.MarkBlocked:
		if markIsX {
			return GlyphCross
		}
		return GlyphDot
	default:
		return GlyphNone
	}
}
