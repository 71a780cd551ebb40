package icons

var (
	useIcons     bool
	useNerdFonts bool
)

// SetIcons enables unicode glyphs in front of cells.
func SetIcons(enabled bool) { useIcons = enabled }

// SetNerdFonts enables Nerd Font icons. Implies icons.
func SetNerdFonts(enabled bool) { useNerdFonts = enabled }

type glyphs struct {
	choice, answered, placeholder, drop, dragging string
}

var (
	plain   = glyphs{choice: "", answered: "", placeholder: "", drop: "+", dragging: ">"}
	unicode = glyphs{choice: "⠿", answered: "✓", placeholder: "○", drop: "⊕", dragging: "▸"}
	nerd    = glyphs{
		choice:      "\uf0c9", // bars
		answered:    "\uf00c", // check
		placeholder: "\uf10c", // circle outline
		drop:        "\uf067", // plus
		dragging:    "\uf0da", // caret right
	}
)

func current() glyphs {
	switch {
	case useNerdFonts:
		return nerd
	case useIcons:
		return unicode
	default:
		return plain
	}
}

// Choice is drawn before a draggable pool item.
func Choice() string { return current().choice }

// Answered is drawn before an item sitting in a slot.
func Answered() string { return current().answered }

// Placeholder is drawn before an empty slot.
func Placeholder() string { return current().placeholder }

// Drop marks the append zone at the end of the pool.
func Drop() string { return current().drop }

// Dragging marks the cell a gesture started from.
func Dragging() string { return current().dragging }

// Prefix returns glyph followed by a space, or nothing for an empty glyph.
func Prefix(glyph string) string {
	if glyph == "" {
		return ""
	}
	return glyph + " "
}
