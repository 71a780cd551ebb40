package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dylan/matchdrag/matching"
	"github.com/dylan/matchdrag/tui/icons"
	"github.com/dylan/matchdrag/tui/shared"
)

func (m Model) View() string {
	s := m.Store()
	hints := s.Hints()
	slotsW := m.slotsWidth()
	poolW := m.width - slotsW

	var b strings.Builder

	slotsHeader, poolHeader := shared.HeaderStyle, shared.HeaderStyle
	if m.drag != nil {
		// The column the gesture did not start in is the drop target.
		if m.drag.source.Region == matching.RegionPool {
			slotsHeader = shared.HeaderActiveStyle
		} else {
			poolHeader = shared.HeaderActiveStyle
		}
	}
	b.WriteString(pad(slotsHeader.Render("Responses"), slotsW))
	b.WriteString(pad(poolHeader.Render("Choices"), poolW))
	b.WriteString("\n\n")

	rows := max(len(hints.Slots), len(hints.Pool)+1)
	for i := 0; i < rows; i++ {
		left := ""
		if i < len(hints.Slots) {
			left = m.renderSlotRow(i, hints.Slots[i], slotsW)
		}
		right := ""
		switch {
		case i < len(hints.Pool):
			right = m.renderPoolRow(i, hints.Pool[i])
		case i == len(hints.Pool) && m.drag != nil && m.drag.source.Region == matching.RegionSlots:
			right = m.highlight(matching.Location{Region: matching.RegionPool, Index: i},
				shared.DropZoneStyle.Render(icons.Prefix(icons.Drop())+"drop here"))
		}
		b.WriteString(pad(left, slotsW))
		b.WriteString(pad(right, poolW))
		if i < rows-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderSlotRow(i int, h matching.Hint, width int) string {
	promptW := width / 2
	prompt := pad(shared.PromptStyle.Render(truncate(m.prompt, promptW-1)), promptW)

	loc := matching.Location{Region: matching.RegionSlots, Index: i}
	var cell string
	switch {
	case m.isDragSource(loc):
		cell = shared.DraggingStyle.Render(icons.Prefix(icons.Dragging()) + h.Label)
	case h.DragDisabled:
		cell = shared.PlaceholderStyle.Render(icons.Prefix(icons.Placeholder()) + "—")
	default:
		cell = shared.AnsweredStyle.Render(icons.Prefix(icons.Answered()) + h.Label)
	}
	return prompt + m.highlight(loc, cell)
}

func (m Model) renderPoolRow(i int, h matching.Hint) string {
	loc := matching.Location{Region: matching.RegionPool, Index: i}
	var cell string
	if m.isDragSource(loc) {
		cell = shared.DraggingStyle.Render(icons.Prefix(icons.Dragging()) + h.Label)
	} else {
		cell = shared.ChoiceStyle.Render(icons.Prefix(icons.Choice()) + h.Label)
	}
	return m.highlight(loc, cell)
}

func (m Model) isDragSource(loc matching.Location) bool {
	return m.drag != nil && m.drag.source == loc
}

// highlight marks the keyboard cursor, or the hovered cell during a mouse drag.
func (m Model) highlight(loc matching.Location, cell string) string {
	if m.hover != nil {
		if *m.hover == loc {
			return shared.CursorStyle.Render(cell)
		}
		return cell
	}
	if m.cursor == loc {
		return shared.CursorStyle.Render(cell)
	}
	return cell
}

func pad(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(w).MaxWidth(w).Render(s)
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}
