package matching

import "fmt"

// RawLocation is a position as reported by the host gesture library.
type RawLocation struct {
	DroppableID string `yaml:"droppable"`
	Index       int    `yaml:"index"`
}

// DragStartEvent is delivered when a gesture begins.
type DragStartEvent struct {
	Source RawLocation `yaml:"source"`
}

// DragEndEvent is delivered when a gesture finishes. A nil Destination means
// the item was dropped outside every droppable.
type DragEndEvent struct {
	DraggableID string       `yaml:"draggable"`
	Source      RawLocation  `yaml:"source"`
	Destination *RawLocation `yaml:"destination,omitempty"`
}

// Location is a parsed position.
type Location struct {
	Region Region
	Index  int
}

func (l Location) String() string {
	return fmt.Sprintf("%s[%d]", l.Region, l.Index)
}

// Gesture is a completed drag, parsed once at the boundary.
type Gesture struct {
	ItemID      string
	Source      Location
	Destination *Location
}

// Cancelled reports whether the gesture ended outside any droppable.
func (g Gesture) Cancelled() bool { return g.Destination == nil }

// ParseDragEnd converts a host drag-end event into a Gesture.
func ParseDragEnd(ev DragEndEvent) (Gesture, error) {
	ref, err := ParseDraggableID(ev.DraggableID)
	if err != nil {
		return Gesture{}, err
	}
	if ref.IsPlaceholder() {
		return Gesture{}, parseErr(ErrNotDraggable, "draggable %q", ev.DraggableID)
	}
	src, err := ParseDroppableID(ev.Source.DroppableID)
	if err != nil {
		return Gesture{}, err
	}
	g := Gesture{ItemID: ref.ID, Source: Location{Region: src, Index: ev.Source.Index}}
	if ev.Destination != nil {
		dst, err := ParseDroppableID(ev.Destination.DroppableID)
		if err != nil {
			return Gesture{}, err
		}
		g.Destination = &Location{Region: dst, Index: ev.Destination.Index}
	}
	return g, nil
}
