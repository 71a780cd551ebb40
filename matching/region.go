package matching

import (
	"strconv"
	"strings"
)

// Region is one of the two drop targets.
type Region int

const (
	RegionPool Region = iota
	RegionSlots
)

func (r Region) String() string {
	switch r {
	case RegionPool:
		return "pool"
	case RegionSlots:
		return "slots"
	default:
		return "region(" + strconv.Itoa(int(r)) + ")"
	}
}

var regionNames = map[string]Region{
	"pool":      RegionPool,
	"choices":   RegionPool,
	"slots":     RegionSlots,
	"responses": RegionSlots,
}

// DroppableID formats the host droppable id for a region.
func DroppableID(r Region, widgetID string) string {
	return r.String() + ":" + widgetID
}

// ParseDroppableID extracts the region from a "region:identifier" id.
func ParseDroppableID(id string) (Region, error) {
	prefix, _, ok := strings.Cut(id, ":")
	if !ok {
		return 0, parseErr(ErrMalformedID, "droppable %q has no region prefix", id)
	}
	r, known := regionNames[prefix]
	if !known {
		return 0, parseErr(ErrMalformedID, "droppable %q names unknown region %q", id, prefix)
	}
	return r, nil
}

// DraggableRef is a parsed "kind:id" draggable identifier.
type DraggableRef struct {
	Kind string
	ID   string
}

func (d DraggableRef) IsPlaceholder() bool { return d.Kind == KindPlaceholder }

// ParseDraggableID splits a draggable id into kind and identity.
func ParseDraggableID(id string) (DraggableRef, error) {
	kind, rest, ok := strings.Cut(id, ":")
	if !ok || rest == "" {
		return DraggableRef{}, parseErr(ErrMalformedID, "draggable %q is not kind:id", id)
	}
	switch kind {
	case KindChoice:
	case KindPlaceholder:
		if _, err := strconv.Atoi(rest); err != nil {
			return DraggableRef{}, parseErr(ErrMalformedID, "placeholder %q has non-numeric ordinal", id)
		}
	default:
		return DraggableRef{}, parseErr(ErrMalformedID, "draggable %q has unknown kind %q", id, kind)
	}
	return DraggableRef{Kind: kind, ID: rest}, nil
}
