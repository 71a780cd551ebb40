package matching

import "strconv"

// Draggable kinds used in keys and draggable ids.
const (
	KindChoice      = "choices"
	KindPlaceholder = "placeholders"
)

// Item is a real choice that can sit in the pool or in a slot.
type Item struct {
	ID    string
	Label string
}

// Key returns the stable render key for the item.
func (i Item) Key() string {
	return KindChoice + ":" + i.ID
}

// SlotEntry occupies one response slot: either a real item or a placeholder.
// The zero value is not valid; use ItemEntry or PlaceholderEntry.
type SlotEntry struct {
	item        Item
	ordinal     int
	placeholder bool
}

// ItemEntry wraps a real item for a slot.
func ItemEntry(item Item) SlotEntry {
	return SlotEntry{item: item}
}

// PlaceholderEntry returns a placeholder with the given ordinal.
func PlaceholderEntry(ordinal int) SlotEntry {
	return SlotEntry{ordinal: ordinal, placeholder: true}
}

func (e SlotEntry) IsPlaceholder() bool { return e.placeholder }

// Item returns the occupying item, or false for a placeholder.
func (e SlotEntry) Item() (Item, bool) {
	if e.placeholder {
		return Item{}, false
	}
	return e.item, true
}

// Ordinal returns the placeholder ordinal, or false for an item.
func (e SlotEntry) Ordinal() (int, bool) {
	if !e.placeholder {
		return 0, false
	}
	return e.ordinal, true
}

func (e SlotEntry) Key() string {
	if e.placeholder {
		return KindPlaceholder + ":" + strconv.Itoa(e.ordinal)
	}
	return e.item.Key()
}

func (e SlotEntry) Label() string {
	if e.placeholder {
		return "placeholder " + strconv.Itoa(e.ordinal)
	}
	return e.item.Label
}

func (e SlotEntry) String() string {
	if e.placeholder {
		return "_" + strconv.Itoa(e.ordinal)
	}
	return e.item.ID
}
