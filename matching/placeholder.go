package matching

// mintPlaceholder issues a placeholder with the next unused ordinal and
// returns the advanced counter. Ordinals are never handed out twice for the
// lifetime of a store lineage, so coexisting placeholders keep distinct keys.
func (s *Store) mintPlaceholder() (SlotEntry, int) {
	return PlaceholderEntry(s.nextOrdinal), s.nextOrdinal + 1
}

// vacateSlot returns a copy of slots with position i replaced by a fresh
// placeholder, plus the advanced counter.
func (s *Store) vacateSlot(slots []SlotEntry, i int) ([]SlotEntry, int) {
	out := append([]SlotEntry(nil), slots...)
	ph, next := s.mintPlaceholder()
	out[i] = ph
	return out, next
}

// occupySlot returns a copy of slots with item placed at i and the entry it
// displaced.
func occupySlot(slots []SlotEntry, i int, item Item) ([]SlotEntry, SlotEntry) {
	out := append([]SlotEntry(nil), slots...)
	displaced := out[i]
	out[i] = ItemEntry(item)
	return out, displaced
}

func removeItem(items []Item, i int) []Item {
	out := make([]Item, 0, len(items))
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func insertItem(items []Item, i int, item Item) []Item {
	out := make([]Item, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, item)
	return append(out, items[i:]...)
}
