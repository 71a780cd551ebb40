package matching

// ResolveDragEnd computes the store that results from a completed gesture.
//
// A cancelled gesture returns store itself. So does a drop back onto the
// source position. On error the input store is returned alongside the error
// and nothing has changed. The input store is never mutated.
func ResolveDragEnd(store *Store, g Gesture) (*Store, error) {
	if g.Cancelled() {
		return store, nil
	}
	dst := *g.Destination

	item, err := store.draggedItem(g.Source, g.ItemID)
	if err != nil {
		return store, err
	}

	switch {
	case g.Source.Region == RegionPool && dst.Region == RegionSlots:
		return store.answer(g.Source.Index, dst.Index, item)
	case g.Source.Region == RegionSlots && dst.Region == RegionPool:
		return store.unanswer(g.Source.Index, dst.Index, item)
	case g.Source.Region == RegionSlots && dst.Region == RegionSlots:
		return store.swapSlots(g.Source.Index, dst.Index)
	case g.Source.Region == RegionPool && dst.Region == RegionPool:
		return store.reorderPool(g.Source.Index, dst.Index, item)
	}
	return store, resolveErr(ErrMalformedID, "unknown region pair %s -> %s", g.Source.Region, dst.Region)
}

// draggedItem returns the item at src after checking it carries itemID.
func (s *Store) draggedItem(src Location, itemID string) (Item, error) {
	switch src.Region {
	case RegionPool:
		if src.Index < 0 || src.Index >= len(s.pool) {
			return Item{}, resolveErr(ErrOutOfBounds, "source %s, pool has %d items", src, len(s.pool))
		}
		it := s.pool[src.Index]
		if it.ID != itemID {
			return Item{}, resolveErr(ErrItemMismatch, "source %s holds %q, gesture carries %q", src, it.ID, itemID)
		}
		return it, nil
	case RegionSlots:
		if src.Index < 0 || src.Index >= len(s.slots) {
			return Item{}, resolveErr(ErrOutOfBounds, "source %s, %d slots", src, len(s.slots))
		}
		it, ok := s.slots[src.Index].Item()
		if !ok {
			return Item{}, resolveErr(ErrNotDraggable, "source %s", src)
		}
		if it.ID != itemID {
			return Item{}, resolveErr(ErrItemMismatch, "source %s holds %q, gesture carries %q", src, it.ID, itemID)
		}
		return it, nil
	}
	return Item{}, resolveErr(ErrMalformedID, "unknown source region %s", src.Region)
}

// answer moves pool[src] into slots[dst]. A displaced placeholder is dropped;
// a displaced item takes the vacated pool position.
func (s *Store) answer(src, dst int, item Item) (*Store, error) {
	if dst < 0 || dst >= len(s.slots) {
		return s, resolveErr(ErrOutOfBounds, "destination slots[%d], %d slots", dst, len(s.slots))
	}
	slots, displaced := occupySlot(s.slots, dst, item)

	var pool []Item
	if prev, ok := displaced.Item(); ok {
		pool = append([]Item(nil), s.pool...)
		pool[src] = prev
	} else {
		pool = removeItem(s.pool, src)
	}
	return s.with(pool, slots, s.nextOrdinal), nil
}

// unanswer moves slots[src] into the pool at dst and leaves a fresh
// placeholder behind. dst == len(pool) appends.
func (s *Store) unanswer(src, dst int, item Item) (*Store, error) {
	if dst < 0 || dst > len(s.pool) {
		return s, resolveErr(ErrOutOfBounds, "destination pool[%d], pool has %d items", dst, len(s.pool))
	}
	slots, next := s.vacateSlot(s.slots, src)
	pool := insertItem(s.pool, dst, item)
	return s.with(pool, slots, next), nil
}

// swapSlots exchanges the occupants of two slots.
func (s *Store) swapSlots(src, dst int) (*Store, error) {
	if dst < 0 || dst >= len(s.slots) {
		return s, resolveErr(ErrOutOfBounds, "destination slots[%d], %d slots", dst, len(s.slots))
	}
	if src == dst {
		return s, nil
	}
	slots := append([]SlotEntry(nil), s.slots...)
	slots[src], slots[dst] = slots[dst], slots[src]
	return s.with(append([]Item(nil), s.pool...), slots, s.nextOrdinal), nil
}

// reorderPool moves pool[src] to dst, where dst indexes the pool after the
// item has been lifted out.
func (s *Store) reorderPool(src, dst int, item Item) (*Store, error) {
	if dst < 0 || dst >= len(s.pool) {
		return s, resolveErr(ErrOutOfBounds, "destination pool[%d], pool has %d items", dst, len(s.pool))
	}
	if src == dst {
		return s, nil
	}
	pool := insertItem(removeItem(s.pool, src), dst, item)
	return s.with(pool, append([]SlotEntry(nil), s.slots...), s.nextOrdinal), nil
}
