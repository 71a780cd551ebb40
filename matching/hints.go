package matching

// Hint is what a renderer needs for one position.
type Hint struct {
	Key          string
	Label        string
	DragDisabled bool
}

// Hints covers every pool and slot position in display order.
type Hints struct {
	Pool  []Hint
	Slots []Hint
}

// Hints derives render hints from the store. Placeholders, and only
// placeholders, are drag-disabled.
func (s *Store) Hints() Hints {
	h := Hints{
		Pool:  make([]Hint, len(s.pool)),
		Slots: make([]Hint, len(s.slots)),
	}
	for i, it := range s.pool {
		h.Pool[i] = Hint{Key: it.Key(), Label: it.Label}
	}
	for i, e := range s.slots {
		h.Slots[i] = Hint{Key: e.Key(), Label: e.Label(), DragDisabled: e.IsPlaceholder()}
	}
	return h
}
