// Package matching holds the interaction core of the matching exercise: the
// pool of choices, the fixed response slots, and the drag-transfer rules that
// keep both consistent after every gesture.
//
// A Store is immutable once built. Every transform returns a new Store and
// leaves its input untouched, so a renderer holding a Store never observes a
// half-applied gesture.
package matching

import (
	"fmt"
	"strconv"
	"strings"
)

// Store is one snapshot of the pool and the response slots.
type Store struct {
	pool        []Item
	slots       []SlotEntry
	capacity    int
	nextOrdinal int
}

type options struct {
	shuffleSeed string
}

// Option configures New.
type Option func(*options)

// WithShuffleSeed shuffles the initial pool deterministically from seed.
// An empty seed keeps index order.
func WithShuffleSeed(seed string) Option {
	return func(o *options) { o.shuffleSeed = seed }
}

// New builds the initial store.
//
// The pool gets choiceCount items with ids "0".."choiceCount-1". The first
// slotCount-placeholderCount slots are seeded with real items whose ids
// continue after the pool's; the remaining slots hold placeholders with
// ordinals 0..placeholderCount-1.
func New(choiceCount, slotCount, placeholderCount int, opts ...Option) (*Store, error) {
	if choiceCount < 0 || slotCount < 0 || placeholderCount < 0 {
		return nil, fmt.Errorf("%w: counts must not be negative (choices=%d slots=%d placeholders=%d)",
			ErrConfig, choiceCount, slotCount, placeholderCount)
	}
	if placeholderCount > slotCount {
		return nil, fmt.Errorf("%w: %d placeholders do not fit in %d slots",
			ErrConfig, placeholderCount, slotCount)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	pool := seedItems(choiceCount, 0)
	if o.shuffleSeed != "" {
		pool = Shuffle(pool, o.shuffleSeed)
	}

	seeded := seedItems(slotCount-placeholderCount, choiceCount)
	slots := make([]SlotEntry, 0, slotCount)
	for _, it := range seeded {
		slots = append(slots, ItemEntry(it))
	}

	s := &Store{pool: pool, capacity: slotCount}
	for len(slots) < slotCount {
		var ph SlotEntry
		ph, s.nextOrdinal = s.mintPlaceholder()
		slots = append(slots, ph)
	}
	s.slots = slots
	return s, nil
}

func seedItems(count, offset int) []Item {
	items := make([]Item, count)
	for k := range items {
		id := strconv.Itoa(k + offset)
		items[k] = Item{ID: id, Label: "item " + id}
	}
	return items
}

// Pool returns a copy of the pool in display order.
func (s *Store) Pool() []Item {
	return append([]Item(nil), s.pool...)
}

// Slots returns a copy of the slot entries.
func (s *Store) Slots() []SlotEntry {
	return append([]SlotEntry(nil), s.slots...)
}

// PoolLen returns the number of items in the pool.
func (s *Store) PoolLen() int { return len(s.pool) }

// Capacity returns N, the fixed number of response slots.
func (s *Store) Capacity() int { return s.capacity }

// NextOrdinal returns the ordinal the next placeholder will get.
func (s *Store) NextOrdinal() int { return s.nextOrdinal }

// AnsweredCount returns how many slots hold a real item.
func (s *Store) AnsweredCount() int {
	n := 0
	for _, e := range s.slots {
		if !e.IsPlaceholder() {
			n++
		}
	}
	return n
}

// Answers maps slot index to the id of the item occupying it.
// Placeholder slots are absent.
func (s *Store) Answers() map[int]string {
	out := make(map[int]string, len(s.slots))
	for i, e := range s.slots {
		if it, ok := e.Item(); ok {
			out[i] = it.ID
		}
	}
	return out
}

// Apply returns a new store holding copies of nextPool and nextSlots.
// The placeholder counter carries over and is advanced past any ordinal
// already present in nextSlots.
func (s *Store) Apply(nextPool []Item, nextSlots []SlotEntry) *Store {
	next := s.with(append([]Item(nil), nextPool...), append([]SlotEntry(nil), nextSlots...), s.nextOrdinal)
	for _, e := range next.slots {
		if ord, ok := e.Ordinal(); ok && ord >= next.nextOrdinal {
			next.nextOrdinal = ord + 1
		}
	}
	return next
}

// with builds the successor store. Callers hand over ownership of pool and
// slots.
func (s *Store) with(pool []Item, slots []SlotEntry, nextOrdinal int) *Store {
	return &Store{
		pool:        pool,
		slots:       slots,
		capacity:    s.capacity,
		nextOrdinal: nextOrdinal,
	}
}

// Validate checks the store invariants: len(slots) == N, every item id
// appears exactly once across pool and slots, and placeholder ordinals are
// distinct and already issued.
func (s *Store) Validate() error {
	var violations []string

	if len(s.slots) != s.capacity {
		violations = append(violations, fmt.Sprintf("slot count %d, want %d", len(s.slots), s.capacity))
	}

	seen := make(map[string]string, len(s.pool)+len(s.slots))
	note := func(id, where string) {
		if prev, dup := seen[id]; dup {
			violations = append(violations, fmt.Sprintf("item %q in %s and %s", id, prev, where))
			return
		}
		seen[id] = where
	}
	for i, it := range s.pool {
		note(it.ID, fmt.Sprintf("pool[%d]", i))
	}

	ordinals := make(map[int]bool)
	for i, e := range s.slots {
		if it, ok := e.Item(); ok {
			note(it.ID, fmt.Sprintf("slots[%d]", i))
			continue
		}
		ord, _ := e.Ordinal()
		if ordinals[ord] {
			violations = append(violations, fmt.Sprintf("placeholder ordinal %d repeated", ord))
		}
		if ord >= s.nextOrdinal {
			violations = append(violations, fmt.Sprintf("placeholder ordinal %d not yet issued (next %d)", ord, s.nextOrdinal))
		}
		ordinals[ord] = true
	}

	if len(violations) > 0 {
		return &InvariantError{Violations: violations}
	}
	return nil
}

// String renders the store as "pool=[a b] slots=[a _0]".
func (s *Store) String() string {
	var b strings.Builder
	b.WriteString("pool=[")
	for i, it := range s.pool {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(it.ID)
	}
	b.WriteString("] slots=[")
	for i, e := range s.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}
