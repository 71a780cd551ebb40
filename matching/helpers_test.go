package matching

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// storeOf builds a store from compact literals: "_3" is placeholder 3,
// anything else an item with that id and label.
func storeOf(t *testing.T, pool []string, slots []string) *Store {
	t.Helper()
	base, err := New(0, len(slots), len(slots))
	require.NoError(t, err)

	items := make([]Item, len(pool))
	for i, id := range pool {
		items[i] = Item{ID: id, Label: id}
	}
	entries := make([]SlotEntry, len(slots))
	for i, s := range slots {
		if ord, ok := strings.CutPrefix(s, "_"); ok {
			n, err := strconv.Atoi(ord)
			require.NoError(t, err)
			entries[i] = PlaceholderEntry(n)
			continue
		}
		entries[i] = ItemEntry(Item{ID: s, Label: s})
	}
	s := base.Apply(items, entries)
	require.NoError(t, s.Validate())
	return s
}

func poolIDs(s *Store) []string {
	ids := make([]string, 0, s.PoolLen())
	for _, it := range s.Pool() {
		ids = append(ids, it.ID)
	}
	return ids
}

func slotIDs(s *Store) []string {
	ids := make([]string, 0, s.Capacity())
	for _, e := range s.Slots() {
		ids = append(ids, e.String())
	}
	return ids
}

var storeCmp = cmp.AllowUnexported(Store{}, SlotEntry{})

func to(r Region, i int) *Location {
	return &Location{Region: r, Index: i}
}
