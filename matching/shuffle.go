package matching

import (
	"hash/fnv"
	"math/rand/v2"
)

// Shuffle returns a copy of items in an order fully determined by seed.
func Shuffle(items []Item, seed string) []Item {
	out := append([]Item(nil), items...)
	h := fnv.New64a()
	h.Write([]byte(seed))
	sum := h.Sum64()
	r := rand.New(rand.NewPCG(sum, sum^0x9e3779b97f4a7c15))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
