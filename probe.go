package elastichash

import (
	"iter"
	"math/rand/v2"
)

// ProbeLimit is the number of candidate buckets examined per sub-array.
const ProbeLimit = 10

// probeStream is the fixed PCG stream selector. Changing it changes every
// bucket layout.
const probeStream uint64 = 0x9e3779b97f4a7c15

// probeSequence yields ProbeLimit bucket indices in [0, size) for the key
// digest h under sub-array i. The sub-array only selects the sequence; the
// indices are drawn from the whole table.
func probeSequence(h uint64, i, size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		rng := rand.New(rand.NewPCG(h+uint64(i), probeStream))
		for range ProbeLimit {
			if !yield(rng.IntN(size)) {
				return
			}
		}
	}
}
