/*
Package elastichash provides a fixed-capacity in-memory hash table based on
elastic hashing.

The table is sized once for a known upper bound on the number of keys and
never grows. It stays usable at load factors close to 1 by bounding how many
buckets any single insert or lookup may examine.

Basic usage:

	import "github.com/theflywheel/elastichash"

	t := elastichash.New[string, int](1024)

	if err := t.Insert("answer", 42); err != nil {
		switch {
		case errors.Is(err, elastichash.ErrKeyAlreadyInserted):
			// key present, value unchanged
		case errors.Is(err, elastichash.ErrTableFull):
			// no reachable empty bucket
		}
	}

	v, ok := t.Get("answer")

Features:

  - Generic over comparable keys and any value type
  - Bounded probe cost: at most ProbeLimit buckets per sub-array
  - Deterministic bucket layout for the default xxhash-based hasher
  - Insert and lookup only; entries are never overwritten or removed
  - Optional debug logging through zap

Implementation Details:

The bucket array is split into sub-arrays of roughly N/2, N/4, N/8, ... buckets,
at most ceil(log2(N)) of them. The last one takes whatever remains so the sizes
always add up to N.

For every sub-array i a key gets its own probe sequence: the key's 64-bit
hash plus i seeds a PCG generator, which draws ProbeLimit indices uniformly
from the whole table. Sub-arrays select a sequence, not a region. Insert
walks sub-arrays in order and stores the pair in the first empty bucket it
meets; Get follows exactly the same path. An insert that exhausts every
sequence fails with ErrTableFull even if empty buckets exist elsewhere.

A Table is not safe for concurrent use. Guard it with a sync.RWMutex if it
is shared between goroutines.
*/
package elastichash
