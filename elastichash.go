package elastichash

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

type entry[K comparable, V any] struct {
	used  bool
	key   K
	value V
}

// Table is a fixed-capacity open-addressing hash table using elastic
// hashing. It is not safe for concurrent use.
type Table[K comparable, V any] struct {
	buckets   []entry[K, V]
	size      int
	partition []int
	count     int
	hash      HashFunc[K]
	logger    *zap.Logger
}

// Stats summarises table occupancy.
type Stats struct {
	Size       int
	Len        int
	SubArrays  int
	LoadFactor float64
}

// New creates an empty table with size buckets. Sizes that are powers of
// two split evenly into sub-arrays; other sizes work but the last
// sub-array is uneven. New panics if size is not positive.
func New[K comparable, V any](size int, opts ...Option[K]) *Table[K, V] {
	if size <= 0 {
		panic(fmt.Sprintf("elastichash: size must be positive, got %d", size))
	}

	o := options[K]{
		hash:   defaultHash[K],
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table[K, V]{
		buckets:   make([]entry[K, V], size),
		size:      size,
		partition: buildPartition(size),
		hash:      o.hash,
		logger:    o.logger,
	}
	t.logger.Debug("elastic hash table created",
		zap.Int("size", size),
		zap.Ints("partition", t.partition))
	return t
}

// Insert stores value under key. It returns an error wrapping
// ErrKeyAlreadyInserted if the key is present, or ErrTableFull if no probe
// reaches an empty bucket. On error the table is unchanged.
func (t *Table[K, V]) Insert(key K, value V) error {
	h := t.hash(key)
	for i := range t.partition {
		for idx := range probeSequence(h, i, t.size) {
			b := &t.buckets[idx]
			switch {
			case !b.used:
				b.used = true
				b.key = key
				b.value = value
				t.count++
				return nil
			case b.key == key:
				return fmt.Errorf("%w: bucket %d", ErrKeyAlreadyInserted, idx)
			}
		}
	}

	t.logger.Debug("insert failed, no empty bucket reachable",
		zap.Uint64("hash", h),
		zap.Int("len", t.count),
		zap.Int("size", t.size))
	return fmt.Errorf("%w: %d of %d buckets occupied", ErrTableFull, t.count, t.size)
}

// Get returns the value stored under key.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if idx, ok := t.find(key); ok {
		return t.buckets[idx].value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is stored.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.find(key)
	return ok
}

// find walks the probe sequences in the same order as Insert.
func (t *Table[K, V]) find(key K) (int, bool) {
	h := t.hash(key)
	for i := range t.partition {
		for idx := range probeSequence(h, i, t.size) {
			if b := &t.buckets[idx]; b.used && b.key == key {
				return idx, true
			}
		}
	}
	return 0, false
}

// ProbeSequence returns the candidate buckets for key under sub-array i,
// in the order Insert and Get visit them.
func (t *Table[K, V]) ProbeSequence(key K, i int) []int {
	seq := make([]int, 0, ProbeLimit)
	for idx := range probeSequence(t.hash(key), i, t.size) {
		seq = append(seq, idx)
	}
	return seq
}

// All yields the stored entries in bucket order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.buckets {
			b := &t.buckets[i]
			if b.used && !yield(b.key, b.value) {
				return
			}
		}
	}
}

// Len returns the number of stored entries.
func (t *Table[K, V]) Len() int { return t.count }

// Cap returns the number of buckets.
func (t *Table[K, V]) Cap() int { return t.size }

// LoadFactor returns Len()/Cap().
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(t.size)
}

// Partition returns a copy of the sub-array sizes.
func (t *Table[K, V]) Partition() []int {
	out := make([]int, len(t.partition))
	copy(out, t.partition)
	return out
}

// Stats returns a snapshot of size, occupancy and sub-array count.
func (t *Table[K, V]) Stats() Stats {
	return Stats{
		Size:       t.size,
		Len:        t.count,
		SubArrays:  len(t.partition),
		LoadFactor: t.LoadFactor(),
	}
}

