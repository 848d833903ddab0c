package elastichash

import "errors"

var (
	// ErrKeyAlreadyInserted is returned by Insert when the key is already
	// stored. The existing value is left untouched.
	ErrKeyAlreadyInserted = errors.New("key already inserted")

	// ErrTableFull is returned by Insert when none of the key's probe
	// sequences reaches an empty bucket. Empty buckets may still exist
	// elsewhere in the table.
	ErrTableFull = errors.New("hash table full")
)
