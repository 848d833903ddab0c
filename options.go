package elastichash

import "go.uber.org/zap"

type options[K comparable] struct {
	hash   HashFunc[K]
	logger *zap.Logger
}

// Option configures a Table at construction.
type Option[K comparable] func(*options[K])

// WithHasher sets the function used to hash keys. A nil hasher keeps the
// default xxhash-based one.
func WithHasher[K comparable](fn HashFunc[K]) Option[K] {
	return func(o *options[K]) {
		if fn != nil {
			o.hash = fn
		}
	}
}

// WithLogger sets the logger. The table only logs at debug level: on
// construction and when an insert fails with ErrTableFull.
func WithLogger[K comparable](l *zap.Logger) Option[K] {
	return func(o *options[K]) {
		if l != nil {
			o.logger = l
		}
	}
}
