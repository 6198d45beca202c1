package core

import "context"

// Guard serializes operations that touch the same keys. Keys are acquired
// in sorted order so overlapping key sets cannot deadlock; disjoint sets run
// in parallel.
type Guard interface {
	// Lock blocks until every key is held or ctx is done. The returned
	// function releases all keys and is safe to call more than once.
	Lock(ctx context.Context, keys ...string) (release func(), err error)
}
