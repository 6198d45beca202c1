package lock

import (
	"context"
	"slices"
	"sync"

	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"golang.org/x/sync/semaphore"
)

type keyLock struct {
	sem     *semaphore.Weighted
	waiters int
}

// LocalGuard serializes lifecycle operations inside one process with a
// weight-1 semaphore per key. Entries are dropped once nobody holds or waits.
type LocalGuard struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

var _ coreport.Guard = (*LocalGuard)(nil)

// NewLocalGuard creates an empty in-process guard
func NewLocalGuard() *LocalGuard {
	return &LocalGuard{locks: make(map[string]*keyLock)}
}

// Lock acquires every key in sorted order, giving up when ctx is done
func (g *LocalGuard) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = normalizeKeys(keys)

	held := make([]string, 0, len(keys))
	for _, key := range keys {
		kl := g.ref(key)
		if err := kl.sem.Acquire(ctx, 1); err != nil {
			g.unref(key)
			g.releaseAll(held)
			return nil, err
		}
		held = append(held, key)
	}

	var once sync.Once
	return func() {
		once.Do(func() { g.releaseAll(held) })
	}, nil
}

func (g *LocalGuard) ref(key string) *keyLock {
	g.mu.Lock()
	defer g.mu.Unlock()

	kl, ok := g.locks[key]
	if !ok {
		kl = &keyLock{sem: semaphore.NewWeighted(1)}
		g.locks[key] = kl
	}
	kl.waiters++
	return kl
}

func (g *LocalGuard) unref(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	kl := g.locks[key]
	kl.waiters--
	if kl.waiters == 0 {
		delete(g.locks, key)
	}
}

// releaseAll releases in reverse acquisition order
func (g *LocalGuard) releaseAll(keys []string) {
	for i := len(keys) - 1; i >= 0; i-- {
		g.mu.Lock()
		kl := g.locks[keys[i]]
		g.mu.Unlock()

		kl.sem.Release(1)
		g.unref(keys[i])
	}
}

// size reports how many keys are tracked
func (g *LocalGuard) size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.locks)
}

// normalizeKeys sorts and deduplicates so overlapping key sets never deadlock
func normalizeKeys(keys []string) []string {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
