package aster

// PoolStats tracks how a pool is performing.
type PoolStats struct {
	Gets     uint64 // total Get calls
	Hits     uint64 // Gets served from the pool
	Puts     uint64 // total Put calls
	Discards uint64 // Puts dropped because the pool was full
}

// HitRate returns the fraction of Gets served without allocating, in [0, 1].
func (s PoolStats) HitRate() float64 {
	if s.Gets == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Gets)
}

// Pool is a reuse cache for frequently allocated hot-path values. Unlike
// sync.Pool it retains at most maxSize items, never drops items under GC
// pressure, and tracks hit-rate statistics; aster is single-threaded, so no
// locking is needed. Pools are owned by whoever needs them (the runtime, a
// renderer) and passed explicitly; there are no package-level pool singletons.
type Pool[T any] struct {
	items   []T
	newFn   func() T
	resetFn func(T)
	maxSize int
	stats   PoolStats
}

// NewPool creates a pool. newFn is called when Get finds the pool empty;
// resetFn (optional) is applied to every item on Put; maxSize caps retained
// items (values below 1 default to 64).
func NewPool[T any](newFn func() T, resetFn func(T), maxSize int) *Pool[T] {
	if newFn == nil {
		panic("aster: pool requires a new function")
	}
	if maxSize < 1 {
		maxSize = 64
	}
	return &Pool[T]{newFn: newFn, resetFn: resetFn, maxSize: maxSize}
}

// Get returns a pooled item, allocating via newFn when the pool is empty.
func (p *Pool[T]) Get() T {
	p.stats.Gets++
	if n := len(p.items); n > 0 {
		item := p.items[n-1]
		var zero T
		p.items[n-1] = zero
		p.items = p.items[:n-1]
		p.stats.Hits++
		return item
	}
	return p.newFn()
}

// Put returns an item to the pool, resetting it first. Items beyond the
// retained maximum are discarded.
func (p *Pool[T]) Put(item T) {
	p.stats.Puts++
	if p.resetFn != nil {
		p.resetFn(item)
	}
	if len(p.items) >= p.maxSize {
		p.stats.Discards++
		return
	}
	p.items = append(p.items, item)
}

// Warmup pre-allocates count items so the first frames run allocation-free.
func (p *Pool[T]) Warmup(count int) {
	if count > p.maxSize {
		count = p.maxSize
	}
	for len(p.items) < count {
		p.items = append(p.items, p.newFn())
	}
}

// Size returns the number of items currently retained.
func (p *Pool[T]) Size() int {
	return len(p.items)
}

// Stats returns a snapshot of the pool's statistics.
func (p *Pool[T]) Stats() PoolStats {
	return p.stats
}
