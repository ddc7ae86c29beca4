// dispatcher.go - cycle dispatcher
//
// (c) 2024 Sudhi Herle <sw-at-herle.net>
//
// Copyright 2024- Sudhi Herle <sw-at-herle-dot-net>
// License: BSD-2-Clause
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package runrate

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// DefaultMaxPool is the largest pool a Builder will expand weights
// into unless configured otherwise.
const DefaultMaxPool = 1 << 20

// Dispatcher serves tasks in randomized cycles. Each cycle returns
// every task exactly weight/gcd times. Safe for concurrent use.
//
// A nil or zero Dispatcher has nothing to serve; Next returns
// ErrEmptyPool.
type Dispatcher[T any] struct {
	mu sync.Mutex

	tasks  []T
	counts []int
	gcd    int

	// pool holds indices into tasks in plan order; buf is the
	// shuffled copy being served and pos its read cursor.
	pool []uint32
	buf  []uint32
	pos  int

	cycles uint64
	src    Source
}

// newDispatcher expands plans into a pool. The plans slice is not
// retained.
func newDispatcher[T any](plans []Plan[T], src Source, maxPool int) (*Dispatcher[T], error) {
	n := len(plans)
	weights := make([]int, n)
	for i := range plans {
		weights[i] = plans[i].weight
	}

	g, err := GCD(weights...)
	if err != nil {
		if errors.Is(err, ErrTooFewWeights) {
			return nil, fmt.Errorf("%w: %w", ErrInsufficientPlans, err)
		}
		return nil, err
	}

	if maxPool <= 0 || uint64(maxPool) > math.MaxUint32 {
		maxPool = DefaultMaxPool
	}
	if src == nil {
		src = cryptoSource{}
	}

	tot := 0
	counts := make([]int, n)
	for i, w := range weights {
		c := w / g
		if c > maxPool-tot {
			return nil, fmt.Errorf("%w: exceeds %d slots", ErrPoolTooLarge, maxPool)
		}
		counts[i] = c
		tot += c
	}

	// single alloc for pool and buffer
	blk := make([]uint32, 2*tot)
	pool, buf := blk[:tot:tot], blk[tot:]

	k := 0
	for i, c := range counts {
		for ; c > 0; c-- {
			pool[k] = uint32(i)
			k++
		}
	}

	d := &Dispatcher[T]{
		tasks:  make([]T, n),
		counts: counts,
		gcd:    g,
		pool:   pool,
		buf:    buf,
		pos:    tot,
		src:    src,
	}
	for i := range plans {
		d.tasks[i] = plans[i].task
	}
	return d, nil
}

// Next returns the next task of the current cycle. When the cycle is
// exhausted the pool is reshuffled into a new one.
func (d *Dispatcher[T]) Next() (T, error) {
	var zero T

	if d == nil {
		return zero, ErrEmptyPool
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.pool) == 0 {
		return zero, ErrEmptyPool
	}

	if d.pos >= len(d.buf) {
		d.refill()
	}

	i := d.buf[d.pos]
	d.pos++
	return d.tasks[i], nil
}

// Reset discards the rest of the current cycle; the next call to
// Next starts a freshly shuffled one.
func (d *Dispatcher[T]) Reset() {
	if d == nil {
		return
	}

	d.mu.Lock()
	d.pos = len(d.buf)
	d.mu.Unlock()
}

// Len returns the pool size, i.e. the number of draws in one cycle.
func (d *Dispatcher[T]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.pool)
}

// GCD returns the divisor the weights were reduced by.
func (d *Dispatcher[T]) GCD() int {
	if d == nil {
		return 0
	}
	return d.gcd
}

// Counts returns the number of times each task appears in a cycle,
// in registration order.
func (d *Dispatcher[T]) Counts() []int {
	if d == nil {
		return nil
	}

	c := make([]int, len(d.counts))
	copy(c, d.counts)
	return c
}

// Cycles returns the number of cycles started so far.
func (d *Dispatcher[T]) Cycles() uint64 {
	if d == nil {
		return 0
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cycles
}

// refill must be called with the lock held.
func (d *Dispatcher[T]) refill() {
	copy(d.buf, d.pool)
	shuffle(d.buf, d.src)
	d.pos = 0
	d.cycles++
}
