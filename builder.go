// builder.go - dispatcher builder and options
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

import "log/slog"

// Option configures a Builder.
type Option func(o *options)

type options struct {
	src     Source
	log     *slog.Logger
	maxPool int
}

// WithSource sets the randomness used to shuffle each cycle.
// Dispatchers draw from src under their own lock, so a non
// thread-safe source must not be shared between dispatchers.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.src = src
		}
	}
}

// WithLogger sets the logger that reports ignored registrations and
// generated dispatchers.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMaxPool bounds the number of slots a generated pool may have.
func WithMaxPool(n int) Option {
	return func(o *options) {
		o.maxPool = n
	}
}

// Builder collects weighted tasks and generates dispatchers from them.
// It is not safe for concurrent use.
type Builder[T any] struct {
	reg  *Registry[T]
	opts options
}

// NewBuilder returns a builder with an empty registry.
func NewBuilder[T any](opts ...Option) *Builder[T] {
	b := &Builder[T]{
		reg: NewRegistry[T](),
		opts: options{
			src:     cryptoSource{},
			log:     slog.New(slog.DiscardHandler),
			maxPool: DefaultMaxPool,
		},
	}

	for _, fp := range opts {
		fp(&b.opts)
	}
	return b
}

// Add registers task with the given weight. Invalid weights and nil
// tasks are ignored; they are reported to the logger at warn level.
func (b *Builder[T]) Add(weight int, task T) {
	if err := b.reg.Push(weight, task); err != nil {
		b.opts.log.Warn("ignoring task", "weight", weight, "plans", b.reg.Len(), "err", err)
	}
}

// Registry returns the builder's registry.
func (b *Builder[T]) Registry() *Registry[T] {
	return b.reg
}

// Generate snapshots the registered plans and returns a dispatcher
// serving them. It fails with ErrInsufficientPlans when fewer than
// two plans are registered. Later calls to Add do not affect the
// returned dispatcher.
func (b *Builder[T]) Generate() (*Dispatcher[T], error) {
	d, err := newDispatcher(b.reg.Plans(), b.opts.src, b.opts.maxPool)
	if err != nil {
		b.opts.log.Error("generate failed", "plans", b.reg.Len(), "err", err)
		return nil, err
	}

	b.opts.log.Debug("dispatcher ready",
		"plans", b.reg.Len(), "gcd", d.GCD(), "cycle", d.Len())
	return d, nil
}
