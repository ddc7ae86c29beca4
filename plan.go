// plan.go - plan registry
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
	"fmt"
	"reflect"
)

// Plan pairs a task with its weight. Plans are immutable.
type Plan[T any] struct {
	weight int
	task   T
}

// Weight returns the plan's weight.
func (p Plan[T]) Weight() int { return p.weight }

// Task returns the plan's task.
func (p Plan[T]) Task() T { return p.task }

// Registry is an ordered, append-only collection of plans.
// It is not safe for concurrent use.
type Registry[T any] struct {
	plans []Plan[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Push appends a new plan. Weights less than 1 and nil tasks are
// rejected and leave the registry unchanged.
func (r *Registry[T]) Push(weight int, task T) error {
	if weight < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWeight, weight)
	}
	if isNil(task) {
		return fmt.Errorf("%w: nil %T", ErrInvalidTask, task)
	}

	r.plans = append(r.plans, Plan[T]{weight: weight, task: task})
	return nil
}

// Weights returns the plan weights in insertion order.
func (r *Registry[T]) Weights() []int {
	w := make([]int, len(r.plans))
	for i := range r.plans {
		w[i] = r.plans[i].weight
	}
	return w
}

// Plans returns a snapshot of the plans in insertion order.
func (r *Registry[T]) Plans() []Plan[T] {
	p := make([]Plan[T], len(r.plans))
	copy(p, r.plans)
	return p
}

// Len returns the number of plans.
func (r *Registry[T]) Len() int {
	return len(r.plans)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Chan, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
