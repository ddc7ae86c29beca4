// plan_test.go - registry tests
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
	"testing"

	"github.com/google/go-cmp/cmp"
)

type namer interface {
	Name() string
}

type named string

func (n named) Name() string { return string(n) }

func TestRegistryPush(t *testing.T) {
	assert := newAsserter(t)
	r := NewRegistry[string]()

	assert(r.Push(3, "A") == nil, "push A failed")
	assert(r.Push(1, "B") == nil, "push B failed")
	assert(r.Push(2, "C") == nil, "push C failed")

	if diff := cmp.Diff([]int{3, 1, 2}, r.Weights()); diff != "" {
		t.Fatalf("weights mismatch (-want +got):\n%s", diff)
	}

	var names []string
	for _, p := range r.Plans() {
		names = append(names, p.Task())
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, names); diff != "" {
		t.Fatalf("plan order mismatch (-want +got):\n%s", diff)
	}
	assert(r.Len() == 3, "expected 3 plans, got %d", r.Len())
}

func TestRegistryRejectsBadWeight(t *testing.T) {
	assert := newAsserter(t)
	r := NewRegistry[string]()

	err := r.Push(0, "A")
	assert(errors.Is(err, ErrInvalidWeight), "weight 0: expected ErrInvalidWeight, got %v", err)

	err = r.Push(-5, "A")
	assert(errors.Is(err, ErrInvalidWeight), "weight -5: expected ErrInvalidWeight, got %v", err)
	assert(r.Len() == 0, "registry grew to %d", r.Len())
}

func TestRegistryRejectsNilTask(t *testing.T) {
	assert := newAsserter(t)

	fr := NewRegistry[func()]()
	err := fr.Push(1, nil)
	assert(errors.Is(err, ErrInvalidTask), "nil func: expected ErrInvalidTask, got %v", err)
	assert(fr.Push(1, func() {}) == nil, "valid func rejected")

	pr := NewRegistry[*int]()
	err = pr.Push(1, nil)
	assert(errors.Is(err, ErrInvalidTask), "nil ptr: expected ErrInvalidTask, got %v", err)

	ir := NewRegistry[namer]()
	err = ir.Push(1, nil)
	assert(errors.Is(err, ErrInvalidTask), "nil iface: expected ErrInvalidTask, got %v", err)
	assert(ir.Push(1, named("x")) == nil, "valid iface rejected")

	// zero values of non-nillable types are valid tasks
	nr := NewRegistry[int]()
	assert(nr.Push(1, 0) == nil, "zero int rejected")
}

func TestRegistrySnapshot(t *testing.T) {
	assert := newAsserter(t)
	r := NewRegistry[string]()
	r.Push(1, "A")

	p := r.Plans()
	w := r.Weights()
	r.Push(2, "B")

	assert(len(p) == 1, "snapshot grew to %d plans", len(p))
	assert(len(w) == 1, "weights grew to %d", len(w))

	w[0] = 99
	assert(r.Weights()[0] == 1, "registry weight mutated through Weights()")
}
