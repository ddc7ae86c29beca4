// gcd_test.go - gcd tests
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
)

func TestGCD(t *testing.T) {
	assert := newAsserter(t)

	tests := []struct {
		w   []int
		exp int
	}{
		{[]int{8, 12}, 4},
		{[]int{12, 8}, 4},
		{[]int{1, 364}, 1},
		{[]int{6, 10, 15}, 1},
		{[]int{100, 200}, 100},
		{[]int{7, 7}, 7},
		{[]int{48, 180, 36}, 12},
		{[]int{1 << 40, 1 << 33}, 1 << 33},
		{[]int{3 << 20, 9 << 18, 6 << 19}, 3 << 18},
		{[]int{17, 34, 51, 1}, 1},
	}

	for _, tc := range tests {
		g, err := GCD(tc.w...)
		assert(err == nil, "%v: unexpected err %v", tc.w, err)
		assert(g == tc.exp, "%v: expected %d, got %d", tc.w, tc.exp, g)
	}
}

func TestGCDMatchesEuclid(t *testing.T) {
	assert := newAsserter(t)

	euclid := func(a, b int) int {
		for b != 0 {
			a, b = b, a%b
		}
		return a
	}

	for a := 1; a < 200; a++ {
		for b := 1; b < 200; b++ {
			g, err := GCD(a, b)
			assert(err == nil, "gcd(%d, %d): %v", a, b, err)
			exp := euclid(a, b)
			assert(g == exp, "gcd(%d, %d): expected %d, got %d", a, b, exp, g)
		}
	}
}

func TestGCDTooFew(t *testing.T) {
	assert := newAsserter(t)

	_, err := GCD()
	assert(errors.Is(err, ErrTooFewWeights), "empty: expected ErrTooFewWeights, got %v", err)

	_, err = GCD(5)
	assert(errors.Is(err, ErrTooFewWeights), "single: expected ErrTooFewWeights, got %v", err)
}

func TestGCDInvalidWeight(t *testing.T) {
	assert := newAsserter(t)

	for _, w := range [][]int{
		{0, 4},
		{4, 0},
		{-2, 4},
		{1, 1, -1},
		// invalid weight past a gcd of 1 is still reported
		{2, 3, 0},
	} {
		_, err := GCD(w...)
		assert(errors.Is(err, ErrInvalidWeight), "%v: expected ErrInvalidWeight, got %v", w, err)
	}
}
