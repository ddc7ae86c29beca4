// gcd.go - binary gcd of weight sets
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

import "fmt"

// GCD returns the greatest common divisor of weights. It needs at
// least two weights and every weight must be >= 1.
func GCD(weights ...int) (int, error) {
	if len(weights) < 2 {
		return 0, fmt.Errorf("%w: need at least 2, have %d", ErrTooFewWeights, len(weights))
	}

	for i, w := range weights {
		if w < 1 {
			return 0, fmt.Errorf("%w: index %d: %d", ErrInvalidWeight, i, w)
		}
	}

	g := uint64(weights[0])
	for _, w := range weights[1:] {
		if g == 1 {
			break
		}
		g = gcd(g, uint64(w))
	}
	return int(g), nil
}

// Stein's binary gcd. Both u and v must be non-zero.
func gcd(u, v uint64) uint64 {
	var k uint

	// common factors of 2
	for (u|v)&1 == 0 {
		u >>= 1
		v >>= 1
		k++
	}

	for u&1 == 0 {
		u >>= 1
	}

	// u is odd from here on
	for {
		for v&1 == 0 {
			v >>= 1
		}
		if u > v {
			u, v = v, u
		}
		v -= u
		if v == 0 {
			break
		}
	}
	return u << k
}
