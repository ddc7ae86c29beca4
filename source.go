// source.go - randomness sources and shuffling
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

import "lukechampine.com/frand"

// Source supplies the randomness used to shuffle the pool.
// IntN returns a uniform value in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// cryptoSource draws from a fast, buffered CSPRNG. Safe for
// concurrent use.
type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	return frand.Intn(n)
}

// Durstenfeld's variant of Fisher-Yates.
func shuffle(v []uint32, src Source) {
	for i := len(v) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		v[i], v[j] = v[j], v[i]
	}
}
