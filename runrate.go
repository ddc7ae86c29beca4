// runrate.go - weighted cycle dispatcher
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

// Package runrate implements a cycle based, weighted task dispatcher.
//
// Tasks are registered with positive integer weights. The weights are
// reduced by their greatest common divisor into the smallest integer
// multiset with the same proportions (the "pool"). The dispatcher then
// serves the pool one task per call in a uniformly shuffled order; when
// the pool is exhausted it is reshuffled and served again.
//
// Within one cycle (Len() consecutive calls aligned on a reshuffle)
// every task is returned exactly weight/gcd times. Across cycles the
// order is independent and random.
//
// Algorithmic Details:
//
// The GCD is computed with Stein's binary algorithm folded over the
// weight set. Weights {100, 200} result in a pool of size 3, not 300.
// Shuffling is Durstenfeld's Fisher-Yates and is unbiased given an
// unbiased Source. The default Source is a CSPRNG.
//
// Usage:
//
//	b := runrate.NewBuilder[func()]()
//	b.Add(1, func() { fmt.Println("rare") })
//	b.Add(3, func() { fmt.Println("common") })
//
//	d, err := b.Generate()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for i := 0; i < 8; i++ {
//		if err := runrate.Run(d); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// A Dispatcher is safe for concurrent use; draws are serialized so
// that every cycle is served exactly once.
package runrate

// Run draws the next function from d and calls it.
func Run(d *Dispatcher[func()]) error {
	fp, err := d.Next()
	if err != nil {
		return err
	}

	fp()
	return nil
}
