// errors.go - error values
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

import "errors"

var (
	// ErrInvalidWeight is returned for weights less than 1.
	ErrInvalidWeight = errors.New("runrate: invalid weight")

	// ErrInvalidTask is returned for nil tasks.
	ErrInvalidTask = errors.New("runrate: invalid task")

	// ErrTooFewWeights is returned by GCD when it has less than two
	// weights to reduce.
	ErrTooFewWeights = errors.New("runrate: too few weights")

	// ErrInsufficientPlans is returned when a dispatcher is generated
	// from less than two valid plans.
	ErrInsufficientPlans = errors.New("runrate: insufficient plans")

	// ErrPoolTooLarge is returned when the reduced weights expand into
	// a pool larger than the configured ceiling.
	ErrPoolTooLarge = errors.New("runrate: pool too large")

	// ErrEmptyPool is returned by Next on a dispatcher with nothing
	// to serve.
	ErrEmptyPool = errors.New("runrate: empty pool")
)
