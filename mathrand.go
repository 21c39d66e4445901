// Copyright (c) 2024-2025 The Ottery developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ottery

import (
	mrand "math/rand"
)

// source adapts the default generator to the math/rand.Source64 contract
// so the secure stream can stand in for a general-purpose PRNG.  It keeps
// no state of its own; all buffering lives behind the default generator's
// mutex, so the source is safe for concurrent access.
type source struct{}

var _ mrand.Source64 = source{}

// Int63 returns a uniform random 63-bit non-negative integer as an int64.
func (source) Int63() int64 {
	return int64(Uint64() & 0x7FFFFFFF_FFFFFFFF)
}

// Uint64 returns a uniform random uint64.
func (source) Uint64() uint64 {
	return Uint64()
}

// Seed is a silent no-op, as with random sources backed by the operating
// system.  The underlying entropy source is not seedable by the caller and
// outputs are never reproducible from a caller-chosen seed.  It exists so
// the source satisfies math/rand.Source for callers that seed defensively.
func (source) Seed(int64) {}

// Source returns a math/rand.Source64 that draws from the default
// generator.  The returned source is safe for concurrent access, and its
// Seed method is a documented no-op.
func Source() mrand.Source64 {
	return source{}
}

// New returns a *math/rand.Rand backed by the default generator, giving
// access to every derived distribution of the standard library generator
// (Float64, Perm, NormFloat64, ExpFloat64, ...) over cryptographically
// secure randomness.  Distribution helpers are implemented once by
// math/rand against the Source64 capability set; no conversion logic is
// duplicated here.
//
// The math/rand.Rand wrapper keeps internal state for some methods and is
// therefore not safe for concurrent access; create one per goroutine or
// use the package-level functions instead.
func New() *mrand.Rand {
	return mrand.New(source{})
}

// GeneratorState would capture the internal state of the default generator
// for later restoration.  The entropy source's state cannot be captured or
// restored, so it always returns an error with the ErrUnsupported kind.
func GeneratorState() ([]byte, error) {
	return nil, makeError(ErrUnsupported,
		"ottery: generator state capture is not supported")
}
