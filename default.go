// Copyright (c) 2024-2025 The Ottery developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ottery

import (
	"io"
	"math/big"
	"sync"
	"time"
)

// lockingGenerator serializes all access to the wrapped Generator's buffer
// cursor so that concurrent callers never observe overlapping byte ranges
// and a refill never interleaves with an in-progress dispense.
type lockingGenerator struct {
	*Generator
	mu sync.Mutex
}

var globalRand *lockingGenerator

func init() {
	g, err := NewGenerator()
	if err != nil {
		panic(err)
	}
	globalRand = &lockingGenerator{Generator: g}
}

func (g *lockingGenerator) Read(s []byte) (n int, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.Generator.Read(s)
}

// Reader returns the default generator as an io.Reader of
// cryptographically secure random bytes.  The returned Reader is safe for
// concurrent access.
func Reader() io.Reader {
	return globalRand
}

// Read fills b with random bytes obtained from the default generator.
func Read(b []byte) {
	// Mutex is acquired by (*lockingGenerator).Read.
	globalRand.Read(b)
}

// Bytes returns a new slice of n random bytes obtained from the default
// generator.
// Panics if n is negative.
func Bytes(n int) []byte {
	if n < 0 {
		panic(makeError(ErrInvalidArgument,
			"ottery: negative byte count"))
	}
	b := make([]byte, n)
	Read(b)
	return b
}

// Uint32 returns a uniform random uint32.
func Uint32() uint32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Uint32()
}

// Uint64 returns a uniform random uint64.
func Uint64() uint64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Uint64()
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
// Panics if n == 0.
func Uint32N(n uint32) uint32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Uint32N(n)
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
// Panics if n == 0.
func Uint64N(n uint64) uint64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Uint64N(n)
}

// Int32 returns a random 31-bit non-negative integer as an int32 without
// modulo bias.
func Int32() int32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Int32()
}

// Int32N returns, as an int32, a random 31-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func Int32N(n int32) int32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Int32N(n)
}

// Int64 returns a random 63-bit non-negative integer as an int64 without
// modulo bias.
func Int64() int64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Int64()
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func Int64N(n int64) int64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Int64N(n)
}

// Int returns a non-negative integer without bias.
func Int() int {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Int()
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func IntN(n int) int {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.IntN(n)
}

// UintN returns, as an uint, a random integer in [0,n) without modulo bias.
// Panics if n == 0.
func UintN(n uint) uint {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.UintN(n)
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func Duration(n time.Duration) time.Duration {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Duration(n)
}

// Bits returns a uniform random unsigned integer occupying exactly k bits.
// Bits(0) returns 0 without consuming entropy.
// Panics if k > 64; use BigBits for wider values.
func Bits(k uint) uint64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Bits(k)
}

// BigBits returns a uniform random unsigned integer occupying exactly k
// bits as a big.Int.
func BigBits(k uint) *big.Int {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.BigBits(k)
}

// Float64 returns a uniform random float64 in [0,1) with full 53-bit
// mantissa precision.  The result is never exactly 1.
func Float64() float64 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Float64()
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func Shuffle(n int, swap func(i, j int)) {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	globalRand.Shuffle(n, swap)
}

// BigInt returns a uniform random value in [0,max).
// Panics if max <= 0.
func BigInt(max *big.Int) *big.Int {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Generator.BigInt(max)
}
