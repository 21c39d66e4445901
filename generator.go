// Copyright (c) 2024-2025 The Ottery developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ottery

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
)

// bufferSize is the number of entropy bytes a Generator draws from its
// source per refill.  Bytes are dispensed from the buffer exactly once.
const bufferSize = 512

// Generator dispenses cryptographically secure randomness drawn from an
// entropy source.  Source bytes are buffered and consumed exactly once;
// the buffer is refilled in full whenever it is exhausted mid-request.
//
// Generator methods are not safe for concurrent access.  The package-level
// functions provide the same operations over a shared generator protected
// by a mutex.
type Generator struct {
	src    io.Reader
	buf    []byte
	cursor int
}

// defaultEntropySource returns the entropy source used by NewGenerator.
// The ChaCha20 stretcher is skipped on platforms where crypto/rand is
// already implemented by a fast userspace generator.
func defaultEntropySource() (io.Reader, error) {
	if fastCryptoRand() {
		return cryptorand.Reader, nil
	}
	return NewPRNG()
}

// NewGenerator returns a Generator backed by the default entropy source.
// It errors with an ErrEntropyFailure kind if the source cannot be seeded.
func NewGenerator() (*Generator, error) {
	src, err := defaultEntropySource()
	if err != nil {
		return nil, err
	}
	return NewGeneratorFromReader(src), nil
}

// NewGeneratorFromReader returns a Generator that draws entropy from r.
// The reader must either supply every requested byte or fail; a failed
// read is fatal and surfaces as a panic with an error of the
// ErrEntropyFailure kind from whichever method triggered the refill.
// There is no fallback to weaker randomness under any circumstance.
func NewGeneratorFromReader(r io.Reader) *Generator {
	return &Generator{
		src:    r,
		buf:    make([]byte, bufferSize),
		cursor: bufferSize,
	}
}

// refill replaces the entire buffer with fresh bytes from the entropy
// source.  The refill is atomic-or-failed: a short read never leaves stale
// bytes to be redispensed.
func (g *Generator) refill() {
	if _, err := io.ReadFull(g.src, g.buf); err != nil {
		panic(makeError(ErrEntropyFailure,
			"entropy source failed: "+err.Error()))
	}
	g.cursor = 0
}

// Read fills s with len(s) of cryptographically-secure random bytes.
// Read never errors; entropy source failure panics as described by
// NewGeneratorFromReader.
func (g *Generator) Read(s []byte) (n int, err error) {
	n = len(s)
	for len(s) > 0 {
		if g.cursor == len(g.buf) {
			g.refill()
		}
		c := copy(s, g.buf[g.cursor:])
		g.cursor += c
		s = s[c:]
	}
	return n, nil
}

// Bytes returns a new slice of n cryptographically-secure random bytes.
// Panics with an ErrInvalidArgument kind if n is negative.
func (g *Generator) Bytes(n int) []byte {
	if n < 0 {
		panic(makeError(ErrInvalidArgument,
			"ottery: negative byte count"))
	}
	b := make([]byte, n)
	g.Read(b)
	return b
}

// Uint32 returns a uniform random uint32.  The word is assembled from four
// consecutively dispensed buffer bytes in little endian byte order on every
// platform.
func (g *Generator) Uint32() uint32 {
	b := make([]byte, 4)
	g.Read(b)
	return binary.LittleEndian.Uint32(b)
}

// Uint64 returns a uniform random uint64.  The word is assembled from
// eight consecutively dispensed buffer bytes in little endian byte order
// on every platform.
func (g *Generator) Uint64() uint64 {
	b := make([]byte, 8)
	g.Read(b)
	return binary.LittleEndian.Uint64(b)
}
