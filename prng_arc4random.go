// Copyright (c) 2024-2025 The Ottery developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build openbsd && go1.24

package ottery

import (
	cryptorand "crypto/rand"
)

// PRNG is the default entropy source.  On OpenBSD with recent Go versions,
// crypto/rand is already implemented by a fast userspace arc4random-based
// generator, so the ChaCha20 stretcher is unnecessary and reads pass
// through directly.
type PRNG struct{}

// NewPRNG returns a seeded PRNG.
func NewPRNG() (*PRNG, error) {
	return new(PRNG), nil
}

// Read fills s with len(s) of cryptographically-secure random bytes.
// Read never errors.
func (*PRNG) Read(s []byte) (n int, err error) {
	return cryptorand.Read(s)
}
