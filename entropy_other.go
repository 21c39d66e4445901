// Copyright (c) 2024-2025 The Ottery developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !(linux && go1.24)

package ottery

// fastCryptoRand reports whether crypto/rand reads are already served by a
// fast userspace generator.  There is no detection on this platform.
func fastCryptoRand() bool {
	return false
}
