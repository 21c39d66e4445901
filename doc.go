// Copyright (c) 2024-2025 The Ottery developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ottery provides cryptographically secure randomness in shapes
// that application code actually needs: raw bytes, fixed-width words,
// uniformly-distributed integers in a limited range without modulo bias,
// arbitrary-bit-width integers, and full-precision floats in [0,1).
//
// Entropy is obtained from a fast userspace CSPRNG that is periodically
// reseeded from crypto/rand, and on select operating systems and Go
// versions directly from crypto/rand when it is already implemented by a
// fast userspace generator.
//
// The default global generator will never panic after package init and is
// safe for concurrent access.  Additional generators which avoid the
// locking overhead can be created by calling NewGenerator, and generators
// over caller-provided entropy by calling NewGeneratorFromReader.
//
// For code written against the standard library generator interfaces, the
// Source and New functions adapt the secure stream to math/rand.Source64
// and *math/rand.Rand.  Seeding the adapted source is a documented no-op:
// outputs are never reproducible from a caller-chosen seed.
package ottery
