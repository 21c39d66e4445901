// Copyright (c) 2024-2025 The Ottery developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ottery

// ShuffleSlice randomizes the order of all elements in a slice using the
// default generator.
func ShuffleSlice[T any](s []T) {
	Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Choice returns a uniformly random element of s, chosen by the default
// generator.
// Panics with an ErrInvalidArgument kind if s is empty.
func Choice[T any](s []T) T {
	if len(s) == 0 {
		panic(makeError(ErrInvalidArgument,
			"ottery: Choice of empty slice"))
	}
	return s[IntN(len(s))]
}

// Sample returns k unique elements chosen without replacement from s, in
// selection order, so that all subslices of the result are also valid
// random samples.  The original slice is left unchanged.  Elements need
// not be unique; repeated elements may each be selected once.
// Panics with an ErrInvalidArgument kind unless 0 <= k <= len(s).
func Sample[T any](s []T, k int) []T {
	n := len(s)
	if k < 0 || k > n {
		panic(makeError(ErrInvalidArgument,
			"ottery: sample larger than population"))
	}

	// Partial Fisher-Yates over a copied pool: each selection swaps the
	// chosen element out of the not-yet-selected region [0,n-i).
	pool := make([]T, n)
	copy(pool, s)
	result := make([]T, k)
	for i := 0; i < k; i++ {
		j := IntN(n - i)
		result[i] = pool[j]
		pool[j] = pool[n-i-1]
	}
	return result
}
