// Copyright (c) 2024-2025 The Ottery developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ottery

import (
	"errors"
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestShuffleSlice verifies shuffling preserves the multiset of elements.
func TestShuffleSlice(t *testing.T) {
	s := make([]int, 100)
	for i := range s {
		s[i] = i
	}
	ShuffleSlice(s)

	sorted := make([]int, len(s))
	copy(sorted, s)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("shuffle altered elements:\n%s", spew.Sdump(s))
		}
	}
}

// TestChoice verifies single-element picks, range membership, and the
// empty slice panic.
func TestChoice(t *testing.T) {
	if got := Choice([]string{"only"}); got != "only" {
		t.Fatalf("Choice of single element: got %q, want %q", got, "only")
	}

	s := []int{10, 20, 30, 40}
	for i := 0; i < 100; i++ {
		got := Choice(s)
		if got%10 != 0 || got < 10 || got > 40 {
			t.Fatalf("Choice: got %d, want an element of %v", got, s)
		}
	}

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Choice of empty slice: panic value %v, "+
				"want ErrInvalidArgument", err)
		}
	}()
	Choice([]int(nil))
}

// TestSample verifies selection without replacement: correct length,
// distinct elements drawn from the population, the k == n permutation
// case, and the out-of-domain panic.
func TestSample(t *testing.T) {
	pop := make([]int, 100)
	for i := range pop {
		pop[i] = i
	}

	tests := []struct {
		name string
		k    int
	}{
		{name: "empty", k: 0},
		{name: "small", k: 10},
		{name: "most", k: 90},
		{name: "all", k: 100},
	}
	for _, test := range tests {
		got := Sample(pop, test.k)
		if len(got) != test.k {
			t.Fatalf("%q: got %d elements, want %d", test.name, len(got),
				test.k)
		}
		seen := make(map[int]struct{}, test.k)
		for _, v := range got {
			if v < 0 || v >= len(pop) {
				t.Fatalf("%q: element %d not in population", test.name, v)
			}
			if _, ok := seen[v]; ok {
				t.Fatalf("%q: element %d selected twice:\n%s", test.name, v,
					spew.Sdump(got))
			}
			seen[v] = struct{}{}
		}
	}

	// The population must be left unchanged.
	for i, v := range pop {
		if v != i {
			t.Fatal("Sample modified the population")
		}
	}

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("oversized sample: panic value %v, "+
				"want ErrInvalidArgument", err)
		}
	}()
	Sample(pop, len(pop)+1)
}
