// Copyright (c) 2024-2025 The Ottery developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ottery

import (
	"errors"
	"testing"
)

// TestErrorKindStringer ensures the error kinds and wrapped errors print
// and match as intended.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrEntropyFailure, "ErrEntropyFailure"},
		{ErrInvalidArgument, "ErrInvalidArgument"},
		{ErrUnsupported, "ErrUnsupported"},
	}
	for _, test := range tests {
		if got := test.in.Error(); got != test.want {
			t.Fatalf("got %q, want %q", got, test.want)
		}
	}
}

// TestErrorKindIsAs ensures both the Error type and its wrapped kinds can
// be detected via the standard errors.Is and errors.As functions.
func TestErrorKindIsAs(t *testing.T) {
	err := makeError(ErrEntropyFailure, "entropy source failed")

	if err.Error() != "entropy source failed" {
		t.Fatalf("got description %q", err.Error())
	}
	if !errors.Is(err, ErrEntropyFailure) {
		t.Fatal("errors.Is failed to match wrapped kind")
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Fatal("errors.Is matched the wrong kind")
	}

	var kind ErrorKind
	if !errors.As(err, &kind) || kind != ErrEntropyFailure {
		t.Fatalf("errors.As: got kind %v, want ErrEntropyFailure", kind)
	}
	var e Error
	if !errors.As(err, &e) {
		t.Fatal("errors.As failed to extract Error")
	}
}
