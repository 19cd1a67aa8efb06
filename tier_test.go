// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hwrand

import (
	"errors"
	"testing"
)

// TestStringers ensures the tier, width and source types render as expected.
func TestStringers(t *testing.T) {
	tests := []struct {
		in   interface{ String() string }
		want string
	}{
		{Secure, "secure"},
		{Fast, "fast"},
		{Tier(7), "Tier(7)"},
		{Bits32, "32-bit"},
		{Bits64, "64-bit"},
		{Width(9), "Width(9)"},
		{SourceRDSEED, "RDSEED"},
		{SourceRDRAND, "RDRAND"},
		{SourceSoftware, "software"},
		{Source(5), "Source(5)"},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("#%d: got: %s want: %s", i, got, test.want)
		}
	}
}

// TestParseTier ensures tier names are parsed case-insensitively and unknown
// names are rejected.
func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr error
	}{
		{in: "secure", want: Secure},
		{in: "SECURE", want: Secure},
		{in: "fast", want: Fast},
		{in: "Fast", want: Fast},
		{in: "", wantErr: ErrInvalidTier},
		{in: "slow", wantErr: ErrInvalidTier},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		got, err := ParseTier(test.in)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%q: unexpected error -- got %v, want %v", test.in, err,
				test.wantErr)
			continue
		}
		if err == nil && got != test.want {
			t.Errorf("%q: got %s, want %s", test.in, got, test.want)
		}
	}
}

// TestWidthFromBits ensures widths are only accepted when supported by the
// target.
func TestWidthFromBits(t *testing.T) {
	if w, err := WidthFromBits(32); err != nil || w != Bits32 {
		t.Fatalf("32 bits: got %s, %v", w, err)
	}
	w, err := WidthFromBits(64)
	if is32bit {
		if !errors.Is(err, ErrUnsupportedWidth) {
			t.Fatalf("64 bits: unexpected error -- got %v, want %v", err,
				ErrUnsupportedWidth)
		}
	} else if err != nil || w != Bits64 {
		t.Fatalf("64 bits: got %s, %v", w, err)
	}
	for _, bits := range []uint{0, 8, 16, 128} {
		if _, err := WidthFromBits(bits); !errors.Is(err, ErrUnsupportedWidth) {
			t.Errorf("%d bits: unexpected error -- got %v, want %v", bits,
				err, ErrUnsupportedWidth)
		}
	}
}
