// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hwrand

import (
	"fmt"
	"strings"
)

// Tier identifies the quality tier of a request.
type Tier uint8

const (
	// Secure requests values from the seeded entropy instruction.
	Secure Tier = iota

	// Fast requests values from the buffered random instruction.
	Fast
)

// String returns the tier as a human-readable name.
func (t Tier) String() string {
	switch t {
	case Secure:
		return "secure"
	case Fast:
		return "fast"
	}
	return fmt.Sprintf("Tier(%d)", uint8(t))
}

// ParseTier returns the tier with the provided case-insensitive name.
func ParseTier(name string) (Tier, error) {
	switch strings.ToLower(name) {
	case "secure":
		return Secure, nil
	case "fast":
		return Fast, nil
	}
	str := fmt.Sprintf("unknown quality tier %q", name)
	return 0, makeError(ErrInvalidTier, str)
}

// checkTier returns an error when the tier is unknown.
func checkTier(t Tier) error {
	if t != Secure && t != Fast {
		str := fmt.Sprintf("unknown quality tier %d", uint8(t))
		return makeError(ErrInvalidTier, str)
	}
	return nil
}

// Width identifies the width of a raw value.
type Width uint8

const (
	// Bits32 requests 32-bit values.
	Bits32 Width = iota

	// Bits64 requests 64-bit values.  It is only supported on 64-bit
	// targets.
	Bits64
)

// String returns the width as a human-readable string.
func (w Width) String() string {
	switch w {
	case Bits32:
		return "32-bit"
	case Bits64:
		return "64-bit"
	}
	return fmt.Sprintf("Width(%d)", uint8(w))
}

// WidthFromBits returns the width for the provided number of bits.  Only 64
// bits on 64-bit targets and 32 bits everywhere are accepted.
func WidthFromBits(bits uint) (Width, error) {
	switch {
	case bits == 32:
		return Bits32, nil
	case bits == 64 && !is32bit:
		return Bits64, nil
	}
	str := fmt.Sprintf("unsupported width of %d bits", bits)
	return 0, makeError(ErrUnsupportedWidth, str)
}

// Source identifies where the values for a tier come from.
type Source uint8

const (
	// SourceRDSEED indicates the seeded entropy instruction.
	SourceRDSEED Source = iota

	// SourceRDRAND indicates the buffered random instruction.
	SourceRDRAND

	// SourceSoftware indicates a software engine seeded by the operating
	// system.
	SourceSoftware
)

// String returns the source as a human-readable name.
func (s Source) String() string {
	switch s {
	case SourceRDSEED:
		return "RDSEED"
	case SourceRDRAND:
		return "RDRAND"
	case SourceSoftware:
		return "software"
	}
	return fmt.Sprintf("Source(%d)", uint8(s))
}
