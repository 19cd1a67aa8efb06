// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hwrand

import (
	"fmt"
	"math"
)

// invalidRangeError returns an ErrInvalidRange error describing the bounds.
func invalidRangeError[T uint32 | uint64 | float32 | float64](min, max T) error {
	str := fmt.Sprintf("invalid range [%v, %v]", min, max)
	return makeError(ErrInvalidRange, str)
}

// Range32 returns a uniform random uint32 in the closed interval [min, max]
// without modulo bias, using an engine keyed from the provided tier.
//
// min is returned without consuming entropy when min equals max.  An error
// with the kind ErrInvalidRange is returned when min exceeds max.
func (g *Generator) Range32(tier Tier, min, max uint32) (uint32, error) {
	if err := checkTier(tier); err != nil {
		return 0, err
	}
	if min > max {
		return 0, invalidRangeError(min, max)
	}
	if min == max {
		return min, nil
	}

	p, err := g.engine(tier)
	if err != nil {
		return 0, err
	}
	span := max - min
	if span == math.MaxUint32 {
		return p.Uint32(), nil
	}
	return min + p.Uint32N(span+1), nil
}

// range64 returns a uniform random uint64 in the closed interval [min, max].
// It is exported as Range64 on 64-bit targets only.
func (g *Generator) range64(tier Tier, min, max uint64) (uint64, error) {
	if err := checkTier(tier); err != nil {
		return 0, err
	}
	if min > max {
		return 0, invalidRangeError(min, max)
	}
	if min == max {
		return min, nil
	}

	p, err := g.engine(tier)
	if err != nil {
		return 0, err
	}
	span := max - min
	if span == math.MaxUint64 {
		return p.Uint64(), nil
	}
	return min + p.Uint64N(span+1), nil
}

// Range returns a uniform random uint in the closed interval [min, max] with
// the same semantics as Range32.
func (g *Generator) Range(tier Tier, min, max uint) (uint, error) {
	if is32bit {
		v, err := g.Range32(tier, uint32(min), uint32(max))
		return uint(v), err
	}
	v, err := g.range64(tier, uint64(min), uint64(max))
	return uint(v), err
}

// unitScale returns a uniform random value in the closed interval [0, 1]
// with 32 bits of resolution.
func (g *Generator) unitScale(tier Tier) (float64, error) {
	v, err := g.Range32(tier, 0, math.MaxUint32)
	if err != nil {
		return 0, err
	}
	return float64(v) / math.MaxUint32, nil
}

// finite reports whether f is neither infinite nor NaN.
func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Float64Range returns a random float64 in the closed interval [min, max]
// using the provided tier.  The result is min offset by a uniform fraction of
// the span, with 32 bits of resolution.
//
// Both bounds must be finite and min must not exceed max.  Otherwise an error
// with the kind ErrInvalidRange is returned.  The result is never NaN or
// infinite, even when the span itself is not representable.
func (g *Generator) Float64Range(tier Tier, min, max float64) (float64, error) {
	if err := checkTier(tier); err != nil {
		return 0, err
	}
	if !finite(min) || !finite(max) || min > max {
		return 0, invalidRangeError(min, max)
	}
	if min == max {
		return min, nil
	}

	s, err := g.unitScale(tier)
	if err != nil {
		return 0, err
	}

	// Interpolating between the bounds rather than scaling max-min keeps
	// the intermediate values finite.  Rounding can still step just outside
	// the bounds, so clamp.
	v := min*(1-s) + max*s
	switch {
	case v < min:
		v = min
	case v > max:
		v = max
	}
	return v, nil
}

// Float32Range returns a random float32 in the closed interval [min, max]
// with the same semantics as Float64Range.
func (g *Generator) Float32Range(tier Tier, min, max float32) (float32, error) {
	if err := checkTier(tier); err != nil {
		return 0, err
	}
	min64, max64 := float64(min), float64(max)
	if !finite(min64) || !finite(max64) || min > max {
		return 0, invalidRangeError(min, max)
	}
	if min == max {
		return min, nil
	}

	s, err := g.unitScale(tier)
	if err != nil {
		return 0, err
	}
	v := float32(min64*(1-s) + max64*s)
	switch {
	case v < min:
		v = min
	case v > max:
		v = max
	}
	return v, nil
}

// Float64 returns a random float64 in [0, math.MaxFloat64] using the provided
// tier.
//
// Note that nearly every result is astronomically large.  Use Float64Range
// for a specific interval.
func (g *Generator) Float64(tier Tier) (float64, error) {
	return g.Float64Range(tier, 0, math.MaxFloat64)
}

// Float32 returns a random float32 in [0, math.MaxFloat32] using the provided
// tier.
//
// Note that nearly every result is astronomically large.  Use Float32Range
// for a specific interval.
func (g *Generator) Float32(tier Tier) (float32, error) {
	return g.Float32Range(tier, 0, math.MaxFloat32)
}
