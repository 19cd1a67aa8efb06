// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"encoding/binary"
	"math/bits"
)

// Uint32 returns a uniform random uint32.
func (p *PRNG) Uint32() uint32 {
	var b [4]byte
	p.Read(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// Uint64 returns a uniform random uint64.
func (p *PRNG) Uint64() uint64 {
	var b [8]byte
	p.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
// Panics if n == 0.
func (p *PRNG) Uint32N(n uint32) uint32 {
	if n == 0 {
		panic("prng: invalid argument to Uint32N")
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return p.Uint32() & (n - 1)
	}

	// Multiply-and-reject reduction.  The high word of x*n is uniform over
	// [0,n) once products whose low word falls below 2³² mod n are
	// rejected.  The threshold only needs computing when lo < n since the
	// threshold is always less than n.
	//
	// See https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
	hi, lo := bits.Mul32(p.Uint32(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul32(p.Uint32(), n)
		}
	}
	return hi
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
// Panics if n == 0.
func (p *PRNG) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("prng: invalid argument to Uint64N")
	}
	if uint64(uint32(n)) == n {
		return uint64(p.Uint32N(uint32(n)))
	}
	if n&(n-1) == 0 {
		return p.Uint64() & (n - 1)
	}

	hi, lo := bits.Mul64(p.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(p.Uint64(), n)
		}
	}
	return hi
}
