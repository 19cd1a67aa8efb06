// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || sparc64 || wasm

package hwrand

// Uint64 returns a uniform random uint64 from the provided tier.
//
// This is only available on 64-bit targets.
func (g *Generator) Uint64(tier Tier) (uint64, error) {
	return g.raw64(tier)
}

// Range64 returns a uniform random uint64 in the closed interval [min, max]
// with the same semantics as Range32.
//
// This is only available on 64-bit targets.
func (g *Generator) Range64(tier Tier, min, max uint64) (uint64, error) {
	return g.range64(tier, min, max)
}
