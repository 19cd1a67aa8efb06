// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || sparc64 || wasm

package hwrand

// SecureUint64 returns a uniform random uint64 from the Secure tier.
//
// This is only available on 64-bit targets.
func SecureUint64() uint64 {
	return must(defaultGenerator().Uint64(Secure))
}

// FastUint64 returns a uniform random uint64 from the Fast tier.
//
// This is only available on 64-bit targets.
func FastUint64() uint64 {
	return must(defaultGenerator().Uint64(Fast))
}

// SecureRange64 returns a uniform random uint64 in [min, max] from the Secure
// tier.  See Generator.Range32 for details.
//
// This is only available on 64-bit targets.
func SecureRange64(min, max uint64) (uint64, error) {
	return defaultGenerator().Range64(Secure, min, max)
}

// FastRange64 returns a uniform random uint64 in [min, max] from the Fast
// tier.  See Generator.Range32 for details.
//
// This is only available on 64-bit targets.
func FastRange64(min, max uint64) (uint64, error) {
	return defaultGenerator().Range64(Fast, min, max)
}
