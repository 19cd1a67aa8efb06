// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !purego

package hwinst

// Available indicates whether the instructions are implemented for the
// current build target.
const Available = true

// RDSEED32 executes the 32-bit form of RDSEED once.
func RDSEED32() (v uint32, ok bool)

// RDSEED64 executes the 64-bit form of RDSEED once.
func RDSEED64() (v uint64, ok bool)

// RDRAND32 executes the 32-bit form of RDRAND once.
func RDRAND32() (v uint32, ok bool)

// RDRAND64 executes the 64-bit form of RDRAND once.
func RDRAND64() (v uint64, ok bool)
