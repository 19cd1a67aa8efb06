// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !amd64 || purego

package hwinst

// Available indicates whether the instructions are implemented for the
// current build target.
const Available = false

// RDSEED32 always fails on this target.
func RDSEED32() (v uint32, ok bool) { return 0, false }

// RDSEED64 always fails on this target.
func RDSEED64() (v uint64, ok bool) { return 0, false }

// RDRAND32 always fails on this target.
func RDRAND32() (v uint32, ok bool) { return 0, false }

// RDRAND64 always fails on this target.
func RDRAND64() (v uint64, ok bool) { return 0, false }
