// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hwinst exposes single attempts of the RDSEED and RDRAND hardware
// random number instructions.
//
// Each function performs exactly one invocation of the instruction and
// reports the state of the carry flag as ok.  The instructions may
// transiently fail under contention, so callers are expected to implement
// their own retry policy.
//
// The instructions are only implemented for amd64 builds without the purego
// build tag.  On every other target the functions always report failure and
// Available is false.  Callers must consult CPU feature detection before
// relying on the results since executing the instructions on a processor
// that lacks them raises an invalid opcode fault.
package hwinst
