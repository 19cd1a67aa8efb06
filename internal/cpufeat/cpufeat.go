// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cpufeat detects, once per process, whether the running processor
// supports the RDSEED and RDRAND hardware random number instructions.
//
// Detection never fails.  Targets without the CPUID mechanism, or builds
// without an implementation of the instructions, simply report that neither
// instruction is available.
package cpufeat

import (
	"fmt"
	"sync"

	"github.com/decred/hwrand/internal/hwinst"
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// Flags houses the hardware random number capabilities of the processor.
//
// The values returned by Detect are immutable for the lifetime of the
// process.
type Flags struct {
	// HasRDSEED indicates the seeded entropy instruction is usable.
	HasRDSEED bool

	// HasRDRAND indicates the buffered random instruction is usable.
	HasRDRAND bool
}

// Without returns a copy of the flags with the requested capabilities
// masked off.  It is primarily useful for forcing the software fallback.
func (f Flags) Without(rdseed, rdrand bool) Flags {
	if rdseed {
		f.HasRDSEED = false
	}
	if rdrand {
		f.HasRDRAND = false
	}
	return f
}

// String returns a human-readable summary of the flags.
func (f Flags) String() string {
	return fmt.Sprintf("RDSEED: %v, RDRAND: %v", f.HasRDSEED, f.HasRDRAND)
}

// probe reads the raw feature bits.  The x/sys/cpu package decodes CPUID leaf
// 1 ECX bit 30 (RDRAND) and leaf 7 EBX bit 18 (RDSEED) during its own init,
// and reports false for both on non-x86 targets.
func probe() Flags {
	return Flags{
		HasRDSEED: hwinst.Available && cpu.X86.HasRDSEED,
		HasRDRAND: hwinst.Available && cpu.X86.HasRDRAND,
	}
}

// detectOnce guards the process-wide detection result.
var detectOnce = sync.OnceValue(probe)

// Detect returns the cached hardware random number capabilities of the
// processor.  The first call performs the detection and all calls, including
// concurrent first calls, observe the same result.
func Detect() Flags {
	return detectOnce()
}

// Info houses diagnostic metadata about the processor.  It has no effect on
// which entropy source is selected.
type Info struct {
	VendorString string
	BrandName    string
	LogicalCores int

	// CPUIDAgrees indicates whether an independent CPUID decoding reports
	// the same RDSEED and RDRAND support as the flags returned by Detect
	// prior to masking by build support.
	CPUIDAgrees bool
}

// String returns a human-readable summary of the processor metadata.
func (i Info) String() string {
	vendor := i.VendorString
	if vendor == "" {
		vendor = "unknown vendor"
	}
	brand := i.BrandName
	if brand == "" {
		brand = "unknown model"
	}
	return fmt.Sprintf("%s (%s, %d logical cores)", brand, vendor,
		i.LogicalCores)
}

var infoOnce = sync.OnceValue(func() Info {
	agrees := cpuid.CPU.Supports(cpuid.RDSEED) == cpu.X86.HasRDSEED &&
		cpuid.CPU.Supports(cpuid.RDRAND) == cpu.X86.HasRDRAND
	return Info{
		VendorString: cpuid.CPU.VendorString,
		BrandName:    cpuid.CPU.BrandName,
		LogicalCores: cpuid.CPU.LogicalCores,
		CPUIDAgrees:  agrees,
	}
})

// DetectInfo returns cached diagnostic metadata about the processor.
func DetectInfo() Info {
	return infoOnce()
}
