// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hwrand

import (
	"io"
	"sync"
)

// defaultGenerator returns the process-wide generator used by the
// package-level functions.  It is created on first use with the default
// configuration, which retries hardware instructions until they succeed.
var defaultGenerator = sync.OnceValue(newDefaultGenerator)

func newDefaultGenerator() *Generator {
	return NewGenerator(nil)
}

// must panics when err is non-nil.  The default generator never limits
// retries and is only ever invoked with valid tiers, so the only possible
// error is a failure of the operating system entropy source.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// SourceFor returns where the package-level functions obtain values for the
// provided tier.
func SourceFor(tier Tier) Source {
	return defaultGenerator().Source(tier)
}

// SecureUint32 returns a uniform random uint32 from the Secure tier.
func SecureUint32() uint32 {
	return must(defaultGenerator().Uint32(Secure))
}

// FastUint32 returns a uniform random uint32 from the Fast tier.
func FastUint32() uint32 {
	return must(defaultGenerator().Uint32(Fast))
}

// SecureUint returns a uniform random uint of the native width from the
// Secure tier.
func SecureUint() uint {
	return must(defaultGenerator().Uint(Secure))
}

// FastUint returns a uniform random uint of the native width from the Fast
// tier.
func FastUint() uint {
	return must(defaultGenerator().Uint(Fast))
}

// SecureRange returns a uniform random uint in [min, max] from the Secure
// tier.  See Generator.Range32 for details.
func SecureRange(min, max uint) (uint, error) {
	return defaultGenerator().Range(Secure, min, max)
}

// FastRange returns a uniform random uint in [min, max] from the Fast tier.
// See Generator.Range32 for details.
func FastRange(min, max uint) (uint, error) {
	return defaultGenerator().Range(Fast, min, max)
}

// SecureRange32 returns a uniform random uint32 in [min, max] from the Secure
// tier.  See Generator.Range32 for details.
func SecureRange32(min, max uint32) (uint32, error) {
	return defaultGenerator().Range32(Secure, min, max)
}

// FastRange32 returns a uniform random uint32 in [min, max] from the Fast
// tier.  See Generator.Range32 for details.
func FastRange32(min, max uint32) (uint32, error) {
	return defaultGenerator().Range32(Fast, min, max)
}

// SecureFloat64Range returns a random float64 in [min, max] from the Secure
// tier.  See Generator.Float64Range for details.
func SecureFloat64Range(min, max float64) (float64, error) {
	return defaultGenerator().Float64Range(Secure, min, max)
}

// FastFloat64Range returns a random float64 in [min, max] from the Fast tier.
// See Generator.Float64Range for details.
func FastFloat64Range(min, max float64) (float64, error) {
	return defaultGenerator().Float64Range(Fast, min, max)
}

// SecureFloat32Range returns a random float32 in [min, max] from the Secure
// tier.  See Generator.Float64Range for details.
func SecureFloat32Range(min, max float32) (float32, error) {
	return defaultGenerator().Float32Range(Secure, min, max)
}

// FastFloat32Range returns a random float32 in [min, max] from the Fast tier.
// See Generator.Float64Range for details.
func FastFloat32Range(min, max float32) (float32, error) {
	return defaultGenerator().Float32Range(Fast, min, max)
}

// SecureFloat64 returns a random float64 in [0, math.MaxFloat64] from the
// Secure tier.  Nearly every result is astronomically large.
func SecureFloat64() float64 {
	return must(defaultGenerator().Float64(Secure))
}

// FastFloat64 returns a random float64 in [0, math.MaxFloat64] from the Fast
// tier.  Nearly every result is astronomically large.
func FastFloat64() float64 {
	return must(defaultGenerator().Float64(Fast))
}

// SecureFloat32 returns a random float32 in [0, math.MaxFloat32] from the
// Secure tier.  Nearly every result is astronomically large.
func SecureFloat32() float32 {
	return must(defaultGenerator().Float32(Secure))
}

// FastFloat32 returns a random float32 in [0, math.MaxFloat32] from the Fast
// tier.  Nearly every result is astronomically large.
func FastFloat32() float32 {
	return must(defaultGenerator().Float32(Fast))
}

// SecureRead fills b with random bytes from the Secure tier.
func SecureRead(b []byte) {
	if err := defaultGenerator().Read(Secure, b); err != nil {
		panic(err)
	}
}

// FastRead fills b with random bytes from the Fast tier.
func FastRead(b []byte) {
	if err := defaultGenerator().Read(Fast, b); err != nil {
		panic(err)
	}
}

// SecureReader returns an io.Reader producing random bytes from the Secure
// tier.  It is safe for concurrent access.
func SecureReader() io.Reader {
	return defaultGenerator().Reader(Secure)
}

// FastReader returns an io.Reader producing random bytes from the Fast tier.
// It is safe for concurrent access.
func FastReader() io.Reader {
	return defaultGenerator().Reader(Fast)
}
