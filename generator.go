// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hwrand

import (
	"encoding/binary"
	"fmt"

	"github.com/decred/dcrd/crypto/rand"
	"github.com/decred/hwrand/internal/cpufeat"
	"github.com/decred/hwrand/internal/hwinst"
	"github.com/decred/hwrand/internal/prng"
)

// is32bit is true when the target has 32-bit words.
const is32bit = ^uint(0)>>32 == 0

// Config houses the options for creating a Generator.  The zero value is the
// default configuration.
type Config struct {
	// MaxRetries is the maximum number of consecutive failed invocations of a
	// hardware instruction before a request fails with ErrRetryExhausted.
	// Zero retries until the instruction succeeds.
	MaxRetries uint32

	// DisableRDSEED prevents use of the seeded entropy instruction so that
	// Secure requests are served by the software engine.
	DisableRDSEED bool

	// DisableRDRAND prevents use of the buffered random instruction so that
	// Fast requests are served by the software engine.
	DisableRDRAND bool
}

// Generator produces random values according to the requested quality tier.
// It is immutable after creation and safe for concurrent access.
type Generator struct {
	flags      cpufeat.Flags
	maxRetries uint32

	// These are the single attempt hardware instruction steps.  They are only
	// replaced by tests.
	seed32 func() (uint32, bool)
	seed64 func() (uint64, bool)
	rand32 func() (uint32, bool)
	rand64 func() (uint64, bool)
}

// NewGenerator returns a generator for the provided configuration.  A nil
// configuration is treated the same as the zero value.
func NewGenerator(cfg *Config) *Generator {
	if cfg == nil {
		cfg = &Config{}
	}
	flags := cpufeat.Detect().Without(cfg.DisableRDSEED, cfg.DisableRDRAND)
	g := newGenerator(flags, cfg.MaxRetries)
	log.Debugf("Generator sources: secure tier %s, fast tier %s (max "+
		"retries %d)", g.Source(Secure), g.Source(Fast), cfg.MaxRetries)
	return g
}

// newGenerator returns a generator using the provided capabilities and the
// real hardware instruction steps.
func newGenerator(flags cpufeat.Flags, maxRetries uint32) *Generator {
	return &Generator{
		flags:      flags,
		maxRetries: maxRetries,
		seed32:     hwinst.RDSEED32,
		seed64:     hwinst.RDSEED64,
		rand32:     hwinst.RDRAND32,
		rand64:     hwinst.RDRAND64,
	}
}

// Source returns where values for the provided tier come from.  Unknown
// tiers report the software engine.
func (g *Generator) Source(tier Tier) Source {
	switch {
	case tier == Secure && g.flags.HasRDSEED:
		return SourceRDSEED
	case tier == Fast && g.flags.HasRDRAND:
		return SourceRDRAND
	}
	return SourceSoftware
}

// spin repeatedly invokes a hardware instruction step until it succeeds or,
// when maxRetries is non-zero, until it has failed that many times.
func spin[T uint32 | uint64](step func() (T, bool), maxRetries uint32, tier Tier) (T, error) {
	for attempt := uint32(0); maxRetries == 0 || attempt < maxRetries; attempt++ {
		if v, ok := step(); ok {
			return v, nil
		}
	}

	log.Debugf("Hardware instruction for %s tier failed %d consecutive "+
		"attempts", tier, maxRetries)
	str := fmt.Sprintf("%s tier hardware instruction failed %d consecutive "+
		"attempts", tier, maxRetries)
	return 0, makeError(ErrRetryExhausted, str)
}

// uniformEngine describes the engines used to serve requests.  It is
// implemented by both the operating system seeded engine and the engine keyed
// from hardware entropy.
type uniformEngine interface {
	Uint32() uint32
	Uint64() uint64
	Uint32N(n uint32) uint32
	Uint64N(n uint64) uint64
}

// newSoftwareEngine returns an engine freshly seeded from the operating
// system.
func newSoftwareEngine() (*rand.PRNG, error) {
	p, err := rand.NewPRNG()
	if err != nil {
		str := fmt.Sprintf("unable to seed software engine: %v", err)
		return nil, makeError(ErrSeedSource, str)
	}
	return p, nil
}

// Uint32 returns a uniform random uint32 from the provided tier.
//
// An error is only possible for unknown tiers and, when the generator is
// configured with a retry limit, exhausted hardware retries.
func (g *Generator) Uint32(tier Tier) (uint32, error) {
	switch g.Source(tier) {
	case SourceRDSEED:
		return spin(g.seed32, g.maxRetries, tier)
	case SourceRDRAND:
		return spin(g.rand32, g.maxRetries, tier)
	}
	if err := checkTier(tier); err != nil {
		return 0, err
	}

	p, err := newSoftwareEngine()
	if err != nil {
		return 0, err
	}
	return p.Uint32(), nil
}

// raw64 returns a uniform random uint64 from the provided tier.  It is
// exported as Uint64 on 64-bit targets only.
func (g *Generator) raw64(tier Tier) (uint64, error) {
	switch g.Source(tier) {
	case SourceRDSEED:
		return spin(g.seed64, g.maxRetries, tier)
	case SourceRDRAND:
		return spin(g.rand64, g.maxRetries, tier)
	}
	if err := checkTier(tier); err != nil {
		return 0, err
	}

	p, err := newSoftwareEngine()
	if err != nil {
		return 0, err
	}
	return p.Uint64(), nil
}

// Raw returns a uniform random value of the provided width from the provided
// tier.  32-bit values occupy the low bits of the result.
//
// Bits64 is only supported on 64-bit targets and results in an error with the
// kind ErrUnsupportedWidth elsewhere.
func (g *Generator) Raw(tier Tier, width Width) (uint64, error) {
	switch {
	case width == Bits32:
		v, err := g.Uint32(tier)
		return uint64(v), err
	case width == Bits64 && !is32bit:
		return g.raw64(tier)
	}
	str := fmt.Sprintf("%s values are not supported on this target", width)
	return 0, makeError(ErrUnsupportedWidth, str)
}

// Uint returns a uniform random uint of the native width of the target from
// the provided tier.
func (g *Generator) Uint(tier Tier) (uint, error) {
	if is32bit {
		v, err := g.Uint32(tier)
		return uint(v), err
	}
	v, err := g.raw64(tier)
	return uint(v), err
}

// Read fills b with random bytes from the provided tier.
//
// Hardware backed tiers invoke the instruction once per word.  Otherwise the
// bytes come from a single freshly seeded software engine.
func (g *Generator) Read(tier Tier, b []byte) error {
	if err := checkTier(tier); err != nil {
		return err
	}
	if g.Source(tier) == SourceSoftware {
		p, err := newSoftwareEngine()
		if err != nil {
			return err
		}
		// Reads from a seeded engine never error.
		p.Read(b)
		return nil
	}

	if is32bit {
		var word [4]byte
		for len(b) > 0 {
			v, err := g.Uint32(tier)
			if err != nil {
				return err
			}
			binary.LittleEndian.PutUint32(word[:], v)
			b = b[copy(b, word[:]):]
		}
		return nil
	}

	var word [8]byte
	for len(b) > 0 {
		v, err := g.raw64(tier)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(word[:], v)
		b = b[copy(b, word[:]):]
	}
	return nil
}

// engine returns a call-local engine keyed with entropy from the provided
// tier.
func (g *Generator) engine(tier Tier) (uniformEngine, error) {
	if g.Source(tier) == SourceSoftware {
		p, err := newSoftwareEngine()
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	var key [prng.KeySize]byte
	if err := g.Read(tier, key[:]); err != nil {
		return nil, err
	}
	p := prng.NewFromKey(&key)
	clear(key[:])
	return p, nil
}
