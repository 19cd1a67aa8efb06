// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"math"
	"testing"

	"github.com/decred/hwrand"
	flags "github.com/jessevdk/go-flags"
)

// is32bit reports whether the target has 32-bit integers.
const is32bit = ^uint(0)>>32 == 0

// TestLoadConfigDefaults ensures the configuration without any options
// results in a single unbounded 32-bit value from the fast tier.
func TestLoadConfigDefaults(t *testing.T) {
	cfg, remaining, err := loadConfig("hwrand", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("unexpected remaining args: %v", remaining)
	}
	if cfg.tier != hwrand.Fast {
		t.Errorf("tier: got %v, want %v", cfg.tier, hwrand.Fast)
	}
	if cfg.width != hwrand.Bits32 {
		t.Errorf("width: got %v, want %v", cfg.width, hwrand.Bits32)
	}
	if cfg.Count != defaultCount {
		t.Errorf("count: got %d, want %d", cfg.Count, defaultCount)
	}
	if cfg.Format != defaultFormat {
		t.Errorf("format: got %q, want %q", cfg.Format, defaultFormat)
	}
	if cfg.bounded {
		t.Error("default config is unexpectedly bounded")
	}
	if cfg.minInt != 0 || cfg.maxInt != math.MaxUint32 {
		t.Errorf("bounds: got [%d, %d], want [0, %d]", cfg.minInt,
			cfg.maxInt, uint64(math.MaxUint32))
	}
}

// TestLoadConfig ensures the options are validated and the derived values are
// set as expected.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		tier     hwrand.Tier
		width    hwrand.Width
		bounded  bool
		minInt   uint64
		maxInt   uint64
		minFloat float64
		maxFloat float64
		only64   bool
	}{{
		name:    "secure tier with bounds",
		args:    []string{"--tier=secure", "--min=10", "--max=20"},
		tier:    hwrand.Secure,
		width:   hwrand.Bits32,
		bounded: true,
		minInt:  10,
		maxInt:  20,
	}, {
		name:   "tier names are case insensitive",
		args:   []string{"-t", "SECURE"},
		tier:   hwrand.Secure,
		width:  hwrand.Bits32,
		maxInt: math.MaxUint32,
	}, {
		name:    "hex bounds",
		args:    []string{"--min=0x10", "--max=0xff"},
		tier:    hwrand.Fast,
		width:   hwrand.Bits32,
		bounded: true,
		minInt:  0x10,
		maxInt:  0xff,
	}, {
		name:    "only max bounded",
		args:    []string{"--max=6"},
		tier:    hwrand.Fast,
		width:   hwrand.Bits32,
		bounded: true,
		maxInt:  6,
	}, {
		name:   "64-bit integers",
		args:   []string{"-w", "64"},
		tier:   hwrand.Fast,
		width:  hwrand.Bits64,
		maxInt: math.MaxUint64,
		only64: true,
	}, {
		name:     "float defaults to 64 bits",
		args:     []string{"--float"},
		tier:     hwrand.Fast,
		width:    hwrand.Bits64,
		maxFloat: math.MaxFloat64,
	}, {
		name:     "float32 defaults",
		args:     []string{"-f", "-w", "32"},
		tier:     hwrand.Fast,
		width:    hwrand.Bits32,
		maxFloat: math.MaxFloat32,
	}, {
		name:     "negative float bounds",
		args:     []string{"-f", "--min=-1.5", "--max=2.5"},
		tier:     hwrand.Fast,
		width:    hwrand.Bits64,
		bounded:  true,
		minFloat: -1.5,
		maxFloat: 2.5,
	}, {
		name:    "invalid tier",
		args:    []string{"--tier=bogus"},
		wantErr: true,
	}, {
		name:    "invalid format",
		args:    []string{"--format=base64"},
		wantErr: true,
	}, {
		name:    "invalid integer width",
		args:    []string{"--width=16"},
		wantErr: true,
	}, {
		name:    "invalid float width",
		args:    []string{"-f", "--width=16"},
		wantErr: true,
	}, {
		name:    "invalid debug level",
		args:    []string{"--debuglevel=verbose"},
		wantErr: true,
	}, {
		name:    "min exceeds max",
		args:    []string{"--min=5", "--max=4"},
		wantErr: true,
	}, {
		name:    "float min exceeds max",
		args:    []string{"-f", "--min=5.5", "--max=-4"},
		wantErr: true,
	}, {
		name:    "bound overflows width",
		args:    []string{"--max=4294967296"},
		wantErr: true,
	}, {
		name:    "negative integer bound",
		args:    []string{"--min=-1"},
		wantErr: true,
	}, {
		name:    "infinite float bound",
		args:    []string{"-f", "--max=+Inf"},
		wantErr: true,
	}, {
		name:    "NaN float bound",
		args:    []string{"-f", "--min=NaN"},
		wantErr: true,
	}, {
		name:    "float32 bound overflow",
		args:    []string{"-f", "-w", "32", "--max=1e39"},
		wantErr: true,
	}, {
		name:    "positional arguments",
		args:    []string{"extra"},
		wantErr: true,
	}}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		if test.only64 && is32bit {
			continue
		}
		cfg, _, err := loadConfig("hwrand", test.args)
		if test.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if cfg.tier != test.tier {
			t.Errorf("%q: tier: got %v, want %v", test.name, cfg.tier,
				test.tier)
		}
		if cfg.width != test.width {
			t.Errorf("%q: width: got %v, want %v", test.name, cfg.width,
				test.width)
		}
		if cfg.bounded != test.bounded {
			t.Errorf("%q: bounded: got %v, want %v", test.name,
				cfg.bounded, test.bounded)
		}
		if cfg.minInt != test.minInt || cfg.maxInt != test.maxInt {
			t.Errorf("%q: integer bounds: got [%d, %d], want [%d, %d]",
				test.name, cfg.minInt, cfg.maxInt, test.minInt,
				test.maxInt)
		}
		if cfg.minFloat != test.minFloat || cfg.maxFloat != test.maxFloat {
			t.Errorf("%q: float bounds: got [%v, %v], want [%v, %v]",
				test.name, cfg.minFloat, cfg.maxFloat, test.minFloat,
				test.maxFloat)
		}
	}

	// Reset the log levels modified by the tests.
	setLogLevels(defaultLogLevel)
}

// TestLoadConfigEnv ensures options that define an environment variable are
// loaded from it and that command line options take precedence.
func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("HWRAND_TIER", "secure")
	t.Setenv("HWRAND_MAXRETRIES", "7")

	cfg, _, err := loadConfig("hwrand", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.tier != hwrand.Secure {
		t.Errorf("tier: got %v, want %v", cfg.tier, hwrand.Secure)
	}
	if got := cfg.generatorConfig().MaxRetries; got != 7 {
		t.Errorf("max retries: got %d, want 7", got)
	}

	cfg, _, err = loadConfig("hwrand", []string{"--tier=fast"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.tier != hwrand.Fast {
		t.Errorf("tier: got %v, want %v", cfg.tier, hwrand.Fast)
	}
}

// TestLoadConfigParseErrors ensures errors from the option parser are
// returned unwrapped so the caller can distinguish help requests.
func TestLoadConfigParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want flags.ErrorType
	}{{
		name: "help",
		args: []string{"-h"},
		want: flags.ErrHelp,
	}, {
		name: "unknown flag",
		args: []string{"--bogus"},
		want: flags.ErrUnknownFlag,
	}, {
		name: "malformed count",
		args: []string{"--count=many"},
		want: flags.ErrMarshal,
	}}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		_, _, err := loadConfig("hwrand", test.args)
		var fe *flags.Error
		if !errors.As(err, &fe) {
			t.Errorf("%q: unexpected error type %T: %v", test.name, err, err)
			continue
		}
		if fe.Type != test.want {
			t.Errorf("%q: got error type %v, want %v", test.name, fe.Type,
				test.want)
		}
	}
}

// TestGeneratorConfig ensures the instruction switches are carried through to
// the library configuration.
func TestGeneratorConfig(t *testing.T) {
	cfg, _, err := loadConfig("hwrand", []string{"--nordseed", "--nordrand",
		"--maxretries=3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := cfg.generatorConfig()
	if !got.DisableRDSEED || !got.DisableRDRAND || got.MaxRetries != 3 {
		t.Fatalf("unexpected generator config: %+v", got)
	}
}
