// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/decred/hwrand"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultTier       = "fast"
	defaultCount      = 1
	defaultFormat     = "dec"
	defaultLogLevel   = "info"
	defaultMaxLogRoll = 3
)

// config defines the configuration options for hwrand.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ShowCaps    bool   `long:"caps" description:"Display the detected hardware random number capabilities and exit"`
	Tier        string `short:"t" long:"tier" env:"HWRAND_TIER" description:"Quality tier {secure, fast}"`
	Width       uint   `short:"w" long:"width" env:"HWRAND_WIDTH" description:"Width of generated values in bits {32, 64} (default: 32 for integers, 64 for floats)"`
	Count       uint64 `short:"n" long:"count" description:"Number of values to generate; 0 generates until interrupted"`
	Min         string `long:"min" description:"Minimum value (inclusive, default 0)"`
	Max         string `long:"max" description:"Maximum value (inclusive, default largest value of the width; for floats the largest finite value, which is practically unbounded)"`
	Float       bool   `short:"f" long:"float" description:"Generate floating point values"`
	Format      string `long:"format" description:"Output format {dec, hex, raw}"`
	MaxRetries  uint32 `long:"maxretries" env:"HWRAND_MAXRETRIES" description:"Maximum consecutive failed hardware instruction attempts before failing; 0 retries forever"`
	NoRDSEED    bool   `long:"nordseed" description:"Disable use of the RDSEED instruction"`
	NoRDRAND    bool   `long:"nordrand" description:"Disable use of the RDRAND instruction"`
	DebugLevel  string `short:"d" long:"debuglevel" env:"HWRAND_DEBUGLEVEL" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogFile     string `long:"logfile" description:"Additionally write log output to the given file, rotating it as it grows"`

	// The following fields are derived from the options above during
	// validation.
	tier               hwrand.Tier
	width              hwrand.Width
	bounded            bool
	minInt, maxInt     uint64
	minFloat, maxFloat float64
}

// errSuppressUsage signifies that an error that happened during the initial
// configuration phase should suppress the usage output since it was not caused
// by the user.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// generatorConfig returns the library configuration for the options.
func (cfg *config) generatorConfig() *hwrand.Config {
	return &hwrand.Config{
		MaxRetries:    cfg.MaxRetries,
		DisableRDSEED: cfg.NoRDSEED,
		DisableRDRAND: cfg.NoRDRAND,
	}
}

// parseIntBound parses an integer bound for the provided width.  An empty
// string results in the provided default.
func parseIntBound(s string, width hwrand.Width, def uint64) (uint64, error) {
	if s == "" {
		return def, nil
	}
	bitSize := 32
	if width == hwrand.Bits64 {
		bitSize = 64
	}
	return strconv.ParseUint(s, 0, bitSize)
}

// parseFloatBound parses a finite floating point bound of the provided
// precision.  An empty string results in the provided default.
func parseFloatBound(s string, bitSize int, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errors.New("value is not finite")
	}
	return f, nil
}

// loadConfig initializes and parses the config using command line options and
// environment variables.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Apply environment variables for options that define one
//  3. Override with command line options
//
// The above results in hwrand functioning properly without any options while
// still allowing the user to override settings with environment variables
// and command line options.  Command line options always take precedence.
func loadConfig(appName string, args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		Tier:       defaultTier,
		Count:      defaultCount,
		Format:     defaultFormat,
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	parser.Name = appName
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		// The parser already printed the error or help message.
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		return &cfg, remainingArgs, nil
	}

	funcName := "loadConfig"
	if len(remainingArgs) > 0 {
		str := "%s: unexpected positional arguments %v"
		err := fmt.Errorf(str, funcName, remainingArgs)
		return nil, nil, err
	}

	// Initialize log rotation when requested.  After the log rotation has
	// been initialized, the logger variables may be used.
	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile, defaultMaxLogRoll); err != nil {
			str := "%s: %v"
			return nil, nil, errSuppressUsage(fmt.Sprintf(str, funcName, err))
		}
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %w", funcName, err)
		return nil, nil, err
	}

	// Validate the tier.
	cfg.tier, err = hwrand.ParseTier(cfg.Tier)
	if err != nil {
		str := "%s: the specified tier [%v] is invalid -- supported tiers " +
			"are secure and fast"
		err := fmt.Errorf(str, funcName, cfg.Tier)
		return nil, nil, err
	}

	// Validate the output format.
	cfg.Format = strings.ToLower(cfg.Format)
	switch cfg.Format {
	case "dec", "hex", "raw":
	default:
		str := "%s: the specified format [%v] is invalid -- supported " +
			"formats are dec, hex, and raw"
		err := fmt.Errorf(str, funcName, cfg.Format)
		return nil, nil, err
	}

	// Validate the width.  Floating point values of either precision are
	// available on all targets while 64-bit integers require a 64-bit
	// target.
	switch {
	case cfg.Width == 0 && cfg.Float:
		cfg.Width = 64
	case cfg.Width == 0:
		cfg.Width = 32
	}
	switch {
	case cfg.Float && cfg.Width == 32:
		cfg.width = hwrand.Bits32
	case cfg.Float && cfg.Width == 64:
		cfg.width = hwrand.Bits64
	case cfg.Float:
		err = errors.New("unsupported float width")
	default:
		cfg.width, err = hwrand.WidthFromBits(cfg.Width)
	}
	if err != nil {
		str := "%s: the specified width [%v] is invalid -- %v"
		err := fmt.Errorf(str, funcName, cfg.Width, err)
		return nil, nil, err
	}

	// Parse and validate the bounds.
	cfg.bounded = cfg.Min != "" || cfg.Max != ""
	if cfg.Float {
		bitSize, maxFloat := 64, math.MaxFloat64
		if cfg.width == hwrand.Bits32 {
			bitSize, maxFloat = 32, math.MaxFloat32
		}
		cfg.minFloat, err = parseFloatBound(cfg.Min, bitSize, 0)
		if err != nil {
			str := "%s: the specified minimum [%v] is invalid -- %v"
			err := fmt.Errorf(str, funcName, cfg.Min, err)
			return nil, nil, err
		}
		cfg.maxFloat, err = parseFloatBound(cfg.Max, bitSize, maxFloat)
		if err != nil {
			str := "%s: the specified maximum [%v] is invalid -- %v"
			err := fmt.Errorf(str, funcName, cfg.Max, err)
			return nil, nil, err
		}
		if cfg.minFloat > cfg.maxFloat {
			str := "%s: the minimum [%v] exceeds the maximum [%v]"
			err := fmt.Errorf(str, funcName, cfg.minFloat, cfg.maxFloat)
			return nil, nil, err
		}
		return &cfg, remainingArgs, nil
	}

	maxInt := uint64(math.MaxUint32)
	if cfg.width == hwrand.Bits64 {
		maxInt = math.MaxUint64
	}
	cfg.minInt, err = parseIntBound(cfg.Min, cfg.width, 0)
	if err != nil {
		str := "%s: the specified minimum [%v] is invalid -- %v"
		err := fmt.Errorf(str, funcName, cfg.Min, err)
		return nil, nil, err
	}
	cfg.maxInt, err = parseIntBound(cfg.Max, cfg.width, maxInt)
	if err != nil {
		str := "%s: the specified maximum [%v] is invalid -- %v"
		err := fmt.Errorf(str, funcName, cfg.Max, err)
		return nil, nil, err
	}
	if cfg.minInt > cfg.maxInt {
		str := "%s: the minimum [%v] exceeds the maximum [%v]"
		err := fmt.Errorf(str, funcName, cfg.minInt, cfg.maxInt)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
