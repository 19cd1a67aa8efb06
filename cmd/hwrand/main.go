// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/decred/hwrand"
	"github.com/decred/hwrand/internal/cpufeat"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

// nextInt returns the next integer value according to the configuration.
// Unbounded requests return raw values spanning the full width.
func nextInt(cfg *config, g *hwrand.Generator) (uint64, error) {
	if !cfg.bounded {
		return g.Raw(cfg.tier, cfg.width)
	}
	if cfg.width == hwrand.Bits32 {
		v, err := g.Range32(cfg.tier, uint32(cfg.minInt), uint32(cfg.maxInt))
		return uint64(v), err
	}

	// 64-bit widths are only accepted on 64-bit targets, so uint holds the
	// full bounds.
	v, err := g.Range(cfg.tier, uint(cfg.minInt), uint(cfg.maxInt))
	return uint64(v), err
}

// appendValue appends the next value, formatted according to the
// configuration, to buf.
func appendValue(buf []byte, cfg *config, g *hwrand.Generator) ([]byte, error) {
	switch {
	case cfg.Float && cfg.width == hwrand.Bits32:
		v, err := g.Float32Range(cfg.tier, float32(cfg.minFloat),
			float32(cfg.maxFloat))
		if err != nil {
			return buf, err
		}
		switch cfg.Format {
		case "raw":
			return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v)), nil
		case "hex":
			buf = strconv.AppendFloat(buf, float64(v), 'x', -1, 32)
		default:
			buf = strconv.AppendFloat(buf, float64(v), 'g', -1, 32)
		}
		return append(buf, '\n'), nil

	case cfg.Float:
		v, err := g.Float64Range(cfg.tier, cfg.minFloat, cfg.maxFloat)
		if err != nil {
			return buf, err
		}
		switch cfg.Format {
		case "raw":
			return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v)), nil
		case "hex":
			buf = strconv.AppendFloat(buf, v, 'x', -1, 64)
		default:
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		return append(buf, '\n'), nil
	}

	v, err := nextInt(cfg, g)
	if err != nil {
		return buf, err
	}
	switch {
	case cfg.Format == "raw" && cfg.width == hwrand.Bits32:
		return binary.LittleEndian.AppendUint32(buf, uint32(v)), nil
	case cfg.Format == "raw":
		return binary.LittleEndian.AppendUint64(buf, v), nil
	case cfg.Format == "hex" && cfg.width == hwrand.Bits32:
		buf = fmt.Appendf(buf, "%08x", v)
	case cfg.Format == "hex":
		buf = fmt.Appendf(buf, "%016x", v)
	default:
		buf = strconv.AppendUint(buf, v, 10)
	}
	return append(buf, '\n'), nil
}

// generate writes the configured number of values to w.  A count of zero
// generates values until the context is canceled.
func generate(ctx context.Context, cfg *config, g *hwrand.Generator, w io.Writer) error {
	var buf []byte
	for i := uint64(0); cfg.Count == 0 || i < cfg.Count; i++ {
		if shutdownRequested(ctx) {
			hwrdLog.Debugf("Stopped after %d values", i)
			return nil
		}

		var err error
		buf, err = appendValue(buf[:0], cfg, g)
		if err != nil {
			return err
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// supportDesc describes the support for an instruction given whether the
// hardware supports it and whether it was disabled by configuration.
func supportDesc(supported, disabled bool) string {
	switch {
	case !supported:
		return "unsupported"
	case disabled:
		return "supported (disabled)"
	}
	return "supported"
}

// printCaps writes the detected capabilities and the resulting sources for
// each tier to w.
func printCaps(w io.Writer, cfg *config, g *hwrand.Generator) error {
	caps := cpufeat.Detect()
	info := cpufeat.DetectInfo()
	_, err := fmt.Fprintf(w, "CPU:          %s\n"+
		"RDSEED:       %s\n"+
		"RDRAND:       %s\n"+
		"Secure tier:  %s\n"+
		"Fast tier:    %s\n",
		info, supportDesc(caps.HasRDSEED, cfg.NoRDSEED),
		supportDesc(caps.HasRDRAND, cfg.NoRDRAND),
		g.Source(hwrand.Secure), g.Source(hwrand.Fast))
	return err
}

// hwrandMain is the real main function for hwrand.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func hwrandMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	cfg, _, err := loadConfig(appName, os.Args[1:])
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			return nil
		}
		if !errors.As(err, &fe) {
			fmt.Fprintln(os.Stderr, err)
		}
		var e errSuppressUsage
		if !errors.As(err, &e) {
			fmt.Fprintf(os.Stderr, "Use %s -h to show usage\n", appName)
		}
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	}

	g := hwrand.NewGenerator(cfg.generatorConfig())
	if cfg.ShowCaps {
		return printCaps(os.Stdout, cfg, g)
	}

	if cfg.Format == "raw" && term.IsTerminal(int(os.Stdout.Fd())) {
		err := errors.New("refusing to write raw output to a terminal")
		hwrdLog.Error(err)
		return err
	}

	// Get a context that will be canceled when a shutdown signal has been
	// triggered from an OS signal such as SIGINT (Ctrl+C).
	ctx := shutdownListener()

	count := strconv.FormatUint(cfg.Count, 10)
	if cfg.Count == 0 {
		count = "unlimited"
	}
	hwrdLog.Debugf("Generating %s %s values from the %s tier (source %s)",
		count, cfg.width, cfg.tier, g.Source(cfg.tier))

	out := bufio.NewWriter(os.Stdout)
	err = generate(ctx, cfg, g, out)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		hwrdLog.Errorf("Unable to generate values: %v", err)
		return err
	}
	return nil
}

func main() {
	if err := hwrandMain(); err != nil {
		os.Exit(1)
	}
}
