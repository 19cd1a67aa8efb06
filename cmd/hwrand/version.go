// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import "runtime/debug"

// appVersion is the application version per the semantic versioning 2.0.0
// spec (https://semver.org/).
//
// It is defined as a variable so it can be overridden during the build
// process with:
// '-ldflags "-X main.appVersion=fullsemver"'
// if needed.
var appVersion = "1.0.0-pre"

// vcsCommitID returns the abbreviated commit the binary was built from, or
// the empty string when the build carries no version control information.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs == "" {
		return ""
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}

// version returns the application version including the commit as build
// metadata when it is known.
func version() string {
	if commit := vcsCommitID(); commit != "" {
		return appVersion + "+" + commit
	}
	return appVersion
}
