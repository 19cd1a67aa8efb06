// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hwrand

import "io"

// tierReader implements io.Reader for a generator and tier.
type tierReader struct {
	g    *Generator
	tier Tier
}

// Read fills b with random bytes.  It only errors under the same conditions
// as Generator.Read, in which case no bytes are reported as read.
func (r tierReader) Read(b []byte) (int, error) {
	if err := r.g.Read(r.tier, b); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Reader returns an io.Reader producing random bytes from the provided tier.
// The returned reader is safe for concurrent access.
func (g *Generator) Reader(tier Tier) io.Reader {
	return tierReader{g: g, tier: tier}
}
