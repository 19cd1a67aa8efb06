// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"bytes"
	"testing"
)

// testKey returns a key with every byte set to the provided value.
func testKey(b byte) *[KeySize]byte {
	var key [KeySize]byte
	for i := range key {
		key[i] = b
	}
	return &key
}

// TestNonceInc ensures the nonce counter carries across its 32-bit words.
func TestNonceInc(t *testing.T) {
	tests := []struct {
		name string
		in   nonce
		want nonce
	}{{
		name: "zero",
		in:   nonce{},
		want: nonce{0: 1},
	}, {
		name: "carry into second word",
		in:   nonce{0: 0xff, 1: 0xff, 2: 0xff, 3: 0xff},
		want: nonce{4: 1},
	}, {
		name: "carry into third word",
		in: nonce{0: 0xff, 1: 0xff, 2: 0xff, 3: 0xff, 4: 0xff, 5: 0xff,
			6: 0xff, 7: 0xff},
		want: nonce{8: 1},
	}, {
		name: "wraparound",
		in: nonce{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0xff},
		want: nonce{},
	}}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		n := test.in
		n.inc()
		if n != test.want {
			t.Errorf("%q: unexpected nonce -- got %x, want %x", test.name,
				n[:], test.want[:])
		}
	}
}

// TestNewFromKeyDeterministic ensures engines with the same key produce the
// same output and engines with different keys do not.
func TestNewFromKeyDeterministic(t *testing.T) {
	a := NewFromKey(testKey(1))
	b := NewFromKey(testKey(1))
	c := NewFromKey(testKey(2))

	bufA := make([]byte, 256)
	bufB := make([]byte, 256)
	bufC := make([]byte, 256)
	a.Read(bufA)
	b.Read(bufB)
	c.Read(bufC)
	if !bytes.Equal(bufA, bufB) {
		t.Fatal("engines with identical keys produced different output")
	}
	if bytes.Equal(bufA, bufC) {
		t.Fatal("engines with different keys produced identical output")
	}
}

// TestReadIgnoresBufferContents ensures the output does not depend on the
// previous contents of the destination buffer.
func TestReadIgnoresBufferContents(t *testing.T) {
	a := NewFromKey(testKey(3))
	b := NewFromKey(testKey(3))

	zeroed := make([]byte, 64)
	dirty := bytes.Repeat([]byte{0xa5}, 64)
	a.Read(zeroed)
	b.Read(dirty)
	if !bytes.Equal(zeroed, dirty) {
		t.Fatal("output depends on destination buffer contents")
	}
}

// TestReadRekeyBoundary ensures reads that cross the rekey boundary produce
// the same stream regardless of how the reads are split.
func TestReadRekeyBoundary(t *testing.T) {
	const total = maxCipherRead + maxCipherRead/4

	whole := make([]byte, total)
	n, err := NewFromKey(testKey(4)).Read(whole)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != total {
		t.Fatalf("short read: got %d, want %d", n, total)
	}

	p := NewFromKey(testKey(4))
	chunked := make([]byte, 0, total)
	chunk := make([]byte, maxCipherRead/4)
	for len(chunked) < total {
		p.Read(chunk)
		chunked = append(chunked, chunk...)
	}
	if !bytes.Equal(whole, chunked) {
		t.Fatal("split reads across rekey boundary diverged")
	}

	// The bytes following the boundary must not repeat the start of the
	// stream.
	if bytes.Equal(whole[:64], whole[maxCipherRead:maxCipherRead+64]) {
		t.Fatal("keystream repeated after rekey")
	}
}
