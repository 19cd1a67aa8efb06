// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prng implements a ChaCha20 keystream engine keyed with entropy
// supplied by the caller, such as values from hardware random number
// instructions.
//
// Engines seeded from the operating system are provided by
// github.com/decred/dcrd/crypto/rand.  An engine is intended to be created for
// a single generation request and is not safe for concurrent access.
package prng

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/chacha20"
)

// KeySize is the size of the key accepted by NewFromKey.
const KeySize = chacha20.KeySize

// maxCipherRead is the number of keystream bytes produced before the engine
// derives a new key.
const maxCipherRead = 4 * 1024 * 1024 // 4 MiB

// nonce implements a 12-byte little endian counter suitable for use as an
// incrementing ChaCha20 nonce.
type nonce [chacha20.NonceSize]byte

func (n *nonce) inc() {
	n0 := binary.LittleEndian.Uint32(n[0:4])
	n1 := binary.LittleEndian.Uint32(n[4:8])
	n2 := binary.LittleEndian.Uint32(n[8:12])

	var carry uint32
	n0, carry = bits.Add32(n0, 1, carry)
	n1, carry = bits.Add32(n1, 0, carry)
	n2, _ = bits.Add32(n2, 0, carry)

	binary.LittleEndian.PutUint32(n[0:4], n0)
	binary.LittleEndian.PutUint32(n[4:8], n1)
	binary.LittleEndian.PutUint32(n[8:12], n2)
}

// PRNG is a pseudorandom number generator producing uniformly distributed
// bytes and integers from a caller supplied key.  PRNG methods are not safe
// for concurrent access.
type PRNG struct {
	key    [KeySize]byte
	nonce  nonce
	cipher chacha20.Cipher
	read   int
}

// NewFromKey returns an engine keyed with the provided entropy.  Engines
// created from the same key produce the same output.
func NewFromKey(key *[KeySize]byte) *PRNG {
	p := &PRNG{key: *key}
	p.rekey()
	return p
}

// rekey replaces the cipher with one using the current key and the next
// nonce.
func (p *PRNG) rekey() {
	// never errors with correct key and nonce sizes
	cipher, _ := chacha20.NewUnauthenticatedCipher(p.key[:], p.nonce[:])
	p.cipher = *cipher
	p.nonce.inc()
	p.read = 0
}

// Read fills s with len(s) random bytes.  The output does not depend on the
// previous contents of s.  Read never errors.
func (p *PRNG) Read(s []byte) (n int, err error) {
	clear(s)
	for p.read+len(s) > maxCipherRead {
		l := maxCipherRead - p.read
		p.cipher.XORKeyStream(s[:l], s[:l])

		// Derive the next key from unused keystream.
		p.cipher.XORKeyStream(p.key[:], p.key[:])
		p.rekey()
		n += l
		s = s[l:]
	}
	p.cipher.XORKeyStream(s, s)
	p.read += len(s)
	n += len(s)
	return n, nil
}
