// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"encoding/binary"
	"math/bits"
)

// nameCache is a cache of object member names converted from a []byte.
// Documents tend to repeat the same names across many objects,
// so parsed trees can share a single copy of each.
type nameCache [256]string // 256*unsafe.Sizeof(string("")) => 4KiB

// make returns the string form of b.
// It returns a pre-allocated string from c if present, otherwise
// it allocates a new string, inserts it into the cache, and returns it.
// A nil cache always allocates.
func (c *nameCache) make(b []byte) string {
	const (
		minCachedLen = 2   // single byte strings are already interned by the runtime
		maxCachedLen = 256 // large enough for UUIDs, IPv6 addresses, SHA-256 checksums, etc.
	)
	if c == nil || len(b) < minCachedLen || len(b) > maxCachedLen {
		return string(b)
	}

	// Hash the fixed-width prefix and suffix so that hashing is constant time.
	var lo, hi uint64
	switch {
	case len(b) >= 8:
		lo = binary.LittleEndian.Uint64(b[:8])
		hi = binary.LittleEndian.Uint64(b[len(b)-8:])
	case len(b) >= 4:
		lo = uint64(binary.LittleEndian.Uint32(b[:4]))
		hi = uint64(binary.LittleEndian.Uint32(b[len(b)-4:]))
	default:
		lo = uint64(binary.LittleEndian.Uint16(b[:2]))
		hi = uint64(binary.LittleEndian.Uint16(b[len(b)-2:]))
	}
	n := uint64(len(b))
	h := hash128(lo^n, hi^n)

	i := h % uint64(len(*c))
	if s := (*c)[i]; s == string(b) {
		return s
	}
	s := string(b)
	(*c)[i] = s
	return s
}

// hash128 returns the hash of two uint64s as a single uint64.
// It is XXH64 of a 16-byte input without the final avalanche step.
func hash128(lo, hi uint64) uint64 {
	const (
		prime1 = 0x9e3779b185ebca87
		prime2 = 0xc2b2ae3d27d4eb4f
		prime4 = 0x85ebca77c2b2ae63
		prime5 = 0x27d4eb2f165667c5
	)
	h := prime5 + uint64(16)
	h ^= bits.RotateLeft64(lo*prime2, 31) * prime1
	h = bits.RotateLeft64(h, 27)*prime1 + prime4
	h ^= bits.RotateLeft64(hi*prime2, 31) * prime1
	h = bits.RotateLeft64(h, 27)*prime1 + prime4
	return h
}
