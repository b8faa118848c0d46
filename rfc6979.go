// Copyright (c) 2014-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// This implements the deterministic nonce generation scheme described in
// RFC 6979 (https://tools.ietf.org/html/rfc6979), specialized to the
// HMAC-SHA-256-based construction spec §4.5.1 describes.

import (
	"math/big"
)

// maxRFC6979Iterations bounds the candidate-nonce loop.  Exceeding it is an
// invariant violation per spec §7/§9: it should be unreachable for any
// valid (message, private key) pair.
const maxRFC6979Iterations = 1000

// rfc6979Candidates returns, lazily, successive candidate nonces for the
// given 32-byte hash and private scalar bytes, each the integer value of V
// in [0, 2^256) with range checking against n left to the caller, following
// the HMAC-SHA-256 construction of RFC 6979 section 3.2:
//
//	V = 0x01 x 32, K = 0x00 x 32
//	K = HMAC_K(V || 0x00 || d || h); V = HMAC_K(V)
//	K = HMAC_K(V || 0x01 || d || h); V = HMAC_K(V)
//	loop: V = HMAC_K(V); candidate = int(V)
//	      if candidate out of range or rejected by caller:
//	          K = HMAC_K(V || 0x00); V = HMAC_K(V)
//
// next returns the next candidate on each call, or panics if called more
// than maxRFC6979Iterations times without the caller accepting a value
// (which spec §7 documents as a fatal InvariantViolation).
type rfc6979Candidates struct {
	k, v         []byte
	iteration    int
	attemptLimit int
}

func newRFC6979Candidates(privKeyBytes, hash []byte) *rfc6979Candidates {
	v := make([]byte, 32)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, 32)

	k = hmacSHA256(k, append(append(append([]byte{}, v...), 0x00), append(append([]byte{}, privKeyBytes...), hash...)...))
	v = hmacSHA256(k, v)
	k = hmacSHA256(k, append(append(append([]byte{}, v...), 0x01), append(append([]byte{}, privKeyBytes...), hash...)...))
	v = hmacSHA256(k, v)

	return &rfc6979Candidates{k: k, v: v, attemptLimit: maxRFC6979Iterations}
}

// next returns the next candidate nonce in [0, 2^256), without range
// reduction; the caller is responsible for checking 0 < t < n and calling
// reject if the candidate should be discarded.
func (c *rfc6979Candidates) next() *big.Int {
	c.iteration++
	if c.iteration > c.attemptLimit {
		invariantViolation("secp256k1: RFC 6979 nonce generation exceeded %d iterations", c.attemptLimit)
	}
	c.v = hmacSHA256(c.k, c.v)
	return new(big.Int).SetBytes(c.v)
}

// reject refreshes K and V after a candidate is discarded, per the
// RFC 6979 refresh step.
func (c *rfc6979Candidates) reject() {
	c.k = hmacSHA256(c.k, append(append([]byte{}, c.v...), 0x00))
	c.v = hmacSHA256(c.k, c.v)
}

// nonceRFC6979 runs the RFC 6979 candidate loop to completion, returning
// the first candidate k in [1, n) for which accept(k) reports true.  This
// is the shape spec §9 calls for: an explicit loop with a bounded
// iteration cap and a fatal error on exhaustion, rather than the source's
// natural recursion.
func nonceRFC6979(privKeyBytes, hash []byte, accept func(k *big.Int) bool) *big.Int {
	n := orderN()
	gen := newRFC6979Candidates(privKeyBytes, hash)
	for {
		t := gen.next()
		if t.Sign() <= 0 || t.Cmp(n) >= 0 {
			gen.reject()
			continue
		}
		if !accept(t) {
			gen.reject()
			continue
		}
		return t
	}
}
