// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/hmac"
	"crypto/sha512"

	sha256simd "github.com/minio/sha256-simd"
)

// HashAlg identifies the message digest algorithm used by Sign, Verify, and
// RecoverKey, per spec §4.5.
type HashAlg int

const (
	// HashSHA256 selects SHA-256, the default digest algorithm.
	HashSHA256 HashAlg = iota
	// HashSHA384 selects SHA-384.
	HashSHA384
	// HashSHA512 selects SHA-512.
	HashSHA512
	// HashNone uses the message bytes verbatim, with no digest applied.
	HashNone
)

// digest hashes msg with the selected algorithm.  SHA-256 is computed with
// the accelerated github.com/minio/sha256-simd implementation; SHA-384 and
// SHA-512 fall back to the standard library since no third-party
// implementation of either appears in this package's reference corpus (see
// DESIGN.md).
func digest(alg HashAlg, msg []byte) ([]byte, error) {
	switch alg {
	case HashSHA256:
		sum := sha256simd.Sum256(msg)
		return sum[:], nil
	case HashSHA384:
		sum := sha512.Sum384(msg)
		return sum[:], nil
	case HashSHA512:
		sum := sha512.Sum512(msg)
		return sum[:], nil
	case HashNone:
		return msg, nil
	default:
		return nil, signatureError(ErrEncodingMismatch, "unsupported hash algorithm")
	}
}

// hmacSHA256 computes HMAC-SHA-256 over msg using key, backed by the same
// accelerated sha256-simd implementation used by digest, per spec §4.5.1's
// external hmac_sha256 collaborator.
func hmacSHA256(key, msg []byte) []byte {
	mac := hmac.New(sha256simd.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}
