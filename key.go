// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/ecdsa"
	"crypto/rand"
	"math/big"
)

// CurveName is the tag every Key carries identifying the curve it belongs
// to.  This package only ever produces secp256k1 keys, but the tag is kept
// on the value per spec §3 so callers have a stable field to branch on if
// this package is ever extended.
const CurveName = "secp256k1"

// PrivKeyBytesLen is the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PubKeyBytesLenCompressed and PubKeyBytesLenUncompressed are the lengths
// in bytes of SEC1 compressed and uncompressed public key encodings.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65
)

// Key is a secp256k1 keypair value: a curve tag, an affine public point
// (always present), an optional 32-byte private scalar, and a compressed
// serialization preference, per spec §3/§4.3.  A Key owns its scalar;
// cloning a Key copies it.  The point is immutable once constructed.
type Key struct {
	Curve      string
	Point      AffinePoint
	d          *big.Int // private scalar, nil if this Key has no private component
	Compressed bool
}

// HasPrivate reports whether k carries a private scalar.
func (k *Key) HasPrivate() bool {
	return k.d != nil
}

// Clone returns a deep copy of k; the scalar, if present, is copied rather
// than shared.
func (k *Key) Clone() *Key {
	clone := &Key{Curve: k.Curve, Point: AffinePoint{X: new(big.Int).Set(k.Point.X), Y: new(big.Int).Set(k.Point.Y)}, Compressed: k.Compressed}
	if k.d != nil {
		clone.d = new(big.Int).Set(k.d)
	}
	return clone
}

// GenerateKey produces a new keypair using a cryptographically secure
// random source, per spec §4.3 "generate".  The returned key defaults to
// preferring compressed public key serialization.
func GenerateKey() (*Key, error) {
	priv, err := ecdsa.GenerateKey(S256(), rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Key{
		Curve:      CurveName,
		Point:      AffinePoint{X: priv.PublicKey.X, Y: priv.PublicKey.Y},
		d:          priv.D,
		Compressed: true,
	}, nil
}

// NewKeyFromPrivateKeyBytes derives a Key from a 32-byte big-endian private
// scalar d in [1, n), per spec §4.3 "from_privkey".  The public point is
// derived as d*G.
func NewKeyFromPrivateKeyBytes(privKeyBytes []byte) (*Key, error) {
	if len(privKeyBytes) != PrivKeyBytesLen {
		return nil, privKeyError(ErrPrivKeyInvalidLen, "private key must be 32 bytes")
	}
	d := new(big.Int).SetBytes(privKeyBytes)
	n := orderN()
	if d.Sign() == 0 || d.Cmp(n) >= 0 {
		return nil, privKeyError(ErrPrivKeyOutOfRange, "private key scalar out of range [1, n)")
	}
	pub := scalarMultAffine(d, baseG())
	return &Key{Curve: CurveName, Point: pub, d: d, Compressed: true}, nil
}

// NewKeyFromPublicKeyBytes parses a SEC1-encoded public key, either the
// 65-byte uncompressed form (0x04 || X || Y) or the 33-byte compressed form
// ({0x02|0x03} || X), per spec §4.3 "from_pubkey".  The resulting Key
// carries no private scalar and Compressed reflects the form of the input.
func NewKeyFromPublicKeyBytes(pubKeyBytes []byte) (*Key, error) {
	switch len(pubKeyBytes) {
	case PubKeyBytesLenUncompressed:
		if pubKeyBytes[0] != 0x04 {
			return nil, pubKeyError(ErrPubKeyInvalidFormat, "uncompressed public key must start with 0x04")
		}
		x := new(big.Int).SetBytes(pubKeyBytes[1:33])
		y := new(big.Int).SetBytes(pubKeyBytes[33:65])
		p := AffinePoint{X: x, Y: y}
		if !p.IsOnCurve() {
			return nil, pubKeyError(ErrPubKeyNotOnCurve, "public key point is not on the curve")
		}
		return &Key{Curve: CurveName, Point: p, Compressed: false}, nil

	case PubKeyBytesLenCompressed:
		prefix := pubKeyBytes[0]
		if prefix != 0x02 && prefix != 0x03 {
			return nil, pubKeyError(ErrPubKeyInvalidFormat, "compressed public key must start with 0x02 or 0x03")
		}
		x := new(big.Int).SetBytes(pubKeyBytes[1:33])
		y, ok := decompressY(x, prefix == 0x03)
		if !ok {
			return nil, pubKeyError(ErrPubKeyNotOnCurve, "public key x-coordinate is not on the curve")
		}
		return &Key{Curve: CurveName, Point: AffinePoint{X: x, Y: y}, Compressed: true}, nil

	default:
		return nil, pubKeyError(ErrPubKeyInvalidLen, "public key must be 33 or 65 bytes")
	}
}

// newKeyFromPoint wraps an affine point (with no private scalar) into a Key,
// used for the result of public-key recovery per spec §4.3's "point-only
// construction".
func newKeyFromPoint(p AffinePoint, compressed bool) *Key {
	return &Key{Curve: CurveName, Point: p, Compressed: compressed}
}

// PrivateKeyBytes returns the private scalar as a 32-byte big-endian
// encoding, per spec §4.3 "to_privkey".  It panics if k has no private
// scalar; callers should check HasPrivate first.
func (k *Key) PrivateKeyBytes() []byte {
	if k.d == nil {
		invariantViolation("secp256k1: key has no private scalar")
	}
	var buf [PrivKeyBytesLen]byte
	k.d.FillBytes(buf[:])
	return buf[:]
}

// PublicKeyBytes returns the SEC1 encoding of k's public point, compressed
// (0x02/0x03 || X) or uncompressed (0x04 || X || Y) depending on the
// compressed flag, per spec §4.3 "to_pubkey".
func (k *Key) PublicKeyBytes(compressed bool) []byte {
	var xBuf [32]byte
	k.Point.X.FillBytes(xBuf[:])

	if !compressed {
		var yBuf [32]byte
		k.Point.Y.FillBytes(yBuf[:])
		out := make([]byte, 0, PubKeyBytesLenUncompressed)
		out = append(out, 0x04)
		out = append(out, xBuf[:]...)
		out = append(out, yBuf[:]...)
		return out
	}

	prefix := byte(0x02)
	if k.Point.Y.Bit(0) == 1 {
		prefix = 0x03
	}
	out := make([]byte, 0, PubKeyBytesLenCompressed)
	out = append(out, prefix)
	out = append(out, xBuf[:]...)
	return out
}

// Serialize returns the public key bytes using k's own compressed
// preference.
func (k *Key) Serialize() []byte {
	return k.PublicKeyBytes(k.Compressed)
}

// PrivateScalar returns a copy of the private scalar, or nil if absent.
func (k *Key) PrivateScalar() *big.Int {
	if k.d == nil {
		return nil
	}
	return new(big.Int).Set(k.d)
}
