// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
//   [SEC1]: Elliptic Curve Cryptography (May 31, 2009, Version 2.0)
//     https://www.secg.org/sec1-v2.pdf
//   RFC 6979: Deterministic Usage of the Digital Signature Algorithm (DSA)
//     and Elliptic Curve Digital Signature Algorithm (ECDSA)
//   RFC 5903: Elliptic Curve Groups modulo a Prime (ECP Groups) for IKE and IKEv2

import (
	"math/big"
)

// SignOptions controls the behavior of Sign, per spec §4.5.
type SignOptions struct {
	// Hash selects the message digest algorithm.  Defaults to HashSHA256.
	Hash HashAlg
	// Normalize applies BIP 62 low-S normalization.  DefaultSignOptions
	// (used when Sign is given nil options) sets it to true; the field's
	// zero value is false.
	Normalize bool
	// Compact serializes the signature in 65-byte compact form instead of
	// DER.
	Compact bool
	// Encoding applies a transport encoding to the serialized signature.
	Encoding Encoding
	// Recovery marks that the caller wants the recovery id.  Sign returns
	// the recovery id as its second result whether or not Recovery is set;
	// the field has no other effect.
	Recovery bool
	// Compressed overrides the key's own compressed preference when
	// producing a compact signature.  Nil inherits from the signing key.
	Compressed *bool
}

// DefaultSignOptions returns the spec §4.5 default option set: SHA-256,
// low-S normalization enabled, DER serialization, no transport encoding,
// no recovery id requested.
func DefaultSignOptions() SignOptions {
	return SignOptions{Hash: HashSHA256, Normalize: true}
}

// VerifyOptions controls the behavior of Verify, per spec §4.5.
type VerifyOptions struct {
	// Hash selects the message digest algorithm.  Defaults to HashSHA256.
	Hash HashAlg
	// Encoding is the transport encoding sig is expected to be decoded
	// from when passed as bytes/string rather than a parsed *Signature.
	Encoding Encoding
}

// DefaultVerifyOptions returns the spec §4.5 default option set.
func DefaultVerifyOptions() VerifyOptions {
	return VerifyOptions{Hash: HashSHA256}
}

// RecoverOptions controls the behavior of RecoverKey, per spec §4.5.
type RecoverOptions struct {
	// Hash selects the message digest algorithm.  Defaults to HashSHA256.
	Hash HashAlg
	// Encoding is the transport encoding sig is expected to be decoded
	// from when passed as raw bytes rather than a parsed *Signature.
	Encoding Encoding
	// RecoveryID supplies the recovery id when sig doesn't already carry
	// one (e.g. a DER-parsed signature).  Must be in [0, 3] when set.
	RecoveryID *byte
}

// DefaultRecoverOptions returns the spec §4.5 default option set.
func DefaultRecoverOptions() RecoverOptions {
	return RecoverOptions{Hash: HashSHA256}
}

// hashToInt computes e = be_int(digest(hash, msg)), per spec §4.5 step 1.
// The full digest is used without bit-length truncation even for
// SHA-384/512, matching the deviation from FIPS 186-4 documented in
// spec §9.
func hashToInt(alg HashAlg, msg []byte) (*big.Int, error) {
	h, err := digest(alg, msg)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(h), nil
}

// Sign produces a deterministic ECDSA signature over msg using key's
// private scalar, per spec §4.5.  It implements:
//
//  1. e = be_int(digest(msg))
//  2. deterministic k via RFC 6979, trial signature (r, s); reject r=0/s=0
//  3. recid from the oddness/overflow of k*G
//  4. low-S normalization (if requested)
//  5. DER or compact serialization
//  6. optional transport encoding
//  7. returns (encoded bytes, recid); recid is returned whether or not
//     Recovery is set
func Sign(msg []byte, key *Key, opts *SignOptions) ([]byte, byte, error) {
	if !key.HasPrivate() {
		invariantViolation("secp256k1: cannot sign without a private key")
	}
	o := DefaultSignOptions()
	if opts != nil {
		o = *opts
	}

	e, err := hashToInt(o.Hash, msg)
	if err != nil {
		return nil, 0, err
	}

	d := key.PrivateScalar()
	n := orderN()
	privBytes := key.PrivateKeyBytes()

	var sig *Signature
	var recid byte
	nonceRFC6979(privBytes, mustHashBytes(o.Hash, msg), func(k *big.Int) bool {
		Q := scalarBaseMultJacobian(k).toAffine()
		r := mod(Q.X, n)
		if r.Sign() == 0 {
			return false
		}

		kInv := inv(k, n)
		s := mod(new(big.Int).Mul(kInv, new(big.Int).Add(e, new(big.Int).Mul(r, d))), n)
		if s.Sign() == 0 {
			return false
		}

		parity := byte(Q.Y.Bit(0))
		if Q.X.Cmp(r) == 0 {
			recid = parity
		} else {
			recid = 2 | parity
		}

		sig = &Signature{R: r, S: s, recid: recid}
		return true
	})

	if o.Normalize {
		sig.Normalize()
		recid = sig.recid
	}

	compressed := key.Compressed
	if o.Compressed != nil {
		compressed = *o.Compressed
	}

	var raw []byte
	if o.Compact {
		raw = sig.ToCompact(compressed, recid)
	} else {
		raw = sig.ToDER()
	}

	encoded := []byte(encodeOutput(o.Encoding, raw))
	return encoded, recid, nil
}

// mustHashBytes returns the raw digest bytes (not the big-endian integer)
// fed to RFC 6979, per spec §4.5.1's "32-byte hash h" input.  For HashNone
// it passes the message through verbatim, matching hashToInt's treatment.
func mustHashBytes(alg HashAlg, msg []byte) []byte {
	h, err := digest(alg, msg)
	if err != nil {
		// digest only errors on an unrecognized HashAlg, which Sign/Verify/
		// RecoverKey never construct internally; unreachable in practice.
		invariantViolation("secp256k1: %v", err)
	}
	return h
}

// Verify reports whether sig is a valid ECDSA signature over msg for
// pubKey, per spec §4.5:
//
//	e = be_int(digest(msg)), i = s^-1 mod n
//	R' = e*i*G + r*i*Q
//	valid iff R'.x == r
func Verify(sig *Signature, msg []byte, pubKey *Key, opts *VerifyOptions) bool {
	o := DefaultVerifyOptions()
	if opts != nil {
		o = *opts
	}

	n := orderN()
	if sig.R.Sign() == 0 || sig.S.Sign() == 0 || sig.R.Cmp(n) >= 0 || sig.S.Cmp(n) >= 0 {
		return false
	}

	e, err := hashToInt(o.Hash, msg)
	if err != nil {
		return false
	}

	i := inv(sig.S, n)
	u1 := mod(new(big.Int).Mul(e, i), n)
	u2 := mod(new(big.Int).Mul(sig.R, i), n)

	Q := toJacobian(pubKey.Point)
	Rp := addJacobian(scalarBaseMultJacobian(u1), scalarMultJacobian(u2, Q))
	if Rp.isInfinity() {
		return false
	}

	affine := Rp.toAffine()
	return mod(affine.X, n).Cmp(sig.R) == 0
}

// VerifyBytes parses sig (applying opts.Encoding first) and then behaves
// as Verify.  It reports the parse failure distinctly from a verification
// failure per spec §7's ParseError/VerificationFailure split.
func VerifyBytes(sigBytes []byte, msg []byte, pubKey *Key, opts *VerifyOptions) (bool, error) {
	o := DefaultVerifyOptions()
	if opts != nil {
		o = *opts
	}

	raw, err := decodeInput(o.Encoding, string(sigBytes))
	if err != nil {
		return false, err
	}

	sig, parsed, err := parseEitherSignature(raw)
	if err != nil {
		return false, err
	}
	_ = parsed

	return Verify(sig, msg, pubKey, opts), nil
}

// parseEitherSignature tries 65-byte compact first (for 65-byte input),
// then DER, returning whether the compact form indicated a compressed
// public key (false for a DER signature).
func parseEitherSignature(raw []byte) (*Signature, bool, error) {
	if len(raw) == compactSigSize {
		sig, compressed, err := ParseCompactSignature(raw)
		if err == nil {
			return sig, compressed, nil
		}
	}
	sig, err := ParseDERSignature(raw)
	if err != nil {
		return nil, false, err
	}
	return sig, false, nil
}

// RecoverKey recovers the public key used to produce sig over msg, per
// spec §4.5. If sig carries no recovery id, opts.RecoveryID must supply
// one. The returned Key's Compressed flag is always true, since a
// *Signature does not record its compact prefix; RecoverKeyBytes sets the
// flag from the prefix. Only the low bit of the recovery id (y parity) is
// used: bit 1, the "r + n" case, is accepted but not acted on.
func RecoverKey(sig *Signature, msg []byte, opts *RecoverOptions) (*Key, error) {
	o := DefaultRecoverOptions()
	if opts != nil {
		o = *opts
	}

	recid := sig.recid
	if recid == noRecid {
		if o.RecoveryID == nil {
			return nil, signatureError(ErrMissingRecoveryID, "recover: signature has no recovery id and none was supplied")
		}
		recid = *o.RecoveryID
	}
	if recid > 3 {
		invariantViolation("secp256k1: recovery id %d out of range [0,3]", recid)
	}

	normalized := &Signature{R: sig.R, S: sig.S, recid: recid}
	normalized.Normalize()

	e, err := hashToInt(o.Hash, msg)
	if err != nil {
		return nil, err
	}

	Q, ok := recoverPoint(normalized.R, normalized.S, e, normalized.recid)
	if !ok {
		return nil, signatureError(ErrPointNotOnCurve, "recover: signature does not correspond to a valid curve point")
	}

	return newKeyFromPoint(Q, true), nil
}

// RecoverKeyBytes parses sig (applying opts.Encoding and detecting
// DER/compact form first) and then behaves as RecoverKey, setting the
// resulting Key's Compressed flag to false if the compact prefix indicated
// an uncompressed original public key.
func RecoverKeyBytes(sigBytes []byte, msg []byte, opts *RecoverOptions) (*Key, error) {
	o := DefaultRecoverOptions()
	if opts != nil {
		o = *opts
	}

	raw, err := decodeInput(o.Encoding, string(sigBytes))
	if err != nil {
		return nil, err
	}

	sig, compressed, err := parseEitherSignature(raw)
	if err != nil {
		return nil, err
	}

	key, err := RecoverKey(sig, msg, opts)
	if err != nil {
		return nil, err
	}
	// Only a compact signature (which always carries a recid) has a prefix
	// that says anything about compression.
	if sig.HasRecid() {
		key.Compressed = compressed
	}
	return key, nil
}

// GetSharedSecret computes the ECDH shared secret S = d*Q between priv's
// private scalar and pub's public point, returning the 32-byte big-endian
// encoding of S.x, per spec §4.5/RFC 5903 section 9 (x-coordinate only, no
// KDF applied).  It is symmetric: GetSharedSecret(A, B) ==
// GetSharedSecret(B, A) for corresponding keypairs.
func GetSharedSecret(priv, pub *Key) []byte {
	if !priv.HasPrivate() {
		invariantViolation("secp256k1: cannot derive a shared secret without a private key")
	}
	S := scalarMultJacobian(priv.PrivateScalar(), toJacobian(pub.Point)).toAffine()
	var buf [32]byte
	S.X.FillBytes(buf[:])
	return buf[:]
}
