// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [ISO/IEC 8825-1]: Information technology — ASN.1 encoding rules:
//     Specification of Basic Encoding Rules (BER), Canonical Encoding Rules
//     (CER) and Distinguished Encoding Rules (DER)
//
//   [SEC1]: Elliptic Curve Cryptography (May 31, 2009, Version 2.0)
//     https://www.secg.org/sec1-v2.pdf

import (
	"fmt"
	"math/big"
)

const (
	// asn1SequenceID is the ASN.1 identifier for a sequence and is used
	// when parsing and serializing signatures encoded with the
	// Distinguished Encoding Rules (DER) format per section 10 of
	// [ISO/IEC 8825-1].
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an integer and is used
	// when parsing and serializing signatures encoded with DER.
	asn1IntegerID = 0x02

	// compactSigSize is the size of a compact signature.  It consists of a
	// recovery-id prefix byte followed by the R and S components
	// serialized as 32-byte big-endian values: 1+32+32 = 65.
	compactSigSize = 65

	// compactSigMagicOffset is the recovery-id prefix base, inherited from
	// Bitcoin's compact signature convention.
	compactSigMagicOffset = 27

	// compactSigCompPubKey is added to the recovery-id prefix to indicate
	// the original public key was compressed.
	compactSigCompPubKey = 4

	// noRecid is the sentinel value of Signature.recid meaning "no
	// recovery id is present", mirroring the teacher's 0xff sentinel for
	// an absent recovery code.
	noRecid = 0xff
)

// Signature is an ECDSA (r, s) pair over secp256k1 with an optional
// recovery id in [0, 3], per spec §3/§4.4.  A signature parsed from DER has
// no recovery id; a signature parsed from compact form always has one.
type Signature struct {
	R, S  *big.Int
	recid byte // noRecid if absent
}

// NewSignature constructs a Signature with no recovery id.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{R: r, S: s, recid: noRecid}
}

// NewSignatureWithRecid constructs a Signature carrying the given recovery
// id, which must be in [0, 3].
func NewSignatureWithRecid(r, s *big.Int, recid byte) *Signature {
	if recid > 3 {
		invariantViolation("secp256k1: recovery id %d out of range [0,3]", recid)
	}
	return &Signature{R: r, S: s, recid: recid}
}

// HasRecid reports whether sig carries a recovery id.
func (sig *Signature) HasRecid() bool {
	return sig.recid != noRecid
}

// Recid returns the signature's recovery id.  It panics if none is present;
// callers should check HasRecid first.
func (sig *Signature) Recid() byte {
	if sig.recid == noRecid {
		invariantViolation("secp256k1: signature has no recovery id")
	}
	return sig.recid
}

// IsEqual reports whether sig and other have the same R and S values.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}

// Normalize enforces BIP 62 low-S: if S > n/2, it is replaced with n - S,
// and if a recovery id is present its low bit is flipped, per spec §3/§4.4.
func (sig *Signature) Normalize() {
	if sig.S.Cmp(halfOrderN()) > 0 {
		sig.S = mod(new(big.Int).Neg(sig.S), orderN())
		if sig.recid != noRecid {
			sig.recid ^= 1
		}
	}
}

// der-encodes a single big-endian unsigned integer per the ASN.1 INTEGER
// convention: a leading 0x00 is prepended iff the high bit of the leading
// byte would otherwise be set, so the value is never mistaken for negative.
func asn1EncodeInteger(v *big.Int) []byte {
	raw := v.Bytes()
	if len(raw) == 0 {
		raw = []byte{0x00}
	}
	if raw[0]&0x80 != 0 {
		padded := make([]byte, len(raw)+1)
		copy(padded[1:], raw)
		raw = padded
	}
	out := make([]byte, 0, len(raw)+2)
	out = append(out, asn1IntegerID, byte(len(raw)))
	out = append(out, raw...)
	return out
}

// ToDER encodes sig per spec §4.4/§6:
//
//	0x30 || total_len || 0x02 || rlen || r_bytes || 0x02 || slen || s_bytes
//
// R and S are encoded as stored; low-S normalization is left to Normalize.
func (sig *Signature) ToDER() []byte {
	rEnc := asn1EncodeInteger(sig.R)
	sEnc := asn1EncodeInteger(sig.S)

	out := make([]byte, 0, 2+len(rEnc)+len(sEnc))
	out = append(out, asn1SequenceID, byte(len(rEnc)+len(sEnc)))
	out = append(out, rEnc...)
	out = append(out, sEnc...)
	return out
}

// ToCompact encodes sig in 65-byte compact form per spec §4.4/§6:
//
//	prefix || R(32) || S(32)
//
// where prefix = recid + 27 + (4 if compressed else 0).  It panics if sig
// has no recovery id in [0, 3]; recid may be supplied as ids[0] to override
// the value stored on sig.
func (sig *Signature) ToCompact(compressed bool, ids ...byte) []byte {
	recid := sig.recid
	if len(ids) > 0 {
		recid = ids[0]
	}
	if recid > 3 {
		invariantViolation("secp256k1: cannot serialize compact signature without a recovery id in [0,3]")
	}

	var out [compactSigSize]byte
	prefix := recid + compactSigMagicOffset
	if compressed {
		prefix += compactSigCompPubKey
	}
	out[0] = prefix
	sig.R.FillBytes(out[1:33])
	sig.S.FillBytes(out[33:65])
	return out[:]
}

// ParseDERSignature parses a DER-encoded ECDSA signature per spec §4.4,
// enforcing that R and S are each in [1, n).  The returned signature has no
// recovery id.
func ParseDERSignature(sig []byte) (*Signature, error) {
	const (
		minSigLen = 8
		maxSigLen = 72
	)

	sigLen := len(sig)
	if sigLen < minSigLen {
		return nil, signatureError(ErrSigTooShort, fmt.Sprintf("malformed signature: too short: %d < %d", sigLen, minSigLen))
	}
	if sigLen > maxSigLen {
		return nil, signatureError(ErrSigTooLong, fmt.Sprintf("malformed signature: too long: %d > %d", sigLen, maxSigLen))
	}
	if sig[0] != asn1SequenceID {
		return nil, signatureError(ErrSigInvalidSeqID, fmt.Sprintf("malformed signature: wrong type: %#x", sig[0]))
	}
	if int(sig[1]) != sigLen-2 {
		return nil, signatureError(ErrSigInvalidDataLen, fmt.Sprintf("malformed signature: bad length: %d != %d", sig[1], sigLen-2))
	}

	const rTypeOffset, rLenOffset, rOffset = 2, 3, 4
	if sig[rTypeOffset] != asn1IntegerID {
		return nil, signatureError(ErrSigInvalidRIntID, "malformed signature: R integer marker missing")
	}
	rLen := int(sig[rLenOffset])
	if rLen == 0 {
		return nil, signatureError(ErrSigZeroRLen, "malformed signature: R length is zero")
	}
	sTypeOffset := rOffset + rLen
	sLenOffset := sTypeOffset + 1
	if sTypeOffset >= sigLen {
		return nil, signatureError(ErrSigMissingSTypeID, "malformed signature: S type indicator missing")
	}
	if sLenOffset >= sigLen {
		return nil, signatureError(ErrSigMissingSLen, "malformed signature: S length missing")
	}
	sOffset := sLenOffset + 1
	sLen := int(sig[sLenOffset])
	if sOffset+sLen != sigLen {
		return nil, signatureError(ErrSigInvalidSLen, "malformed signature: invalid S length")
	}
	if sig[rOffset]&0x80 != 0 {
		return nil, signatureError(ErrSigNegativeR, "malformed signature: R is negative")
	}
	if rLen > 1 && sig[rOffset] == 0x00 && sig[rOffset+1]&0x80 == 0 {
		return nil, signatureError(ErrSigTooMuchRPadding, "malformed signature: R has excess padding")
	}
	if sig[sTypeOffset] != asn1IntegerID {
		return nil, signatureError(ErrSigInvalidSIntID, "malformed signature: S integer marker missing")
	}
	if sLen == 0 {
		return nil, signatureError(ErrSigZeroSLen, "malformed signature: S length is zero")
	}
	if sig[sOffset]&0x80 != 0 {
		return nil, signatureError(ErrSigNegativeS, "malformed signature: S is negative")
	}
	if sLen > 1 && sig[sOffset] == 0x00 && sig[sOffset+1]&0x80 == 0 {
		return nil, signatureError(ErrSigTooMuchSPadding, "malformed signature: S has excess padding")
	}

	r := new(big.Int).SetBytes(sig[rOffset : rOffset+rLen])
	s := new(big.Int).SetBytes(sig[sOffset : sOffset+sLen])
	n := orderN()
	if r.Sign() == 0 {
		return nil, signatureError(ErrSigRIsZero, "invalid signature: R is 0")
	}
	if r.Cmp(n) >= 0 {
		return nil, signatureError(ErrSigRTooBig, "invalid signature: R not in [1, N)")
	}
	if s.Sign() == 0 {
		return nil, signatureError(ErrSigSIsZero, "invalid signature: S is 0")
	}
	if s.Cmp(n) >= 0 {
		return nil, signatureError(ErrSigSTooBig, "invalid signature: S not in [1, N)")
	}

	return NewSignature(r, s), nil
}

// ParseCompactSignature parses a 65-byte compact signature per spec §4.4:
// a prefix byte followed by 32-byte R and 32-byte S.  t = prefix - 27 - 4;
// if t < 0, the original public key was uncompressed and recid = t + 4,
// otherwise recid = t.  It returns the parsed signature and whether the
// prefix indicated a compressed public key.
func ParseCompactSignature(sig []byte) (parsed *Signature, compressed bool, err error) {
	if len(sig) != compactSigSize {
		return nil, false, signatureError(ErrSigInvalidLen, fmt.Sprintf("malformed signature: wrong size: %d != %d", len(sig), compactSigSize))
	}

	t := int(sig[0]) - compactSigMagicOffset - compactSigCompPubKey
	var recid byte
	if t < 0 {
		compressed = false
		recid = byte(t + compactSigCompPubKey)
	} else {
		compressed = true
		recid = byte(t)
	}
	if recid > 3 {
		return nil, compressed, signatureError(ErrSigInvalidRecoveryCode, fmt.Sprintf("invalid signature: recovery id %d not in [0,3]", recid))
	}

	r := new(big.Int).SetBytes(sig[1:33])
	s := new(big.Int).SetBytes(sig[33:65])
	n := orderN()
	if r.Sign() == 0 {
		return nil, compressed, signatureError(ErrSigRIsZero, "invalid signature: R is 0")
	}
	if r.Cmp(n) >= 0 {
		return nil, compressed, signatureError(ErrSigRTooBig, "invalid signature: R not in [1, N)")
	}
	if s.Sign() == 0 {
		return nil, compressed, signatureError(ErrSigSIsZero, "invalid signature: S is 0")
	}
	if s.Cmp(n) >= 0 {
		return nil, compressed, signatureError(ErrSigSTooBig, "invalid signature: S not in [1, N)")
	}

	return &Signature{R: r, S: s, recid: recid}, compressed, nil
}
