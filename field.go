// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// mod returns the non-negative remainder of x modulo n, even when x is
// negative, unlike math/big.Int.Mod's lower-level Rem semantics would be if
// used carelessly on signed inputs.  big.Int.Mod already implements
// Euclidean modulus, so this is a thin, explicitly named wrapper matching
// the vocabulary of the arithmetic layer.
func mod(x, n *big.Int) *big.Int {
	return new(big.Int).Mod(x, n)
}

// inv computes the modular multiplicative inverse of x modulo n using the
// extended Euclidean algorithm.  It returns 0 if x has no inverse modulo n
// (for example, x = 0); callers must treat a zero result as "undefined"
// rather than a valid inverse.
func inv(x, n *big.Int) *big.Int {
	r := new(big.Int).ModInverse(x, n)
	if r == nil {
		return big.NewInt(0)
	}
	return r
}

// ipow computes base raised to the p-th power modulo n, delegating to
// big.Int.Exp (repeated squaring).  Internally it is used for the fixed
// (p+1)/4 square-root exponent.
func ipow(base, p, n *big.Int) *big.Int {
	return new(big.Int).Exp(base, p, n)
}

// sqrtMod computes a square root of a modulo the secp256k1 field prime,
// which satisfies p ≡ 3 (mod 4).  For such primes, a square root (when one
// exists) is given directly by a^((p+1)/4) mod p.  The caller is
// responsible for verifying the result actually squares back to a since
// this function does not check that a is a quadratic residue.
func sqrtMod(a *big.Int) *big.Int {
	initCurveParams()
	return ipow(a, curveParams.q, curveParams.P)
}

// isQuadraticResidue reports whether candidate squares back to a modulo the
// field prime, i.e. whether the sqrtMod candidate is genuinely a square
// root of a rather than a meaningless value produced by exponentiation on
// a non-residue.
func isQuadraticResidue(a, candidate *big.Int) bool {
	sq := mod(new(big.Int).Mul(candidate, candidate), primeP())
	return sq.Cmp(mod(a, primeP())) == 0
}
