// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf

import (
	"crypto/elliptic"
	"math/big"
	"sync"
)

// fromHex decodes the passed hex string and returns the resulting big
// integer.  It only differs from the standard library in that it panics on
// malformed input since it is only used with hard-coded, and therefore
// necessarily valid, hex strings.
func fromHex(s string) *big.Int {
	if s == "" {
		return big.NewInt(0)
	}
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: invalid hex in source: " + s)
	}
	return r
}

// CurveParams contains the parameters for the secp256k1 curve and adapts
// them to the standard library's crypto/elliptic.Curve interface so the
// curve can be handed to crypto/ecdsa for random key generation.
type CurveParams struct {
	*elliptic.CurveParams
	q *big.Int // (P + 1) / 4, used for point decompression
	H int      // cofactor of the curve
}

// Curve domain parameters taken from [SECG] section 2.4.1.
var (
	fieldPrime = fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	curveParams = CurveParams{
		CurveParams: &elliptic.CurveParams{
			P:       fieldPrime,
			N:       fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
			B:       fromHex("0000000000000000000000000000000000000000000000000000000000000007"),
			Gx:      fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
			Gy:      fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
			BitSize: 256,
			Name:    "secp256k1",
		},
		H: 1,
	}
)

var curveParamsOnce sync.Once

func initCurveParams() {
	curveParamsOnce.Do(func() {
		// q = (P + 1) / 4, used by sqrtMod for point decompression since
		// P ≡ 3 (mod 4) for secp256k1.
		curveParams.q = new(big.Int).Rsh(new(big.Int).Add(curveParams.P, big.NewInt(1)), 2)
	})
}

// Params returns the secp256k1 curve parameters.
func Params() *CurveParams {
	initCurveParams()
	return &curveParams
}

// S256 returns a crypto/elliptic.Curve implementation backed by the
// secp256k1 domain parameters.  It exists so this package can hand a curve
// to crypto/ecdsa.GenerateKey for secure randomness without this package
// needing its own CSPRNG plumbing.
func S256() elliptic.Curve {
	return Params()
}

// IsOnCurve reports whether the affine point (x, y) satisfies
// y^2 = x^3 + 7 (mod p).
//
// This overrides the embedded *elliptic.CurveParams method, which assumes
// the NIST a=-3 curve equation and would misclassify every secp256k1 point.
func (curve *CurveParams) IsOnCurve(x, y *big.Int) bool {
	return AffinePoint{X: x, Y: y}.IsOnCurve()
}

// Add returns the sum of (x1,y1) and (x2,y2).
//
// This overrides the embedded *elliptic.CurveParams method for the same
// a=0 reason as IsOnCurve.
func (curve *CurveParams) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p := toJacobian(AffinePoint{X: x1, Y: y1})
	q := toJacobian(AffinePoint{X: x2, Y: y2})
	r := addJacobian(p, q).toAffine()
	return r.X, r.Y
}

// Double returns 2*(x1,y1).
//
// This overrides the embedded *elliptic.CurveParams method for the same
// a=0 reason as IsOnCurve.
func (curve *CurveParams) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	r := doubleJacobian(toJacobian(AffinePoint{X: x1, Y: y1})).toAffine()
	return r.X, r.Y
}

// ScalarMult returns k*(x1,y1) where k is a big-endian integer.
//
// This overrides the embedded *elliptic.CurveParams method for the same
// a=0 reason as IsOnCurve.
func (curve *CurveParams) ScalarMult(x1, y1 *big.Int, k []byte) (*big.Int, *big.Int) {
	p := toJacobian(AffinePoint{X: x1, Y: y1})
	r := scalarMultJacobian(new(big.Int).SetBytes(k), p).toAffine()
	return r.X, r.Y
}

// ScalarBaseMult returns k*G where G is the base point of the group and k is
// a big-endian integer.
//
// This overrides the embedded *elliptic.CurveParams method for the same
// a=0 reason as IsOnCurve.
func (curve *CurveParams) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	r := scalarBaseMultJacobian(new(big.Int).SetBytes(k)).toAffine()
	return r.X, r.Y
}

// a returns the curve's "a" coefficient, which is 0 for secp256k1.
func a() *big.Int { return big.NewInt(0) }

// bCoeff returns the curve's "b" coefficient (7 for secp256k1).
func bCoeff() *big.Int { return Params().B }

// primeP returns the field prime p.
func primeP() *big.Int { return Params().P }

// orderN returns the group order n.
func orderN() *big.Int { return Params().N }

// baseG returns the affine base point G.
func baseG() AffinePoint {
	return AffinePoint{X: new(big.Int).Set(Params().Gx), Y: new(big.Int).Set(Params().Gy)}
}

// halfOrderN returns floor(n/2), used for low-S normalization.
func halfOrderN() *big.Int {
	return new(big.Int).Rsh(orderN(), 1)
}
