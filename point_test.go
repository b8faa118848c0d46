// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestBasePointOnCurve(t *testing.T) {
	G := baseG()
	if !G.IsOnCurve() {
		t.Fatalf("base point is not on curve: %s", spew.Sdump(G))
	}
}

func TestScalarMultIdentities(t *testing.T) {
	G := baseG()

	zero := scalarMultAffine(big.NewInt(0), G)
	if !zero.IsInfinity() {
		t.Fatalf("0*G = %s, want point at infinity", spew.Sdump(zero))
	}

	one := scalarMultAffine(big.NewInt(1), G)
	if !one.Equals(G) {
		t.Fatalf("1*G = %s, want %s", spew.Sdump(one), spew.Sdump(G))
	}

	nTimes := scalarMultAffine(orderN(), G)
	if !nTimes.IsInfinity() {
		t.Fatalf("n*G = %s, want point at infinity", spew.Sdump(nTimes))
	}
}

func TestScalarMultAssociativity(t *testing.T) {
	G := baseG()

	k1 := new(big.Int).SetInt64(12345)
	k2 := new(big.Int).SetInt64(98765)

	sum := new(big.Int).Add(k1, k2)
	lhs := scalarMultAffine(sum, G)

	k1G := scalarMultAffine(k1, G)
	k2G := scalarMultAffine(k2, G)
	rhs := addJacobian(toJacobian(k1G), toJacobian(k2G)).toAffine()

	if !lhs.Equals(rhs) {
		t.Fatalf("(k1+k2)*G = %s, want k1*G+k2*G = %s", spew.Sdump(lhs), spew.Sdump(rhs))
	}
}

func TestDoubleMatchesAdd(t *testing.T) {
	G := baseG()
	doubled := doubleJacobian(toJacobian(G)).toAffine()
	added := addJacobian(toJacobian(G), toJacobian(G)).toAffine()
	if !doubled.Equals(added) {
		t.Fatalf("double(G) = %s, want G+G = %s", spew.Sdump(doubled), spew.Sdump(added))
	}
}

func TestAddInverseIsInfinity(t *testing.T) {
	G := baseG()
	negG := G.Negate()
	sum := addJacobian(toJacobian(G), toJacobian(negG)).toAffine()
	if !sum.IsInfinity() {
		t.Fatalf("G + (-G) = %s, want point at infinity", spew.Sdump(sum))
	}
}

func TestDecompressYRoundTrip(t *testing.T) {
	G := baseG()
	oddY := G.Y.Bit(0) == 1
	y, ok := decompressY(G.X, oddY)
	if !ok {
		t.Fatal("decompressY failed to decompress the base point's x-coordinate")
	}
	if y.Cmp(G.Y) != 0 {
		t.Fatalf("decompressY(Gx, %v) = %s, want %s", oddY, y, G.Y)
	}
}

func TestRecoverPointFromKnownSignature(t *testing.T) {
	// Self-consistency: sign a message and confirm recoverPoint finds Q.
	privBytes := mustHex(t, "5ec0a1aa3526f46e6251d8926922a4ef3d8b2198bff538ec19c063638a5505b9")
	key, err := NewKeyFromPrivateKeyBytes(privBytes)
	if err != nil {
		t.Fatalf("NewKeyFromPrivateKeyBytes: %v", err)
	}

	msg := []byte("hello")
	_, recid, err := Sign(msg, key, &SignOptions{Hash: HashSHA256, Normalize: true, Recovery: true})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	sigBytes, _, err := Sign(msg, key, &SignOptions{Hash: HashSHA256, Normalize: true})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig, err := ParseDERSignature(sigBytes)
	if err != nil {
		t.Fatalf("ParseDERSignature: %v", err)
	}

	e, err := hashToInt(HashSHA256, msg)
	if err != nil {
		t.Fatalf("hashToInt: %v", err)
	}

	Q, ok := recoverPoint(sig.R, sig.S, e, recid)
	if !ok {
		t.Fatal("recoverPoint failed")
	}
	if !Q.Equals(key.Point) {
		t.Fatalf("recovered point = %s, want %s", spew.Sdump(Q), spew.Sdump(key.Point))
	}
}
