// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"testing"
)

func TestGenerateKeyProducesOnCurvePoint(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if !key.HasPrivate() {
		t.Fatal("generated key has no private scalar")
	}
	if !key.Point.IsOnCurve() {
		t.Fatal("generated public point is not on the curve")
	}

	derived := scalarMultAffine(key.PrivateScalar(), baseG())
	if !derived.Equals(key.Point) {
		t.Fatal("public point does not equal d*G for the generated scalar")
	}
}

func TestNewKeyFromPrivateKeyBytesRejectsBadInput(t *testing.T) {
	if _, err := NewKeyFromPrivateKeyBytes(make([]byte, 31)); err == nil {
		t.Fatal("accepted a 31-byte private key")
	}
	if _, err := NewKeyFromPrivateKeyBytes(make([]byte, 32)); err == nil {
		t.Fatal("accepted an all-zero private key")
	}

	nBytes := make([]byte, 32)
	orderN().FillBytes(nBytes)
	if _, err := NewKeyFromPrivateKeyBytes(nBytes); err == nil {
		t.Fatal("accepted a private key equal to the curve order")
	}
}

func TestPrivateKeyBytesRoundTrip(t *testing.T) {
	priv := mustHex(t, s1PrivHex)
	key, err := NewKeyFromPrivateKeyBytes(priv)
	if err != nil {
		t.Fatalf("NewKeyFromPrivateKeyBytes: %v", err)
	}
	if !bytes.Equal(key.PrivateKeyBytes(), priv) {
		t.Fatal("PrivateKeyBytes did not round-trip the input scalar")
	}
}

func TestPublicKeyBytesRoundTripCompressed(t *testing.T) {
	key, err := NewKeyFromPrivateKeyBytes(mustHex(t, s1PrivHex))
	if err != nil {
		t.Fatalf("NewKeyFromPrivateKeyBytes: %v", err)
	}

	compressed := key.PublicKeyBytes(true)
	if len(compressed) != PubKeyBytesLenCompressed {
		t.Fatalf("compressed length = %d, want %d", len(compressed), PubKeyBytesLenCompressed)
	}
	if compressed[0] != 0x02 && compressed[0] != 0x03 {
		t.Fatalf("compressed prefix = %#x, want 0x02 or 0x03", compressed[0])
	}

	reparsed, err := NewKeyFromPublicKeyBytes(compressed)
	if err != nil {
		t.Fatalf("NewKeyFromPublicKeyBytes: %v", err)
	}
	if !reparsed.Point.Equals(key.Point) {
		t.Fatal("compressed public key did not round-trip to the same point")
	}
	if !reparsed.Compressed {
		t.Fatal("key parsed from compressed bytes should have Compressed=true")
	}
}

func TestPublicKeyBytesRoundTripUncompressed(t *testing.T) {
	key, err := NewKeyFromPrivateKeyBytes(mustHex(t, s1PrivHex))
	if err != nil {
		t.Fatalf("NewKeyFromPrivateKeyBytes: %v", err)
	}

	uncompressed := key.PublicKeyBytes(false)
	if len(uncompressed) != PubKeyBytesLenUncompressed {
		t.Fatalf("uncompressed length = %d, want %d", len(uncompressed), PubKeyBytesLenUncompressed)
	}
	if uncompressed[0] != 0x04 {
		t.Fatalf("uncompressed prefix = %#x, want 0x04", uncompressed[0])
	}

	reparsed, err := NewKeyFromPublicKeyBytes(uncompressed)
	if err != nil {
		t.Fatalf("NewKeyFromPublicKeyBytes: %v", err)
	}
	if !reparsed.Point.Equals(key.Point) {
		t.Fatal("uncompressed public key did not round-trip to the same point")
	}
	if reparsed.Compressed {
		t.Fatal("key parsed from uncompressed bytes should have Compressed=false")
	}
	if reparsed.HasPrivate() {
		t.Fatal("key parsed from public bytes should carry no private scalar")
	}
}

func TestNewKeyFromPublicKeyBytesRejectsBadInput(t *testing.T) {
	if _, err := NewKeyFromPublicKeyBytes(make([]byte, 10)); err == nil {
		t.Fatal("accepted a public key of the wrong length")
	}

	bad := make([]byte, PubKeyBytesLenUncompressed)
	bad[0] = 0x05
	if _, err := NewKeyFromPublicKeyBytes(bad); err == nil {
		t.Fatal("accepted an uncompressed key with a bad prefix byte")
	}

	badCompressed := make([]byte, PubKeyBytesLenCompressed)
	badCompressed[0] = 0x02
	// An all-zero x-coordinate is not on the curve (0^3 + 7 = 7 is not a QR).
	if _, err := NewKeyFromPublicKeyBytes(badCompressed); err == nil {
		t.Fatal("accepted a compressed key whose x-coordinate is not on the curve")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	key, err := NewKeyFromPrivateKeyBytes(mustHex(t, s1PrivHex))
	if err != nil {
		t.Fatalf("NewKeyFromPrivateKeyBytes: %v", err)
	}
	clone := key.Clone()
	clone.d.SetInt64(1)
	if key.PrivateScalar().Cmp(clone.d) == 0 {
		t.Fatal("mutating the clone's scalar affected the original key")
	}
}

func TestSerializeUsesKeysOwnPreference(t *testing.T) {
	key, err := NewKeyFromPrivateKeyBytes(mustHex(t, s1PrivHex))
	if err != nil {
		t.Fatalf("NewKeyFromPrivateKeyBytes: %v", err)
	}
	key.Compressed = false
	if len(key.Serialize()) != PubKeyBytesLenUncompressed {
		t.Fatal("Serialize did not honor Compressed=false")
	}
	key.Compressed = true
	if len(key.Serialize()) != PubKeyBytesLenCompressed {
		t.Fatal("Serialize did not honor Compressed=true")
	}
}
