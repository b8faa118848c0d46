// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	"testing"
)

func TestMod(t *testing.T) {
	tests := []struct {
		name string
		x, n int64
		want int64
	}{
		{"positive remainder", 7, 5, 2},
		{"negative input", -1, 5, 4},
		{"exact multiple", 10, 5, 0},
		{"negative multiple", -10, 5, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := mod(big.NewInt(test.x), big.NewInt(test.n))
			if got.Int64() != test.want {
				t.Fatalf("mod(%d, %d) = %d, want %d", test.x, test.n, got.Int64(), test.want)
			}
		})
	}
}

func TestInv(t *testing.T) {
	n := big.NewInt(11)
	for x := int64(1); x < 11; x++ {
		xv := big.NewInt(x)
		got := inv(xv, n)
		prod := mod(new(big.Int).Mul(xv, got), n)
		if prod.Int64() != 1 {
			t.Fatalf("inv(%d, 11) = %d does not invert: %d*%d mod 11 = %d", x, got.Int64(), x, got.Int64(), prod.Int64())
		}
	}

	if got := inv(big.NewInt(0), n); got.Sign() != 0 {
		t.Fatalf("inv(0, n) = %d, want 0 sentinel", got.Int64())
	}
}

func TestIpow(t *testing.T) {
	got := ipow(big.NewInt(2), big.NewInt(10), big.NewInt(1000))
	if got.Int64() != 24 { // 2^10 = 1024, 1024 mod 1000 = 24
		t.Fatalf("ipow(2, 10, 1000) = %d, want 24", got.Int64())
	}
}

func TestSqrtModFieldPrime(t *testing.T) {
	// 4 is a quadratic residue with roots {2, p-2}.
	initCurveParams()
	root := sqrtMod(big.NewInt(4))
	sq := mod(new(big.Int).Mul(root, root), primeP())
	if sq.Int64() != 4 {
		t.Fatalf("sqrtMod(4)^2 mod p = %d, want 4", sq.Int64())
	}
}
