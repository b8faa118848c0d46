// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements the secp256k1 elliptic curve and the
cryptographic primitives built on top of it in pure Go: keypair
handling, ECDH shared-secret derivation, deterministic ECDSA signing
per RFC 6979, signature verification, and public-key recovery from a
signature.

An overview of the features provided by this package:

  - Private/public keypair generation, serialization, and parsing per
    SEC1 (33-byte compressed and 65-byte uncompressed public keys)
  - Elliptic curve operations in Jacobian projective coordinates
  - Deterministic ECDSA signing per RFC 6979 and BIP 0062 (low-S)
  - Signature parsing and serialization in DER and 65-byte compact form
  - Public key recovery from a signature and message hash
  - Diffie-Hellman shared secret derivation (ECDH)

This package does not implement SHA-2 or HMAC-SHA-256 itself; those are
consumed as external collaborators through the Hash option accepted by
Sign, Verify, and RecoverKey. It also does not implement constant-time
arithmetic: the reference algorithms here favor clarity over timing
safety, matching the semantics (not the side-channel properties) of
the library this package's API is modeled on.
*/
package secp256k1
