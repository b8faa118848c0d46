// Copyright 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Encoding selects the transport encoding applied to a signature's
// serialized bytes by Sign's encoding option and decoded by Verify and
// RecoverKey, per spec §4.5/§6.
type Encoding int

const (
	// EncodingNone passes signature bytes through unencoded.
	EncodingNone Encoding = iota
	// EncodingHex applies lowercase, case-insensitive-on-decode hex.
	EncodingHex
	// EncodingBase64 applies standard, padded base64.
	EncodingBase64
)

// encodeOutput applies enc to b, per spec §6 "Encodings".
func encodeOutput(enc Encoding, b []byte) string {
	switch enc {
	case EncodingHex:
		return hex.EncodeToString(b)
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(b)
	default:
		return string(b)
	}
}

// decodeInput reverses encodeOutput.  Hex decoding is case-insensitive per
// spec §6; a mismatched encoding surfaces as a parse error rather than a
// panic.
func decodeInput(enc Encoding, s string) ([]byte, error) {
	switch enc {
	case EncodingHex:
		b, err := hex.DecodeString(strings.ToLower(s))
		if err != nil {
			return nil, signatureError(ErrEncodingMismatch, "could not decode hex-encoded signature")
		}
		return b, nil
	case EncodingBase64:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, signatureError(ErrEncodingMismatch, "could not decode base64-encoded signature")
		}
		return b, nil
	default:
		return []byte(s), nil
	}
}
