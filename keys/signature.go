// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"encoding/base64"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/geonft/geonftd/fault"
)

// Signature - an ed25519 signature
type Signature []byte

// reject small order points and non-canonical encodings
var strictOptions = &ed25519.Options{
	Verify: ed25519.VerifyOptionsFIPS_186_5,
}

// DecodeSignature - parse the base64 text form
func DecodeSignature(s string) (Signature, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if nil != err {
		return nil, fault.CannotDecodeSignature
	}
	if SignatureSize != len(b) {
		return nil, fault.InvalidSignatureLength
	}
	return Signature(b), nil
}

// String - base64 text form
func (signature Signature) String() string {
	return base64.StdEncoding.EncodeToString(signature)
}

// GoString - for %#v
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - for JSON
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - for JSON
func (signature *Signature) UnmarshalText(s []byte) error {
	sig, err := DecodeSignature(string(s))
	if nil != err {
		return err
	}
	*signature = sig
	return nil
}

func privateKeyFromSeed(seed []byte) (ed25519.PrivateKey, error) {
	if SeedSize != len(seed) {
		return nil, fault.InvalidKeyLength
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

func publicBytes(privateKey ed25519.PrivateKey) []byte {
	return privateKey[SeedSize:]
}

func sign(privateKey ed25519.PrivateKey, message []byte) Signature {
	return Signature(ed25519.Sign(privateKey, message))
}

func verify(publicKey []byte, message []byte, signature Signature) bool {
	if SignatureSize != len(signature) {
		return false
	}
	return ed25519.VerifyWithOptions(ed25519.PublicKey(publicKey), message, signature, strictOptions)
}
