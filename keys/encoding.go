// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/geonft/geonftd/fault"
)

// human readable parts
const (
	accountSecretNamespace  = "gas"
	accountPublicNamespace  = "gap"
	treasureSecretNamespace = "gts"
	treasurePublicNamespace = "gtp"
)

// sizes of the binary forms
const (
	PublicKeySize = ed25519.PublicKeySize
	SeedSize      = ed25519.SeedSize
	SignatureSize = ed25519.SignatureSize
)

// abbreviations keep this many leading characters
const abbreviationLength = 14

// encode binary data as bech32m under the namespace
func encode(namespace string, data []byte) string {
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if nil != err {
		panic("keys: bit conversion failed: " + err.Error())
	}
	s, err := bech32.EncodeM(namespace, converted)
	if nil != err {
		panic("keys: bech32m encode failed: " + err.Error())
	}
	return s
}

// decode a bech32m string that must be in the namespace and must
// carry exactly length bytes
func decode(namespace string, s string, length int) ([]byte, error) {
	hrp, data, version, err := bech32.DecodeGeneric(s)
	if nil != err {
		var checksumError bech32.ErrInvalidChecksum
		if errors.As(err, &checksumError) {
			return nil, fault.ChecksumMismatch
		}
		return nil, fault.InvalidKeyEncoding
	}

	if hrp != namespace {
		return nil, fault.WrongNamespace
	}
	if bech32.VersionM != version {
		return nil, fault.InvalidEncodingVariant
	}

	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if nil != err {
		return nil, fault.InvalidKeyEncoding
	}
	if length != len(decoded) {
		return nil, fault.InvalidKeyLength
	}
	return decoded, nil
}

// Abbreviate - shorten an encoded key for display
func Abbreviate(key string) string {
	r := []rune(key)
	if len(r) > abbreviationLength {
		r = r[:abbreviationLength]
	}
	return string(r) + "…"
}
