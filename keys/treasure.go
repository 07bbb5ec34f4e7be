// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"io"
	"strings"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/geonft/geonftd/fault"
)

// DefaultClaimURLPrefix - claim links are this prefix followed by the
// treasure secret key
const DefaultClaimURLPrefix = "http://localhost:8000/claim?key="

// TreasurePublicKey - identifies a treasure
type TreasurePublicKey [PublicKeySize]byte

// TreasureSecretKey - held by whoever can claim the treasure
type TreasureSecretKey struct {
	privateKey ed25519.PrivateKey
}

// GenerateTreasureKey - create a new random treasure key
func GenerateTreasureKey(rand io.Reader) (TreasureSecretKey, error) {
	_, privateKey, err := ed25519.GenerateKey(rand)
	if nil != err {
		return TreasureSecretKey{}, err
	}
	return TreasureSecretKey{privateKey: privateKey}, nil
}

// TreasureSecretKeyFromSeed - deterministic key from a 32 byte seed
func TreasureSecretKeyFromSeed(seed []byte) (TreasureSecretKey, error) {
	privateKey, err := privateKeyFromSeed(seed)
	if nil != err {
		return TreasureSecretKey{}, err
	}
	return TreasureSecretKey{privateKey: privateKey}, nil
}

// DecodeTreasureSecretKey - parse a "gts" string
func DecodeTreasureSecretKey(s string) (TreasureSecretKey, error) {
	seed, err := decode(treasureSecretNamespace, s, SeedSize)
	if nil != err {
		return TreasureSecretKey{}, err
	}
	return TreasureSecretKey{privateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// DecodeTreasurePublicKey - parse a "gtp" string
func DecodeTreasurePublicKey(s string) (TreasurePublicKey, error) {
	var key TreasurePublicKey
	err := key.UnmarshalText([]byte(s))
	return key, err
}

// TreasureSecretKeyFromClaimURL - extract the secret key from a claim link
func TreasureSecretKeyFromClaimURL(url string, prefix string) (TreasureSecretKey, error) {
	if !strings.HasPrefix(url, prefix) {
		return TreasureSecretKey{}, fault.ClaimURLPrefixMismatch
	}
	return DecodeTreasureSecretKey(strings.TrimPrefix(url, prefix))
}

// ClaimURL - the link handed to the finder of a treasure
func (key TreasureSecretKey) ClaimURL(prefix string) string {
	return prefix + key.String()
}

// PublicKey - the public half
func (key TreasureSecretKey) PublicKey() TreasurePublicKey {
	var public TreasurePublicKey
	copy(public[:], publicBytes(key.privateKey))
	return public
}

// Sign - sign an arbitrary message
func (key TreasureSecretKey) Sign(message []byte) Signature {
	return sign(key.privateKey, message)
}

// Seed - the 32 byte seed the key derives from
func (key TreasureSecretKey) Seed() []byte {
	return key.privateKey.Seed()
}

// String - bech32m text form
func (key TreasureSecretKey) String() string {
	return encode(treasureSecretNamespace, key.privateKey.Seed())
}

// GoString - never print the secret in debug output
func (key TreasureSecretKey) GoString() string {
	return "<treasure secret key>"
}

// MarshalText - for JSON
func (key TreasureSecretKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - for JSON, the namespace is checked
func (key *TreasureSecretKey) UnmarshalText(s []byte) error {
	k, err := DecodeTreasureSecretKey(string(s))
	if nil != err {
		return err
	}
	*key = k
	return nil
}

// Verify - strict check of a signature made by the secret half
func (key TreasurePublicKey) Verify(message []byte, signature Signature) bool {
	return verify(key[:], message, signature)
}

// Bytes - the raw 32 bytes
func (key TreasurePublicKey) Bytes() []byte {
	return append([]byte{}, key[:]...)
}

// String - bech32m text form
func (key TreasurePublicKey) String() string {
	return encode(treasurePublicNamespace, key[:])
}

// MarshalText - for JSON
func (key TreasurePublicKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - for JSON, the namespace is checked
func (key *TreasurePublicKey) UnmarshalText(s []byte) error {
	b, err := decode(treasurePublicNamespace, string(s), PublicKeySize)
	if nil != err {
		return err
	}
	copy(key[:], b)
	return nil
}
