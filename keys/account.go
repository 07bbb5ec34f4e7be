// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"io"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

// AccountPublicKey - identifies the party that plants or claims
type AccountPublicKey [PublicKeySize]byte

// AccountSecretKey - signing half of an account key
type AccountSecretKey struct {
	privateKey ed25519.PrivateKey
}

// GenerateAccountKey - create a new random account key
func GenerateAccountKey(rand io.Reader) (AccountSecretKey, error) {
	_, privateKey, err := ed25519.GenerateKey(rand)
	if nil != err {
		return AccountSecretKey{}, err
	}
	return AccountSecretKey{privateKey: privateKey}, nil
}

// AccountSecretKeyFromSeed - deterministic key from a 32 byte seed
func AccountSecretKeyFromSeed(seed []byte) (AccountSecretKey, error) {
	privateKey, err := privateKeyFromSeed(seed)
	if nil != err {
		return AccountSecretKey{}, err
	}
	return AccountSecretKey{privateKey: privateKey}, nil
}

// DecodeAccountSecretKey - parse a "gas" string
func DecodeAccountSecretKey(s string) (AccountSecretKey, error) {
	seed, err := decode(accountSecretNamespace, s, SeedSize)
	if nil != err {
		return AccountSecretKey{}, err
	}
	return AccountSecretKey{privateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// DecodeAccountPublicKey - parse a "gap" string
func DecodeAccountPublicKey(s string) (AccountPublicKey, error) {
	var key AccountPublicKey
	err := key.UnmarshalText([]byte(s))
	return key, err
}

// PublicKey - the public half
func (key AccountSecretKey) PublicKey() AccountPublicKey {
	var public AccountPublicKey
	copy(public[:], publicBytes(key.privateKey))
	return public
}

// Sign - sign an arbitrary message
func (key AccountSecretKey) Sign(message []byte) Signature {
	return sign(key.privateKey, message)
}

// Seed - the 32 byte seed the key derives from
func (key AccountSecretKey) Seed() []byte {
	return key.privateKey.Seed()
}

// String - bech32m text form
func (key AccountSecretKey) String() string {
	return encode(accountSecretNamespace, key.privateKey.Seed())
}

// GoString - never print the secret in debug output
func (key AccountSecretKey) GoString() string {
	return "<account secret key>"
}

// MarshalText - for JSON
func (key AccountSecretKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - for JSON, the namespace is checked
func (key *AccountSecretKey) UnmarshalText(s []byte) error {
	k, err := DecodeAccountSecretKey(string(s))
	if nil != err {
		return err
	}
	*key = k
	return nil
}

// Verify - strict check of a signature made by the secret half
func (key AccountPublicKey) Verify(message []byte, signature Signature) bool {
	return verify(key[:], message, signature)
}

// Bytes - the raw 32 bytes
func (key AccountPublicKey) Bytes() []byte {
	return append([]byte{}, key[:]...)
}

// String - bech32m text form
func (key AccountPublicKey) String() string {
	return encode(accountPublicNamespace, key[:])
}

// MarshalText - for JSON
func (key AccountPublicKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - for JSON, the namespace is checked
func (key *AccountPublicKey) UnmarshalText(s []byte) error {
	b, err := decode(accountPublicNamespace, string(s), PublicKeySize)
	if nil != err {
		return err
	}
	copy(key[:], b)
	return nil
}
