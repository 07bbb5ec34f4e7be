// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/protocol"
)

const testImage = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func testKeys(t *testing.T) (keys.AccountSecretKey, keys.TreasureSecretKey) {
	account, err := keys.AccountSecretKeyFromSeed(bytes.Repeat([]byte{0x01}, keys.SeedSize))
	assert.Nil(t, err, "account seed")
	treasure, err := keys.TreasureSecretKeyFromSeed(bytes.Repeat([]byte{0x02}, keys.SeedSize))
	assert.Nil(t, err, "treasure seed")
	return account, treasure
}

func TestTreasureHash(t *testing.T) {
	h := protocol.TreasureHash(testImage)
	assert.Equal(t, protocol.TreasureHashSize, len(h), "hash length")
	assert.Equal(t, bytes.ToLower(h), h, "hash not lower case")
	assert.Equal(t, h, protocol.TreasureHash(testImage), "hash not stable")
	assert.NotEqual(t, h, protocol.TreasureHash(testImage+"A"), "different images give same hash")

	// sha256 of the empty string
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", string(protocol.TreasureHash("")), "empty hash")
}

func TestMessages(t *testing.T) {
	account, treasure := testKeys(t)
	a := account.PublicKey()
	tr := treasure.PublicKey()
	h := protocol.TreasureHash(testImage)

	m := protocol.PlantMessageForTreasure(a, h)
	assert.Equal(t, []byte("plant"), m[:5], "plant tag")
	assert.Equal(t, a[:], m[5:5+keys.PublicKeySize], "account bytes")
	assert.Equal(t, h, m[5+keys.PublicKeySize:], "hash bytes")

	assert.Equal(t, append([]byte("plant"), tr[:]...), protocol.PlantMessageForAccount(tr), "plant for account")
	assert.Equal(t, append([]byte("claim"), a[:]...), protocol.ClaimMessageForTreasure(a), "claim for treasure")
	assert.Equal(t, append([]byte("claim"), tr[:]...), protocol.ClaimMessageForAccount(tr), "claim for account")
}

func TestPlantSignatures(t *testing.T) {
	account, treasure := testKeys(t)
	a := account.PublicKey()
	tr := treasure.PublicKey()
	h := protocol.TreasureHash(testImage)

	ts := protocol.SignPlantForTreasure(treasure, a, h)
	as := protocol.SignPlantForAccount(account, tr)

	assert.Nil(t, protocol.VerifyPlantForTreasure(tr, a, h, ts), "treasure signature rejected")
	assert.Nil(t, protocol.VerifyPlantForAccount(a, tr, as), "account signature rejected")

	// signature made over a different image
	other := protocol.TreasureHash(testImage + "A")
	assert.Equal(t, fault.InvalidTreasureSignature, protocol.VerifyPlantForTreasure(tr, a, other, ts), "wrong hash accepted")

	// signatures swapped between roles
	assert.Equal(t, fault.InvalidTreasureSignature, protocol.VerifyPlantForTreasure(tr, a, h, as), "account signature accepted as treasure")
	assert.Equal(t, fault.InvalidAccountSignature, protocol.VerifyPlantForAccount(a, tr, ts), "treasure signature accepted as account")

	// a claim signature must not verify as a plant
	cs := protocol.SignClaimForAccount(account, tr)
	assert.Equal(t, fault.InvalidAccountSignature, protocol.VerifyPlantForAccount(a, tr, cs), "claim accepted as plant")
}

func TestClaimSignatures(t *testing.T) {
	account, treasure := testKeys(t)
	a := account.PublicKey()
	tr := treasure.PublicKey()

	ts := protocol.SignClaimForTreasure(treasure, a)
	as := protocol.SignClaimForAccount(account, tr)

	assert.Nil(t, protocol.VerifyClaimForTreasure(tr, a, ts), "treasure signature rejected")
	assert.Nil(t, protocol.VerifyClaimForAccount(a, tr, as), "account signature rejected")

	other, err := keys.AccountSecretKeyFromSeed(bytes.Repeat([]byte{0x03}, keys.SeedSize))
	assert.Nil(t, err, "other seed")
	assert.Equal(t, fault.InvalidTreasureSignature, protocol.VerifyClaimForTreasure(tr, other.PublicKey(), ts), "claim for other account accepted")
}

func TestBitFlips(t *testing.T) {
	account, treasure := testKeys(t)
	a := account.PublicKey()
	tr := treasure.PublicKey()
	h := protocol.TreasureHash(testImage)
	ts := protocol.SignPlantForTreasure(treasure, a, h)

	for i := 0; i < len(ts); i += 1 {
		for bit := uint(0); bit < 8; bit += 1 {
			flipped := append(keys.Signature{}, ts...)
			flipped[i] ^= 1 << bit
			assert.Equal(t, fault.InvalidTreasureSignature, protocol.VerifyPlantForTreasure(tr, a, h, flipped), "signature byte %d bit %d", i, bit)
		}
	}

	for i := 0; i < len(h); i += 1 {
		flipped := append([]byte{}, h...)
		flipped[i] ^= 0x01
		assert.Equal(t, fault.InvalidTreasureSignature, protocol.VerifyPlantForTreasure(tr, a, flipped, ts), "hash byte %d", i)
	}

	for i := 0; i < keys.PublicKeySize; i += 1 {
		flipped := a
		flipped[i] ^= 0x80
		assert.Equal(t, fault.InvalidTreasureSignature, protocol.VerifyPlantForTreasure(tr, flipped, h, ts), "account byte %d", i)
	}
}
