// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasure_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/fixtures"
	"github.com/geonft/geonftd/protocol"
	"github.com/geonft/geonftd/treasure"
)

func TestPlantAccepted(t *testing.T) {
	db, store := setup(t)
	defer teardown(db)

	acceptor := treasure.NewAcceptor(store, 0)

	record, err := acceptor.Plant(plantRequest(fixtures.Account1, fixtures.Treasure1, fixtures.Image))
	assert.Nil(t, err, "plant error")
	assert.Equal(t, fixtures.Treasure1.PublicKey(), record.TreasurePublicKey, "treasure key")
	assert.Equal(t, string(protocol.TreasureHash(fixtures.Image)), record.TreasureHash, "treasure hash")
	assert.True(t, store.HasPlant(fixtures.Treasure1.PublicKey()), "not stored")

	// same request again
	_, err = acceptor.Plant(plantRequest(fixtures.Account1, fixtures.Treasure1, fixtures.Image))
	assert.Equal(t, fault.TreasureAlreadyPlanted, err, "duplicate plant")

	// different planter for the same treasure
	_, err = acceptor.Plant(plantRequest(fixtures.Account2, fixtures.Treasure1, fixtures.Image))
	assert.Equal(t, fault.TreasureAlreadyPlanted, err, "second planter")
}

func TestPlantRejected(t *testing.T) {
	db, store := setup(t)
	defer teardown(db)

	acceptor := treasure.NewAcceptor(store, 0)

	// swapped signatures
	r := plantRequest(fixtures.Account1, fixtures.Treasure1, fixtures.Image)
	r.AccountSignature, r.TreasureSignature = r.TreasureSignature, r.AccountSignature
	_, err := acceptor.Plant(r)
	assert.Equal(t, fault.InvalidTreasureSignature, err, "swapped signatures")

	// image altered after signing
	r = plantRequest(fixtures.Account1, fixtures.Treasure1, fixtures.Image)
	r.Image = "AAAA" + r.Image
	_, err = acceptor.Plant(r)
	assert.Equal(t, fault.InvalidTreasureSignature, err, "altered image")

	// account signature from the wrong account
	r = plantRequest(fixtures.Account1, fixtures.Treasure1, fixtures.Image)
	other := plantRequest(fixtures.Account2, fixtures.Treasure1, fixtures.Image)
	r.AccountSignature = other.AccountSignature
	_, err = acceptor.Plant(r)
	assert.Equal(t, fault.InvalidAccountSignature, err, "wrong account signature")

	// keys in each other's fields
	r = plantRequest(fixtures.Account1, fixtures.Treasure1, fixtures.Image)
	r.AccountPublicKey, r.TreasurePublicKey = r.TreasurePublicKey, r.AccountPublicKey
	_, err = acceptor.Plant(r)
	assert.Equal(t, fault.WrongNamespace, err, "swapped keys")

	// secret key instead of public
	r = plantRequest(fixtures.Account1, fixtures.Treasure1, fixtures.Image)
	r.TreasurePublicKey = fixtures.Treasure1.String()
	_, err = acceptor.Plant(r)
	assert.Equal(t, fault.WrongNamespace, err, "secret key")

	// garbage signature
	r = plantRequest(fixtures.Account1, fixtures.Treasure1, fixtures.Image)
	r.AccountSignature = "????"
	_, err = acceptor.Plant(r)
	assert.Equal(t, fault.CannotDecodeSignature, err, "bad signature")

	// missing field
	r = plantRequest(fixtures.Account1, fixtures.Treasure1, fixtures.Image)
	r.TreasureSignature = ""
	_, err = acceptor.Plant(r)
	assert.Equal(t, fault.MissingParameters, err, "missing signature")

	// not base64
	r = plantRequest(fixtures.Account1, fixtures.Treasure1, "not an image!")
	_, err = acceptor.Plant(r)
	assert.Equal(t, fault.InvalidImage, err, "not base64")

	_, err = acceptor.Plant(nil)
	assert.Equal(t, fault.InvalidRequest, err, "nil request")

	assert.False(t, store.HasPlant(fixtures.Treasure1.PublicKey()), "rejected plant stored")
}

func TestPlantImageLimit(t *testing.T) {
	db, store := setup(t)
	defer teardown(db)

	acceptor := treasure.NewAcceptor(store, 16)

	image := strings.Repeat("AAAA", 5)
	_, err := acceptor.Plant(plantRequest(fixtures.Account1, fixtures.Treasure1, image))
	assert.Equal(t, fault.InvalidImage, err, "oversize image")

	image = strings.Repeat("AAAA", 4)
	_, err = acceptor.Plant(plantRequest(fixtures.Account1, fixtures.Treasure1, image))
	assert.Nil(t, err, "image at the limit")
}

func TestPlantCheckOrder(t *testing.T) {
	db, store := setup(t)
	defer teardown(db)

	acceptor := treasure.NewAcceptor(store, 16)

	// key errors come before image errors
	r := plantRequest(fixtures.Account1, fixtures.Treasure1, "not an image!")
	r.AccountPublicKey, r.TreasurePublicKey = r.TreasurePublicKey, r.AccountPublicKey
	_, err := acceptor.Plant(r)
	assert.Equal(t, fault.WrongNamespace, err, "swapped keys with bad image")

	r = plantRequest(fixtures.Account1, fixtures.Treasure1, strings.Repeat("AAAA", 5))
	r.TreasureSignature = "????"
	_, err = acceptor.Plant(r)
	assert.Equal(t, fault.CannotDecodeSignature, err, "bad signature with oversize image")

	// an existing plant comes before image errors
	_, err = acceptor.Plant(plantRequest(fixtures.Account1, fixtures.Treasure1, "AAAA"))
	assert.Nil(t, err, "first plant")

	_, err = acceptor.Plant(plantRequest(fixtures.Account2, fixtures.Treasure1, "not an image!"))
	assert.Equal(t, fault.TreasureAlreadyPlanted, err, "duplicate with bad image")

	_, err = acceptor.Plant(plantRequest(fixtures.Account2, fixtures.Treasure1, strings.Repeat("AAAA", 5)))
	assert.Equal(t, fault.TreasureAlreadyPlanted, err, "duplicate with oversize image")
}

func TestClaim(t *testing.T) {
	db, store := setup(t)
	defer teardown(db)

	acceptor := treasure.NewAcceptor(store, 0)

	_, err := acceptor.Claim(claimRequest(fixtures.Account2, fixtures.Treasure1))
	assert.Equal(t, fault.TreasureNotPlanted, err, "claim without plant")
	assert.True(t, fault.IsErrLedger(err), "not planted class")

	_, err = acceptor.Plant(plantRequest(fixtures.Account1, fixtures.Treasure1, fixtures.Image))
	assert.Nil(t, err, "plant error")

	// claim signed by the treasure for a different account
	r := claimRequest(fixtures.Account2, fixtures.Treasure1)
	r.TreasureSignature = claimRequest(fixtures.Account1, fixtures.Treasure1).TreasureSignature
	_, err = acceptor.Claim(r)
	assert.Equal(t, fault.InvalidTreasureSignature, err, "treasure signature for other account")

	// account signature over a different treasure
	r = claimRequest(fixtures.Account2, fixtures.Treasure1)
	r.AccountSignature = claimRequest(fixtures.Account2, fixtures.Treasure2).AccountSignature
	_, err = acceptor.Claim(r)
	assert.Equal(t, fault.InvalidAccountSignature, err, "account signature for other treasure")

	// a plant signature is not a claim signature
	p := plantRequest(fixtures.Account2, fixtures.Treasure1, fixtures.Image)
	r = claimRequest(fixtures.Account2, fixtures.Treasure1)
	r.AccountSignature = p.AccountSignature
	_, err = acceptor.Claim(r)
	assert.Equal(t, fault.InvalidAccountSignature, err, "plant signature used for claim")

	record, err := acceptor.Claim(claimRequest(fixtures.Account2, fixtures.Treasure1))
	assert.Nil(t, err, "claim error")
	assert.Equal(t, fixtures.Account2.PublicKey(), record.AccountPublicKey, "claimer")

	_, err = acceptor.Claim(claimRequest(fixtures.Account1, fixtures.Treasure1))
	assert.Equal(t, fault.TreasureAlreadyClaimed, err, "second claim")

	r = claimRequest(fixtures.Account2, fixtures.Treasure1)
	r.AccountPublicKey = ""
	_, err = acceptor.Claim(r)
	assert.Equal(t, fault.MissingParameters, err, "missing account")
}
