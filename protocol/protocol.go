// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package protocol - the messages signed to plant and claim a treasure
//
// a plant needs two signatures: the treasure key binds the planting
// account to the image hash and the account key binds itself to the
// treasure; a claim is the same without the hash
package protocol

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
)

// message domain tags
var (
	plantTag = []byte("plant")
	claimTag = []byte("claim")
)

// TreasureHashSize - length of the ASCII hex treasure hash
const TreasureHashSize = 2 * sha256.Size

// TreasureHash - lowercase hex of SHA-256 over the base64 image text
//
// the ASCII bytes of the hex string are what gets signed and what the
// ledger stores
func TreasureHash(image string) []byte {
	digest := sha256.Sum256([]byte(image))
	hash := make([]byte, TreasureHashSize)
	hex.Encode(hash, digest[:])
	return hash
}

func message(tag []byte, parts ...[]byte) []byte {
	n := len(tag)
	for _, p := range parts {
		n += len(p)
	}
	m := make([]byte, 0, n)
	m = append(m, tag...)
	for _, p := range parts {
		m = append(m, p...)
	}
	return m
}

// PlantMessageForTreasure - "plant" ‖ account public ‖ treasure hash
func PlantMessageForTreasure(account keys.AccountPublicKey, treasureHash []byte) []byte {
	return message(plantTag, account[:], treasureHash)
}

// PlantMessageForAccount - "plant" ‖ treasure public
func PlantMessageForAccount(treasure keys.TreasurePublicKey) []byte {
	return message(plantTag, treasure[:])
}

// ClaimMessageForTreasure - "claim" ‖ account public
func ClaimMessageForTreasure(account keys.AccountPublicKey) []byte {
	return message(claimTag, account[:])
}

// ClaimMessageForAccount - "claim" ‖ treasure public
func ClaimMessageForAccount(treasure keys.TreasurePublicKey) []byte {
	return message(claimTag, treasure[:])
}

// SignPlantForTreasure - treasure key authorises the account to plant the image
func SignPlantForTreasure(treasure keys.TreasureSecretKey, account keys.AccountPublicKey, treasureHash []byte) keys.Signature {
	return treasure.Sign(PlantMessageForTreasure(account, treasureHash))
}

// SignPlantForAccount - account key commits to planting the treasure
func SignPlantForAccount(account keys.AccountSecretKey, treasure keys.TreasurePublicKey) keys.Signature {
	return account.Sign(PlantMessageForAccount(treasure))
}

// SignClaimForTreasure - treasure key authorises the account to claim
func SignClaimForTreasure(treasure keys.TreasureSecretKey, account keys.AccountPublicKey) keys.Signature {
	return treasure.Sign(ClaimMessageForTreasure(account))
}

// SignClaimForAccount - account key commits to claiming the treasure
func SignClaimForAccount(account keys.AccountSecretKey, treasure keys.TreasurePublicKey) keys.Signature {
	return account.Sign(ClaimMessageForAccount(treasure))
}

// VerifyPlantForTreasure - check the treasure signature of a plant
func VerifyPlantForTreasure(treasure keys.TreasurePublicKey, account keys.AccountPublicKey, treasureHash []byte, signature keys.Signature) error {
	if !treasure.Verify(PlantMessageForTreasure(account, treasureHash), signature) {
		return fault.InvalidTreasureSignature
	}
	return nil
}

// VerifyPlantForAccount - check the account signature of a plant
func VerifyPlantForAccount(account keys.AccountPublicKey, treasure keys.TreasurePublicKey, signature keys.Signature) error {
	if !account.Verify(PlantMessageForAccount(treasure), signature) {
		return fault.InvalidAccountSignature
	}
	return nil
}

// VerifyClaimForTreasure - check the treasure signature of a claim
func VerifyClaimForTreasure(treasure keys.TreasurePublicKey, account keys.AccountPublicKey, signature keys.Signature) error {
	if !treasure.Verify(ClaimMessageForTreasure(account), signature) {
		return fault.InvalidTreasureSignature
	}
	return nil
}

// VerifyClaimForAccount - check the account signature of a claim
func VerifyClaimForAccount(account keys.AccountPublicKey, treasure keys.TreasurePublicKey, signature keys.Signature) error {
	if !account.Verify(ClaimMessageForAccount(treasure), signature) {
		return fault.InvalidAccountSignature
	}
	return nil
}
