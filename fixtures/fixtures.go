// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/protocol"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// a 1x1 PNG as base64 text
const Image = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

// deterministic keys
var (
	Account1  keys.AccountSecretKey
	Account2  keys.AccountSecretKey
	Treasure1 keys.TreasureSecretKey
	Treasure2 keys.TreasureSecretKey
	Treasure3 keys.TreasureSecretKey
)

func init() {
	Account1 = mustAccount(0xa1)
	Account2 = mustAccount(0xa2)
	Treasure1 = mustTreasure(0x71)
	Treasure2 = mustTreasure(0x72)
	Treasure3 = mustTreasure(0x73)
}

func mustAccount(b byte) keys.AccountSecretKey {
	k, err := keys.AccountSecretKeyFromSeed(bytes.Repeat([]byte{b}, keys.SeedSize))
	if nil != err {
		panic(err)
	}
	return k
}

func mustTreasure(b byte) keys.TreasureSecretKey {
	k, err := keys.TreasureSecretKeyFromSeed(bytes.Repeat([]byte{b}, keys.SeedSize))
	if nil != err {
		panic(err)
	}
	return k
}

// PlantSignatures - valid treasure and account signatures for planting image
func PlantSignatures(account keys.AccountSecretKey, treasure keys.TreasureSecretKey, image string) (keys.Signature, keys.Signature) {
	hash := protocol.TreasureHash(image)
	treasureSignature := protocol.SignPlantForTreasure(treasure, account.PublicKey(), hash)
	accountSignature := protocol.SignPlantForAccount(account, treasure.PublicKey())
	return treasureSignature, accountSignature
}

// ClaimSignatures - valid treasure and account signatures for a claim
func ClaimSignatures(account keys.AccountSecretKey, treasure keys.TreasureSecretKey) (keys.Signature, keys.Signature) {
	treasureSignature := protocol.SignClaimForTreasure(treasure, account.PublicKey())
	accountSignature := protocol.SignClaimForAccount(account, treasure.PublicKey())
	return treasureSignature, accountSignature
}

// SetupTestLogger - throw-away logger in the testing directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
