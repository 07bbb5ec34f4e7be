// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasure_test

import (
	"path/filepath"
	"testing"

	"github.com/geonft/geonftd/fixtures"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/status"
	"github.com/geonft/geonftd/storage"
	"github.com/geonft/geonftd/treasure"
)

func setup(t *testing.T) (*storage.Database, *treasure.Store) {
	fixtures.SetupTestLogger()
	db, err := storage.Open(filepath.Join(t.TempDir(), "treasure.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db, treasure.NewStore(db)
}

func teardown(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

func plantRequest(account keys.AccountSecretKey, tr keys.TreasureSecretKey, image string) *treasure.PlantRequest {
	treasureSignature, accountSignature := fixtures.PlantSignatures(account, tr, image)
	return &treasure.PlantRequest{
		AccountPublicKey:  account.PublicKey().String(),
		TreasurePublicKey: tr.PublicKey().String(),
		Image:             image,
		AccountSignature:  accountSignature.String(),
		TreasureSignature: treasureSignature.String(),
	}
}

func claimRequest(account keys.AccountSecretKey, tr keys.TreasureSecretKey) *treasure.ClaimRequest {
	treasureSignature, accountSignature := fixtures.ClaimSignatures(account, tr)
	return &treasure.ClaimRequest{
		AccountPublicKey:  account.PublicKey().String(),
		TreasurePublicKey: tr.PublicKey().String(),
		AccountSignature:  accountSignature.String(),
		TreasureSignature: treasureSignature.String(),
	}
}

// in-memory status source
type fakeStatuses map[keys.TreasurePublicKey]status.Status

func (f fakeStatuses) Get(key keys.TreasurePublicKey) (status.Status, bool) {
	st, ok := f[key]
	return st, ok
}
