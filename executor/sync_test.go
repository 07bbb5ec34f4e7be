// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/geonft/geonftd/blob"
	"github.com/geonft/geonftd/executor"
	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/fixtures"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/ledger"
	"github.com/geonft/geonftd/planner"
	"github.com/geonft/geonftd/protocol"
	"github.com/geonft/geonftd/status"
	"github.com/geonft/geonftd/storage"
	"github.com/geonft/geonftd/treasure"
)

// a complete node with a local ledger and blob directory
type node struct {
	t        *testing.T
	database *storage.Database
	ledgerDB *storage.Database
	records  *treasure.Store
	acceptor *treasure.Acceptor
	statuses *status.Store
	program  *ledger.Program
	blobs    *blob.DirectoryStore
}

func newNode(t *testing.T) *node {
	fixtures.SetupTestLogger()

	dir := t.TempDir()
	database, err := storage.Open(filepath.Join(dir, "node.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	ledgerDB, err := storage.Open(filepath.Join(dir, "ledger.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("ledger storage open error: %s", err)
	}
	blobs, err := blob.NewDirectoryStore(filepath.Join(dir, "blobs"), "")
	if nil != err {
		t.Fatalf("blob store error: %s", err)
	}

	records := treasure.NewStore(database)
	return &node{
		t:        t,
		database: database,
		ledgerDB: ledgerDB,
		records:  records,
		acceptor: treasure.NewAcceptor(records, 0),
		statuses: status.NewStore(database),
		program:  ledger.NewProgram(ledgerDB),
		blobs:    blobs,
	}
}

func (n *node) close() {
	n.database.Close()
	n.ledgerDB.Close()
	fixtures.TeardownTestLogger()
}

func (n *node) plan() []planner.Action {
	statuses, err := n.statuses.All()
	assert.Nil(n.t, err, "wrong statuses")
	events, err := n.records.Events()
	assert.Nil(n.t, err, "wrong events")
	return planner.Plan(statuses, events)
}

func (n *node) plant(account keys.AccountSecretKey, tr keys.TreasureSecretKey) {
	treasureSignature, accountSignature := fixtures.PlantSignatures(account, tr, fixtures.Image)
	_, err := n.acceptor.Plant(&treasure.PlantRequest{
		AccountPublicKey:  account.PublicKey().String(),
		TreasurePublicKey: tr.PublicKey().String(),
		Image:             fixtures.Image,
		AccountSignature:  accountSignature.String(),
		TreasureSignature: treasureSignature.String(),
	})
	assert.Nil(n.t, err, "wrong plant")
}

func (n *node) claim(account keys.AccountSecretKey, tr keys.TreasureSecretKey) {
	treasureSignature, accountSignature := fixtures.ClaimSignatures(account, tr)
	_, err := n.acceptor.Claim(&treasure.ClaimRequest{
		AccountPublicKey:  account.PublicKey().String(),
		TreasurePublicKey: tr.PublicKey().String(),
		AccountSignature:  accountSignature.String(),
		TreasureSignature: treasureSignature.String(),
	})
	assert.Nil(n.t, err, "wrong claim")
}

func (n *node) status(key keys.TreasurePublicKey) status.Status {
	st, _ := n.statuses.Get(key)
	return st
}

// ledger that is down until told otherwise
type flakyLedger struct {
	ledger.Submitter
	down bool
}

func (f *flakyLedger) Submit(ctx context.Context, tx ledger.Transaction) (*ledger.Confirmation, error) {
	if f.down {
		return nil, fault.LedgerUnavailable
	}
	return f.Submitter.Submit(ctx, tx)
}

func TestSyncPlant(t *testing.T) {
	n := newNode(t)
	defer n.close()

	key := fixtures.Treasure1.PublicKey()
	n.plant(fixtures.Account1, fixtures.Treasure1)

	e := executor.New(n.records, n.statuses, n.blobs, n.program, executor.Configuration{})

	actions := n.plan()
	assert.Equal(t, []planner.Action{
		{Key: key, Step: planner.UploadBlobToRemote},
		{Key: key, Step: planner.UploadPlantToLedger},
	}, actions, "wrong first plan")
	assert.Equal(t, status.None, n.status(key), "wrong initial status")

	result := e.Execute(context.Background(), actions[:1])
	assert.Equal(t, executor.Result{Executed: 1}, result, "wrong blob result")
	assert.Equal(t, status.BlobSynced, n.status(key), "wrong status after blob")

	actions = n.plan()
	assert.Equal(t, []planner.Action{{Key: key, Step: planner.UploadPlantToLedger}}, actions, "wrong second plan")

	result = e.Execute(context.Background(), actions)
	assert.Equal(t, executor.Result{Executed: 1}, result, "wrong plant result")
	assert.Equal(t, status.PlantSynced, n.status(key), "wrong status after plant")

	assert.Equal(t, 0, len(n.plan()), "steps remain after sync")

	entry, ok := n.program.Planted(key)
	assert.True(t, ok, "not on ledger")
	assert.Equal(t, fixtures.Account1.PublicKey(), entry.Account, "wrong ledger account")
}

func TestSyncPlantThenClaim(t *testing.T) {
	n := newNode(t)
	defer n.close()

	key := fixtures.Treasure1.PublicKey()
	n.plant(fixtures.Account1, fixtures.Treasure1)
	n.claim(fixtures.Account2, fixtures.Treasure1)

	actions := n.plan()
	assert.Equal(t, []planner.Action{
		{Key: key, Step: planner.UploadBlobToRemote},
		{Key: key, Step: planner.UploadPlantToLedger},
		{Key: key, Step: planner.UploadClaimToLedger},
	}, actions, "wrong plan")

	e := executor.New(n.records, n.statuses, n.blobs, n.program, executor.Configuration{})
	result := e.Execute(context.Background(), actions)
	assert.Equal(t, executor.Result{Executed: 3}, result, "wrong result")
	assert.Equal(t, status.ClaimSynced, n.status(key), "wrong status")
	assert.Equal(t, 0, len(n.plan()), "steps remain after sync")

	entry, ok := n.program.Claimed(key)
	assert.True(t, ok, "claim not on ledger")
	assert.Equal(t, fixtures.Account2.PublicKey(), entry.Account, "wrong claim account")
}

func TestSyncLedgerDown(t *testing.T) {
	n := newNode(t)
	defer n.close()

	key := fixtures.Treasure1.PublicKey()
	n.plant(fixtures.Account1, fixtures.Treasure1)

	flaky := &flakyLedger{Submitter: n.program, down: true}
	e := executor.New(n.records, n.statuses, n.blobs, flaky, executor.Configuration{})

	result := e.Execute(context.Background(), n.plan())
	assert.Equal(t, executor.Result{Executed: 1, Failed: 1}, result, "wrong result")
	assert.Equal(t, status.BlobSynced, n.status(key), "status moved on failure")

	actions := n.plan()
	assert.Equal(t, []planner.Action{{Key: key, Step: planner.UploadPlantToLedger}}, actions, "failed step not planned again")

	// a fresh executor has no backoff memory
	flaky.down = false
	e = executor.New(n.records, n.statuses, n.blobs, flaky, executor.Configuration{})
	result = e.Execute(context.Background(), actions)
	assert.Equal(t, executor.Result{Executed: 1}, result, "wrong retry result")
	assert.Equal(t, status.PlantSynced, n.status(key), "wrong status after retry")
}

func TestSyncClaimDatedBeforePlant(t *testing.T) {
	n := newNode(t)
	defer n.close()

	key := fixtures.Treasure1.PublicKey()
	plantedAt := time.Now().UTC()

	treasureSignature, accountSignature := fixtures.PlantSignatures(fixtures.Account1, fixtures.Treasure1, fixtures.Image)
	err := n.records.PutPlant(&treasure.PlantRecord{
		AccountPublicKey:  fixtures.Account1.PublicKey(),
		TreasurePublicKey: key,
		Image:             fixtures.Image,
		TreasureHash:      string(protocol.TreasureHash(fixtures.Image)),
		AccountSignature:  accountSignature,
		TreasureSignature: treasureSignature,
		Timestamp:         plantedAt,
	})
	assert.Nil(t, err, "wrong plant")

	// as if the clock was stepped back between plant and claim
	treasureSignature, accountSignature = fixtures.ClaimSignatures(fixtures.Account2, fixtures.Treasure1)
	err = n.records.PutClaim(&treasure.ClaimRecord{
		AccountPublicKey:  fixtures.Account2.PublicKey(),
		TreasurePublicKey: key,
		AccountSignature:  accountSignature,
		TreasureSignature: treasureSignature,
		Timestamp:         plantedAt.Add(-time.Second),
	})
	assert.Nil(t, err, "wrong claim")

	actions := n.plan()
	assert.Equal(t, []planner.Action{
		{Key: key, Step: planner.UploadBlobToRemote},
		{Key: key, Step: planner.UploadPlantToLedger},
		{Key: key, Step: planner.UploadClaimToLedger},
	}, actions, "wrong plan")

	e := executor.New(n.records, n.statuses, n.blobs, n.program, executor.Configuration{})
	result := e.Execute(context.Background(), actions)
	assert.Equal(t, executor.Result{Executed: 3}, result, "wrong result")
	assert.Equal(t, status.ClaimSynced, n.status(key), "wrong status")
	assert.Equal(t, 0, len(n.plan()), "steps remain after sync")
}
