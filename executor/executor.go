// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package executor - carry out planned synchronisation steps
//
// each step talks to one remote system and only advances the stored
// status after the remote system has confirmed; a failed step leaves
// the status alone so the next plan produces it again
package executor

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"

	"github.com/geonft/geonftd/blob"
	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/ledger"
	"github.com/geonft/geonftd/planner"
	"github.com/geonft/geonftd/status"
	"github.com/geonft/geonftd/treasure"
)

// defaults for a zero configuration
const (
	DefaultRemoteTimeout  = 30 * time.Second
	DefaultBackoffInitial = 10 * time.Second
	DefaultBackoffMaximum = 30 * time.Minute
)

// Records - source of the accepted records
type Records interface {
	GetPlant(keys.TreasurePublicKey) (*treasure.PlantRecord, error)
	GetClaim(keys.TreasurePublicKey) (*treasure.ClaimRecord, error)
}

// Statuses - synchronisation status that only moves forward
type Statuses interface {
	Advance(keys.TreasurePublicKey, status.Status) (bool, error)
}

// Configuration - timing of remote calls
type Configuration struct {
	RemoteTimeout  time.Duration
	BackoffInitial time.Duration
	BackoffMaximum time.Duration
}

// Result - summary of one Execute call
type Result struct {
	Executed int
	Failed   int
	Skipped  int
}

// a key that failed recently
type backoff struct {
	delay   time.Duration
	retryAt time.Time
}

// Executor - runs steps against the remote systems
type Executor struct {
	log            *logger.L
	records        Records
	statuses       Statuses
	blobs          blob.Store
	ledger         ledger.Submitter
	remoteTimeout  time.Duration
	backoffInitial time.Duration
	backoffMaximum time.Duration
	backoff        *cache.Cache
}

// New - create an executor
func New(records Records, statuses Statuses, blobs blob.Store, submitter ledger.Submitter, configuration Configuration) *Executor {
	if configuration.RemoteTimeout <= 0 {
		configuration.RemoteTimeout = DefaultRemoteTimeout
	}
	if configuration.BackoffInitial <= 0 {
		configuration.BackoffInitial = DefaultBackoffInitial
	}
	if configuration.BackoffMaximum < configuration.BackoffInitial {
		configuration.BackoffMaximum = DefaultBackoffMaximum
		if configuration.BackoffMaximum < configuration.BackoffInitial {
			configuration.BackoffMaximum = configuration.BackoffInitial
		}
	}

	return &Executor{
		log:            logger.New("executor"),
		records:        records,
		statuses:       statuses,
		blobs:          blobs,
		ledger:         submitter,
		remoteTimeout:  configuration.RemoteTimeout,
		backoffInitial: configuration.BackoffInitial,
		backoffMaximum: configuration.BackoffMaximum,
		backoff:        cache.New(2*configuration.BackoffMaximum, configuration.BackoffMaximum),
	}
}

// Execute - run the actions in order
//
// once a step fails the remaining steps of that key are skipped for
// this call, as are all steps of keys still in backoff
func (e *Executor) Execute(ctx context.Context, actions []planner.Action) Result {
	result := Result{}
	failed := make(map[keys.TreasurePublicKey]struct{})

loop:
	for _, action := range actions {
		select {
		case <-ctx.Done():
			e.log.Info("execute: cancelled")
			break loop
		default:
		}

		if _, ok := failed[action.Key]; ok || e.inBackoff(action.Key) {
			e.log.Debugf("%s: %s: skipped", keys.Abbreviate(action.Key.String()), action.Step)
			recordStep(action.Step, outcomeSkipped, nil, 0)
			result.Skipped += 1
			continue loop
		}

		start := time.Now()
		err := e.run(ctx, action)
		duration := time.Since(start)

		if nil != err {
			e.log.Warnf("%s: %s: failed: %s  class: %s", keys.Abbreviate(action.Key.String()), action.Step, err, fault.Class(err))
			recordStep(action.Step, outcomeFailed, err, duration)
			failed[action.Key] = struct{}{}
			e.fail(action.Key)
			result.Failed += 1
			continue loop
		}

		recordStep(action.Step, outcomeExecuted, nil, duration)
		e.backoff.Delete(action.Key.String())
		result.Executed += 1
	}

	if 0 != len(actions) {
		e.log.Infof("execute: executed: %d  failed: %d  skipped: %d", result.Executed, result.Failed, result.Skipped)
	}
	return result
}

func (e *Executor) run(ctx context.Context, action planner.Action) error {
	switch action.Step {
	case planner.UploadBlobToRemote:
		return e.uploadBlob(ctx, action.Key)
	case planner.UploadPlantToLedger:
		return e.uploadPlant(ctx, action.Key)
	case planner.UploadClaimToLedger:
		return e.uploadClaim(ctx, action.Key)
	default:
		return fault.InvalidRequest
	}
}

func (e *Executor) uploadBlob(ctx context.Context, key keys.TreasurePublicKey) error {
	plant, err := e.records.GetPlant(key)
	if nil != err {
		return err
	}
	image, err := base64.StdEncoding.DecodeString(plant.Image)
	if nil != err {
		return fault.InvalidImage
	}

	ctx, cancel := context.WithTimeout(ctx, e.remoteTimeout)
	defer cancel()

	id, err := e.blobs.Put(ctx, image)
	if nil != err {
		return err
	}
	e.log.Infof("%s: blob: %s", keys.Abbreviate(key.String()), id)

	_, err = e.statuses.Advance(key, status.BlobSynced)
	return err
}

func (e *Executor) uploadPlant(ctx context.Context, key keys.TreasurePublicKey) error {
	plant, err := e.records.GetPlant(key)
	if nil != err {
		return err
	}

	tx := &ledger.PlantTransaction{
		Account:      plant.AccountPublicKey,
		Treasure:     plant.TreasurePublicKey,
		TreasureHash: plant.TreasureHash,
	}
	return e.submit(ctx, key, tx, status.PlantSynced)
}

func (e *Executor) uploadClaim(ctx context.Context, key keys.TreasurePublicKey) error {
	claim, err := e.records.GetClaim(key)
	if nil != err {
		return err
	}

	tx := &ledger.ClaimTransaction{
		Account:  claim.AccountPublicKey,
		Treasure: claim.TreasurePublicKey,
	}
	return e.submit(ctx, key, tx, status.ClaimSynced)
}

func (e *Executor) submit(ctx context.Context, key keys.TreasurePublicKey, tx ledger.Transaction, next status.Status) error {
	ctx, cancel := context.WithTimeout(ctx, e.remoteTimeout)
	defer cancel()

	confirmation, err := e.ledger.Submit(ctx, tx)
	if nil != err {
		return err
	}
	if confirmation.Duplicate {
		e.log.Infof("%s: already on ledger  tx: %s", keys.Abbreviate(key.String()), confirmation.TxId)
	} else {
		e.log.Infof("%s: confirmed  tx: %s", keys.Abbreviate(key.String()), confirmation.TxId)
	}

	_, err = e.statuses.Advance(key, next)
	return err
}

func (e *Executor) inBackoff(key keys.TreasurePublicKey) bool {
	item, found := e.backoff.Get(key.String())
	if !found {
		return false
	}
	return time.Now().Before(item.(backoff).retryAt)
}

// double the delay of a key, starting from the initial delay
func (e *Executor) fail(key keys.TreasurePublicKey) {
	delay := e.backoffInitial
	if item, found := e.backoff.Get(key.String()); found {
		delay = 2 * item.(backoff).delay
		if delay > e.backoffMaximum {
			delay = e.backoffMaximum
		}
	}
	e.backoff.Set(key.String(), backoff{
		delay:   delay,
		retryAt: time.Now().Add(delay),
	}, delay+e.backoffMaximum)
}
