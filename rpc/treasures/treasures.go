// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasures

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/rpc/ratelimit"
	"github.com/geonft/geonftd/treasure"
)

const (
	maximumRecent     = 100
	rateLimitTreasure = 200
	rateBurstTreasure = 100
)

// Acceptor - verifies and stores requests
type Acceptor interface {
	Plant(*treasure.PlantRequest) (*treasure.PlantRecord, error)
	Claim(*treasure.ClaimRequest) (*treasure.ClaimRecord, error)
}

// Records - read access to accepted treasures
type Records interface {
	HasPlant(keys.TreasurePublicKey) bool
	GetPlant(keys.TreasurePublicKey) (*treasure.PlantRecord, error)
	Describe(keys.TreasurePublicKey, treasure.StatusReader) (*treasure.Info, error)
	Recent(int) ([]keys.TreasurePublicKey, error)
}

// Treasure - type for the RPC
type Treasure struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Acceptor Acceptor
	Records  Records
	Statuses treasure.StatusReader
	ReadOnly bool
}

// PlantReply - result of Treasure.Plant
type PlantReply struct {
	TreasurePublicKey keys.TreasurePublicKey `json:"treasure_public_key"`
	TreasureHash      string                 `json:"treasure_hash"`
}

// ClaimReply - result of Treasure.Claim
type ClaimReply struct {
	TreasurePublicKey keys.TreasurePublicKey `json:"treasure_public_key"`
	AccountPublicKey  keys.AccountPublicKey  `json:"account_public_key"`
}

// KeyArguments - a single treasure
type KeyArguments struct {
	TreasurePublicKey string `json:"treasure_public_key"`
}

// ExistsReply - result of Treasure.Exists
type ExistsReply struct {
	TreasureExists bool `json:"treasure_exists"`
}

// ImageReply - result of Treasure.Image
type ImageReply struct {
	Image string `json:"image"`
}

// RecentArguments - arguments for Treasure.Recent
type RecentArguments struct {
	Count int `json:"count"`
}

// RecentReply - result of Treasure.Recent
type RecentReply struct {
	Treasures []*treasure.Info `json:"treasures"`
}

// New - create the RPC type
func New(log *logger.L, acceptor Acceptor, records Records, statuses treasure.StatusReader, readOnly bool) *Treasure {
	return &Treasure{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitTreasure, rateBurstTreasure),
		Acceptor: acceptor,
		Records:  records,
		Statuses: statuses,
		ReadOnly: readOnly,
	}
}

// Plant - plant a treasure
func (t *Treasure) Plant(arguments *treasure.PlantRequest, reply *PlantReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if t.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	record, err := t.Acceptor.Plant(arguments)
	if nil != err {
		t.Log.Infof("Treasure.Plant: rejected: %s", err)
		return err
	}

	reply.TreasurePublicKey = record.TreasurePublicKey
	reply.TreasureHash = record.TreasureHash
	return nil
}

// Claim - claim a planted treasure
func (t *Treasure) Claim(arguments *treasure.ClaimRequest, reply *ClaimReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if t.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}

	record, err := t.Acceptor.Claim(arguments)
	if nil != err {
		t.Log.Infof("Treasure.Claim: rejected: %s", err)
		return err
	}

	reply.TreasurePublicKey = record.TreasurePublicKey
	reply.AccountPublicKey = record.AccountPublicKey
	return nil
}

// Exists - check if a treasure was planted
func (t *Treasure) Exists(arguments *KeyArguments, reply *ExistsReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	key, err := decodeKey(arguments)
	if nil != err {
		return err
	}
	reply.TreasureExists = t.Records.HasPlant(key)
	return nil
}

// Info - display summary of a treasure
func (t *Treasure) Info(arguments *KeyArguments, reply *treasure.Info) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	key, err := decodeKey(arguments)
	if nil != err {
		return err
	}
	info, err := t.Records.Describe(key, t.Statuses)
	if nil != err {
		return err
	}
	*reply = *info
	return nil
}

// Image - the base64 image of a treasure
func (t *Treasure) Image(arguments *KeyArguments, reply *ImageReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	key, err := decodeKey(arguments)
	if nil != err {
		return err
	}
	plant, err := t.Records.GetPlant(key)
	if nil != err {
		return err
	}
	reply.Image = plant.Image
	return nil
}

// Recent - summaries of the most recently planted treasures
func (t *Treasure) Recent(arguments *RecentArguments, reply *RecentReply) error {
	if nil == arguments {
		return fault.InvalidRequest
	}
	if err := ratelimit.LimitN(t.Limiter, arguments.Count, maximumRecent); nil != err {
		return err
	}

	recent, err := t.Records.Recent(arguments.Count)
	if nil != err {
		return err
	}

	reply.Treasures = make([]*treasure.Info, 0, len(recent))
	for _, key := range recent {
		info, err := t.Records.Describe(key, t.Statuses)
		if nil != err {
			return err
		}
		reply.Treasures = append(reply.Treasures, info)
	}
	return nil
}

func decodeKey(arguments *KeyArguments) (keys.TreasurePublicKey, error) {
	if nil == arguments || "" == arguments.TreasurePublicKey {
		return keys.TreasurePublicKey{}, fault.MissingParameters
	}
	return keys.DecodeTreasurePublicKey(arguments.TreasurePublicKey)
}
