// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/geonft/geonftd/counter"
	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/rpc/ratelimit"
	"github.com/geonft/geonftd/status"
	"github.com/geonft/geonftd/treasure"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// modes reported by Info
const (
	ModeNormal   = "normal"
	ModeReadOnly = "read-only"
)

// Events - every locally accepted record
type Events interface {
	Events() ([]treasure.Event, error)
}

// Statuses - synchronisation state of every treasure
type Statuses interface {
	All() (map[keys.TreasurePublicKey]status.Status, error)
}

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	ReadOnly bool
	Events   Events
	Statuses Statuses
	counter  *counter.Counter
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Mode      string   `json:"mode"`
	RPCs      uint64   `json:"rpcs"`
	Treasures Counters `json:"treasures"`
	Version   string   `json:"version"`
	Uptime    string   `json:"uptime"`
}

// Counters - treasure counters
//
// synced and unsynced follow the label shown for each treasure
type Counters struct {
	Planted  int `json:"planted"`
	Claimed  int `json:"claimed"`
	Synced   int `json:"synced"`
	Unsynced int `json:"unsynced"`
}

// New - create the RPC type
func New(log *logger.L, events Events, statuses Statuses, start time.Time, version string, counter *counter.Counter, readOnly bool) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		ReadOnly: readOnly,
		Events:   events,
		Statuses: statuses,
		counter:  counter,
	}
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Events || nil == node.Statuses {
		return fault.DatabaseIsNotSet
	}

	events, err := node.Events.Events()
	if nil != err {
		node.Log.Errorf("Node.Info: events error: %s", err)
		return err
	}
	statuses, err := node.Statuses.All()
	if nil != err {
		node.Log.Errorf("Node.Info: statuses error: %s", err)
		return err
	}

	planted := make([]keys.TreasurePublicKey, 0, len(events))
	claimed := make(map[keys.TreasurePublicKey]bool)
	for _, e := range events {
		switch e.Kind {
		case treasure.PlantEvent:
			planted = append(planted, e.Key)
		case treasure.ClaimEvent:
			claimed[e.Key] = true
		}
	}

	reply.Treasures.Planted = len(planted)
	reply.Treasures.Claimed = len(claimed)
	for _, key := range planted {
		if "synced" == status.Label(statuses[key], claimed[key]) {
			reply.Treasures.Synced += 1
		} else {
			reply.Treasures.Unsynced += 1
		}
	}

	reply.Mode = ModeNormal
	if node.ReadOnly {
		reply.Mode = ModeReadOnly
	}
	if nil != node.counter {
		reply.RPCs = node.counter.Uint64()
	}
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
