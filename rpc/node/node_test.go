// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/geonft/geonftd/counter"
	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/fixtures"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/rpc/mocks"
	"github.com/geonft/geonftd/rpc/node"
	"github.com/geonft/geonftd/status"
	"github.com/geonft/geonftd/treasure"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	events := mocks.NewMockEvents(ctl)
	statuses := mocks.NewMockStatuses(ctl)

	k1 := fixtures.Treasure1.PublicKey()
	k2 := fixtures.Treasure2.PublicKey()
	k3 := fixtures.Treasure3.PublicKey()
	now := time.Now()

	events.EXPECT().Events().Return([]treasure.Event{
		{Kind: treasure.PlantEvent, Key: k1, Timestamp: now},
		{Kind: treasure.PlantEvent, Key: k2, Timestamp: now},
		{Kind: treasure.PlantEvent, Key: k3, Timestamp: now},
		{Kind: treasure.ClaimEvent, Key: k1, Timestamp: now},
		{Kind: treasure.ClaimEvent, Key: k2, Timestamp: now},
	}, nil).Times(1)
	statuses.EXPECT().All().Return(map[keys.TreasurePublicKey]status.Status{
		k1: status.ClaimSynced,
		k2: status.PlantSynced,
		k3: status.PlantSynced,
	}, nil).Times(1)

	ctr := counter.Counter(3)
	n := node.New(logger.New(fixtures.LogCategory), events, statuses, now, "1", &ctr, false)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong info")
	assert.Equal(t, node.ModeNormal, reply.Mode, "wrong mode")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, "1", reply.Version, "wrong version")
	assert.Equal(t, node.Counters{
		Planted:  3,
		Claimed:  2,
		Synced:   2,
		Unsynced: 1,
	}, reply.Treasures, "wrong counters")
}

func TestNodeInfoReadOnlyEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	events := mocks.NewMockEvents(ctl)
	statuses := mocks.NewMockStatuses(ctl)
	events.EXPECT().Events().Return(nil, nil).Times(1)
	statuses.EXPECT().All().Return(map[keys.TreasurePublicKey]status.Status{}, nil).Times(1)

	n := node.New(logger.New(fixtures.LogCategory), events, statuses, time.Now(), "1", nil, true)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong info")
	assert.Equal(t, node.ModeReadOnly, reply.Mode, "wrong mode")
	assert.Equal(t, uint64(0), reply.RPCs, "wrong rpc count")
	assert.Equal(t, node.Counters{}, reply.Treasures, "wrong counters")
}

func TestNodeInfoCorrupt(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	events := mocks.NewMockEvents(ctl)
	statuses := mocks.NewMockStatuses(ctl)
	events.EXPECT().Events().Return(nil, fault.CorruptRecord).Times(1)

	n := node.New(logger.New(fixtures.LogCategory), events, statuses, time.Now(), "1", nil, false)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, fault.CorruptRecord, err, "wrong error")
}

func TestNodeInfoNoDatabase(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	n := node.New(logger.New(fixtures.LogCategory), nil, nil, time.Now(), "1", nil, false)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong error")
}
