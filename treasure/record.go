// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treasure - accepted plants and claims
//
// a plant is accepted once both of its signatures verify and no other
// plant exists for the treasure key; a claim needs an existing plant
// and the first valid claim wins
package treasure

import (
	"time"

	"github.com/geonft/geonftd/keys"
)

// PlantRecord - an accepted plant, immutable once stored
type PlantRecord struct {
	AccountPublicKey  keys.AccountPublicKey  `json:"account_public_key"`
	TreasurePublicKey keys.TreasurePublicKey `json:"treasure_public_key"`
	Image             string                 `json:"image"`
	TreasureHash      string                 `json:"treasure_hash"`
	AccountSignature  keys.Signature         `json:"account_signature"`
	TreasureSignature keys.Signature         `json:"treasure_signature"`
	Timestamp         time.Time              `json:"-"`
}

// ClaimRecord - an accepted claim
type ClaimRecord struct {
	AccountPublicKey  keys.AccountPublicKey  `json:"account_public_key"`
	TreasurePublicKey keys.TreasurePublicKey `json:"treasure_public_key"`
	AccountSignature  keys.Signature         `json:"account_signature"`
	TreasureSignature keys.Signature         `json:"treasure_signature"`
	Timestamp         time.Time              `json:"-"`
}

// EventKind - which record an event came from
type EventKind int

// kinds of event
const (
	PlantEvent EventKind = iota
	ClaimEvent
)

func (k EventKind) String() string {
	switch k {
	case PlantEvent:
		return "plant"
	case ClaimEvent:
		return "claim"
	default:
		return "unknown"
	}
}

// Event - a record that may need to be mirrored remotely
type Event struct {
	Kind      EventKind
	Key       keys.TreasurePublicKey
	Timestamp time.Time
}
