// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/geonft/geonftd/keys"
)

// RPC method names served by a ledger node
const (
	SubmitMethod  = "Ledger.Submit"
	PlantedMethod = "Ledger.Planted"
	ClaimedMethod = "Ledger.Claimed"
)

// SubmitArguments - arguments for Ledger.Submit
type SubmitArguments struct {
	Transaction Packed `json:"transaction"`
}

// KeyArguments - arguments for the Ledger queries
type KeyArguments struct {
	Treasure keys.TreasurePublicKey `json:"treasure"`
}

// PlantedReply - result of Ledger.Planted
type PlantedReply struct {
	Planted bool     `json:"planted"`
	Entry   *Planted `json:"entry,omitempty"`
}

// ClaimedReply - result of Ledger.Claimed
type ClaimedReply struct {
	Claimed bool     `json:"claimed"`
	Entry   *Claimed `json:"entry,omitempty"`
}
