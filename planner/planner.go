// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package planner - decide which remote steps are still needed
//
// Plan is a pure function of the current statuses and the local
// events, so running it again after any partial failure produces
// exactly the steps that are still outstanding
package planner

import (
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/status"
	"github.com/geonft/geonftd/treasure"
)

// Step - one remote operation
type Step int

// the steps
const (
	UploadBlobToRemote Step = iota
	UploadPlantToLedger
	UploadClaimToLedger
)

func (s Step) String() string {
	switch s {
	case UploadBlobToRemote:
		return "UploadBlobToRemote"
	case UploadPlantToLedger:
		return "UploadPlantToLedger"
	case UploadClaimToLedger:
		return "UploadClaimToLedger"
	default:
		return "Unknown"
	}
}

// Action - a step for one treasure
type Action struct {
	Key  keys.TreasurePublicKey
	Step Step
}

// Plan - produce the ordered steps for the events, oldest event first
//
//	plant, no status     → blob, plant
//	plant, BlobSynced    → plant
//	plant, PlantSynced+  → nothing
//	claim, < ClaimSynced → claim
//	claim, ClaimSynced   → nothing
//
// a claim is never planned ahead of the plant of the same treasure,
// whatever the timestamps say
func Plan(statuses map[keys.TreasurePublicKey]status.Status, events []treasure.Event) []Action {
	ordered := make([]treasure.Event, len(events))
	copy(ordered, events)
	treasure.SortEvents(ordered)

	unplanted := make(map[keys.TreasurePublicKey]struct{})
	for _, e := range ordered {
		if treasure.PlantEvent == e.Kind {
			unplanted[e.Key] = struct{}{}
		}
	}
	held := make(map[keys.TreasurePublicKey]int)

	actions := make([]Action, 0, len(ordered))
	for _, e := range ordered {
		st, ok := statuses[e.Key]
		if !ok {
			st = status.None
		}

		switch e.Kind {
		case treasure.PlantEvent:
			delete(unplanted, e.Key)
			actions = plantSteps(actions, e.Key, st)
			for n := held[e.Key]; n > 0; n -= 1 {
				actions = claimSteps(actions, e.Key, st)
			}
			delete(held, e.Key)

		case treasure.ClaimEvent:
			if _, waiting := unplanted[e.Key]; waiting {
				held[e.Key] += 1
				continue
			}
			actions = claimSteps(actions, e.Key, st)
		}
	}
	return actions
}

func plantSteps(actions []Action, key keys.TreasurePublicKey, st status.Status) []Action {
	switch st {
	case status.None:
		return append(actions,
			Action{Key: key, Step: UploadBlobToRemote},
			Action{Key: key, Step: UploadPlantToLedger},
		)
	case status.BlobSynced:
		return append(actions, Action{Key: key, Step: UploadPlantToLedger})
	default:
		return actions
	}
}

func claimSteps(actions []Action, key keys.TreasurePublicKey, st status.Status) []Action {
	if st < status.ClaimSynced {
		return append(actions, Action{Key: key, Step: UploadClaimToLedger})
	}
	return actions
}
