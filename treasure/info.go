// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasure

import (
	"time"

	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/status"
)

// text shown when no claim exists
const Unclaimed = "unclaimed"

// StatusReader - read access to synchronisation status
type StatusReader interface {
	Get(keys.TreasurePublicKey) (status.Status, bool)
}

// Info - display summary of one treasure
type Info struct {
	PublicKey       string `json:"public_key"`
	PublicKeyAbbrev string `json:"public_key_abbrev"`
	PublicURL       string `json:"public_url"`
	ImageURL        string `json:"image_url"`
	PlantedDateTime string `json:"planted_date_time"`
	PlantedBy       string `json:"planted_by"`
	ClaimedDateTime string `json:"claimed_date_time"`
	ClaimedBy       string `json:"claimed_by"`
	SyncStatus      string `json:"sync_status"`
}

// Describe - build the display summary of a planted treasure
func (s *Store) Describe(key keys.TreasurePublicKey, statuses StatusReader) (*Info, error) {
	plant, err := s.GetPlant(key)
	if nil != err {
		return nil, err
	}

	publicKey := key.String()
	info := &Info{
		PublicKey:       publicKey,
		PublicKeyAbbrev: keys.Abbreviate(publicKey),
		PublicURL:       "treasure/" + publicKey,
		ImageURL:        "treasure-images/" + publicKey,
		PlantedDateTime: plant.Timestamp.Format(time.RFC1123Z),
		PlantedBy:       plant.AccountPublicKey.String(),
		ClaimedDateTime: Unclaimed,
		ClaimedBy:       Unclaimed,
	}

	claimed := false
	if s.HasClaim(key) {
		claim, err := s.GetClaim(key)
		if nil != err {
			return nil, err
		}
		claimed = true
		info.ClaimedDateTime = claim.Timestamp.Format(time.RFC1123Z)
		info.ClaimedBy = claim.AccountPublicKey.String()
	}

	st, _ := statuses.Get(key)
	info.SyncStatus = status.Label(st, claimed)

	return info, nil
}
