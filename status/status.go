// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package status - how far each treasure has been mirrored to the
// blob store and the ledger
//
// a treasure with no entry has not been synchronised at all, the
// stored states are ordered:
//
//	BlobSynced < PlantSynced < ClaimSynced
package status

import (
	"github.com/geonft/geonftd/fault"
)

// Status - synchronisation state of one treasure
type Status uint8

// possible states, None is never stored
const (
	None Status = iota
	BlobSynced
	PlantSynced
	ClaimSynced
	statusLimit
)

var names = [...]string{
	None:        "None",
	BlobSynced:  "BlobSynced",
	PlantSynced: "PlantSynced",
	ClaimSynced: "ClaimSynced",
}

// Parse - convert a name to a status
func Parse(s string) (Status, error) {
	for i, name := range names {
		if s == name {
			return Status(i), nil
		}
	}
	return None, fault.InvalidStatus
}

// IsValid - true for a status that may be stored
func (s Status) IsValid() bool {
	return s > None && s < statusLimit
}

// String - the name of the status
func (s Status) String() string {
	if s >= statusLimit {
		return "Invalid"
	}
	return names[s]
}

// MarshalText - for JSON
func (s Status) MarshalText() ([]byte, error) {
	if s >= statusLimit {
		return nil, fault.InvalidStatus
	}
	return []byte(s.String()), nil
}

// UnmarshalText - for JSON
func (s *Status) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if nil != err {
		return err
	}
	*s = v
	return nil
}

// Label - what a viewer is shown for a treasure
//
// a planted treasure is synced once its plant reached the ledger, a
// claimed treasure only once its claim did
func Label(s Status, claimed bool) string {
	if claimed {
		if ClaimSynced == s {
			return "synced"
		}
		return "unsynced"
	}
	if s >= PlantSynced {
		return "synced"
	}
	return "unsynced"
}
