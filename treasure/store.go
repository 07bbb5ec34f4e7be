// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasure

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"sort"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/storage"
)

// Store - plant and claim records on the local database
type Store struct {
	log      *logger.L
	database *storage.Database
}

// NewStore - record store on an open database
func NewStore(database *storage.Database) *Store {
	return &Store{
		log:      logger.New("treasure"),
		database: database,
	}
}

func timestampOf(t time.Time) uint64 {
	if t.IsZero() {
		t = time.Now()
	}
	return uint64(t.UnixNano())
}

func timeOf(n uint64) time.Time {
	return time.Unix(0, int64(n)).UTC()
}

// PutPlant - store a new plant
//
// fails if a plant already exists for the treasure key; the record is
// on disk before this returns
func (s *Store) PutPlant(record *PlantRecord) error {
	data, err := json.Marshal(record)
	if nil != err {
		return err
	}

	tx, err := s.database.Begin()
	if nil != err {
		return err
	}
	defer tx.Abort()

	key := record.TreasurePublicKey[:]
	if tx.Has(s.database.Plants, key) {
		return fault.TreasureAlreadyPlanted
	}

	n := timestampOf(record.Timestamp)
	tx.Put(s.database.Plants, key, storage.PackNB(n, data))
	tx.Put(s.database.RecentPlants, recentKey(n, key), []byte{})
	tx.Commit()

	record.Timestamp = timeOf(n)
	s.log.Infof("planted: %s  by: %s", keys.Abbreviate(record.TreasurePublicKey.String()), keys.Abbreviate(record.AccountPublicKey.String()))
	return nil
}

// GetPlant - read a plant
func (s *Store) GetPlant(key keys.TreasurePublicKey) (*PlantRecord, error) {
	n, data := s.database.Plants.GetNB(key[:])
	if nil == data {
		return nil, fault.TreasureNotFound
	}
	var record PlantRecord
	if err := json.Unmarshal(data, &record); nil != err {
		s.log.Errorf("plant: %x  unmarshal error: %s", key, err)
		return nil, fault.CorruptRecord
	}
	record.Timestamp = timeOf(n)
	return &record, nil
}

// HasPlant - true if the treasure was planted
func (s *Store) HasPlant(key keys.TreasurePublicKey) bool {
	return s.database.Plants.Has(key[:])
}

// PutClaim - store a new claim
//
// the treasure must be planted and not yet claimed
func (s *Store) PutClaim(record *ClaimRecord) error {
	data, err := json.Marshal(record)
	if nil != err {
		return err
	}

	tx, err := s.database.Begin()
	if nil != err {
		return err
	}
	defer tx.Abort()

	key := record.TreasurePublicKey[:]
	if !tx.Has(s.database.Plants, key) {
		return fault.TreasureNotPlanted
	}
	if tx.Has(s.database.Claims, key) {
		return fault.TreasureAlreadyClaimed
	}

	// a claim always sorts after its plant even if the clock went back
	n := timestampOf(record.Timestamp)
	planted := tx.Get(s.database.Plants, key)
	if len(planted) >= 8 {
		if p := binary.BigEndian.Uint64(planted[:8]); n <= p {
			n = p + 1
		}
	}
	tx.Put(s.database.Claims, key, storage.PackNB(n, data))
	tx.Commit()

	record.Timestamp = timeOf(n)
	s.log.Infof("claimed: %s  by: %s", keys.Abbreviate(record.TreasurePublicKey.String()), keys.Abbreviate(record.AccountPublicKey.String()))
	return nil
}

// GetClaim - read a claim
func (s *Store) GetClaim(key keys.TreasurePublicKey) (*ClaimRecord, error) {
	n, data := s.database.Claims.GetNB(key[:])
	if nil == data {
		return nil, fault.TreasureNotFound
	}
	var record ClaimRecord
	if err := json.Unmarshal(data, &record); nil != err {
		s.log.Errorf("claim: %x  unmarshal error: %s", key, err)
		return nil, fault.CorruptRecord
	}
	record.Timestamp = timeOf(n)
	return &record, nil
}

// HasClaim - true if the treasure was claimed
func (s *Store) HasClaim(key keys.TreasurePublicKey) bool {
	return s.database.Claims.Has(key[:])
}

// PlantEvents - one event per plant in key order
func (s *Store) PlantEvents() ([]Event, error) {
	return s.events(s.database.Plants, PlantEvent)
}

// ClaimEvents - one event per claim in key order
func (s *Store) ClaimEvents() ([]Event, error) {
	return s.events(s.database.Claims, ClaimEvent)
}

func (s *Store) events(pool *storage.PoolHandle, kind EventKind) ([]Event, error) {
	events := []Event{}
	err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if keys.PublicKeySize != len(key) || len(value) < 9 {
			return fault.CorruptRecord
		}
		e := Event{
			Kind:      kind,
			Timestamp: timeOf(binary.BigEndian.Uint64(value[:8])),
		}
		copy(e.Key[:], key)
		events = append(events, e)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return events, nil
}

// Events - all plants then all claims, oldest first
//
// ties keep plants ahead of claims
func (s *Store) Events() ([]Event, error) {
	plants, err := s.PlantEvents()
	if nil != err {
		return nil, err
	}
	claims, err := s.ClaimEvents()
	if nil != err {
		return nil, err
	}
	events := append(plants, claims...)
	SortEvents(events)
	return events, nil
}

// SortEvents - order by timestamp, then plants before claims, then by key
//
// the result does not depend on the order of the input
func SortEvents(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return bytes.Compare(a.Key[:], b.Key[:]) < 0
	})
}
