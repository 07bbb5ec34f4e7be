// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package status

import (
	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/storage"
)

// Store - persistent map of treasure key to status
type Store struct {
	log      *logger.L
	database *storage.Database
}

// NewStore - status store on an open database
func NewStore(database *storage.Database) *Store {
	return &Store{
		log:      logger.New("status"),
		database: database,
	}
}

// Get - current status, false if the treasure has none
func (s *Store) Get(key keys.TreasurePublicKey) (Status, bool) {
	buffer := s.database.Statuses.Get(key[:])
	if 1 != len(buffer) {
		return None, false
	}
	return Status(buffer[0]), true
}

// Set - unconditional write
func (s *Store) Set(key keys.TreasurePublicKey, st Status) error {
	if !st.IsValid() {
		return fault.InvalidStatus
	}
	tx, err := s.database.Begin()
	if nil != err {
		return err
	}
	tx.Put(s.database.Statuses, key[:], []byte{byte(st)})
	tx.Commit()
	return nil
}

// Advance - move the status forward to st
//
// returns false without writing if the stored status is already at
// or beyond st
func (s *Store) Advance(key keys.TreasurePublicKey, st Status) (bool, error) {
	if !st.IsValid() {
		return false, fault.InvalidStatus
	}

	tx, err := s.database.Begin()
	if nil != err {
		return false, err
	}
	defer tx.Abort()

	current := None
	if buffer := tx.Get(s.database.Statuses, key[:]); 1 == len(buffer) {
		current = Status(buffer[0])
	}
	if current >= st {
		s.log.Debugf("%s: keep: %s  requested: %s", keys.Abbreviate(key.String()), current, st)
		return false, nil
	}

	tx.Put(s.database.Statuses, key[:], []byte{byte(st)})
	tx.Commit()

	s.log.Infof("%s: %s → %s", keys.Abbreviate(key.String()), current, st)
	return true, nil
}

// All - every stored status
func (s *Store) All() (map[keys.TreasurePublicKey]Status, error) {
	result := make(map[keys.TreasurePublicKey]Status)
	err := s.database.Statuses.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if keys.PublicKeySize != len(key) || 1 != len(value) {
			return fault.CorruptRecord
		}
		st := Status(value[0])
		if !st.IsValid() {
			return fault.CorruptRecord
		}
		var k keys.TreasurePublicKey
		copy(k[:], key)
		result[k] = st
		return nil
	})
	if nil != err {
		return nil, err
	}
	return result, nil
}
