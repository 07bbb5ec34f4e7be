// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
//  1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
//  2. ++           = concatenation of byte data
//  3. treasure     = treasure public key (32 bytes)
//  4. timestamp    = creation time as big endian uint64 unix nanoseconds (8 bytes)
//  5. txId         = ledger transaction id, SHA3-256(packed transaction)
//
// Node records:
//
//	P ++ treasure              - accepted plant
//	                             data: timestamp ++ JSON plant record
//	C ++ treasure              - accepted claim
//	                             data: timestamp ++ JSON claim record
//	R ++ timestamp ++ treasure - plant order index for recent treasures
//	                             data: empty
//	S ++ treasure              - synchronisation status
//	                             data: status (1 byte)
//
// Ledger state:
//
//	p ++ treasure              - planted on the ledger
//	                             data: account ++ treasure hash
//	c ++ treasure              - claimed on the ledger
//	                             data: account
//	T ++ txId                  - accepted ledger transactions
//	                             data: timestamp ++ packed transaction
package storage
