// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the treasure ledger
//
// the ledger holds two maps: treasure key to planter and image hash,
// and treasure key to claimer.  Changes arrive as packed transactions:
//
//	plant:  varint64(1) ++ varint64(32) ++ account ++ varint64(32) ++ treasure ++ varint64(64) ++ hash
//	claim:  varint64(2) ++ varint64(32) ++ account ++ varint64(32) ++ treasure
//
// a transaction id is the base58 encoding of SHA3-256 over the packed
// bytes.  Submitting a transaction whose effect is already on the ledger
// succeeds and is flagged as a duplicate.
//
// the ledger does not check plant or claim signatures, those are
// verified by the node that accepted the request
package ledger
