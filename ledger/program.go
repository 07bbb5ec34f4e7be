// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/protocol"
	"github.com/geonft/geonftd/storage"
)

// Confirmation - result of a submitted transaction
type Confirmation struct {
	TxId      string `json:"txId"`
	Duplicate bool   `json:"duplicate"`
}

// Planted - ledger entry of a planted treasure
type Planted struct {
	Account      keys.AccountPublicKey `json:"account"`
	TreasureHash string                `json:"treasure_hash"`
}

// Claimed - ledger entry of a claimed treasure
type Claimed struct {
	Account keys.AccountPublicKey `json:"account"`
}

// Submitter - anything that can put a transaction on the ledger
type Submitter interface {
	Submit(ctx context.Context, tx Transaction) (*Confirmation, error)
}

// Program - the ledger state machine
type Program struct {
	sync.Mutex
	log      *logger.L
	database *storage.Database
}

// NewProgram - ledger state on an open database
func NewProgram(database *storage.Database) *Program {
	return &Program{
		log:      logger.New("ledger"),
		database: database,
	}
}

// Submit - execute a transaction directly
func (p *Program) Submit(ctx context.Context, tx Transaction) (*Confirmation, error) {
	if err := ctx.Err(); nil != err {
		return nil, fault.LedgerUnavailable
	}
	packed, err := tx.Pack()
	if nil != err {
		return nil, err
	}
	return p.Execute(packed)
}

// Execute - apply a packed transaction
func (p *Program) Execute(packed Packed) (*Confirmation, error) {
	tx, err := packed.Unpack()
	if nil != err {
		return nil, err
	}

	p.Lock()
	defer p.Unlock()

	t, err := p.database.Begin()
	if nil != err {
		return nil, err
	}
	defer t.Abort()

	confirmation := &Confirmation{
		TxId: packed.TxId(),
	}

	switch tx := tx.(type) {
	case *PlantTransaction:
		value := append(tx.Account.Bytes(), []byte(tx.TreasureHash)...)
		if existing := t.Get(p.database.Planted, tx.Treasure[:]); nil != existing {
			if !bytes.Equal(existing, value) {
				p.log.Warnf("plant: %s: already planted with different content", keys.Abbreviate(tx.Treasure.String()))
				return nil, fault.LedgerAlreadyPlanted
			}
			confirmation.Duplicate = true
			return confirmation, nil
		}
		t.Put(p.database.Planted, tx.Treasure[:], value)
		p.log.Infof("plant: %s  tx: %s", keys.Abbreviate(tx.Treasure.String()), confirmation.TxId)

	case *ClaimTransaction:
		if !t.Has(p.database.Planted, tx.Treasure[:]) {
			p.log.Warnf("claim: %s: not planted", keys.Abbreviate(tx.Treasure.String()))
			return nil, fault.TreasureNotPlanted
		}
		if existing := t.Get(p.database.Claimed, tx.Treasure[:]); nil != existing {
			if !bytes.Equal(existing, tx.Account[:]) {
				p.log.Warnf("claim: %s: already claimed by another account", keys.Abbreviate(tx.Treasure.String()))
				return nil, fault.LedgerAlreadyClaimed
			}
			confirmation.Duplicate = true
			return confirmation, nil
		}
		t.Put(p.database.Claimed, tx.Treasure[:], tx.Account.Bytes())
		p.log.Infof("claim: %s  tx: %s", keys.Abbreviate(tx.Treasure.String()), confirmation.TxId)

	default:
		return nil, fault.InvalidTransactionTag
	}

	digest := packed.Digest()
	t.Put(p.database.Transactions, digest[:], storage.PackNB(uint64(time.Now().UnixNano()), packed))
	t.Commit()

	return confirmation, nil
}

// Planted - look up a planted treasure
func (p *Program) Planted(key keys.TreasurePublicKey) (*Planted, bool) {
	value := p.database.Planted.Get(key[:])
	if keys.PublicKeySize+protocol.TreasureHashSize != len(value) {
		return nil, false
	}
	entry := &Planted{
		TreasureHash: string(value[keys.PublicKeySize:]),
	}
	copy(entry.Account[:], value)
	return entry, true
}

// Claimed - look up a claimed treasure
func (p *Program) Claimed(key keys.TreasurePublicKey) (*Claimed, bool) {
	value := p.database.Claimed.Get(key[:])
	if keys.PublicKeySize != len(value) {
		return nil, false
	}
	entry := &Claimed{}
	copy(entry.Account[:], value)
	return entry, true
}

// HasTransaction - true if the transaction id was recorded
func (p *Program) HasTransaction(packed Packed) bool {
	digest := packed.Digest()
	return p.database.Transactions.Has(digest[:])
}
