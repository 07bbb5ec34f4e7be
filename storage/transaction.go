// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - batch of writes applied atomically
//
// only one transaction is open at a time so a Has followed by a Put
// inside the same transaction is an atomic create-if-absent
type Transaction struct {
	database *Database
	batch    *leveldb.Batch
	done     bool
}

// Begin - start a transaction, blocks while another is open
//
// Abort or Commit must be called to release it
func (d *Database) Begin() (*Transaction, error) {
	d.writer.Lock()

	d.RLock()
	err := d.writable()
	d.RUnlock()
	if nil != err {
		d.writer.Unlock()
		return nil, err
	}

	return &Transaction{
		database: d,
		batch:    new(leveldb.Batch),
	}, nil
}

// Has - check the committed state
func (t *Transaction) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

// Get - read the committed state
func (t *Transaction) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

// Put - queue a write
func (t *Transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.batch.Put(p.prefixKey(key), value)
}

// Delete - queue a removal
func (t *Transaction) Delete(p *PoolHandle, key []byte) {
	t.batch.Delete(p.prefixKey(key))
}

// Commit - write the batch durably and release the transaction
func (t *Transaction) Commit() {
	if t.done {
		return
	}
	defer t.release()

	d := t.database
	d.RLock()
	defer d.RUnlock()
	if err := d.writable(); nil != err {
		logger.PanicIfError("transaction.Commit", err)
	}
	err := d.db.Write(t.batch, syncWrite)
	logger.PanicIfError("transaction.Commit", err)
}

// Abort - discard the batch, no-op after Commit
func (t *Transaction) Abort() {
	if t.done {
		return
	}
	t.batch.Reset()
	t.release()
}

func (t *Transaction) release() {
	t.done = true
	t.database.writer.Unlock()
}
