// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - access to one prefixed table
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *Database
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// every write is flushed before returning
var syncWrite = &ldb_opt.WriteOptions{Sync: true}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// the full range of the pool
func (p *PoolHandle) poolRange() *ldb_util.Range {
	return &ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
}

// PackNB - big endian uint64 followed by the bytes, the layout read by GetNB
func PackNB(n uint64, data []byte) []byte {
	buffer := make([]byte, 8, 8+len(data))
	binary.BigEndian.PutUint64(buffer, n)
	return append(buffer, data...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	p.database.RLock()
	defer p.database.RUnlock()
	if err := p.database.writable(); nil != err {
		logger.PanicIfError("pool.Put", err)
	}
	err := p.database.db.Put(p.prefixKey(key), value, syncWrite)
	logger.PanicIfError("pool.Put", err)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	p.database.RLock()
	defer p.database.RUnlock()
	if err := p.database.writable(); nil != err {
		logger.PanicIfError("pool.Delete", err)
	}
	err := p.database.db.Delete(p.prefixKey(key), syncWrite)
	logger.PanicIfError("pool.Delete", err)
}

// Get - read a value for a given key
//
// returns nil if the key does not exist
func (p *PoolHandle) Get(key []byte) []byte {
	p.database.RLock()
	defer p.database.RUnlock()
	if nil == p.database.db {
		return nil
	}
	value, err := p.database.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// GetNB - read a record and decode first 8 bytes as big endian uint64
// and return the rest of the record as byte slice
//
// second parameter is nil if record was not found
// panics if not 9 (or more) bytes in the record
func (p *PoolHandle) GetNB(key []byte) (uint64, []byte) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, nil
	}
	if len(buffer) < 9 { // must have at least one byte after the N value
		logger.Panicf("pool.GetNB truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, buffer[8:]
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	p.database.RLock()
	defer p.database.RUnlock()
	if nil == p.database.db {
		return false
	}
	value, err := p.database.db.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// LastElements - up to count elements from the end of the pool, last first
func (p *PoolHandle) LastElements(count int) []Element {
	p.database.RLock()
	defer p.database.RUnlock()
	if nil == p.database.db || count <= 0 {
		return nil
	}

	iter := p.database.db.NewIterator(p.poolRange(), nil)

	results := make([]Element, 0, count)
	for ok := iter.Last(); ok && len(results) < count; ok = iter.Prev() {
		results = append(results, copyElement(iter.Key(), iter.Value()))
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElements", err)
	return results
}

// contents of iterator slices must not be modified, and are only
// valid until the next call to Next
func copyElement(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
