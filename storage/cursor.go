// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/geonft/geonftd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:     p,
		maxRange: *p.poolRange(),
	}
}

// Fetch - return some elements starting from key
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	d := cursor.pool.database
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return nil, fault.DatabaseIsNotSet
	}

	iter := d.db.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {
		results = append(results, copyElement(iter.Key(), iter.Value()))
		n += 1
		if n >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	// the smallest key after the last one returned
	if n > 0 {
		cursor.maxRange.Start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
//
// stops at the first error returned by the function
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	d := cursor.pool.database
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return fault.DatabaseIsNotSet
	}

	iter := d.db.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {
		e := copyElement(iter.Key(), iter.Value())
		err = f(e.Key, e.Value)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
