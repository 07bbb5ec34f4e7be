// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/fault"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Plants       *PoolHandle `prefix:"P"`
	Claims       *PoolHandle `prefix:"C"`
	RecentPlants *PoolHandle `prefix:"R"`
	Statuses     *PoolHandle `prefix:"S"`
	Planted      *PoolHandle `prefix:"p"`
	Claimed      *PoolHandle `prefix:"c"`
	Transactions *PoolHandle `prefix:"T"`
}

// Database - an open LevelDB and its pools
type Database struct {
	Pools

	sync.RWMutex
	db       *leveldb.DB
	readOnly bool

	// serialises read-modify-write transactions
	writer sync.Mutex
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Open - open up the database connection
//
// the directory is created if it does not exist and is writable
func Open(database string, readOnly bool) (*Database, error) {
	db, version, err := getDB(database, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	d := &Database{
		db:       db,
		readOnly: readOnly,
	}

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pools)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pools).Elem()

	seen := make(map[byte]string)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %s has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("pool: %s has same prefix as: %s", fieldInfo.Name, other)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: d,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return d, nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		d.db.Close()
		d.db = nil
	}
}

// IsReadOnly - true if opened in read-only mode
func (d *Database) IsReadOnly() bool {
	return d.readOnly
}

// return:
//
//	database handle
//	version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// ensure the handle can still be written
func (d *Database) writable() error {
	if nil == d.db {
		return fault.DatabaseIsNotSet
	}
	if d.readOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	return nil
}
