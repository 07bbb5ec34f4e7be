// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blob

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/fault"
)

// DirectoryStore - blobs as files in a local directory
type DirectoryStore struct {
	log       *logger.L
	directory string
	prefix    string
}

// NewDirectoryStore - store blobs below directory, creating it if needed
func NewDirectoryStore(directory string, prefix string) (*DirectoryStore, error) {
	if "" == directory {
		return nil, fault.MissingParameters
	}
	err := os.MkdirAll(directory, 0700)
	if nil != err {
		return nil, err
	}
	return &DirectoryStore{
		log:       logger.New("blob-directory"),
		directory: directory,
		prefix:    prefix,
	}, nil
}

// Path - file name used for an id
func (d *DirectoryStore) Path(id ID) string {
	return filepath.Join(d.directory, d.prefix+string(id))
}

// Put - write data to its content file
//
// the file is written under a temporary name and renamed so a reader
// never sees a partial blob
func (d *DirectoryStore) Put(ctx context.Context, data []byte) (ID, error) {
	if err := ctx.Err(); nil != err {
		return "", fault.BlobUploadFailed
	}

	id := IDOf(data)
	name := d.Path(id)
	if _, err := os.Stat(name); nil == err {
		return id, nil
	}

	f, err := os.CreateTemp(d.directory, ".blob-*")
	if nil != err {
		d.log.Errorf("create temporary: %s", err)
		return "", fault.BlobUploadFailed
	}
	temporary := f.Name()

	_, err = f.Write(data)
	if nil == err {
		err = f.Sync()
	}
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil == err {
		err = os.Rename(temporary, name)
	}
	if nil != err {
		_ = os.Remove(temporary)
		d.log.Errorf("write: %s  error: %s", name, err)
		return "", fault.BlobUploadFailed
	}

	d.log.Debugf("put: %s  bytes: %d", name, len(data))
	return id, nil
}
