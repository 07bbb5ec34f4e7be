// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blob - content addressed storage for treasure images
//
// blobs are named by the hex SHA3-256 of their content, so putting the
// same bytes twice is harmless
package blob

import (
	"context"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/geonft/geonftd/fault"
)

// backend names
const (
	S3Backend        = "s3"
	DirectoryBackend = "directory"
)

// ID - content identifier of a blob
type ID string

// IDOf - the identifier that a store will give to data
func IDOf(data []byte) ID {
	digest := sha3.Sum256(data)
	return ID(hex.EncodeToString(digest[:]))
}

// Store - somewhere to put blobs
type Store interface {
	Put(ctx context.Context, data []byte) (ID, error)
}

// Configuration - blob section of the configuration file
type Configuration struct {
	Backend          string `gluamapper:"backend" json:"backend"`
	Directory        string `gluamapper:"directory" json:"directory"`
	Bucket           string `gluamapper:"bucket" json:"bucket"`
	Region           string `gluamapper:"region" json:"region"`
	Endpoint         string `gluamapper:"endpoint" json:"endpoint"`
	Prefix           string `gluamapper:"prefix" json:"prefix"`
	AccessKey        string `gluamapper:"access_key" json:"access_key"`
	SecretKey        string `gluamapper:"secret_key" json:"-"`
	RetryMaxAttempts int    `gluamapper:"retry_max_attempts" json:"retry_max_attempts"`
}

// New - create the configured store
func New(ctx context.Context, configuration *Configuration) (Store, error) {
	switch configuration.Backend {
	case S3Backend:
		return NewS3Store(ctx, configuration)
	case DirectoryBackend:
		return NewDirectoryStore(configuration.Directory, configuration.Prefix)
	default:
		return nil, fault.InvalidBlobBackend
	}
}
