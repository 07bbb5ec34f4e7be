// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/blob"
	"github.com/geonft/geonftd/configuration"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/reconciler"
	"github.com/geonft/geonftd/rpc"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "geonft.leveldb"
	defaultBlobDirectory    = "blobs"

	defaultLogDirectory = "log"
	defaultLogFile      = "geonftd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients    = 100
	defaultStreamClients = 50
	defaultLedgerURL     = "http://127.0.0.1:2150/geonft"
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// LedgerType - remote ledger node
//
// for an https URL with a self signed certificate give the fingerprint
// printed by: geonft-ledgerd gen-rpc-cert
type LedgerType struct {
	URL                    string `gluamapper:"url" json:"url"`
	CertificateFingerprint string `gluamapper:"certificate_fingerprint" json:"certificate_fingerprint"`
}

// MetricsType - optional Prometheus listener
type MetricsType struct {
	Listen []string `gluamapper:"listen" json:"listen"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory  string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string       `gluamapper:"pidfile" json:"pidfile"`
	ReadOnly       bool         `gluamapper:"read_only" json:"read_only"`
	Database       DatabaseType `gluamapper:"database" json:"database"`
	ClaimURLPrefix string       `gluamapper:"claim_url_prefix" json:"claim_url_prefix"`

	RPC        rpc.Configuration        `gluamapper:"rpc" json:"rpc"`
	Stream     rpc.StreamConfiguration  `gluamapper:"stream" json:"stream"`
	Reconciler reconciler.Configuration `gluamapper:"reconciler" json:"reconciler"`
	Blob       blob.Configuration       `gluamapper:"blob" json:"blob"`
	Ledger     LedgerType               `gluamapper:"ledger" json:"ledger"`
	Metrics    MetricsType              `gluamapper:"metrics" json:"metrics"`
	Logging    logger.Configuration     `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{
		DataDirectory:  defaultDataDirectory,
		PidFile:        "", // no PidFile by default
		ClaimURLPrefix: keys.DefaultClaimURLPrefix,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		RPC: rpc.Configuration{
			MaximumConnections: defaultRPCClients,
		},
		Stream: rpc.StreamConfiguration{
			MaximumConnections: defaultStreamClients,
		},

		Blob: blob.Configuration{
			Backend:   blob.DirectoryBackend,
			Directory: defaultBlobDirectory,
		},

		Ledger: LedgerType{
			URL: defaultLedgerURL,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.DataDirectory, err = configuration.DataDirectory(options.DataDirectory, configurationFileName)
	if nil != err {
		return nil, err
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	configuration.Absolute(options.DataDirectory,
		&options.Database.Directory,
		&options.Blob.Directory,
		&options.Logging.Directory,
		&options.PidFile,
		&options.RPC.Certificate,
		&options.RPC.PrivateKey,
	)

	// fail if any of these are not simple file names
	if err := configuration.PlainFile(options.Database.Directory, &options.Database.Name); nil != err {
		return nil, err
	}
	if err := configuration.PlainFile("", &options.Logging.File); nil != err {
		return nil, err
	}

	// make absolute and create directories if they do not already exist
	err = configuration.MakeDirectories(
		options.Database.Directory,
		options.Logging.Directory,
	)
	if nil != err {
		return nil, err
	}

	// done
	return options, nil
}
