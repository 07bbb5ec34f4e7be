// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/configuration"
	"github.com/geonft/geonftd/rpc"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "ledger.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "geonft-ledgerd.log"
	defaultLogCount     = 10
	defaultLogSize      = 1024 * 1024

	defaultRPCClients    = 50
	defaultStreamClients = 50
)

var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the ledger LevelDB database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string                  `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                  `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType            `gluamapper:"database" json:"database"`
	RPC           rpc.Configuration       `gluamapper:"rpc" json:"rpc"`
	Stream        rpc.StreamConfiguration `gluamapper:"stream" json:"stream"`
	Logging       logger.Configuration    `gluamapper:"logging" json:"logging"`
}

func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

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

	configuration.Absolute(options.DataDirectory,
		&options.Database.Directory,
		&options.Logging.Directory,
		&options.PidFile,
		&options.RPC.Certificate,
		&options.RPC.PrivateKey,
	)

	if err := configuration.PlainFile(options.Database.Directory, &options.Database.Name); nil != err {
		return nil, err
	}
	if err := configuration.PlainFile("", &options.Logging.File); nil != err {
		return nil, err
	}

	err = configuration.MakeDirectories(
		options.Database.Directory,
		options.Logging.Directory,
	)
	if nil != err {
		return nil, err
	}

	return options, nil
}
