// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirectory - absolute data directory for a configuration file
//
// "." selects the directory holding the configuration file; the
// directory must already exist
func DataDirectory(dataDirectory string, configurationFileName string) (string, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return "", err
	}

	switch dataDirectory {
	case "", "~":
		return "", fmt.Errorf("path: %q is not a valid directory", dataDirectory)
	case ".":
		dataDirectory, _ = filepath.Split(configurationFileName)
	default:
		dataDirectory = below(filepath.Dir(configurationFileName), dataDirectory)
	}
	dataDirectory = filepath.Clean(dataDirectory)

	fileInfo, err := os.Stat(dataDirectory)
	if nil != err {
		return "", err
	}
	if !fileInfo.IsDir() {
		return "", fmt.Errorf("path: %q is not a directory", dataDirectory)
	}
	return dataDirectory, nil
}

// Absolute - make each non-empty path absolute below directory
func Absolute(directory string, paths ...*string) {
	for _, p := range paths {
		if "" != *p {
			*p = below(directory, *p)
		}
	}
}

// PlainFile - join a plain file name to its directory
//
// fails if the name contains a path separator; an empty directory
// only checks the name
func PlainFile(directory string, name *string) error {
	switch filepath.Dir(*name) {
	case "", ".":
		if "" != directory {
			*name = below(directory, *name)
		}
		return nil
	default:
		return fmt.Errorf("files: %q is not plain name", *name)
	}
}

// MakeDirectories - create directories if they do not already exist
func MakeDirectories(directories ...string) error {
	for _, d := range directories {
		if err := os.MkdirAll(d, 0700); nil != err {
			return err
		}
	}
	return nil
}

// join a relative path to directory
func below(directory string, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(directory, path)
	}
	return filepath.Clean(path)
}

func isFile(name string) bool {
	info, err := os.Stat(name)
	return nil == err && !info.IsDir()
}
