// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/geonft/geonftd/command/geonft-cli/rpccalls"
	"github.com/geonft/geonftd/keys"
)

// client and treasure public key for the single argument queries
func queryArguments(c *cli.Context, m *metadata) (*rpccalls.Client, keys.TreasurePublicKey, error) {
	if 1 != c.NArg() {
		return nil, keys.TreasurePublicKey{}, fmt.Errorf("%s requires one KEY argument", c.Command.Name)
	}
	key, err := keys.DecodeTreasurePublicKey(c.Args().Get(0))
	if nil != err {
		return nil, keys.TreasurePublicKey{}, err
	}
	client, err := rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
	if nil != err {
		return nil, keys.TreasurePublicKey{}, err
	}
	return client, key, nil
}

func runExists(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, key, err := queryArguments(c, m)
	if nil != err {
		return err
	}
	exists, err := client.Exists(key)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]bool{"treasure_exists": exists})
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, key, err := queryArguments(c, m)
	if nil != err {
		return err
	}
	info, err := client.Info(key)
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

func runImage(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, key, err := queryArguments(c, m)
	if nil != err {
		return err
	}
	image, err := client.Image(key)
	if nil != err {
		return err
	}

	output := c.String("output")
	if "" == output {
		fmt.Fprintf(m.w, "%s\n", image)
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(image)
	if nil != err {
		return err
	}
	return os.WriteFile(output, data, 0644)
}

func runRecent(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
	if nil != err {
		return err
	}
	recent, err := client.Recent(c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, recent)
}
