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

func runPlant(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	account, err := keys.DecodeAccountSecretKey(c.String("account"))
	if nil != err {
		return fmt.Errorf("account: %s", err)
	}
	treasure, err := treasureSecretKey(c.String("treasure"), m.prefix)
	if nil != err {
		return fmt.Errorf("treasure: %s", err)
	}
	imageFile := c.String("image")
	if "" == imageFile {
		return fmt.Errorf("image file is required")
	}
	data, err := os.ReadFile(imageFile)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "treasure: %s\n", treasure.PublicKey())
		fmt.Fprintf(m.e, "image: %q  %d bytes\n", imageFile, len(data))
	}

	request := rpccalls.MakePlantRequest(account, treasure, base64.StdEncoding.EncodeToString(data))
	if c.Bool("sign-only") {
		return printJson(m.w, request)
	}

	client, err := rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
	if nil != err {
		return err
	}
	reply, err := client.Plant(request)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
