// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/geonft/geonftd/command/geonft-cli/rpccalls"
	"github.com/geonft/geonftd/keys"
)

func runClaim(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	account, err := keys.DecodeAccountSecretKey(c.String("account"))
	if nil != err {
		return fmt.Errorf("account: %s", err)
	}
	treasure, err := treasureSecretKey(c.String("treasure"), m.prefix)
	if nil != err {
		return fmt.Errorf("treasure: %s", err)
	}

	request := rpccalls.MakeClaimRequest(account, treasure)
	if c.Bool("sign-only") {
		return printJson(m.w, request)
	}

	client, err := rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
	if nil != err {
		return err
	}
	reply, err := client.Claim(request)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
