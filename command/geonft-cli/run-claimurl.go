// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/geonft/geonftd/keys"
)

func runClaimURL(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 1 != c.NArg() {
		return fmt.Errorf("claim-url requires one KEY or URL argument")
	}
	argument := c.Args().Get(0)

	if strings.HasPrefix(argument, m.prefix) {
		key, err := keys.TreasureSecretKeyFromClaimURL(argument, m.prefix)
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "%s\n", key.PublicKey())
		return nil
	}

	key, err := keys.DecodeTreasureSecretKey(argument)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s\n", key.ClaimURL(m.prefix))
	return nil
}

// accept either a treasure secret key or a claim URL
func treasureSecretKey(argument string, prefix string) (keys.TreasureSecretKey, error) {
	if strings.HasPrefix(argument, prefix) {
		return keys.TreasureSecretKeyFromClaimURL(argument, prefix)
	}
	return keys.DecodeTreasureSecretKey(argument)
}
