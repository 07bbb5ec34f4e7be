// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/geonft/geonftd/keys"
)

type generatedKey struct {
	Kind      string `json:"kind"`
	SecretKey string `json:"secret_key"`
	PublicKey string `json:"public_key"`
	ClaimURL  string `json:"claim_url,omitempty"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var result generatedKey

	kind := c.String("kind")
	switch kind {
	case "account", "a":
		key, err := keys.GenerateAccountKey(rand.Reader)
		if nil != err {
			return err
		}
		result = generatedKey{
			Kind:      "account",
			SecretKey: key.String(),
			PublicKey: key.PublicKey().String(),
		}

	case "treasure", "t":
		key, err := keys.GenerateTreasureKey(rand.Reader)
		if nil != err {
			return err
		}
		result = generatedKey{
			Kind:      "treasure",
			SecretKey: key.String(),
			PublicKey: key.PublicKey().String(),
			ClaimURL:  key.ClaimURL(m.prefix),
		}

	default:
		return fmt.Errorf("kind: %q can only be account/treasure", kind)
	}

	return printJson(m.w, result)
}
