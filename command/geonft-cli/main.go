// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/geonft/geonftd/keys"
)

type metadata struct {
	connect     string
	fingerprint string
	prefix      string
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "geonft-cli"
	app.Usage = "plant and claim geonft treasures"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "http://127.0.0.1:2140/geonft",
			Usage:  " geonftd RPC `URL`",
			EnvVar: "GEONFT_CONNECT",
		},
		cli.StringFlag{
			Name:   "fingerprint, f",
			Value:  "",
			Usage:  " SHA3-256 `FINGERPRINT` of a self signed https certificate",
			EnvVar: "GEONFT_FINGERPRINT",
		},
		cli.StringFlag{
			Name:   "prefix, x",
			Value:  keys.DefaultClaimURLPrefix,
			Usage:  " claim URL `PREFIX`",
			EnvVar: "GEONFT_CLAIM_URL_PREFIX",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a key pair, will not be stored",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "account",
					Usage: " key `KIND` [account|treasure]",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "claim-url",
			Usage:     "convert a treasure secret key to a claim URL or a claim URL to a public key",
			ArgsUsage: "KEY|URL\n   (* = required)",
			Action:    runClaimURL,
		},
		{
			Name:      "plant",
			Usage:     "sign and plant a treasure",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*planter account secret `KEY`",
				},
				cli.StringFlag{
					Name:  "treasure, t",
					Value: "",
					Usage: "*treasure secret `KEY` or claim URL",
				},
				cli.StringFlag{
					Name:  "image, i",
					Value: "",
					Usage: "*image `FILE`",
				},
				cli.BoolFlag{
					Name:  "sign-only, s",
					Usage: " only output the signed request",
				},
			},
			Action: runPlant,
		},
		{
			Name:      "claim",
			Usage:     "sign and claim a planted treasure",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*claimer account secret `KEY`",
				},
				cli.StringFlag{
					Name:  "treasure, t",
					Value: "",
					Usage: "*treasure secret `KEY` or claim URL",
				},
				cli.BoolFlag{
					Name:  "sign-only, s",
					Usage: " only output the signed request",
				},
			},
			Action: runClaim,
		},
		{
			Name:      "exists",
			Usage:     "check if a treasure is planted",
			ArgsUsage: "KEY\n   (* = required)",
			Action:    runExists,
		},
		{
			Name:      "info",
			Usage:     "display a treasure summary",
			ArgsUsage: "KEY\n   (* = required)",
			Action:    runInfo,
		},
		{
			Name:      "image",
			Usage:     "fetch the image of a treasure",
			ArgsUsage: "KEY\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write decoded image to `FILE` instead of base64 to stdout",
				},
			},
			Action: runImage,
		},
		{
			Name:      "recent",
			Usage:     "list recently planted treasures",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: " number of treasures `COUNT`",
				},
			},
			Action: runRecent,
		},
		{
			Name:  "version",
			Usage: "display geonft-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect:     c.GlobalString("connect"),
			fingerprint: c.GlobalString("fingerprint"),
			prefix:      c.GlobalString("prefix"),
			verbose:     c.GlobalBool("verbose"),
			e:           c.App.ErrWriter,
			w:           c.App.Writer,
		}
		return nil
	}

	return app
}
