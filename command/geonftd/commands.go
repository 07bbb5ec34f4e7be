// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/rpc"
	"github.com/geonft/geonftd/status"
	"github.com/geonft/geonftd/treasure"
)

// setup command handler
//
// commands that run without the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "claim-url", "url":
		return false // defer processing until configuration is read

	case "statuses", "st", "info", "i":
		return false // defer processing until database is loaded

	case "fingerprint", "fp":
		return false // defer processing until configuration is read

	case "gen-rpc-cert", "rpc":
		certificateFileName, privateKeyFileName, fingerprint, err := makeCertificate("geonftd", arguments[1:])
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFileName, certificateFileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFileName, certificateFileName)
		fmt.Printf("SHA3-256 fingerprint: %s\n", fingerprint)
		return true

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR [HOST…]] (rpc)    - create a self signed RPC certificate: DIR/%s\n", rpc.CertificateFileName)
		fmt.Printf("                                        and private key: DIR/%s\n", rpc.PrivateKeyFileName)
		fmt.Printf("                                        any HOST replaces the local names in the certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)     - print the SHA3-256 fingerprint of the configured certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  claim-url KEY|URL          (url)    - convert a treasure secret key to its claim URL\n")
		fmt.Printf("                                        or a claim URL to its treasure public key\n")
		fmt.Printf("\n")

		fmt.Printf("  statuses                   (st)     - list the synchronisation status of every treasure\n")
		fmt.Printf("\n")

		fmt.Printf("  info KEY                   (i)      - display a treasure summary as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// fail-safe
	return true
}

// configuration command handler
//
// commands that only need the configuration file
func processConfigCommand(arguments []string, options *Configuration) bool {

	if 0 == len(arguments) {
		return false
	}
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "config-test", "cfg":
		fmt.Printf("configuration OK\n")
		printJSON(options)
		return true

	case "fingerprint", "fp":
		fingerprint, err := certificateFingerprint(&options.RPC)
		if nil != err {
			exitwithstatus.Message("fingerprint: certificate: %q  error: %s", options.RPC.Certificate, err)
		}
		fmt.Printf("%s\n", fingerprint)
		return true

	case "claim-url", "url":
		if 1 != len(arguments) {
			exitwithstatus.Message("claim-url requires one KEY or URL argument")
		}
		err := claimURL(arguments[0], options.ClaimURLPrefix)
		if nil != err {
			exitwithstatus.Message("claim-url error: %s", err)
		}
		return true

	default:
		return false
	}
}

func claimURL(argument string, prefix string) error {
	if strings.HasPrefix(argument, prefix) {
		key, err := keys.TreasureSecretKeyFromClaimURL(argument, prefix)
		if nil != err {
			return err
		}
		fmt.Printf("%s\n", key.PublicKey())
		return nil
	}

	key, err := keys.DecodeTreasureSecretKey(argument)
	if nil != err {
		return err
	}
	fmt.Printf("%s\n", key.ClaimURL(prefix))
	return nil
}

// data command handler
//
// commands that read the local database and then exit
func processDataCommand(log *logger.L, arguments []string, records *treasure.Store, statuses *status.Store) bool {

	if 0 == len(arguments) {
		return false
	}
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "statuses", "st":
		all, err := statuses.All()
		if nil != err {
			log.Errorf("statuses error: %s", err)
			exitwithstatus.Message("statuses error: %s", err)
		}
		events, err := records.PlantEvents()
		if nil != err {
			log.Errorf("events error: %s", err)
			exitwithstatus.Message("events error: %s", err)
		}

		lines := make([]string, 0, len(events))
		for _, e := range events {
			lines = append(lines, fmt.Sprintf("%s  %s", e.Key, all[e.Key]))
		}
		sort.Strings(lines)
		for _, line := range lines {
			fmt.Println(line)
		}
		return true

	case "info", "i":
		if 1 != len(arguments) {
			exitwithstatus.Message("info requires one KEY argument")
		}
		key, err := keys.DecodeTreasurePublicKey(arguments[0])
		if nil != err {
			exitwithstatus.Message("info: key: %q  error: %s", arguments[0], err)
		}
		info, err := records.Describe(key, statuses)
		if nil != err {
			exitwithstatus.Message("info: key: %q  error: %s", arguments[0], err)
		}
		printJSON(info)
		return true

	default:
		return false
	}
}

func printJSON(data interface{}) {
	b, err := json.MarshalIndent(data, "", "  ")
	if nil != err {
		exitwithstatus.Message("json error: %s", err)
	}
	_, _ = os.Stdout.Write(append(b, '\n'))
}
