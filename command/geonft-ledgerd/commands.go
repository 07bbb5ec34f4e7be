// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/ledger"
	"github.com/geonft/geonftd/rpc"
)

// commands that run without the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false

	case "config-test", "cfg":
		return false

	case "planted", "p", "claimed", "c":
		return false

	case "fingerprint", "fp":
		return false // defer processing until configuration is read

	case "gen-rpc-cert", "rpc":
		certificateFileName, privateKeyFileName, fingerprint, err := makeCertificate("geonft-ledgerd", arguments[1:])
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
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR [HOST…]] (rpc)    - create a self signed RPC certificate: DIR/%s\n", rpc.CertificateFileName)
		fmt.Printf("                                        and private key: DIR/%s\n", rpc.PrivateKeyFileName)
		fmt.Printf("                                        any HOST replaces the local names in the certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)     - print the SHA3-256 fingerprint of the configured certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  planted KEY                (p)      - show the plant entry of a treasure\n")
		fmt.Printf("  claimed KEY                (c)      - show the claim entry of a treasure\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	return true
}

// commands that only need the configuration file
func processConfigCommand(arguments []string, options *Configuration) bool {

	if 0 == len(arguments) {
		return false
	}

	switch arguments[0] {
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

	default:
		return false
	}
}

// commands that read the ledger state and then exit
func processDataCommand(arguments []string, program *ledger.Program) bool {

	if 0 == len(arguments) {
		return false
	}
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "planted", "p":
		key := treasureKey(command, arguments)
		entry, ok := program.Planted(key)
		printJSON(ledger.PlantedReply{Planted: ok, Entry: entry})
		return true

	case "claimed", "c":
		key := treasureKey(command, arguments)
		entry, ok := program.Claimed(key)
		printJSON(ledger.ClaimedReply{Claimed: ok, Entry: entry})
		return true

	default:
		return false
	}
}

func treasureKey(command string, arguments []string) keys.TreasurePublicKey {
	if 1 != len(arguments) {
		exitwithstatus.Message("%s requires one KEY argument", command)
	}
	key, err := keys.DecodeTreasurePublicKey(arguments[0])
	if nil != err {
		exitwithstatus.Message("%s: key: %q  error: %s", command, arguments[0], err)
	}
	return key
}

func printJSON(data interface{}) {
	b, err := json.MarshalIndent(data, "", "  ")
	if nil != err {
		exitwithstatus.Message("json error: %s", err)
	}
	_, _ = os.Stdout.Write(append(b, '\n'))
}
