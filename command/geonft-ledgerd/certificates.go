// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/rpc"
)

// create the RPC certificate pair in DIR (default ".")
//
// arguments: [DIR [HOST...]]; any HOST replaces the local host names
// and addresses in the certificate
func makeCertificate(name string, arguments []string) (string, string, string, error) {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}
	certificateFileName := filepath.Join(dir, rpc.CertificateFileName)
	privateKeyFileName := filepath.Join(dir, rpc.PrivateKeyFileName)

	addresses := []string{}
	if len(arguments) >= 2 {
		for _, a := range arguments[1:] {
			if "" != a {
				addresses = append(addresses, a)
			}
		}
	}

	err := rpc.MakeSelfSignedCertificate(name, certificateFileName, privateKeyFileName, 0 != len(addresses), addresses)
	if nil != err {
		return certificateFileName, privateKeyFileName, "", err
	}

	_, fingerprint, err := rpc.LoadCertificate(certificateFileName, privateKeyFileName)
	return certificateFileName, privateKeyFileName, fingerprint, err
}

// fingerprint of the configured RPC certificate
func certificateFingerprint(options *rpc.Configuration) (string, error) {
	if "" == options.Certificate || "" == options.PrivateKey {
		return "", fault.MissingCertificate
	}
	_, fingerprint, err := rpc.LoadCertificate(options.Certificate, options.PrivateKey)
	return fingerprint, err
}
