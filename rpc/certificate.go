// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/geonft/geonftd/fault"
)

// file names used by the certificate generation commands
const (
	CertificateFileName = "rpc.crt"
	PrivateKeyFileName  = "rpc.key"
)

const certificateLifetime = 10 * 365 * 24 * time.Hour

// MakeSelfSignedCertificate - create a certificate and private key pair
//
// existing files are never overwritten; if override is set only the
// extraHosts are put in the certificate
func MakeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {
	if fileExists(certificateFileName) {
		return fault.CertificateFileExists
	}
	if fileExists(privateKeyFileName) {
		return fault.KeyFileExists
	}

	org := "geonft self signed cert for: " + name
	validUntil := time.Now().Add(certificateLifetime)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if nil != err {
		return err
	}

	if err := os.WriteFile(certificateFileName, cert, 0666); nil != err {
		return err
	}
	if err := os.WriteFile(privateKeyFileName, key, 0600); nil != err {
		_ = os.Remove(certificateFileName)
		return err
	}
	return nil
}

// LoadCertificate - server TLS setup from a certificate and key pair
//
// also returns the certificate fingerprint for clients to pin
func LoadCertificate(certificateFileName string, privateKeyFileName string) (*tls.Config, string, error) {
	keyPair, err := tls.LoadX509KeyPair(certificateFileName, privateKeyFileName)
	if nil != err {
		return nil, "", err
	}
	c := &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}
	return c, Fingerprint(keyPair.Certificate[0]), nil
}

// Fingerprint - hex SHA3-256 of a DER certificate
//
// openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) string {
	f := sha3.Sum256(certificate)
	return hex.EncodeToString(f[:])
}

// ClientTLSConfiguration - client TLS setup for a pinned certificate
//
// an empty fingerprint returns nil so that normal certificate
// verification applies; otherwise only the server certificate with that
// fingerprint is accepted, which is what a self signed certificate needs
func ClientTLSConfiguration(fingerprint string) (*tls.Config, error) {
	if "" == fingerprint {
		return nil, nil
	}
	expected, err := hex.DecodeString(fingerprint)
	if nil != err || sha3.New256().Size() != len(expected) {
		return nil, fault.InvalidFingerprint
	}

	return &tls.Config{
		InsecureSkipVerify: true,
		MinVersion:         tls.VersionTLS12,
		VerifyPeerCertificate: func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if 0 == len(rawCerts) {
				return fault.CertificateMismatch
			}
			f := sha3.Sum256(rawCerts[0])
			if !bytes.Equal(f[:], expected) {
				return fault.CertificateMismatch
			}
			return nil
		},
	}, nil
}

func fileExists(name string) bool {
	info, err := os.Stat(name)
	return nil == err && !info.IsDir()
}
