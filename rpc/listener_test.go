// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/geonft/geonftd/background"
	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/fixtures"
	"github.com/geonft/geonftd/rpc"
)

func TestListenerMissingParameters(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	_, err := rpc.NewListener(&rpc.Configuration{MaximumConnections: 5}, log, http.NewServeMux())
	assert.Equal(t, fault.MissingParameters, err, "missing listen accepted")

	_, err = rpc.NewListener(&rpc.Configuration{Listen: []string{"127.0.0.1:0"}}, log, http.NewServeMux())
	assert.Equal(t, fault.MissingParameters, err, "zero connections accepted")
}

func TestListenerBadAddress(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := rpc.NewListener(&rpc.Configuration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0", "not-an-address"},
	}, logger.New(fixtures.LogCategory), http.NewServeMux())
	assert.NotNil(t, err, "bad address accepted")
}

func TestListenerAddressInUse(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	defer ln.Close()

	_, err = rpc.NewListener(&rpc.Configuration{
		MaximumConnections: 5,
		Listen:             []string{ln.Addr().String()},
	}, logger.New(fixtures.LogCategory), http.NewServeMux())
	assert.NotNil(t, err, "address in use accepted")
}

func TestListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, err := rpc.NewListener(&rpc.Configuration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
	}, logger.New(fixtures.LogCategory), newMux(t, 5))
	if nil != err {
		t.Fatalf("listener error: %s", err)
	}
	addresses := l.Addresses()
	assert.Equal(t, 1, len(addresses), "wrong address count")

	running := background.Start(background.Processes{l}, nil)

	resp, err := http.Get("http://" + addresses[0] + rpc.DetailsPath)
	if nil != err {
		running.Stop()
		t.Fatalf("get error: %s", err)
	}
	var j struct {
		Version string `json:"version"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&j)
	resp.Body.Close()
	assert.Equal(t, "1.0", j.Version, "wrong version")

	running.Stop()

	_, err = http.Get("http://" + addresses[0] + rpc.DetailsPath)
	assert.NotNil(t, err, "still serving after stop")
}

func TestListenerServeTLS(t *testing.T) {
	certificate, key, fingerprint := makeCertificate(t)
	log := testLogger(t)

	l, err := rpc.NewListener(&rpc.Configuration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        certificate,
		PrivateKey:         key,
	}, log, newMux(t, 5))
	if nil != err {
		t.Fatalf("listener error: %s", err)
	}
	urls := l.URLs()
	assert.Equal(t, 1, len(urls), "wrong url count")
	assert.True(t, strings.HasPrefix(urls[0], "https://"), "wrong scheme: %s", urls[0])

	running := background.Start(background.Processes{l}, nil)
	defer running.Stop()

	data, _ := json.Marshal(jReq{
		ID:     8,
		Method: "Add.Add",
		Params: []AddArg{{A: 20, B: 22}},
	})

	pinned, err := rpc.ClientTLSConfiguration(fingerprint)
	assert.Nil(t, err, "client tls error")
	client := &http.Client{Transport: &http.Transport{TLSClientConfig: pinned}}

	resp, err := client.Post(urls[0]+rpc.RPCPath, "application/json", bytes.NewReader(data))
	if nil != err {
		t.Fatalf("post error: %s", err)
	}
	var j jResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	resp.Body.Close()
	assert.Equal(t, 42, j.Result, "wrong result")

	// a different certificate is refused
	other, _ := rpc.ClientTLSConfiguration(strings.Repeat("ab", 32))
	client = &http.Client{Transport: &http.Transport{TLSClientConfig: other}}
	_, err = client.Post(urls[0]+rpc.RPCPath, "application/json", bytes.NewReader(data))
	assert.NotNil(t, err, "wrong fingerprint accepted")

	// plain HTTP is not served
	resp, err = http.Post(strings.Replace(urls[0], "https://", "http://", 1)+rpc.RPCPath, "application/json", bytes.NewReader(data))
	if nil == err {
		resp.Body.Close()
		assert.NotEqual(t, http.StatusOK, resp.StatusCode, "plain http answered on a TLS listener")
	}
}

func TestListenerTLSMissingKey(t *testing.T) {
	certificate, _, _ := makeCertificate(t)

	_, err := rpc.NewListener(&rpc.Configuration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        certificate,
	}, testLogger(t), http.NewServeMux())
	assert.Equal(t, fault.MissingCertificate, err, "certificate without key accepted")
}
