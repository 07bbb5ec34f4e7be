// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
)

// Client - JSON-RPC over HTTP connection to a ledger node
type Client struct {
	log    *logger.L
	url    string
	client *http.Client
	nextId uint64
}

// the JSON-RPC 1.0 envelope used by net/rpc/jsonrpc
type clientRequest struct {
	Method string         `json:"method"`
	Params [1]interface{} `json:"params"`
	Id     uint64         `json:"id"`
}

type clientResponse struct {
	Id     uint64           `json:"id"`
	Result *json.RawMessage `json:"result"`
	Error  interface{}      `json:"error"`
}

// NewClient - client for the node at the URL
//
// deadlines come from the context passed to each call; tlsConfiguration
// applies to https URLs and nil selects normal certificate verification
func NewClient(ledgerURL string, tlsConfiguration *tls.Config) (*Client, error) {
	u, err := url.Parse(ledgerURL)
	if nil != err || ("http" != u.Scheme && "https" != u.Scheme) || "" == u.Host {
		return nil, fault.InvalidLedgerURL
	}

	client := &http.Client{}
	if nil != tlsConfiguration {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = tlsConfiguration
		client.Transport = transport
	}

	return &Client{
		log:    logger.New("ledger-client"),
		url:    u.String(),
		client: client,
	}, nil
}

// Submit - send a transaction to the ledger
func (c *Client) Submit(ctx context.Context, tx Transaction) (*Confirmation, error) {
	packed, err := tx.Pack()
	if nil != err {
		return nil, err
	}
	var reply Confirmation
	err = c.call(ctx, SubmitMethod, SubmitArguments{Transaction: packed}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Planted - query a plant
func (c *Client) Planted(ctx context.Context, key keys.TreasurePublicKey) (*PlantedReply, error) {
	var reply PlantedReply
	err := c.call(ctx, PlantedMethod, KeyArguments{Treasure: key}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Claimed - query a claim
func (c *Client) Claimed(ctx context.Context, key keys.TreasurePublicKey) (*ClaimedReply, error) {
	var reply ClaimedReply
	err := c.call(ctx, ClaimedMethod, KeyArguments{Treasure: key}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) call(ctx context.Context, method string, arguments interface{}, reply interface{}) error {
	request := clientRequest{
		Method: method,
		Params: [1]interface{}{arguments},
		Id:     atomic.AddUint64(&c.nextId, 1),
	}
	body, err := json.Marshal(request)
	if nil != err {
		return err
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if nil != err {
		return err
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	response, err := c.client.Do(httpRequest)
	if nil != err {
		c.log.Warnf("%s: %s", method, err)
		return fault.LedgerUnavailable
	}
	defer response.Body.Close()

	if http.StatusOK != response.StatusCode {
		c.log.Warnf("%s: http status: %d", method, response.StatusCode)
		return fault.LedgerRequestFailed
	}

	var result clientResponse
	err = json.NewDecoder(response.Body).Decode(&result)
	if nil != err {
		c.log.Warnf("%s: decode response: %s", method, err)
		return fault.LedgerRequestFailed
	}
	if result.Id != request.Id {
		c.log.Warnf("%s: response id: %d  expected: %d", method, result.Id, request.Id)
		return fault.LedgerRequestFailed
	}

	if nil != result.Error {
		message := fmt.Sprint(result.Error)
		if e, ok := fault.Lookup(message); ok {
			return e
		}
		c.log.Warnf("%s: remote error: %s", method, message)
		return fault.LedgerRequestFailed
	}
	if nil == result.Result {
		return fault.LedgerRequestFailed
	}
	return json.Unmarshal(*result.Result, reply)
}
