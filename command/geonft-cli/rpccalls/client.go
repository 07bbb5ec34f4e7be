// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/rpc"
)

// DefaultTimeout - limit for a single call
const DefaultTimeout = 30 * time.Second

// Client - JSON-RPC over HTTP connection to a geonftd
type Client struct {
	url     string
	client  *http.Client
	nextId  uint64
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

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

// NewClient - create a client for the geonftd RPC URL
//
// fingerprint pins the certificate of an https server, empty uses
// normal certificate verification
func NewClient(connect string, fingerprint string, verbose bool, handle io.Writer) (*Client, error) {
	u, err := url.Parse(connect)
	if nil != err || ("http" != u.Scheme && "https" != u.Scheme) || "" == u.Host {
		return nil, fmt.Errorf("invalid connect url: %q", connect)
	}

	tlsConfiguration, err := rpc.ClientTLSConfiguration(fingerprint)
	if nil != err {
		return nil, err
	}
	client := &http.Client{Timeout: DefaultTimeout}
	if nil != tlsConfiguration {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = tlsConfiguration
		client.Transport = transport
	}

	return &Client{
		url:     u.String(),
		client:  client,
		verbose: verbose,
		handle:  handle,
	}, nil
}

func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.nextId += 1
	request := clientRequest{
		Method: method,
		Params: [1]interface{}{arguments},
		Id:     c.nextId,
	}
	c.printJson(method+" Request", request)

	body, err := json.Marshal(request)
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if nil != err {
		return err
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	response, err := c.client.Do(httpRequest)
	if nil != err {
		return err
	}
	defer response.Body.Close()

	if http.StatusOK != response.StatusCode {
		return fmt.Errorf("%s: http status: %d", method, response.StatusCode)
	}

	var result clientResponse
	err = json.NewDecoder(response.Body).Decode(&result)
	if nil != err {
		return err
	}
	c.printJson(method+" Reply", result)

	if nil != result.Error {
		message := fmt.Sprint(result.Error)
		if e, ok := fault.Lookup(message); ok {
			return e
		}
		return fmt.Errorf("%s: %s", method, message)
	}
	if nil == result.Result {
		return fmt.Errorf("%s: empty result", method)
	}
	return json.Unmarshal(*result.Result, reply)
}

func (c *Client) printJson(title string, message interface{}) {
	if !c.verbose {
		return
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s: %s\n", title, err)
		return
	}
	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
}
