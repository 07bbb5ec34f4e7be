// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// JSON-RPC client connected to the server over an in-memory pipe
func pipe(s *rpc.Server) (*rpc.Client, net.Conn) {
	client, peer := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(peer))
	return jsonrpc.NewClient(client), peer
}
