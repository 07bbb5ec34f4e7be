// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over HTTP
//
// each POST to the RPC path carries a single JSON-RPC 1.0 request as
// understood by net/rpc/jsonrpc; the services themselves live in the
// sub-packages
package rpc
