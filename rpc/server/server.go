// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/counter"
	"github.com/geonft/geonftd/rpc/node"
	"github.com/geonft/geonftd/rpc/treasures"
	"github.com/geonft/geonftd/status"
	"github.com/geonft/geonftd/treasure"
)

// Services - the stores behind the geonftd RPC services
type Services struct {
	Records          *treasure.Store
	Statuses         *status.Store
	MaximumImageSize int
	ReadOnly         bool
}

// Register - add the Treasure and Node services to an RPC server
func Register(server *rpc.Server, log *logger.L, version string, rpcCount *counter.Counter, services Services) error {

	start := time.Now().UTC()
	acceptor := treasure.NewAcceptor(services.Records, services.MaximumImageSize)

	err := server.RegisterName("Treasure", treasures.New(log, acceptor, services.Records, services.Statuses, services.ReadOnly))
	if nil != err {
		return err
	}
	return server.RegisterName("Node", node.New(log, services.Records, services.Statuses, start, version, rpcCount, services.ReadOnly))
}
