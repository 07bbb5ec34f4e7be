// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/fault"
)

// StreamConfiguration - JSON-RPC directly over TLS connections
type StreamConfiguration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
}

// StreamListener - serves the same RPC server as the HTTP handler, one
// JSON-RPC codec per TLS connection
type StreamListener struct {
	log      *logger.L
	listener *listener.MultiListener
}

// NewStreamListener - set up listeners for all stream addresses
//
// a stream listener always needs a certificate
func NewStreamListener(name string, configuration *StreamConfiguration, log *logger.L, tlsConfiguration *tls.Config, server *rpc.Server) (*StreamListener, error) {
	if 0 == len(configuration.Listen) {
		log.Error("missing listen")
		return nil, fault.MissingParameters
	}
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", name, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if nil == tlsConfiguration {
		log.Errorf("%s requires a certificate", name)
		return nil, fault.MissingCertificate
	}

	callback := func(conn io.ReadWriteCloser, argument interface{}) {
		codec := jsonrpc.NewServerCodec(conn)
		defer codec.Close()
		server.ServeCodec(codec)
	}

	limiter := listener.NewLimiter(configuration.MaximumConnections)
	ml, err := listener.NewMultiListener(name, configuration.Listen, tlsConfiguration, limiter, callback)
	if nil != err {
		log.Errorf("%s listen: %v  error: %s", name, configuration.Listen, err)
		return nil, err
	}

	return &StreamListener{
		log:      log,
		listener: ml,
	}, nil
}

// Run - serve until shutdown
func (s *StreamListener) Run(args interface{}, shutdown <-chan struct{}) {
	s.log.Info("starting stream listener")
	s.listener.Start(args)

	<-shutdown

	s.listener.Stop()
	s.log.Info("stopped")
}
