// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/fault"
)

const (
	minConnectionCount = 1
	readWriteTimeout   = 30 * time.Second
	shutdownTimeout    = 5 * time.Second
)

// Configuration - configuration file data for RPC setup
type Configuration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	MaximumImageSize   int      `gluamapper:"maximum_image_size" json:"maximum_image_size"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// TLS - server TLS setup, nil if no certificate is configured
func (c *Configuration) TLS(log *logger.L) (*tls.Config, error) {
	if "" == c.Certificate && "" == c.PrivateKey {
		return nil, nil
	}
	if "" == c.Certificate || "" == c.PrivateKey {
		log.Error("certificate and private_key must both be set")
		return nil, fault.MissingCertificate
	}
	tlsConfiguration, fingerprint, err := LoadCertificate(c.Certificate, c.PrivateKey)
	if nil != err {
		log.Errorf("certificate: %q  error: %s", c.Certificate, err)
		return nil, err
	}
	log.Infof("certificate SHA3-256 fingerprint: %s", fingerprint)
	return tlsConfiguration, nil
}

// Listener - HTTP or HTTPS servers for all listen addresses
type Listener struct {
	log       *logger.L
	secure    bool
	listeners []net.Listener
	servers   []*http.Server
}

// NewListener - bind all listen addresses
//
// binding happens here so that a bad address fails at startup; with a
// certificate configured every address serves HTTPS
func NewListener(configuration *Configuration, log *logger.L, handler http.Handler) (*Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Error("missing listen")
		return nil, fault.MissingParameters
	}
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid maximum connection limit: %d", configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	tlsConfiguration, err := configuration.TLS(log)
	if nil != err {
		return nil, err
	}

	l := &Listener{
		log:    log,
		secure: nil != tlsConfiguration,
	}

	for _, listen := range configuration.Listen {
		if strings.HasPrefix(listen, "*:") {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			listen = "[::]" + strings.TrimPrefix(listen, "*")
		}

		ln, err := net.Listen("tcp", listen)
		if nil != err {
			log.Errorf("listen: %q  error: %s", listen, err)
			l.close()
			return nil, err
		}

		if nil != tlsConfiguration {
			ln = tls.NewListener(ln, tlsConfiguration)
		}

		l.listeners = append(l.listeners, ln)
		l.servers = append(l.servers, &http.Server{
			Handler:        handler,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		})
	}
	return l, nil
}

// Addresses - the bound addresses
func (l *Listener) Addresses() []string {
	a := make([]string, len(l.listeners))
	for i, ln := range l.listeners {
		a[i] = ln.Addr().String()
	}
	return a
}

// URLs - base URL of each bound address
func (l *Listener) URLs() []string {
	scheme := "http://"
	if l.secure {
		scheme = "https://"
	}
	u := make([]string, len(l.listeners))
	for i, ln := range l.listeners {
		u[i] = scheme + ln.Addr().String()
	}
	return u
}

// Run - serve until shutdown
func (l *Listener) Run(args interface{}, shutdown <-chan struct{}) {
	for i, s := range l.servers {
		l.log.Infof("starting server on: %s", l.listeners[i].Addr())
		go func(s *http.Server, ln net.Listener) {
			err := s.Serve(ln)
			if nil != err && http.ErrServerClosed != err {
				l.log.Errorf("serve: %s  error: %s", ln.Addr(), err)
			}
		}(s, l.listeners[i])
	}

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, s := range l.servers {
		_ = s.Shutdown(ctx)
	}
	l.log.Info("stopped")
}

func (l *Listener) close() {
	for _, ln := range l.listeners {
		_ = ln.Close()
	}
}
