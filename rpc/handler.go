// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"io"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/counter"
)

// paths served
const (
	RPCPath     = "/geonft"
	DetailsPath = "/details"
)

// request body limits
const (
	bodyHeadroom     = 64 * 1024 // keys, signatures and the JSON envelope
	DefaultBodyLimit = 4*1024*1024 + bodyHeadroom
)

// BodyLimit - largest request body that can carry an image of the given size
func BodyLimit(maximumImageSize int) int64 {
	if maximumImageSize <= 0 {
		return DefaultBodyLimit
	}
	return int64(maximumImageSize) + bodyHeadroom
}

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

// Handler - HTTP front end of an RPC server
type Handler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	count              counter.Counter
	maximumConnections uint64
	bodyLimit          int64
}

// NewHandler - wrap an RPC server
func NewHandler(log *logger.L, server *rpc.Server, maximumConnections uint64, version string) *Handler {
	return &Handler{
		log:                log,
		server:             server,
		start:              time.Now().UTC(),
		version:            version,
		maximumConnections: maximumConnections,
		bodyLimit:          DefaultBodyLimit,
	}
}

// SetBodyLimit - change the largest accepted request body
func (h *Handler) SetBodyLimit(limit int64) {
	if limit > 0 {
		h.bodyLimit = limit
	}
}

// ServeMux - routes for the handler
func (h *Handler) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.root)
	mux.HandleFunc(RPCPath, h.rpc)
	mux.HandleFunc(DetailsPath, h.details)
	return mux
}

// Counter - number of requests in progress
func (h *Handler) Counter() *counter.Counter {
	return &h.count
}

// this matches anything not matched and returns error
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// performs a call to any registered RPC
func (h *Handler) rpc(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		h.log.Warnf("too many connections, refuse: %s", r.RemoteAddr)
		sendServiceUnavailable(w)
		return
	}
	defer h.count.Decrement()

	if r.ContentLength > h.bodyLimit {
		h.log.Warnf("request too large: %d bytes from: %s", r.ContentLength, r.RemoteAddr)
		sendRequestEntityTooLarge(w)
		return
	}
	body := http.MaxBytesReader(w, r.Body, h.bodyLimit)

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("serve request error: %s", err)
	}
}

// uptime and load
func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	type theReply struct {
		Version     string `json:"version"`
		Uptime      string `json:"uptime"`
		Connections uint64 `json:"connections"`
	}

	sendReply(w, theReply{
		Version:     h.version,
		Uptime:      time.Since(h.start).String(),
		Connections: h.count.Uint64(),
	})
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendRequestEntityTooLarge(w http.ResponseWriter) {
	sendError(w, "request entity too large", http.StatusRequestEntityTooLarge)
}
func sendServiceUnavailable(w http.ResponseWriter) {
	sendError(w, "service unavailable", http.StatusServiceUnavailable)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
