// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"net/http"
	netrpc "net/rpc"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/geonft/geonftd/background"
	"github.com/geonft/geonftd/blob"
	"github.com/geonft/geonftd/executor"
	"github.com/geonft/geonftd/ledger"
	"github.com/geonft/geonftd/reconciler"
	"github.com/geonft/geonftd/rpc"
	"github.com/geonft/geonftd/rpc/server"
	"github.com/geonft/geonftd/status"
	"github.com/geonft/geonftd/storage"
	"github.com/geonft/geonftd/treasure"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q  read only: %t", theConfiguration.Database.Name, theConfiguration.ReadOnly)

	// start the data storage
	log.Info("initialise storage")
	database, err := storage.Open(theConfiguration.Database.Name, theConfiguration.ReadOnly)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer database.Close()

	records := treasure.NewStore(database)
	statuses := status.NewStore(database)

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, records, statuses) {
		return
	}

	processes := background.Processes{}

	// inbound RPC
	rpcLog := logger.New("rpc")
	rpcServer := netrpc.NewServer()
	handler := rpc.NewHandler(rpcLog, rpcServer, theConfiguration.RPC.MaximumConnections, version)
	handler.SetBodyLimit(rpc.BodyLimit(theConfiguration.RPC.MaximumImageSize))
	err = server.Register(rpcServer, logger.New("rpc-treasure"), version, handler.Counter(), server.Services{
		Records:          records,
		Statuses:         statuses,
		MaximumImageSize: theConfiguration.RPC.MaximumImageSize,
		ReadOnly:         theConfiguration.ReadOnly,
	})
	if nil != err {
		log.Criticalf("rpc register error: %s", err)
		exitwithstatus.Message("rpc register error: %s", err)
	}
	listener, err := rpc.NewListener(&theConfiguration.RPC, rpcLog, handler.ServeMux())
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	processes = append(processes, listener)

	// optional JSON-RPC directly over TLS
	if 0 != len(theConfiguration.Stream.Listen) {
		tlsConfiguration, err := theConfiguration.RPC.TLS(rpcLog)
		if nil != err {
			log.Criticalf("stream certificate error: %s", err)
			exitwithstatus.Message("stream certificate error: %s", err)
		}
		stream, err := rpc.NewStreamListener("stream", &theConfiguration.Stream, logger.New("stream"), tlsConfiguration, rpcServer)
		if nil != err {
			log.Criticalf("stream initialise error: %s", err)
			exitwithstatus.Message("stream initialise error: %s", err)
		}
		processes = append(processes, stream)
	}

	// synchronisation to the remote systems
	if theConfiguration.ReadOnly {
		log.Warn("read only: synchronisation disabled")
	} else {
		log.Debugf("%s = %#v", "Blob", theConfiguration.Blob.Backend)
		log.Debugf("%s = %#v", "Ledger", theConfiguration.Ledger)
		log.Debugf("%s = %#v", "Reconciler", theConfiguration.Reconciler)

		blobs, err := blob.New(context.Background(), &theConfiguration.Blob)
		if nil != err {
			log.Criticalf("blob initialise error: %s", err)
			exitwithstatus.Message("blob initialise error: %s", err)
		}
		ledgerTLS, err := rpc.ClientTLSConfiguration(theConfiguration.Ledger.CertificateFingerprint)
		if nil != err {
			log.Criticalf("ledger certificate fingerprint error: %s", err)
			exitwithstatus.Message("ledger certificate fingerprint error: %s", err)
		}
		client, err := ledger.NewClient(theConfiguration.Ledger.URL, ledgerTLS)
		if nil != err {
			log.Criticalf("ledger initialise error: %s", err)
			exitwithstatus.Message("ledger initialise error: %s", err)
		}
		interval, executorConfiguration, err := theConfiguration.Reconciler.Parse()
		if nil != err {
			log.Criticalf("reconciler configuration error: %s", err)
			exitwithstatus.Message("reconciler configuration error: %s", err)
		}

		executor.RegisterMetrics()
		e := executor.New(records, statuses, blobs, client, executorConfiguration)
		processes = append(processes, reconciler.New(records, statuses, e, interval))
	}

	// optional metrics
	if 0 != len(theConfiguration.Metrics.Listen) {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metrics, err := rpc.NewListener(&rpc.Configuration{
			MaximumConnections: 1,
			Listen:             theConfiguration.Metrics.Listen,
		}, logger.New("metrics"), mux)
		if nil != err {
			log.Criticalf("metrics initialise error: %s", err)
			exitwithstatus.Message("metrics initialise error: %s", err)
		}
		processes = append(processes, metrics)
	}

	running := background.Start(processes, nil)
	defer running.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
