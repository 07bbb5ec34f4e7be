// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reconciler - periodically bring the remote systems up to date
package reconciler

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/executor"
	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/planner"
	"github.com/geonft/geonftd/status"
	"github.com/geonft/geonftd/treasure"
)

// DefaultInterval - time between cycles
const DefaultInterval = time.Minute

// Configuration - reconciler section of the configuration file
//
// durations are in time.ParseDuration format
type Configuration struct {
	Interval       string `gluamapper:"interval" json:"interval"`
	RemoteTimeout  string `gluamapper:"remote_timeout" json:"remote_timeout"`
	BackoffInitial string `gluamapper:"backoff_initial" json:"backoff_initial"`
	BackoffMaximum string `gluamapper:"backoff_maximum" json:"backoff_maximum"`
}

// Events - source of local plant and claim events
type Events interface {
	Events() ([]treasure.Event, error)
}

// Statuses - source of all synchronisation statuses
type Statuses interface {
	All() (map[keys.TreasurePublicKey]status.Status, error)
}

// Executor - runs the planned steps
type Executor interface {
	Execute(context.Context, []planner.Action) executor.Result
}

// Reconciler - the plan and execute loop
type Reconciler struct {
	log      *logger.L
	events   Events
	statuses Statuses
	executor Executor
	interval time.Duration
}

// Parse - convert the text durations, empty items take the defaults
func (c *Configuration) Parse() (time.Duration, executor.Configuration, error) {
	interval := DefaultInterval
	e := executor.Configuration{}

	items := []struct {
		text  string
		value *time.Duration
	}{
		{c.Interval, &interval},
		{c.RemoteTimeout, &e.RemoteTimeout},
		{c.BackoffInitial, &e.BackoffInitial},
		{c.BackoffMaximum, &e.BackoffMaximum},
	}
	for _, item := range items {
		if "" == item.text {
			continue
		}
		d, err := time.ParseDuration(item.text)
		if nil != err || d <= 0 {
			return 0, e, fault.InvalidRequest
		}
		*item.value = d
	}
	return interval, e, nil
}

// New - create a reconciler
func New(events Events, statuses Statuses, exec Executor, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reconciler{
		log:      logger.New("reconciler"),
		events:   events,
		statuses: statuses,
		executor: exec,
		interval: interval,
	}
}

// Cycle - plan from the current state and execute the plan once
func (r *Reconciler) Cycle(ctx context.Context) (executor.Result, error) {
	statuses, err := r.statuses.All()
	if nil != err {
		return executor.Result{}, err
	}
	events, err := r.events.Events()
	if nil != err {
		return executor.Result{}, err
	}

	actions := planner.Plan(statuses, events)
	r.log.Debugf("events: %d  actions: %d", len(events), len(actions))
	if 0 == len(actions) {
		return executor.Result{}, nil
	}
	return r.executor.Execute(ctx, actions), nil
}

// Run - cycle until shutdown, the first cycle starts at once
func (r *Reconciler) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Infof("starting…  interval: %s", r.interval)

	delay := time.After(0)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-delay:
			_, err := r.Cycle(ctx)
			if nil != err {
				log.Errorf("cycle skipped: %s  class: %s", err, fault.Class(err))
			}
			delay = time.After(r.interval)
		}
	}
	log.Info("stopped")
}
