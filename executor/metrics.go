// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/planner"
)

// step outcomes
const (
	outcomeExecuted = "executed"
	outcomeFailed   = "failed"
	outcomeSkipped  = "skipped"
)

var (
	registerOnce sync.Once

	stepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geonft",
			Subsystem: "sync",
			Name:      "steps_total",
			Help:      "Synchronisation steps by outcome.",
		},
		[]string{"step", "outcome"},
	)
	failuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geonft",
			Subsystem: "sync",
			Name:      "failures_total",
			Help:      "Failed synchronisation steps by error class.",
		},
		[]string{"step", "class"},
	)
	stepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "geonft",
			Subsystem: "sync",
			Name:      "step_duration_seconds",
			Help:      "Time spent on remote calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"step"},
	)
)

// RegisterMetrics - add the executor metrics to the default registry
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(stepsTotal, failuresTotal, stepDuration)
	})
}

func recordStep(step planner.Step, outcome string, err error, duration time.Duration) {
	stepsTotal.WithLabelValues(step.String(), outcome).Inc()
	if nil != err {
		failuresTotal.WithLabelValues(step.String(), fault.Class(err)).Inc()
	}
	if outcomeSkipped != outcome {
		stepDuration.WithLabelValues(step.String()).Observe(duration.Seconds())
	}
}
