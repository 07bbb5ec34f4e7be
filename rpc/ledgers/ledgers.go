// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgers

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/ledger"
	"github.com/geonft/geonftd/rpc/ratelimit"
)

const (
	rateLimitLedger = 100
	rateBurstLedger = 100
)

// Program - the ledger operations served
type Program interface {
	Execute(ledger.Packed) (*ledger.Confirmation, error)
	Planted(keys.TreasurePublicKey) (*ledger.Planted, bool)
	Claimed(keys.TreasurePublicKey) (*ledger.Claimed, bool)
}

// Ledger - type for the RPC
type Ledger struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Program Program
}

// New - create the RPC type
func New(log *logger.L, program Program) *Ledger {
	return &Ledger{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Program: program,
	}
}

// Submit - execute a packed transaction
func (l *Ledger) Submit(arguments *ledger.SubmitArguments, reply *ledger.Confirmation) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == arguments || 0 == len(arguments.Transaction) {
		return fault.MissingParameters
	}

	confirmation, err := l.Program.Execute(arguments.Transaction)
	if nil != err {
		l.Log.Infof("Ledger.Submit: rejected: %s", err)
		return err
	}
	*reply = *confirmation
	return nil
}

// Planted - query a plant entry
func (l *Ledger) Planted(arguments *ledger.KeyArguments, reply *ledger.PlantedReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	reply.Entry, reply.Planted = l.Program.Planted(arguments.Treasure)
	return nil
}

// Claimed - query a claim entry
func (l *Ledger) Claimed(arguments *ledger.KeyArguments, reply *ledger.ClaimedReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	reply.Entry, reply.Claimed = l.Program.Claimed(arguments.Treasure)
	return nil
}
