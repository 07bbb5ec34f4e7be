// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geonft/geonftd/fault"
)

var (
	ErrConflictOne     = fault.ConflictError("conflict one")
	ErrDecodingOne     = fault.DecodingError("decoding one")
	ErrInvalidOne      = fault.InvalidError("invalid one")
	ErrLedgerOne       = fault.LedgerError("ledger one")
	ErrNotFoundOne     = fault.NotFoundError("not found one")
	ErrProcessOne      = fault.ProcessError("process one")
	ErrRemoteOne       = fault.RemoteError("remote one")
	ErrVerificationOne = fault.VerificationError("verification one")
)

// test that errors can be classified, including when wrapped
func TestClasses(t *testing.T) {
	errorList := []struct {
		err   error
		class string
	}{
		{ErrConflictOne, "conflict"},
		{ErrDecodingOne, "decoding"},
		{ErrInvalidOne, "invalid"},
		{ErrLedgerOne, "ledger"},
		{ErrNotFoundOne, "not-found"},
		{ErrProcessOne, "process"},
		{ErrRemoteOne, "remote"},
		{ErrVerificationOne, "verification"},
		{fmt.Errorf("upload: %w", ErrRemoteOne), "remote"},
		{fmt.Errorf("plain"), "other"},
		{nil, "none"},
	}

	for i, e := range errorList {
		assert.Equal(t, e.class, fault.Class(e.err), "%d: wrong class for: %v", i, e.err)
	}
}

func TestRequestRejection(t *testing.T) {
	assert.True(t, fault.IsRequestRejection(fault.WrongNamespace))
	assert.True(t, fault.IsRequestRejection(fault.InvalidTreasureSignature))
	assert.True(t, fault.IsRequestRejection(fault.TreasureAlreadyPlanted))
	assert.False(t, fault.IsRequestRejection(fault.LedgerUnavailable))
	assert.False(t, fault.IsRequestRejection(fault.TreasureNotPlanted))
}

func TestLookup(t *testing.T) {
	e, ok := fault.Lookup(fault.TreasureNotPlanted.Error())
	assert.True(t, ok, "not found")
	assert.Equal(t, fault.TreasureNotPlanted, e, "wrong error")
	assert.True(t, fault.IsErrLedger(e), "wrong class")

	_, ok = fault.Lookup("no such error")
	assert.False(t, ok, "unexpected match")
}
