// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/protocol"
	"github.com/geonft/geonftd/util"
)

// TagType - type code for transactions
type TagType uint64

// enumerate the possible transaction record types
// this is encoded a Varint64 at start of "Packed"
const (
	NullTag  TagType = iota
	PlantTag TagType = iota
	ClaimTag TagType = iota

	// this item must be last
	InvalidTag TagType = iota
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - generic transaction interface
type Transaction interface {
	Pack() (Packed, error)
}

// PlantTransaction - record a plant on the ledger
type PlantTransaction struct {
	Account      keys.AccountPublicKey  `json:"account"`
	Treasure     keys.TreasurePublicKey `json:"treasure"`
	TreasureHash string                 `json:"treasure_hash"`
}

// ClaimTransaction - record a claim on the ledger
type ClaimTransaction struct {
	Account  keys.AccountPublicKey  `json:"account"`
	Treasure keys.TreasurePublicKey `json:"treasure"`
}

// Pack - varint64 tag followed by the length prefixed fields
func (plant *PlantTransaction) Pack() (Packed, error) {
	if protocol.TreasureHashSize != len(plant.TreasureHash) {
		return nil, fault.InvalidTreasureHash
	}
	message := util.ToVarint64(uint64(PlantTag))
	message = appendBytes(message, plant.Account[:])
	message = appendBytes(message, plant.Treasure[:])
	message = appendBytes(message, []byte(plant.TreasureHash))
	return message, nil
}

// Pack - varint64 tag followed by the length prefixed fields
func (claim *ClaimTransaction) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(ClaimTag))
	message = appendBytes(message, claim.Account[:])
	message = appendBytes(message, claim.Treasure[:])
	return message, nil
}

// append a byte slice to a buffer, prefixed by its length
func appendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n || recordType >= uint64(InvalidTag) {
		return NullTag
	}
	return TagType(recordType)
}

// Digest - SHA3-256 of the packed bytes
func (record Packed) Digest() [32]byte {
	return sha3.Sum256(record)
}

// TxId - the transaction id
func (record Packed) TxId() string {
	digest := record.Digest()
	return base58.Encode(digest[:])
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(record)))
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	b := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(b, s)
	if nil != err {
		return fault.InvalidTransaction
	}
	*record = b[:n]
	return nil
}

// Unpack - turn a packed record back into a transaction
//
// the whole buffer must be consumed
func (record Packed) Unpack() (Transaction, error) {
	tag, n := util.FromVarint64(record)
	if 0 == n {
		return nil, fault.InvalidTransaction
	}
	rest := record[n:]

	var t Transaction
	var err error

	switch TagType(tag) {
	case PlantTag:
		plant := &PlantTransaction{}
		var hash []byte
		rest, err = readKey(rest, plant.Account[:])
		if nil == err {
			rest, err = readKey(rest, plant.Treasure[:])
		}
		if nil == err {
			hash, rest, err = readField(rest, protocol.TreasureHashSize)
		}
		plant.TreasureHash = string(hash)
		t = plant

	case ClaimTag:
		claim := &ClaimTransaction{}
		rest, err = readKey(rest, claim.Account[:])
		if nil == err {
			rest, err = readKey(rest, claim.Treasure[:])
		}
		t = claim

	default:
		return nil, fault.InvalidTransactionTag
	}

	if nil != err {
		return nil, err
	}
	if 0 != len(rest) {
		return nil, fault.TransactionHasTrailingData
	}
	return t, nil
}

// read a length prefixed field that must be exactly size bytes
func readField(buffer []byte, size int) ([]byte, []byte, error) {
	length, n := util.FromVarint64(buffer)
	if 0 == n || uint64(size) != length || len(buffer)-n < size {
		return nil, nil, fault.InvalidTransaction
	}
	return buffer[n : n+size], buffer[n+size:], nil
}

func readKey(buffer []byte, key []byte) ([]byte, error) {
	field, rest, err := readField(buffer, len(key))
	if nil != err {
		return nil, err
	}
	copy(key, field)
	return rest, nil
}
