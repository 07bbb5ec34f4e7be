// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasure

import (
	"errors"

	"github.com/bitmark-inc/logger"
	"github.com/go-playground/validator/v10"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/protocol"
)

// DefaultMaximumImageSize - largest accepted base64 image text
const DefaultMaximumImageSize = 4 * 1024 * 1024

// PlantRequest - text fields as sent by a client
type PlantRequest struct {
	AccountPublicKey  string `json:"account_public_key" validate:"required"`
	TreasurePublicKey string `json:"treasure_public_key" validate:"required"`
	Image             string `json:"image" validate:"required"`
	AccountSignature  string `json:"account_signature" validate:"required"`
	TreasureSignature string `json:"treasure_signature" validate:"required"`
}

// ClaimRequest - text fields as sent by a client
type ClaimRequest struct {
	AccountPublicKey  string `json:"account_public_key" validate:"required"`
	TreasurePublicKey string `json:"treasure_public_key" validate:"required"`
	AccountSignature  string `json:"account_signature" validate:"required"`
	TreasureSignature string `json:"treasure_signature" validate:"required"`
}

// Acceptor - verifies requests and stores the resulting records
type Acceptor struct {
	log              *logger.L
	store            *Store
	validate         *validator.Validate
	maximumImageSize int
}

// NewAcceptor - create an acceptor
//
// a maximumImageSize of zero selects the default
func NewAcceptor(store *Store, maximumImageSize int) *Acceptor {
	if maximumImageSize <= 0 {
		maximumImageSize = DefaultMaximumImageSize
	}
	return &Acceptor{
		log:              logger.New("accept"),
		store:            store,
		validate:         validator.New(),
		maximumImageSize: maximumImageSize,
	}
}

// map struct validation failures to fault instances
func (a *Acceptor) check(request interface{}) error {
	err := a.validate.Struct(request)
	if nil == err {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		for _, f := range fields {
			if "required" == f.Tag() {
				return fault.MissingParameters
			}
		}
	}
	return fault.InvalidRequest
}

// the image must be base64 text within the size limit
func (a *Acceptor) checkImage(image string) error {
	if len(image) > a.maximumImageSize {
		return fault.InvalidImage
	}
	if nil != a.validate.Var(image, "base64") {
		return fault.InvalidImage
	}
	return nil
}

// Plant - verify and store a plant
//
// checks run in a fixed order: required fields, decode keys and
// signatures, refuse an existing plant, check the image, hash the image,
// verify the treasure signature,
// verify the account signature and finally store
func (a *Acceptor) Plant(request *PlantRequest) (*PlantRecord, error) {
	if nil == request {
		return nil, fault.InvalidRequest
	}
	if err := a.check(request); nil != err {
		return nil, err
	}

	account, err := keys.DecodeAccountPublicKey(request.AccountPublicKey)
	if nil != err {
		return nil, err
	}
	treasure, err := keys.DecodeTreasurePublicKey(request.TreasurePublicKey)
	if nil != err {
		return nil, err
	}
	accountSignature, err := keys.DecodeSignature(request.AccountSignature)
	if nil != err {
		return nil, err
	}
	treasureSignature, err := keys.DecodeSignature(request.TreasureSignature)
	if nil != err {
		return nil, err
	}

	if a.store.HasPlant(treasure) {
		return nil, fault.TreasureAlreadyPlanted
	}
	if err := a.checkImage(request.Image); nil != err {
		return nil, err
	}

	hash := protocol.TreasureHash(request.Image)

	err = protocol.VerifyPlantForTreasure(treasure, account, hash, treasureSignature)
	if nil != err {
		a.log.Warnf("plant: %s: %s", keys.Abbreviate(request.TreasurePublicKey), err)
		return nil, err
	}
	err = protocol.VerifyPlantForAccount(account, treasure, accountSignature)
	if nil != err {
		a.log.Warnf("plant: %s: %s", keys.Abbreviate(request.TreasurePublicKey), err)
		return nil, err
	}

	record := &PlantRecord{
		AccountPublicKey:  account,
		TreasurePublicKey: treasure,
		Image:             request.Image,
		TreasureHash:      string(hash),
		AccountSignature:  accountSignature,
		TreasureSignature: treasureSignature,
	}

	// a concurrent plant may have won since the check above
	err = a.store.PutPlant(record)
	if nil != err {
		return nil, err
	}
	return record, nil
}

// Claim - verify and store a claim
func (a *Acceptor) Claim(request *ClaimRequest) (*ClaimRecord, error) {
	if nil == request {
		return nil, fault.InvalidRequest
	}
	if err := a.check(request); nil != err {
		return nil, err
	}

	account, err := keys.DecodeAccountPublicKey(request.AccountPublicKey)
	if nil != err {
		return nil, err
	}
	treasure, err := keys.DecodeTreasurePublicKey(request.TreasurePublicKey)
	if nil != err {
		return nil, err
	}
	accountSignature, err := keys.DecodeSignature(request.AccountSignature)
	if nil != err {
		return nil, err
	}
	treasureSignature, err := keys.DecodeSignature(request.TreasureSignature)
	if nil != err {
		return nil, err
	}

	if !a.store.HasPlant(treasure) {
		return nil, fault.TreasureNotPlanted
	}

	err = protocol.VerifyClaimForTreasure(treasure, account, treasureSignature)
	if nil != err {
		a.log.Warnf("claim: %s: %s", keys.Abbreviate(request.TreasurePublicKey), err)
		return nil, err
	}
	err = protocol.VerifyClaimForAccount(account, treasure, accountSignature)
	if nil != err {
		a.log.Warnf("claim: %s: %s", keys.Abbreviate(request.TreasurePublicKey), err)
		return nil, err
	}

	record := &ClaimRecord{
		AccountPublicKey:  account,
		TreasurePublicKey: treasure,
		AccountSignature:  accountSignature,
		TreasureSignature: treasureSignature,
	}
	err = a.store.PutClaim(record)
	if nil != err {
		return nil, err
	}
	return record, nil
}
