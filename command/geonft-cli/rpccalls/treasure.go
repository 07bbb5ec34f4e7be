// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/geonft/geonftd/keys"
	"github.com/geonft/geonftd/protocol"
	"github.com/geonft/geonftd/rpc/treasures"
	"github.com/geonft/geonftd/treasure"
)

// MakePlantRequest - build a plant request signed by both keys
func MakePlantRequest(account keys.AccountSecretKey, tr keys.TreasureSecretKey, image string) *treasure.PlantRequest {
	hash := protocol.TreasureHash(image)
	return &treasure.PlantRequest{
		AccountPublicKey:  account.PublicKey().String(),
		TreasurePublicKey: tr.PublicKey().String(),
		Image:             image,
		AccountSignature:  protocol.SignPlantForAccount(account, tr.PublicKey()).String(),
		TreasureSignature: protocol.SignPlantForTreasure(tr, account.PublicKey(), hash).String(),
	}
}

// MakeClaimRequest - build a claim request signed by both keys
func MakeClaimRequest(account keys.AccountSecretKey, tr keys.TreasureSecretKey) *treasure.ClaimRequest {
	return &treasure.ClaimRequest{
		AccountPublicKey:  account.PublicKey().String(),
		TreasurePublicKey: tr.PublicKey().String(),
		AccountSignature:  protocol.SignClaimForAccount(account, tr.PublicKey()).String(),
		TreasureSignature: protocol.SignClaimForTreasure(tr, account.PublicKey()).String(),
	}
}

// Plant - send a signed plant request
func (c *Client) Plant(request *treasure.PlantRequest) (*treasures.PlantReply, error) {
	var reply treasures.PlantReply
	if err := c.call("Treasure.Plant", request, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Claim - send a signed claim request
func (c *Client) Claim(request *treasure.ClaimRequest) (*treasures.ClaimReply, error) {
	var reply treasures.ClaimReply
	if err := c.call("Treasure.Claim", request, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Exists - check whether a treasure was planted
func (c *Client) Exists(key keys.TreasurePublicKey) (bool, error) {
	var reply treasures.ExistsReply
	err := c.call("Treasure.Exists", &treasures.KeyArguments{TreasurePublicKey: key.String()}, &reply)
	if nil != err {
		return false, err
	}
	return reply.TreasureExists, nil
}

// Info - summary of a planted treasure
func (c *Client) Info(key keys.TreasurePublicKey) (*treasure.Info, error) {
	var reply treasure.Info
	err := c.call("Treasure.Info", &treasures.KeyArguments{TreasurePublicKey: key.String()}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Image - base64 image of a planted treasure
func (c *Client) Image(key keys.TreasurePublicKey) (string, error) {
	var reply treasures.ImageReply
	err := c.call("Treasure.Image", &treasures.KeyArguments{TreasurePublicKey: key.String()}, &reply)
	if nil != err {
		return "", err
	}
	return reply.Image, nil
}

// Recent - newest planted treasures first
func (c *Client) Recent(count int) ([]*treasure.Info, error) {
	var reply treasures.RecentReply
	err := c.call("Treasure.Recent", &treasures.RecentArguments{Count: count}, &reply)
	if nil != err {
		return nil, err
	}
	return reply.Treasures, nil
}
