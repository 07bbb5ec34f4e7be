// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys_test

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geonft/geonftd/fault"
	"github.com/geonft/geonftd/keys"
)

var (
	accountSeed  = bytes.Repeat([]byte{0x11}, keys.SeedSize)
	treasureSeed = bytes.Repeat([]byte{0x22}, keys.SeedSize)
)

func TestAccountKeyRoundTrip(t *testing.T) {
	secret, err := keys.GenerateAccountKey(rand.Reader)
	assert.Nil(t, err, "generate error")

	s := secret.String()
	assert.True(t, strings.HasPrefix(s, "gas1"), "wrong prefix: %s", s)

	decoded, err := keys.DecodeAccountSecretKey(s)
	assert.Nil(t, err, "decode secret error")
	assert.Equal(t, secret.Seed(), decoded.Seed(), "seed mismatch")
	assert.Equal(t, secret.PublicKey(), decoded.PublicKey(), "public key mismatch")

	p := secret.PublicKey().String()
	assert.True(t, strings.HasPrefix(p, "gap1"), "wrong prefix: %s", p)

	public, err := keys.DecodeAccountPublicKey(p)
	assert.Nil(t, err, "decode public error")
	assert.Equal(t, secret.PublicKey(), public, "public key mismatch")
}

func TestTreasureKeyRoundTrip(t *testing.T) {
	secret, err := keys.GenerateTreasureKey(rand.Reader)
	assert.Nil(t, err, "generate error")

	s := secret.String()
	assert.True(t, strings.HasPrefix(s, "gts1"), "wrong prefix: %s", s)

	decoded, err := keys.DecodeTreasureSecretKey(s)
	assert.Nil(t, err, "decode secret error")
	assert.Equal(t, secret.Seed(), decoded.Seed(), "seed mismatch")

	p := secret.PublicKey().String()
	assert.True(t, strings.HasPrefix(p, "gtp1"), "wrong prefix: %s", p)

	public, err := keys.DecodeTreasurePublicKey(p)
	assert.Nil(t, err, "decode public error")
	assert.Equal(t, secret.PublicKey(), public, "public key mismatch")
}

func TestDeterministicSeed(t *testing.T) {
	a1, err := keys.AccountSecretKeyFromSeed(accountSeed)
	assert.Nil(t, err, "seed error")
	a2, err := keys.AccountSecretKeyFromSeed(accountSeed)
	assert.Nil(t, err, "seed error")
	assert.Equal(t, a1.String(), a2.String(), "same seed gives different keys")

	_, err = keys.AccountSecretKeyFromSeed(accountSeed[1:])
	assert.Equal(t, fault.InvalidKeyLength, err, "short seed accepted")

	_, err = keys.TreasureSecretKeyFromSeed(nil)
	assert.Equal(t, fault.InvalidKeyLength, err, "empty seed accepted")
}

func TestWrongNamespace(t *testing.T) {
	account, _ := keys.AccountSecretKeyFromSeed(accountSeed)
	treasure, _ := keys.TreasureSecretKeyFromSeed(treasureSeed)

	_, err := keys.DecodeTreasurePublicKey(account.PublicKey().String())
	assert.Equal(t, fault.WrongNamespace, err, "account public decoded as treasure public")

	_, err = keys.DecodeAccountPublicKey(treasure.PublicKey().String())
	assert.Equal(t, fault.WrongNamespace, err, "treasure public decoded as account public")

	_, err = keys.DecodeAccountSecretKey(account.PublicKey().String())
	assert.Equal(t, fault.WrongNamespace, err, "account public decoded as account secret")

	_, err = keys.DecodeTreasureSecretKey(account.String())
	assert.Equal(t, fault.WrongNamespace, err, "account secret decoded as treasure secret")

	_, err = keys.DecodeAccountPublicKey(treasure.String())
	assert.True(t, fault.IsErrDecoding(err), "treasure secret decoded as account public")
}

func TestBadChecksum(t *testing.T) {
	account, _ := keys.AccountSecretKeyFromSeed(accountSeed)
	s := []byte(account.PublicKey().String())

	// swap the final checksum character for a different valid one
	last := len(s) - 1
	if 'q' == s[last] {
		s[last] = 'p'
	} else {
		s[last] = 'q'
	}

	_, err := keys.DecodeAccountPublicKey(string(s))
	assert.Equal(t, fault.ChecksumMismatch, err, "corrupt key accepted")
}

func TestGarbage(t *testing.T) {
	for i, s := range []string{"", "gap", "gap1", "not a key at all", "gap1!!!!!!!!"} {
		_, err := keys.DecodeAccountPublicKey(s)
		assert.True(t, fault.IsErrDecoding(err), "%d: %q accepted", i, s)
	}
}

func TestJSON(t *testing.T) {
	account, _ := keys.AccountSecretKeyFromSeed(accountSeed)
	treasure, _ := keys.TreasureSecretKeyFromSeed(treasureSeed)

	type item struct {
		Account  keys.AccountPublicKey  `json:"account"`
		Treasure keys.TreasurePublicKey `json:"treasure"`
	}

	in := item{Account: account.PublicKey(), Treasure: treasure.PublicKey()}
	b, err := json.Marshal(in)
	assert.Nil(t, err, "marshal error")

	var out item
	err = json.Unmarshal(b, &out)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, in, out, "round trip mismatch")

	swapped := strings.Replace(string(b), account.PublicKey().String(), treasure.PublicKey().String(), 1)
	err = json.Unmarshal([]byte(swapped), &out)
	assert.NotNil(t, err, "wrong namespace accepted in JSON")
}

func TestClaimURL(t *testing.T) {
	treasure, _ := keys.TreasureSecretKeyFromSeed(treasureSeed)

	url := treasure.ClaimURL(keys.DefaultClaimURLPrefix)
	assert.Equal(t, keys.DefaultClaimURLPrefix+treasure.String(), url, "claim url")

	decoded, err := keys.TreasureSecretKeyFromClaimURL(url, keys.DefaultClaimURLPrefix)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, treasure.PublicKey(), decoded.PublicKey(), "key mismatch")

	_, err = keys.TreasureSecretKeyFromClaimURL(url, "https://example.com/claim?key=")
	assert.Equal(t, fault.ClaimURLPrefixMismatch, err, "wrong prefix accepted")
}

func TestSignatureText(t *testing.T) {
	account, _ := keys.AccountSecretKeyFromSeed(accountSeed)
	sig := account.Sign([]byte("message"))
	assert.Equal(t, keys.SignatureSize, len(sig), "signature size")

	decoded, err := keys.DecodeSignature(sig.String())
	assert.Nil(t, err, "decode error")
	assert.Equal(t, sig, decoded, "signature mismatch")

	_, err = keys.DecodeSignature("!!!not base64")
	assert.Equal(t, fault.CannotDecodeSignature, err, "garbage accepted")

	_, err = keys.DecodeSignature("AAAA")
	assert.Equal(t, fault.InvalidSignatureLength, err, "short signature accepted")
}

func TestVerify(t *testing.T) {
	account, _ := keys.AccountSecretKeyFromSeed(accountSeed)
	message := []byte("message")
	sig := account.Sign(message)

	assert.True(t, account.PublicKey().Verify(message, sig), "valid signature rejected")
	assert.False(t, account.PublicKey().Verify([]byte("massage"), sig), "wrong message accepted")
	assert.False(t, account.PublicKey().Verify(message, sig[:10]), "short signature accepted")

	for i := 0; i < len(sig); i += 1 {
		flipped := append(keys.Signature{}, sig...)
		flipped[i] ^= 0x01
		assert.False(t, account.PublicKey().Verify(message, flipped), "bit flip at %d accepted", i)
	}
}

func TestAbbreviate(t *testing.T) {
	assert.Equal(t, "short…", keys.Abbreviate("short"), "short key")
	assert.Equal(t, "gap1abcdefghij…", keys.Abbreviate("gap1abcdefghijklmnop"), "abbreviation")
}
