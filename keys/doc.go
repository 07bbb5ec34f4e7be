// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keys - account and treasure ed25519 keys
//
// every key role has its own bech32m human readable part so that a
// key of one role can never be decoded as a key of another role:
//
//	gas - account secret key (32 byte seed)
//	gap - account public key
//	gts - treasure secret key (32 byte seed)
//	gtp - treasure public key
//
// signatures are 64 bytes and are text encoded as standard base64
package keys
