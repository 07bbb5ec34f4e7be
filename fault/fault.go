// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConflictError GenericError
type DecodingError GenericError
type InvalidError GenericError
type LedgerError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RemoteError GenericError
type VerificationError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised         = InvalidError("already initialised")
	BlobUploadFailed           = RemoteError("blob upload failed")
	CannotDecodeSignature      = DecodingError("cannot decode signature")
	CertificateFileExists      = InvalidError("certificate file already exists")
	CertificateMismatch        = VerificationError("certificate fingerprint mismatch")
	ChecksumMismatch           = DecodingError("checksum mismatch")
	ClaimURLPrefixMismatch     = DecodingError("claim url prefix mismatch")
	ConfigurationFileNotFound  = NotFoundError("configuration file not found")
	ConfigurationNotTable      = InvalidError("configuration must return a table")
	CorruptRecord              = ProcessError("corrupt record")
	DatabaseIsNotSet           = InvalidError("database handle is nil")
	InvalidAccountSignature    = VerificationError("invalid account signature")
	InvalidBlobBackend         = InvalidError("invalid blob backend")
	InvalidCount               = InvalidError("invalid count")
	InvalidEncodingVariant     = DecodingError("invalid encoding variant")
	InvalidFingerprint         = DecodingError("invalid certificate fingerprint")
	InvalidImage               = InvalidError("invalid image")
	InvalidKeyEncoding         = DecodingError("invalid key encoding")
	InvalidKeyLength           = DecodingError("invalid key length")
	InvalidLedgerURL           = InvalidError("invalid ledger url")
	InvalidRequest             = InvalidError("invalid request")
	InvalidSignatureLength     = DecodingError("invalid signature length")
	InvalidStatus              = InvalidError("invalid status")
	InvalidStructPointer       = InvalidError("invalid struct pointer")
	InvalidTransaction         = LedgerError("invalid transaction")
	InvalidTransactionTag      = LedgerError("invalid transaction tag")
	InvalidTreasureHash        = InvalidError("invalid treasure hash")
	InvalidTreasureSignature   = VerificationError("invalid treasure signature")
	KeyFileExists              = InvalidError("private key file already exists")
	LedgerAlreadyClaimed       = LedgerError("treasure already claimed on ledger")
	LedgerAlreadyPlanted       = LedgerError("treasure already planted on ledger")
	LedgerRequestFailed        = RemoteError("ledger request failed")
	LedgerUnavailable          = RemoteError("ledger unavailable")
	MissingCertificate         = InvalidError("missing certificate")
	MissingParameters          = InvalidError("missing parameters")
	NotAvailableInReadOnlyMode = InvalidError("not available in read-only mode")
	RateLimiting               = RemoteError("rate limiting")
	TransactionHasTrailingData = LedgerError("transaction has trailing data")
	TreasureAlreadyClaimed     = ConflictError("treasure already claimed")
	TreasureAlreadyPlanted     = ConflictError("treasure already planted")
	TreasureNotFound           = NotFoundError("treasure not found")
	TreasureNotPlanted         = LedgerError("treasure not planted")
	WrongNamespace             = DecodingError("wrong key namespace")
)

// errors that can cross an RPC boundary as plain text
var byMessage = map[string]error{}

func init() {
	for _, e := range []error{
		CannotDecodeSignature, ChecksumMismatch, InvalidAccountSignature,
		InvalidCount, InvalidEncodingVariant, InvalidImage, InvalidKeyEncoding,
		InvalidKeyLength, InvalidRequest, InvalidSignatureLength,
		InvalidTransaction, InvalidTransactionTag, InvalidTreasureHash,
		InvalidTreasureSignature, LedgerAlreadyClaimed, LedgerAlreadyPlanted,
		MissingParameters, NotAvailableInReadOnlyMode, RateLimiting,
		TransactionHasTrailingData, TreasureAlreadyClaimed,
		TreasureAlreadyPlanted, TreasureNotFound, TreasureNotPlanted,
		WrongNamespace,
	} {
		byMessage[e.Error()] = e
	}
}

// Lookup - convert an error message received from a remote server
// back to the matching error instance
//
// second parameter is false if the message is not a known error
func Lookup(message string) (error, bool) {
	e, ok := byMessage[message]
	return e, ok
}

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConflictError) Error() string     { return string(e) }
func (e DecodingError) Error() string     { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e LedgerError) Error() string       { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e RemoteError) Error() string       { return string(e) }
func (e VerificationError) Error() string { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrConflict(e error) bool     { var t ConflictError; return errors.As(e, &t) }
func IsErrDecoding(e error) bool     { var t DecodingError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool      { var t InvalidError; return errors.As(e, &t) }
func IsErrLedger(e error) bool       { var t LedgerError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool     { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool      { var t ProcessError; return errors.As(e, &t) }
func IsErrRemote(e error) bool       { var t RemoteError; return errors.As(e, &t) }
func IsErrVerification(e error) bool { var t VerificationError; return errors.As(e, &t) }

// IsRequestRejection - true for the classes that reject an inbound
// request and must never be retried
func IsRequestRejection(e error) bool {
	return IsErrDecoding(e) || IsErrVerification(e) || IsErrConflict(e) || IsErrInvalid(e)
}

// Class - short name of the class of an error for logs and metrics
func Class(e error) string {
	switch {
	case nil == e:
		return "none"
	case IsErrConflict(e):
		return "conflict"
	case IsErrDecoding(e):
		return "decoding"
	case IsErrInvalid(e):
		return "invalid"
	case IsErrLedger(e):
		return "ledger"
	case IsErrNotFound(e):
		return "not-found"
	case IsErrProcess(e):
		return "process"
	case IsErrRemote(e):
		return "remote"
	case IsErrVerification(e):
		return "verification"
	default:
		return "other"
	}
}
