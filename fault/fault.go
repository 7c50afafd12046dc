// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// ExistsError - or item already exists
	ExistsError GenericError
	// InvalidError - for some simple items
	InvalidError GenericError
	// LengthError - for fixed length item such as keys or genomes
	LengthError GenericError
	// NotFoundError - for items that should exist
	NotFoundError GenericError
	// ProcessError - for operations that fail
	ProcessError GenericError
	// RecordError - for response records with invalid structure
	RecordError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised        = ProcessError("already initialised")
	AlreadyOwned              = ExistsError("already owned")
	BalanceOverflow           = ProcessError("balance overflow")
	CannotDecodeAccount       = RecordError("cannot decode account")
	CertificateFileExists     = ExistsError("certificate file exists")
	ChecksumMismatch          = ProcessError("checksum mismatch")
	CountOverflow             = ProcessError("count overflow")
	DatabaseIsNotSet          = ProcessError("database is not set")
	InvalidAccountLength      = LengthError("invalid account length")
	InvalidChain              = InvalidError("invalid chain")
	InvalidCount              = InvalidError("invalid count")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidDnsTxtRecord       = InvalidError("invalid dns txt record")
	InvalidGenomeLength       = LengthError("invalid genome length")
	InvalidIPAddress          = InvalidError("invalid ip address")
	InvalidIndex              = NotFoundError("invalid index")
	InvalidPortNumber         = InvalidError("invalid port number")
	InvalidStructPointer      = InvalidError("invalid struct pointer")
	KeyFileExists             = ExistsError("key file exists")
	MissingParameters         = InvalidError("missing parameters")
	NotAccountIdentifier      = InvalidError("not account identifier")
	NotAvailableDuringStartup = ProcessError("not available during startup")
	NotEnoughBalance          = InvalidError("not enough balance")
	NotForSale                = NotFoundError("not for sale")
	NotInitialised            = ProcessError("not initialised")
	NotOwner                  = InvalidError("not owner")
	RateLimiting              = ProcessError("rate limiting")
	SameOwner                 = InvalidError("same owner")
	SameParentIndex           = InvalidError("same parent index")
	TransactionAlreadyInUse   = ProcessError("transaction already in use")
	TransactionIsNotInUse     = ProcessError("transaction is not in use")
	WouldKillAccount          = InvalidError("would kill account")
	WrongNetworkForAccount    = InvalidError("wrong network for account")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IsErrExists - determine if an error is in the exists class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if an error is in the invalid class
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine if an error is in the length class
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine if an error is in the not found class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if an error is in the process class
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - determine if an error is in the record class
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }
