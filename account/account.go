// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - account identifiers
//
// An account identifier is the opaque, already authenticated identity
// of the originator of an operation. The daemon holds no key material;
// the identifier arrives with each request and is carried through the
// ownership, funds and market records.
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/critterlabs/critterd/fault"
)

// miscellaneous constants
const (
	// DigestLength - number of bytes in the identifier digest
	DigestLength = 32

	variantLength  = 1
	checksumLength = 4

	// bits in the variant byte starting from LSB
	identifierCode = 0x01
	testCode       = 0x02
)

// Identifier - the authenticated originator of an operation
type Identifier struct {
	Test   bool
	Digest [DigestLength]byte
}

// AccountFromBase58 - convert a Base58 encoded string to an identifier
func AccountFromBase58(accountBase58Encoded string) (Identifier, error) {

	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err {
		return Identifier{}, fault.CannotDecodeAccount
	}
	if variantLength+DigestLength+checksumLength != len(accountDecoded) {
		return Identifier{}, fault.InvalidAccountLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return Identifier{}, fault.ChecksumMismatch
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - convert the stored byte form to an identifier
func AccountFromBytes(accountBytes []byte) (Identifier, error) {

	if variantLength+DigestLength != len(accountBytes) {
		return Identifier{}, fault.InvalidAccountLength
	}

	keyVariant := accountBytes[0]
	if identifierCode != keyVariant&identifierCode {
		return Identifier{}, fault.NotAccountIdentifier
	}

	id := Identifier{
		Test: 0 != keyVariant&testCode,
	}
	copy(id.Digest[:], accountBytes[variantLength:])
	return id, nil
}

// Bytes - variant byte followed by the digest bytes
//
// this is the form used for all storage keys and values
func (id Identifier) Bytes() []byte {
	keyVariant := byte(identifierCode)
	if id.Test {
		keyVariant |= testCode
	}
	return append([]byte{keyVariant}, id.Digest[:]...)
}

// String - base58 encoding with a sha3-256 checksum appended
func (id Identifier) String() string {
	buffer := id.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an identifier to its Base58 JSON form
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert from the Base58 JSON form
func (id *Identifier) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*id = a
	return nil
}

// IsTesting - whether the identifier belongs to a test network
func (id Identifier) IsTesting() bool {
	return id.Test
}

// IsZero - whether the identifier is unset
func (id Identifier) IsZero() bool {
	return [DigestLength]byte{} == id.Digest
}
