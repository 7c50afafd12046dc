// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the ownership ledger
//
// maps each critter to the single account holding it and keeps a per
// owner index so holdings can be listed in id order
//
// pool layout:
//   owners:  critter id (8 byte big endian)      → account identifier bytes
//   index:   account bytes ‖ critter id          → nil
//
// both records are maintained together, an owner index entry exists
// iff the matching owner record points back at the same account
package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/storage"
)

const idKeyLength = 8

// Ownership - the ownership ledger
type Ownership interface {
	OwnerOf(id uint64) (account.Identifier, error)
	CurrentOwner(trx storage.Transaction, id uint64) (account.Identifier, error)
	Assign(trx storage.Transaction, id uint64, newOwner account.Identifier)
	Transfer(caller account.Identifier, id uint64, to account.Identifier) (*TransferredNotification, error)
	ListFor(owner account.Identifier, start uint64, count int) ([]uint64, error)
}

type ownershipData struct {
	owners *storage.PoolHandle
	index  *storage.PoolHandle
}

// TransferredNotification - issued when a critter changes hands
//
// a successful buy also issues this with the seller as From
type TransferredNotification struct {
	ID   uint64             `json:"id,string"`
	From account.Identifier `json:"from"`
	To   account.Identifier `json:"to"`
}

// Command - notification name for broadcasting
func (TransferredNotification) Command() string {
	return "transferred"
}

// New - create the ledger over the owners and owner index pools
func New(owners *storage.PoolHandle, index *storage.PoolHandle) Ownership {
	return &ownershipData{
		owners: owners,
		index:  index,
	}
}

// OwnerOf - committed owner of a critter
//
// an absent record means the critter does not exist
func (o *ownershipData) OwnerOf(id uint64) (account.Identifier, error) {
	buffer := o.owners.Get(idKey(id))
	if nil == buffer {
		return account.Identifier{}, fault.InvalidIndex
	}
	return decodeOwner(id, buffer), nil
}

// CurrentOwner - owner of a critter as seen inside a transaction
func (o *ownershipData) CurrentOwner(trx storage.Transaction, id uint64) (account.Identifier, error) {
	buffer := trx.Get(o.owners, idKey(id))
	if nil == buffer {
		return account.Identifier{}, fault.InvalidIndex
	}
	return decodeOwner(id, buffer), nil
}

// Assign - unconditional ownership overwrite
//
// stages the owner record and both sides of the owner index, the
// caller must already have verified authorization
func (o *ownershipData) Assign(trx storage.Transaction, id uint64, newOwner account.Identifier) {
	key := idKey(id)

	previous := trx.Get(o.owners, key)
	if nil != previous {
		trx.Delete(o.index, indexKey(decodeOwner(id, previous), id))
	}

	trx.Put(o.owners, key, newOwner.Bytes())
	trx.Put(o.index, indexKey(newOwner, id), []byte{})
}

// big endian so the owner index lists holdings in id order
func idKey(id uint64) []byte {
	key := make([]byte, idKeyLength)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func indexKey(owner account.Identifier, id uint64) []byte {
	return append(owner.Bytes(), idKey(id)...)
}

func decodeOwner(id uint64, buffer []byte) account.Identifier {
	owner, err := account.AccountFromBytes(buffer)
	if nil != err {
		logger.Criticalf("ownership: corrupt owner record for critter: %d: %x", id, buffer)
		logger.Panic("ownership: owners pool is corrupt")
	}
	return owner
}
