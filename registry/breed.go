// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/critter"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/storage"
)

// Breed - register a child critter mixed from two parents
//
// the parents must be distinct and both owned by the caller, the
// child genome takes each bit from parent a where the entropy
// selector bit is set and from parent b where it is clear
//
// every check runs before any write, a rejected breed leaves the
// registry, the counter and the ownership ledger untouched
func (r *registryData) Breed(caller account.Identifier, parentA uint64, parentB uint64) (*CreatedNotification, error) {

	if parentA == parentB {
		return nil, fault.SameParentIndex
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	genomeA, err := r.genome(trx, parentA)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	genomeB, err := r.genome(trx, parentB)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	ownerA, err := r.owners.CurrentOwner(trx, parentA)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	ownerB, err := r.owners.CurrentOwner(trx, parentB)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	if caller != ownerA || caller != ownerB {
		trx.Abort()
		return nil, fault.NotOwner
	}

	selector := critter.Genome(r.entropy.Random16(caller.Bytes()))
	genome := critter.Crossbreed(selector, genomeA, genomeB)

	id, err := r.allocateID(trx)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	r.register(trx, id, genome)
	r.owners.Assign(trx, id, caller)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	return &CreatedNotification{
		ID:     id,
		Owner:  caller,
		Genome: genome,
	}, nil
}

// staged read of one genome
func (r *registryData) genome(trx storage.Transaction, id uint64) (critter.Genome, error) {
	buffer := trx.Get(r.critters, idKey(id))
	if nil == buffer {
		return critter.Genome{}, fault.InvalidIndex
	}
	return decodeGenome(id, buffer), nil
}
