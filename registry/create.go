// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"math"

	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/critter"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/storage"
)

// Create - register a brand new critter owned by the caller
//
// the genome is drawn from the entropy source scoped to the caller
func (r *registryData) Create(caller account.Identifier) (*CreatedNotification, error) {

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	id, err := r.allocateID(trx)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	genome := critter.Genome(r.entropy.Random16(caller.Bytes()))

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

// next id from the allocation counter
//
// an absent counter cell means nothing was created yet and the first
// id is 1, at the representable maximum allocation fails rather than
// wrapping
func (r *registryData) allocateID(trx storage.Transaction) (uint64, error) {
	next, found := trx.GetN(r.counts, countKey)
	if !found {
		return 1, nil
	}
	if math.MaxUint64 == next {
		return 0, fault.CountOverflow
	}
	return next, nil
}

// stage the genome record and advance the allocation counter
func (r *registryData) register(trx storage.Transaction, id uint64, genome critter.Genome) {
	trx.Put(r.critters, idKey(id), genome.Bytes())
	trx.PutN(r.counts, countKey, id+1)
}
