// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the critter registry
//
// holds every critter genome keyed by id together with the allocation
// counter behind new ids, creation and breeding write the genome, the
// counter and the ownership records in one transaction so a critter
// without an owner can never be observed
package registry

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/critter"
	"github.com/critterlabs/critterd/entropy"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/ownership"
	"github.com/critterlabs/critterd/storage"
)

// the allocation counter lives under one fixed key in the counts pool
var countKey = []byte("critters")

// Registry - the critter registry
type Registry interface {
	Create(caller account.Identifier) (*CreatedNotification, error)
	Breed(caller account.Identifier, parentA uint64, parentB uint64) (*CreatedNotification, error)
	Get(id uint64) (critter.Genome, error)
	Count() uint64
}

type registryData struct {
	critters *storage.PoolHandle
	counts   *storage.PoolHandle
	owners   ownership.Ownership
	entropy  entropy.Source
}

// CreatedNotification - issued when a new critter is registered
//
// breeding issues the same notification for the child
type CreatedNotification struct {
	ID     uint64             `json:"id,string"`
	Owner  account.Identifier `json:"owner"`
	Genome critter.Genome     `json:"genome"`
}

// Command - notification name for broadcasting
func (CreatedNotification) Command() string {
	return "created"
}

// New - create the registry over the critters and counts pools
func New(critters *storage.PoolHandle, counts *storage.PoolHandle, owners ownership.Ownership, source entropy.Source) Registry {
	return &registryData{
		critters: critters,
		counts:   counts,
		owners:   owners,
		entropy:  source,
	}
}

// Get - committed genome of a critter
func (r *registryData) Get(id uint64) (critter.Genome, error) {
	buffer := r.critters.Get(idKey(id))
	if nil == buffer {
		return critter.Genome{}, fault.InvalidIndex
	}
	return decodeGenome(id, buffer), nil
}

// Count - number of critters ever created
//
// the counter cell holds the next id to assign, one past the highest
// assigned id, so an absent cell reads as zero
func (r *registryData) Count() uint64 {
	next, found := r.counts.GetN(countKey)
	if !found {
		return 0
	}
	return next - 1
}

func idKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func decodeGenome(id uint64, buffer []byte) critter.Genome {
	genome, err := critter.GenomeFromBytes(buffer)
	if nil != err {
		logger.Criticalf("registry: corrupt genome record for critter: %d: %x", id, buffer)
		logger.Panic("registry: critters pool is corrupt")
	}
	return genome
}
