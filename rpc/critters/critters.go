// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package critters

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/critter"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/market"
	"github.com/critterlabs/critterd/messagebus"
	"github.com/critterlabs/critterd/mode"
	"github.com/critterlabs/critterd/ownership"
	"github.com/critterlabs/critterd/registry"
	"github.com/critterlabs/critterd/rpc/ratelimit"
)

const (
	rateLimitCritters = 200
	rateBurstCritters = 100
)

// Critters - type for the RPC
type Critters struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Registry       registry.Registry
	Ownership      ownership.Ownership
	Market         market.Market
}

func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	reg registry.Registry,
	own ownership.Ownership,
	mkt market.Market,
) *Critters {
	return &Critters{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitCritters, rateBurstCritters),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Registry:       reg,
		Ownership:      own,
		Market:         mkt,
	}
}

// Critters create
// ---------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Owner account.Identifier `json:"owner"`
}

// CreateReply - result of create RPC
type CreateReply struct {
	ID     uint64         `json:"id,string"`
	Genome critter.Genome `json:"genome"`
}

// Create - register a new critter with a random genome
func (critters *Critters) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(critters.Limiter); nil != err {
		return err
	}

	log := critters.Log
	log.Infof("Critters.Create: %+v", arguments)

	if arguments.Owner.IsZero() {
		return fault.MissingParameters
	}

	if !critters.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	if arguments.Owner.IsTesting() != critters.IsTestingChain() {
		return fault.WrongNetworkForAccount
	}

	created, err := critters.Registry.Create(arguments.Owner)
	if nil != err {
		return err
	}

	messagebus.Bus.Broadcast.Send(created)

	reply.ID = created.ID
	reply.Genome = created.Genome

	return nil
}

// Critters breed
// --------------

// BreedArguments - arguments for RPC
type BreedArguments struct {
	Owner   account.Identifier `json:"owner"`
	ParentA uint64             `json:"parentA,string"`
	ParentB uint64             `json:"parentB,string"`
}

// BreedReply - result of breed RPC
type BreedReply struct {
	ID     uint64         `json:"id,string"`
	Genome critter.Genome `json:"genome"`
}

// Breed - register a child critter from two owned parents
func (critters *Critters) Breed(arguments *BreedArguments, reply *BreedReply) error {

	if err := ratelimit.Limit(critters.Limiter); nil != err {
		return err
	}

	log := critters.Log
	log.Infof("Critters.Breed: %+v", arguments)

	if arguments.Owner.IsZero() {
		return fault.MissingParameters
	}

	if !critters.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	if arguments.Owner.IsTesting() != critters.IsTestingChain() {
		return fault.WrongNetworkForAccount
	}

	created, err := critters.Registry.Breed(arguments.Owner, arguments.ParentA, arguments.ParentB)
	if nil != err {
		return err
	}

	messagebus.Bus.Broadcast.Send(created)

	reply.ID = created.ID
	reply.Genome = created.Genome

	return nil
}

// Critters get
// ------------

// GetArguments - arguments for RPC
type GetArguments struct {
	ID uint64 `json:"id,string"`
}

// GetReply - result of get RPC
type GetReply struct {
	ID     uint64             `json:"id,string"`
	Genome critter.Genome     `json:"genome"`
	Owner  account.Identifier `json:"owner"`
	Listed bool               `json:"listed"`
	Price  uint64             `json:"price,string"`
}

// Get - full record of one critter
//
// price is only meaningful when listed is true
func (critters *Critters) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(critters.Limiter); nil != err {
		return err
	}

	log := critters.Log
	log.Infof("Critters.Get: %+v", arguments)

	genome, err := critters.Registry.Get(arguments.ID)
	if nil != err {
		return err
	}

	owner, err := critters.Ownership.OwnerOf(arguments.ID)
	if nil != err {
		return err
	}

	price, listed := critters.Market.Quote(arguments.ID)

	reply.ID = arguments.ID
	reply.Genome = genome
	reply.Owner = owner
	reply.Listed = listed
	reply.Price = price

	return nil
}

// Critters count
// --------------

// CountArguments - empty arguments for count request
type CountArguments struct{}

// CountReply - result of count RPC
type CountReply struct {
	Count uint64 `json:"count"`
}

// Count - number of critters ever registered
func (critters *Critters) Count(_ *CountArguments, reply *CountReply) error {

	if err := ratelimit.Limit(critters.Limiter); nil != err {
		return err
	}

	reply.Count = critters.Registry.Count()

	return nil
}
