// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/messagebus"
	"github.com/critterlabs/critterd/mode"
	"github.com/critterlabs/critterd/ownership"
	"github.com/critterlabs/critterd/rpc/ratelimit"
)

const (
	// MaximumOwnedCount - upper bound on records per owned query
	MaximumOwnedCount = 100

	rateLimitOwner = 200
	rateBurstOwner = 100
)

// Owner - type for the RPC
type Owner struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Ownership      ownership.Ownership
}

func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	own ownership.Ownership,
) *Owner {
	return &Owner{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Ownership:      own,
	}
}

// Owner transfer
// --------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Owner    account.Identifier `json:"owner"`
	ID       uint64             `json:"id,string"`
	NewOwner account.Identifier `json:"newOwner"`
}

// TransferReply - result of transfer RPC
type TransferReply struct {
	ID   uint64             `json:"id,string"`
	From account.Identifier `json:"from"`
	To   account.Identifier `json:"to"`
}

// Transfer - hand a critter over to another account
func (owner *Owner) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Transfer: %+v", arguments)

	if arguments.Owner.IsZero() || arguments.NewOwner.IsZero() {
		return fault.MissingParameters
	}

	if !owner.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	if arguments.Owner.IsTesting() != owner.IsTestingChain() {
		return fault.WrongNetworkForAccount
	}
	if arguments.NewOwner.IsTesting() != owner.IsTestingChain() {
		return fault.WrongNetworkForAccount
	}

	transferred, err := owner.Ownership.Transfer(arguments.Owner, arguments.ID, arguments.NewOwner)
	if nil != err {
		return err
	}

	messagebus.Bus.Broadcast.Send(transferred)

	reply.ID = transferred.ID
	reply.From = transferred.From
	reply.To = transferred.To

	return nil
}

// Owner critters
// --------------

// OwnedArguments - arguments for RPC
type OwnedArguments struct {
	Owner account.Identifier `json:"owner"`
	Start uint64             `json:"start,string"`
	Count int                `json:"count"`
}

// OwnedReply - result of owned RPC
type OwnedReply struct {
	Critters []uint64 `json:"critters"`
	Next     uint64   `json:"next,string"`
}

// Owned - list critters belonging to an account
func (owner *Owner) Owned(arguments *OwnedArguments, reply *OwnedReply) error {

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, MaximumOwnedCount); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Owned: %+v", arguments)

	ids, err := owner.Ownership.ListFor(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	log.Debugf("owned: %+v", ids)

	reply.Critters = ids

	// if no record was found then just return Next as zero
	// otherwise the next possible id
	if 0 == len(ids) {
		reply.Next = 0
	} else {
		reply.Next = ids[len(ids)-1] + 1
	}

	return nil
}
