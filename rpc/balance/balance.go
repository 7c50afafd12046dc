// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/funds"
	"github.com/critterlabs/critterd/rpc/ratelimit"
)

const (
	rateLimitBalance = 200
	rateBurstBalance = 100
)

// Funds - type for the RPC
type Funds struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  funds.Ledger
}

func New(log *logger.L, ledger funds.Ledger) *Funds {
	return &Funds{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBalance, rateBurstBalance),
		Ledger:  ledger,
	}
}

// Funds balance
// -------------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner account.Identifier `json:"owner"`
}

// BalanceReply - result of balance RPC
type BalanceReply struct {
	Free     uint64 `json:"free,string"`
	Reserved uint64 `json:"reserved,string"`
}

// Balance - free and reserved funds of an account
func (funds *Funds) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(funds.Limiter); nil != err {
		return err
	}

	log := funds.Log
	log.Infof("Funds.Balance: %+v", arguments)

	if arguments.Owner.IsZero() {
		return fault.MissingParameters
	}

	b := funds.Ledger.Balance(arguments.Owner)

	reply.Free = b.Free
	reply.Reserved = b.Reserved

	return nil
}
