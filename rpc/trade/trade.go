// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/market"
	"github.com/critterlabs/critterd/messagebus"
	"github.com/critterlabs/critterd/mode"
	"github.com/critterlabs/critterd/rpc/ratelimit"
)

const (
	// MaximumListingsCount - upper bound on records per listings query
	MaximumListingsCount = 100

	rateLimitTrade = 200
	rateBurstTrade = 100
)

// Trade - type for the RPC
type Trade struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Market         market.Market
}

func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	mkt market.Market,
) *Trade {
	return &Trade{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitTrade, rateBurstTrade),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Market:         mkt,
	}
}

// Trade sell
// ----------

// SellArguments - arguments for RPC
//
// a missing price withdraws the current listing
type SellArguments struct {
	Owner account.Identifier `json:"owner"`
	ID    uint64             `json:"id,string"`
	Price *uint64            `json:"price,string"`
}

// SellReply - result of sell RPC
type SellReply struct {
	ID     uint64 `json:"id,string"`
	Listed bool   `json:"listed"`
	Price  uint64 `json:"price,string"`
}

// Sell - list a critter for sale or withdraw its listing
func (trade *Trade) Sell(arguments *SellArguments, reply *SellReply) error {

	if err := ratelimit.Limit(trade.Limiter); nil != err {
		return err
	}

	log := trade.Log
	log.Infof("Trade.Sell: %+v", arguments)

	if arguments.Owner.IsZero() {
		return fault.MissingParameters
	}

	if !trade.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	if arguments.Owner.IsTesting() != trade.IsTestingChain() {
		return fault.WrongNetworkForAccount
	}

	notification, err := trade.Market.Sell(arguments.Owner, arguments.ID, arguments.Price)
	if nil != err {
		return err
	}

	messagebus.Bus.Broadcast.Send(notification)

	reply.ID = arguments.ID
	if nil != arguments.Price {
		reply.Listed = true
		reply.Price = *arguments.Price
	}

	return nil
}

// Trade buy
// ---------

// BuyArguments - arguments for RPC
type BuyArguments struct {
	Buyer account.Identifier `json:"buyer"`
	ID    uint64             `json:"id,string"`
}

// BuyReply - result of buy RPC
type BuyReply struct {
	ID   uint64             `json:"id,string"`
	From account.Identifier `json:"from"`
	To   account.Identifier `json:"to"`
}

// Buy - pay the listed price and take over a critter
func (trade *Trade) Buy(arguments *BuyArguments, reply *BuyReply) error {

	if err := ratelimit.Limit(trade.Limiter); nil != err {
		return err
	}

	log := trade.Log
	log.Infof("Trade.Buy: %+v", arguments)

	if arguments.Buyer.IsZero() {
		return fault.MissingParameters
	}

	if !trade.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	if arguments.Buyer.IsTesting() != trade.IsTestingChain() {
		return fault.WrongNetworkForAccount
	}

	transferred, err := trade.Market.Buy(arguments.Buyer, arguments.ID)
	if nil != err {
		return err
	}

	messagebus.Bus.Broadcast.Send(transferred)

	reply.ID = transferred.ID
	reply.From = transferred.From
	reply.To = transferred.To

	return nil
}

// Trade quote
// -----------

// QuoteArguments - arguments for RPC
type QuoteArguments struct {
	ID uint64 `json:"id,string"`
}

// QuoteReply - result of quote RPC
//
// price is only meaningful when listed is true
type QuoteReply struct {
	ID     uint64 `json:"id,string"`
	Listed bool   `json:"listed"`
	Price  uint64 `json:"price,string"`
}

// Quote - current asking price of a critter
func (trade *Trade) Quote(arguments *QuoteArguments, reply *QuoteReply) error {

	if err := ratelimit.Limit(trade.Limiter); nil != err {
		return err
	}

	log := trade.Log
	log.Infof("Trade.Quote: %+v", arguments)

	price, listed := trade.Market.Quote(arguments.ID)

	reply.ID = arguments.ID
	reply.Listed = listed
	reply.Price = price

	return nil
}

// Trade listings
// --------------

// ListingsArguments - arguments for RPC
type ListingsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListingsReply - result of listings RPC
type ListingsReply struct {
	Listings []market.Listing `json:"listings"`
	Next     uint64           `json:"next,string"`
}

// Listings - page through all critters currently for sale
func (trade *Trade) Listings(arguments *ListingsArguments, reply *ListingsReply) error {

	if err := ratelimit.LimitN(trade.Limiter, arguments.Count, MaximumListingsCount); nil != err {
		return err
	}

	log := trade.Log
	log.Infof("Trade.Listings: %+v", arguments)

	listings, err := trade.Market.Listings(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Listings = listings

	// if no record was found then just return Next as zero
	// otherwise the next possible id
	if 0 == len(listings) {
		reply.Next = 0
	} else {
		reply.Next = listings[len(listings)-1].ID + 1
	}

	return nil
}
