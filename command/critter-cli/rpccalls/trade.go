// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/rpc/trade"
)

// SellData - data for a sell request
//
// a nil Price cancels an existing listing
type SellData struct {
	Owner account.Identifier
	ID    uint64
	Price *uint64
}

// Sell - list a critter on the market or cancel its listing
func (client *Client) Sell(sellConfig *SellData) (*trade.SellReply, error) {

	sellArgs := trade.SellArguments{
		Owner: sellConfig.Owner,
		ID:    sellConfig.ID,
		Price: sellConfig.Price,
	}

	client.printJson("Sell Request", sellArgs)

	reply := &trade.SellReply{}
	err := client.client.Call("Trade.Sell", sellArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Sell Reply", reply)

	return reply, nil
}

// BuyData - data for a buy request
type BuyData struct {
	Buyer account.Identifier
	ID    uint64
}

// Buy - purchase a listed critter at its quoted price
func (client *Client) Buy(buyConfig *BuyData) (*trade.BuyReply, error) {

	buyArgs := trade.BuyArguments{
		Buyer: buyConfig.Buyer,
		ID:    buyConfig.ID,
	}

	client.printJson("Buy Request", buyArgs)

	reply := &trade.BuyReply{}
	err := client.client.Call("Trade.Buy", buyArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Buy Reply", reply)

	return reply, nil
}

// GetQuote - current asking price for one critter
func (client *Client) GetQuote(id uint64) (*trade.QuoteReply, error) {

	quoteArgs := trade.QuoteArguments{
		ID: id,
	}

	client.printJson("Quote Request", quoteArgs)

	reply := &trade.QuoteReply{}
	err := client.client.Call("Trade.Quote", quoteArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Quote Reply", reply)

	return reply, nil
}

// ListingsData - data for a market listings request
type ListingsData struct {
	Start uint64
	Count int
}

// GetListings - page through the active market listings
func (client *Client) GetListings(listingsConfig *ListingsData) (*trade.ListingsReply, error) {

	listingsArgs := trade.ListingsArguments{
		Start: listingsConfig.Start,
		Count: listingsConfig.Count,
	}

	client.printJson("Listings Request", listingsArgs)

	reply := &trade.ListingsReply{}
	err := client.client.Call("Trade.Listings", listingsArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Listings Reply", reply)

	return reply, nil
}
