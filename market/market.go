// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - the critter marketplace
//
// a listing is a price record keyed by critter id, buying pays the
// listed price, shifts the ownership collateral between the accounts
// and hands the critter over in one transaction
//
// pool layout:
//   listings:  critter id (8 byte big endian) → price (8 byte big endian)
package market

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/funds"
	"github.com/critterlabs/critterd/messagebus"
	"github.com/critterlabs/critterd/ownership"
	"github.com/critterlabs/critterd/storage"
)

const idKeyLength = 8

// Market - the marketplace
type Market interface {
	Sell(caller account.Identifier, id uint64, price *uint64) (messagebus.Notification, error)
	Buy(caller account.Identifier, id uint64) (*ownership.TransferredNotification, error)
	Quote(id uint64) (uint64, bool)
	Listings(start uint64, count int) ([]Listing, error)
}

type marketData struct {
	listings *storage.PoolHandle
	owners   ownership.Ownership
	ledger   funds.Ledger
}

// Listing - one critter offered for sale
type Listing struct {
	ID    uint64 `json:"id,string"`
	Price uint64 `json:"price,string"`
}

// ListedNotification - issued when an owner puts a critter up for sale
type ListedNotification struct {
	ID     uint64             `json:"id,string"`
	Seller account.Identifier `json:"seller"`
	Price  uint64             `json:"price,string"`
}

// Command - notification name for broadcasting
func (ListedNotification) Command() string {
	return "listed"
}

// DelistedNotification - issued when an owner withdraws a sale
type DelistedNotification struct {
	ID     uint64             `json:"id,string"`
	Seller account.Identifier `json:"seller"`
}

// Command - notification name for broadcasting
func (DelistedNotification) Command() string {
	return "delisted"
}

// New - create the marketplace over the listings pool
func New(listings *storage.PoolHandle, owners ownership.Ownership, ledger funds.Ledger) Market {
	return &marketData{
		listings: listings,
		owners:   owners,
		ledger:   ledger,
	}
}

// Quote - committed listing price of a critter
//
// the second result is false when the critter is not for sale
func (m *marketData) Quote(id uint64) (uint64, bool) {
	return m.listings.GetN(idKey(id))
}

// Listings - committed listings in ascending id order
//
// starts from the given id, up to count of them
func (m *marketData) Listings(start uint64, count int) ([]Listing, error) {

	cursor := m.listings.NewFetchCursor().Seek(idKey(start))

	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	result := make([]Listing, 0, len(items))
	for _, item := range items {
		if idKeyLength != len(item.Key) || 8 != len(item.Value) {
			logger.Panicf("market: corrupt listing record: %x: %x", item.Key, item.Value)
		}
		result = append(result, Listing{
			ID:    binary.BigEndian.Uint64(item.Key),
			Price: binary.BigEndian.Uint64(item.Value),
		})
	}

	return result, nil
}

func idKey(id uint64) []byte {
	key := make([]byte, idKeyLength)
	binary.BigEndian.PutUint64(key, id)
	return key
}
