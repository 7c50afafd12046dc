// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/messagebus"
	"github.com/critterlabs/critterd/storage"
)

// Sell - offer a critter for sale or withdraw the offer
//
// the caller must be the current owner, an unknown critter cannot be
// owned by anyone so it rejects as not owner as well
//
// the listing is overwritten unconditionally, a nil price clears it
// even when no listing exists
//
// returns a ListedNotification or a DelistedNotification
func (m *marketData) Sell(caller account.Identifier, id uint64, price *uint64) (messagebus.Notification, error) {

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	owner, err := m.owners.CurrentOwner(trx, id)
	if nil != err || caller != owner {
		trx.Abort()
		return nil, fault.NotOwner
	}

	var n messagebus.Notification
	if nil == price {
		trx.Delete(m.listings, idKey(id))
		n = DelistedNotification{
			ID:     id,
			Seller: caller,
		}
	} else {
		trx.PutN(m.listings, idKey(id), *price)
		n = ListedNotification{
			ID:     id,
			Seller: caller,
			Price:  *price,
		}
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	return n, nil
}
