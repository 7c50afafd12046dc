// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/constants"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/ownership"
	"github.com/critterlabs/critterd/storage"
)

// Buy - purchase a listed critter at its listed price
//
// the fixed ownership deposit is reserved from the buyer and the
// seller's deposit is released, then the price moves from the buyer
// to the seller with the paying account kept alive, then the listing
// goes and the critter changes hands
//
// one transaction covers all of it, a failure at any point leaves
// every balance, the listing and the ownership as they were
func (m *marketData) Buy(caller account.Identifier, id uint64) (*ownership.TransferredNotification, error) {

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	seller, err := m.owners.CurrentOwner(trx, id)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	if caller == seller {
		trx.Abort()
		return nil, fault.AlreadyOwned
	}

	price, found := trx.GetN(m.listings, idKey(id))
	if !found {
		trx.Abort()
		return nil, fault.NotForSale
	}

	// collateral swaps first: the deposit follows the critter to its
	// next owner, the release is clamped for a seller who never held
	// a reservation
	err = m.ledger.Reserve(trx, caller, constants.OwnershipDeposit)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	m.ledger.Unreserve(trx, seller, constants.OwnershipDeposit)

	err = m.ledger.Transfer(trx, caller, seller, price, true)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	trx.Delete(m.listings, idKey(id))
	m.owners.Assign(trx, id, caller)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	return &ownership.TransferredNotification{
		ID:   id,
		From: seller,
		To:   caller,
	}, nil
}
