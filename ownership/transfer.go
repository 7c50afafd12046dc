// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/storage"
)

// Transfer - hand a critter over to another account
//
// the caller must be the current owner and the recipient must be a
// different account, a transfer to the current owner is rejected
// rather than silently accepted
//
// a market listing on the critter is left in place and follows the
// critter to the recipient until explicitly cleared
func (o *ownershipData) Transfer(caller account.Identifier, id uint64, to account.Identifier) (*TransferredNotification, error) {

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	owner, err := o.CurrentOwner(trx, id)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	if caller != owner {
		trx.Abort()
		return nil, fault.NotOwner
	}
	if to == owner {
		trx.Abort()
		return nil, fault.SameOwner
	}

	o.Assign(trx, id, to)

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	return &TransferredNotification{
		ID:   id,
		From: owner,
		To:   to,
	}, nil
}
