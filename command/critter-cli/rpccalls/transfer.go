// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/rpc/owner"
)

// TransferData - data for a transfer request
type TransferData struct {
	Owner    account.Identifier
	ID       uint64
	NewOwner account.Identifier
}

// Transfer - give a critter away
func (client *Client) Transfer(transferConfig *TransferData) (*owner.TransferReply, error) {

	transferArgs := owner.TransferArguments{
		Owner:    transferConfig.Owner,
		ID:       transferConfig.ID,
		NewOwner: transferConfig.NewOwner,
	}

	client.printJson("Transfer Request", transferArgs)

	reply := &owner.TransferReply{}
	err := client.client.Call("Owner.Transfer", transferArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return reply, nil
}
