// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/rpc/owner"
)

// OwnedData - data for an ownership request
type OwnedData struct {
	Owner account.Identifier
	Start uint64
	Count int
}

// GetOwned - obtain list of owned critters
func (client *Client) GetOwned(ownedConfig *OwnedData) (*owner.OwnedReply, error) {

	ownedArgs := owner.OwnedArguments{
		Owner: ownedConfig.Owner,
		Start: ownedConfig.Start,
		Count: ownedConfig.Count,
	}

	client.printJson("Owned Request", ownedArgs)

	reply := &owner.OwnedReply{}
	err := client.client.Call("Owner.Owned", ownedArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Owned Reply", reply)

	return reply, nil
}
