// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/rpc/critters"
)

// CreateData - data for a create request
type CreateData struct {
	Owner account.Identifier
}

// Create - register a brand new critter for the owner
func (client *Client) Create(createConfig *CreateData) (*critters.CreateReply, error) {

	createArgs := critters.CreateArguments{
		Owner: createConfig.Owner,
	}

	client.printJson("Create Request", createArgs)

	reply := &critters.CreateReply{}
	err := client.client.Call("Critters.Create", createArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Create Reply", reply)

	return reply, nil
}
