// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/critterlabs/critterd/rpc/critters"
)

// GetCritter - full record of one critter
func (client *Client) GetCritter(id uint64) (*critters.GetReply, error) {

	getArgs := critters.GetArguments{
		ID: id,
	}

	client.printJson("Get Request", getArgs)

	reply := &critters.GetReply{}
	err := client.client.Call("Critters.Get", getArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Get Reply", reply)

	return reply, nil
}

// GetCount - total number of registered critters
func (client *Client) GetCount() (*critters.CountReply, error) {

	countArgs := critters.CountArguments{}

	reply := &critters.CountReply{}
	err := client.client.Call("Critters.Count", countArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Count Reply", reply)

	return reply, nil
}
