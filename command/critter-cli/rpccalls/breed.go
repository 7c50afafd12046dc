// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/rpc/critters"
)

// BreedData - data for a breed request
type BreedData struct {
	Owner   account.Identifier
	ParentA uint64
	ParentB uint64
}

// Breed - derive a new critter from two owned parents
func (client *Client) Breed(breedConfig *BreedData) (*critters.BreedReply, error) {

	breedArgs := critters.BreedArguments{
		Owner:   breedConfig.Owner,
		ParentA: breedConfig.ParentA,
		ParentB: breedConfig.ParentB,
	}

	client.printJson("Breed Request", breedArgs)

	reply := &critters.BreedReply{}
	err := client.client.Call("Critters.Breed", breedArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Breed Reply", reply)

	return reply, nil
}
