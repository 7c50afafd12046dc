// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/rpc/balance"
)

// BalanceData - data for a balance request
type BalanceData struct {
	Owner account.Identifier
}

// GetBalance - free and reserved funds of one account
func (client *Client) GetBalance(balanceConfig *BalanceData) (*balance.BalanceReply, error) {

	balanceArgs := balance.BalanceArguments{
		Owner: balanceConfig.Owner,
	}

	client.printJson("Balance Request", balanceArgs)

	reply := &balance.BalanceReply{}
	err := client.client.Call("Funds.Balance", balanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}
