// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/funds"
	"github.com/critterlabs/critterd/rpc/balance"
	"github.com/critterlabs/critterd/rpc/fixtures"
	"github.com/critterlabs/critterd/rpc/mocks"
)

func TestFundsBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledger := mocks.NewMockLedger(ctl)

	f := balance.New(logger.New(fixtures.LogCategory), ledger)

	acc := fixtures.Account(0x11)

	ledger.EXPECT().Balance(acc).Return(funds.Balance{
		Free:     1000,
		Reserved: 200,
	}).Times(1)

	arg := balance.BalanceArguments{Owner: acc}
	var reply balance.BalanceReply
	err := f.Balance(&arg, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(1000), reply.Free, "wrong free")
	assert.Equal(t, uint64(200), reply.Reserved, "wrong reserved")
}

func TestFundsBalanceWhenZeroOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := balance.New(logger.New(fixtures.LogCategory), mocks.NewMockLedger(ctl))

	arg := balance.BalanceArguments{}
	var reply balance.BalanceReply
	err := f.Balance(&arg, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}
