// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/mode"
	"github.com/critterlabs/critterd/ownership"
	"github.com/critterlabs/critterd/rpc/fixtures"
	"github.com/critterlabs/critterd/rpc/mocks"
	"github.com/critterlabs/critterd/rpc/owner"
)

func testService(t *testing.T) (*owner.Owner, *mocks.MockOwnership, *gomock.Controller) {
	ctl := gomock.NewController(t)

	own := mocks.NewMockOwnership(ctl)

	o := owner.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		func() bool { return true },
		own,
	)
	return o, own, ctl
}

func TestOwnerTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	o, own, ctl := testService(t)
	defer ctl.Finish()

	from := fixtures.Account(0x11)
	to := fixtures.Account(0x22)

	own.EXPECT().Transfer(from, uint64(1), to).Return(&ownership.TransferredNotification{
		ID:   1,
		From: from,
		To:   to,
	}, nil).Times(1)

	arg := owner.TransferArguments{
		Owner:    from,
		ID:       1,
		NewOwner: to,
	}
	var reply owner.TransferReply
	err := o.Transfer(&arg, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, uint64(1), reply.ID, "wrong id")
	assert.Equal(t, from, reply.From, "wrong from")
	assert.Equal(t, to, reply.To, "wrong to")
}

func TestOwnerTransferWhenSameOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	o, own, ctl := testService(t)
	defer ctl.Finish()

	from := fixtures.Account(0x11)

	own.EXPECT().Transfer(from, uint64(1), from).Return(nil, fault.SameOwner).Times(1)

	arg := owner.TransferArguments{
		Owner:    from,
		ID:       1,
		NewOwner: from,
	}
	var reply owner.TransferReply
	err := o.Transfer(&arg, &reply)
	assert.Equal(t, fault.SameOwner, err, "wrong error")
}

func TestOwnerTransferWhenZeroNewOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	o, _, ctl := testService(t)
	defer ctl.Finish()

	arg := owner.TransferArguments{
		Owner: fixtures.Account(0x11),
		ID:    1,
	}
	var reply owner.TransferReply
	err := o.Transfer(&arg, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestOwnerTransferWhenNotNormalMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	o := owner.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return false },
		func() bool { return true },
		mocks.NewMockOwnership(ctl),
	)

	arg := owner.TransferArguments{
		Owner:    fixtures.Account(0x11),
		ID:       1,
		NewOwner: fixtures.Account(0x22),
	}
	var reply owner.TransferReply
	err := o.Transfer(&arg, &reply)
	assert.Equal(t, fault.NotAvailableDuringStartup, err, "wrong error")
}

func TestOwnerOwned(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	o, own, ctl := testService(t)
	defer ctl.Finish()

	acc := fixtures.Account(0x11)
	ids := []uint64{2, 3, 8}

	own.EXPECT().ListFor(acc, uint64(0), 10).Return(ids, nil).Times(1)

	arg := owner.OwnedArguments{
		Owner: acc,
		Start: 0,
		Count: 10,
	}
	var reply owner.OwnedReply
	err := o.Owned(&arg, &reply)
	assert.Nil(t, err, "wrong Owned")
	assert.Equal(t, ids, reply.Critters, "wrong critters")
	assert.Equal(t, uint64(9), reply.Next, "wrong next")
}

func TestOwnerOwnedWhenEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	o, own, ctl := testService(t)
	defer ctl.Finish()

	acc := fixtures.Account(0x33)

	own.EXPECT().ListFor(acc, uint64(100), 10).Return([]uint64{}, nil).Times(1)

	arg := owner.OwnedArguments{
		Owner: acc,
		Start: 100,
		Count: 10,
	}
	var reply owner.OwnedReply
	err := o.Owned(&arg, &reply)
	assert.Nil(t, err, "wrong Owned")
	assert.Equal(t, uint64(0), reply.Next, "wrong next")
}
