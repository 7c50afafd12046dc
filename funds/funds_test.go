// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package funds_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/funds"
	"github.com/critterlabs/critterd/storage"
)

func TestBalanceAbsentIsZero(t *testing.T) {
	setup(t)
	defer teardown(t)

	ledger := funds.New(storage.Pool.Funds)

	b := ledger.Balance(makeAccount(0x11))
	assert.Equal(t, funds.Balance{}, b, "wrong balance for unknown account")
}

func TestCreditAndBalance(t *testing.T) {
	setup(t)
	defer teardown(t)

	ledger := funds.New(storage.Pool.Funds)
	alice := makeAccount(0x11)

	trx := beginTransaction(t)
	err := ledger.Credit(trx, alice, 1000)
	assert.NoError(t, err, "credit error")
	err = ledger.Credit(trx, alice, 500)
	assert.NoError(t, err, "credit error")
	commitTransaction(t, trx)

	b := ledger.Balance(alice)
	assert.Equal(t, funds.Balance{Free: 1500, Reserved: 0}, b, "wrong balance after credits")
}

func TestCreditOverflow(t *testing.T) {
	setup(t)
	defer teardown(t)

	ledger := funds.New(storage.Pool.Funds)
	alice := makeAccount(0x11)

	trx := beginTransaction(t)
	err := ledger.Credit(trx, alice, math.MaxUint64)
	assert.NoError(t, err, "credit error")
	commitTransaction(t, trx)

	trx = beginTransaction(t)
	err = ledger.Credit(trx, alice, 1)
	assert.Equal(t, fault.BalanceOverflow, err, "wrong error for overflowing credit")
	trx.Abort()

	b := ledger.Balance(alice)
	assert.Equal(t, uint64(math.MaxUint64), b.Free, "wrong free balance after aborted credit")
}

func TestReserve(t *testing.T) {
	setup(t)
	defer teardown(t)

	ledger := funds.New(storage.Pool.Funds)
	alice := makeAccount(0x11)

	trx := beginTransaction(t)
	err := ledger.Credit(trx, alice, 1000)
	assert.NoError(t, err, "credit error")
	err = ledger.Reserve(trx, alice, 400)
	assert.NoError(t, err, "reserve error")
	commitTransaction(t, trx)

	b := ledger.Balance(alice)
	assert.Equal(t, funds.Balance{Free: 600, Reserved: 400}, b, "wrong balance after reserve")

	trx = beginTransaction(t)
	err = ledger.Reserve(trx, alice, 700)
	assert.Equal(t, fault.NotEnoughBalance, err, "wrong error for excessive reserve")
	trx.Abort()

	b = ledger.Balance(alice)
	assert.Equal(t, funds.Balance{Free: 600, Reserved: 400}, b, "balance changed by failed reserve")
}

func TestUnreserveClamped(t *testing.T) {
	setup(t)
	defer teardown(t)

	ledger := funds.New(storage.Pool.Funds)
	alice := makeAccount(0x11)

	trx := beginTransaction(t)
	err := ledger.Credit(trx, alice, 1000)
	assert.NoError(t, err, "credit error")
	err = ledger.Reserve(trx, alice, 400)
	assert.NoError(t, err, "reserve error")
	commitTransaction(t, trx)

	trx = beginTransaction(t)
	released := ledger.Unreserve(trx, alice, 1000)
	assert.Equal(t, uint64(400), released, "wrong released amount")
	commitTransaction(t, trx)

	b := ledger.Balance(alice)
	assert.Equal(t, funds.Balance{Free: 1000, Reserved: 0}, b, "wrong balance after unreserve")

	trx = beginTransaction(t)
	released = ledger.Unreserve(trx, alice, 100)
	assert.Equal(t, uint64(0), released, "released without any reservation")
	commitTransaction(t, trx)
}

func TestTransfer(t *testing.T) {
	setup(t)
	defer teardown(t)

	ledger := funds.New(storage.Pool.Funds)
	alice := makeAccount(0x11)
	bob := makeAccount(0x22)

	trx := beginTransaction(t)
	err := ledger.Credit(trx, alice, 1000)
	assert.NoError(t, err, "credit error")
	err = ledger.Transfer(trx, alice, bob, 250, false)
	assert.NoError(t, err, "transfer error")
	commitTransaction(t, trx)

	assert.Equal(t, uint64(750), ledger.Balance(alice).Free, "wrong payer balance")
	assert.Equal(t, uint64(250), ledger.Balance(bob).Free, "wrong payee balance")
}

func TestTransferInsufficient(t *testing.T) {
	setup(t)
	defer teardown(t)

	ledger := funds.New(storage.Pool.Funds)
	alice := makeAccount(0x11)
	bob := makeAccount(0x22)

	trx := beginTransaction(t)
	err := ledger.Credit(trx, alice, 100)
	assert.NoError(t, err, "credit error")
	err = ledger.Transfer(trx, alice, bob, 200, false)
	assert.Equal(t, fault.NotEnoughBalance, err, "wrong error for excessive transfer")
	trx.Abort()
}

func TestTransferKeepAlive(t *testing.T) {
	setup(t)
	defer teardown(t)

	ledger := funds.New(storage.Pool.Funds)
	alice := makeAccount(0x11)
	bob := makeAccount(0x22)

	trx := beginTransaction(t)
	err := ledger.Credit(trx, alice, 1000)
	assert.NoError(t, err, "credit error")
	commitTransaction(t, trx)

	// emptying the account is blocked
	trx = beginTransaction(t)
	err = ledger.Transfer(trx, alice, bob, 1000, true)
	assert.Equal(t, fault.WouldKillAccount, err, "wrong error for emptying transfer")
	trx.Abort()

	// leaving the existential minimum is allowed
	trx = beginTransaction(t)
	err = ledger.Transfer(trx, alice, bob, 999, true)
	assert.NoError(t, err, "transfer error")
	commitTransaction(t, trx)

	assert.Equal(t, uint64(1), ledger.Balance(alice).Free, "wrong payer balance")
	assert.Equal(t, uint64(999), ledger.Balance(bob).Free, "wrong payee balance")

	// without keep alive the account can be emptied
	trx = beginTransaction(t)
	err = ledger.Transfer(trx, alice, bob, 1, false)
	assert.NoError(t, err, "transfer error")
	commitTransaction(t, trx)

	assert.Equal(t, uint64(0), ledger.Balance(alice).Free, "wrong payer balance")
}

func TestTransferZeroAmount(t *testing.T) {
	setup(t)
	defer teardown(t)

	ledger := funds.New(storage.Pool.Funds)
	alice := makeAccount(0x11)
	bob := makeAccount(0x22)

	trx := beginTransaction(t)
	err := ledger.Transfer(trx, alice, bob, 0, true)
	assert.NoError(t, err, "zero amount transfer must succeed")
	commitTransaction(t, trx)

	assert.Equal(t, funds.Balance{}, ledger.Balance(alice), "balance changed by zero transfer")
	assert.Equal(t, funds.Balance{}, ledger.Balance(bob), "balance changed by zero transfer")
}

func TestTransferToSelf(t *testing.T) {
	setup(t)
	defer teardown(t)

	ledger := funds.New(storage.Pool.Funds)
	alice := makeAccount(0x11)

	trx := beginTransaction(t)
	err := ledger.Credit(trx, alice, 1000)
	assert.NoError(t, err, "credit error")
	err = ledger.Transfer(trx, alice, alice, 400, false)
	assert.NoError(t, err, "self transfer error")
	err = ledger.Transfer(trx, alice, alice, 2000, false)
	assert.Equal(t, fault.NotEnoughBalance, err, "wrong error for excessive self transfer")
	commitTransaction(t, trx)

	assert.Equal(t, uint64(1000), ledger.Balance(alice).Free, "wrong balance after self transfer")
}

func TestGenesis(t *testing.T) {
	setup(t)
	defer teardown(t)

	ledger := funds.New(storage.Pool.Funds)
	alice := makeAccount(0x11)
	bob := makeAccount(0x22)

	assert.False(t, ledger.GenesisDone(), "genesis marked done on fresh database")

	allocations := []funds.Allocation{
		{Account: alice, Amount: 1000},
		{Account: bob, Amount: 2500},
		{Account: alice, Amount: 50},
	}

	trx := beginTransaction(t)
	err := ledger.Genesis(trx, allocations)
	assert.NoError(t, err, "genesis error")
	commitTransaction(t, trx)

	assert.True(t, ledger.GenesisDone(), "genesis not marked done")
	assert.Equal(t, uint64(1050), ledger.Balance(alice).Free, "wrong genesis balance")
	assert.Equal(t, uint64(2500), ledger.Balance(bob).Free, "wrong genesis balance")

	trx = beginTransaction(t)
	err = ledger.Genesis(trx, allocations)
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong error for repeated genesis")
	trx.Abort()
}
