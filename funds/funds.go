// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package funds - the currency ledger
//
// every account has a free amount that it can spend and a reserved
// amount held as ownership collateral, records live in one storage
// pool keyed by the account identifier bytes
//
// the ledger only stages updates, the caller owns the surrounding
// transaction and decides when the whole operation commits
package funds

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/constants"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/storage"
)

// Balance - free and reserved amounts of one account
type Balance struct {
	Free     uint64 `json:"free,string"`
	Reserved uint64 `json:"reserved,string"`
}

// Allocation - one initial balance grant
type Allocation struct {
	Account account.Identifier `json:"account"`
	Amount  uint64             `json:"amount,string"`
}

// value layout: free ‖ reserved, each 8 byte big endian
const recordLength = 16

// marker to stop a second genesis distribution
// shorter than an account key so a clash is impossible
var genesisKey = []byte("genesis")

// Ledger - the balance book
type Ledger interface {
	Balance(acc account.Identifier) Balance
	Credit(trx storage.Transaction, acc account.Identifier, amount uint64) error
	Reserve(trx storage.Transaction, acc account.Identifier, amount uint64) error
	Unreserve(trx storage.Transaction, acc account.Identifier, amount uint64) uint64
	Transfer(trx storage.Transaction, from account.Identifier, to account.Identifier, amount uint64, keepAlive bool) error
	Genesis(trx storage.Transaction, allocations []Allocation) error
	GenesisDone() bool
}

type ledgerData struct {
	pool *storage.PoolHandle
}

// New - create a ledger over the funds pool
func New(pool *storage.PoolHandle) Ledger {
	return &ledgerData{
		pool: pool,
	}
}

// Balance - committed free and reserved amounts of an account
//
// an account without a record reads as zero
func (l *ledgerData) Balance(acc account.Identifier) Balance {
	return unpack(l.pool.Get(acc.Bytes()))
}

// Credit - add to the free balance of an account
func (l *ledgerData) Credit(trx storage.Transaction, acc account.Identifier, amount uint64) error {
	b := l.balance(trx, acc)
	if b.Free > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}
	b.Free += amount
	l.store(trx, acc, b)
	return nil
}

// Reserve - move part of the free balance into the reserved amount
func (l *ledgerData) Reserve(trx storage.Transaction, acc account.Identifier, amount uint64) error {
	b := l.balance(trx, acc)
	if b.Free < amount {
		return fault.NotEnoughBalance
	}
	if b.Reserved > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}
	b.Free -= amount
	b.Reserved += amount
	l.store(trx, acc, b)
	return nil
}

// Unreserve - release up to amount back to the free balance
//
// never fails: releasing more than is held is clamped to the reserved
// amount, the released amount is returned
func (l *ledgerData) Unreserve(trx storage.Transaction, acc account.Identifier, amount uint64) uint64 {
	b := l.balance(trx, acc)
	release := amount
	if release > b.Reserved {
		release = b.Reserved
	}
	if release > math.MaxUint64-b.Free {
		release = math.MaxUint64 - b.Free
	}
	if 0 == release {
		return 0
	}
	b.Reserved -= release
	b.Free += release
	l.store(trx, acc, b)
	return release
}

// Transfer - move an amount between the free balances of two accounts
//
// keepAlive requires the paying account to retain at least the
// existential minimum afterwards, a zero amount always succeeds
func (l *ledgerData) Transfer(trx storage.Transaction, from account.Identifier, to account.Identifier, amount uint64, keepAlive bool) error {
	if 0 == amount {
		return nil
	}

	debit := l.balance(trx, from)
	if debit.Free < amount {
		return fault.NotEnoughBalance
	}
	if keepAlive && debit.Free-amount < constants.ExistentialMinimum {
		return fault.WouldKillAccount
	}

	// both sides are the same record, nothing moves
	if from == to {
		return nil
	}

	credit := l.balance(trx, to)
	if credit.Free > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}

	debit.Free -= amount
	credit.Free += amount
	l.store(trx, from, debit)
	l.store(trx, to, credit)
	return nil
}

// Genesis - apply the initial balance grants
//
// runs at most once per database, a marker record blocks any repeat
func (l *ledgerData) Genesis(trx storage.Transaction, allocations []Allocation) error {
	if trx.Has(l.pool, genesisKey) {
		return fault.AlreadyInitialised
	}
	for _, a := range allocations {
		err := l.Credit(trx, a.Account, a.Amount)
		if nil != err {
			return err
		}
	}
	trx.Put(l.pool, genesisKey, []byte{})
	return nil
}

// GenesisDone - whether the initial grants were already applied
func (l *ledgerData) GenesisDone() bool {
	return l.pool.Has(genesisKey)
}

// staged read of one balance record
func (l *ledgerData) balance(trx storage.Transaction, acc account.Identifier) Balance {
	return unpack(trx.Get(l.pool, acc.Bytes()))
}

func (l *ledgerData) store(trx storage.Transaction, acc account.Identifier, b Balance) {
	trx.Put(l.pool, acc.Bytes(), pack(b))
}

func pack(b Balance) []byte {
	buffer := make([]byte, recordLength)
	binary.BigEndian.PutUint64(buffer[:8], b.Free)
	binary.BigEndian.PutUint64(buffer[8:], b.Reserved)
	return buffer
}

func unpack(buffer []byte) Balance {
	if nil == buffer {
		return Balance{}
	}
	if recordLength != len(buffer) {
		logger.Panicf("funds: corrupt balance record: %x", buffer)
	}
	return Balance{
		Free:     binary.BigEndian.Uint64(buffer[:8]),
		Reserved: binary.BigEndian.Uint64(buffer[8:]),
	}
}
