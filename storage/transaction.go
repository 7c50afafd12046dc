// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/critterlabs/critterd/fault"
)

// Transaction - atomic batch of pool updates
//
// a transaction is obtained from NewDBTransaction, staged reads see
// the transaction's own writes, Commit applies every staged update in
// one database write and Abort discards them all
//
// only one transaction can be active at a time, NewDBTransaction
// blocks until the previous writer commits or aborts
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
	DumpTx() []byte
}

type transactionData struct {
	sync.Mutex // serialises writers
	access     Access
}

func newTransaction(access Access) Transaction {
	return &transactionData{
		access: access,
	}
}

// Begin - take exclusive write access
//
// blocks while another transaction is active, every successful Begin
// must be paired with exactly one Commit or Abort
func (t *transactionData) Begin() error {
	t.Lock()
	err := t.access.Begin()
	if nil != err {
		t.Unlock()
		return err
	}
	return nil
}

// Put - stage a key/value pair
func (t *transactionData) Put(pool *PoolHandle, key []byte, value []byte) {
	t.access.Put(pool.prefixKey(key), value)
}

// PutN - stage a uint64 value as 8 big endian bytes
func (t *transactionData) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.access.Put(pool.prefixKey(key), buffer)
}

// Delete - stage removal of a key
func (t *transactionData) Delete(pool *PoolHandle, key []byte) {
	t.access.Delete(pool.prefixKey(key))
}

// Get - read a value, staged updates take precedence
func (t *transactionData) Get(pool *PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

// GetN - read a value as a big endian uint64, staged updates take precedence
func (t *transactionData) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return pool.GetN(key)
}

// Has - check a key, staged updates take precedence
func (t *transactionData) Has(pool *PoolHandle, key []byte) bool {
	return pool.Has(key)
}

// Commit - apply all staged updates in one database write
func (t *transactionData) Commit() error {
	if !t.access.InUse() {
		return fault.TransactionIsNotInUse
	}
	err := t.access.Commit()
	t.access.Abort() // reset the batch and overlay
	t.Unlock()
	return err
}

// Abort - discard all staged updates
//
// the call is ignored when no transaction is active, but every Begin
// must still be matched by exactly one Commit or Abort from the same
// goroutine
func (t *transactionData) Abort() {
	if !t.access.InUse() {
		return
	}
	t.access.Abort()
	t.Unlock()
}

// InUse - whether a transaction is currently active
func (t *transactionData) InUse() bool {
	return t.access.InUse()
}

// DumpTx - hex of the staged batch, for diagnostic logs
func (t *transactionData) DumpTx() []byte {
	return t.access.DumpTx()
}
