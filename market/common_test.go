// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
	"github.com/critterlabs/critterd/entropy"
	"github.com/critterlabs/critterd/funds"
	"github.com/critterlabs/critterd/market"
	"github.com/critterlabs/critterd/ownership"
	"github.com/critterlabs/critterd/registry"
	"github.com/critterlabs/critterd/storage"
)

// test database file
const (
	databaseFileName = "test"
	testingDirName   = "testing"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName + "-data.leveldb")
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// a distinct testnet account from a fill byte
func makeAccount(fill byte) account.Identifier {
	var digest [32]byte
	for i := 0; i < len(digest); i += 1 {
		digest[i] = fill
	}
	return account.Identifier{
		Test:   true,
		Digest: digest,
	}
}

// marketplace with its ledgers over the standard pools
func newMarket() (market.Market, ownership.Ownership, funds.Ledger) {
	owners := ownership.New(storage.Pool.Owners, storage.Pool.OwnerIndex)
	ledger := funds.New(storage.Pool.Funds)
	return market.New(storage.Pool.Listings, owners, ledger), owners, ledger
}

// predictable entropy source for exact genome checks
type stubSource struct {
	values [][entropy.Length]byte
	next   int
}

func (s *stubSource) Random16(_ []byte) [entropy.Length]byte {
	v := s.values[s.next]
	s.next += 1
	return v
}

// genome filled with one byte value
func fillGenome(fill byte) [entropy.Length]byte {
	var g [entropy.Length]byte
	for i := 0; i < len(g); i += 1 {
		g[i] = fill
	}
	return g
}

// registry sharing the market's ownership ledger, with scripted entropy
func newRegistry(owners ownership.Ownership, draws ...[entropy.Length]byte) registry.Registry {
	source := &stubSource{values: draws}
	return registry.New(storage.Pool.Critters, storage.Pool.Counts, owners, source)
}

// stage and commit one ownership record
func assign(t *testing.T, owners ownership.Ownership, id uint64, owner account.Identifier) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	owners.Assign(trx, id, owner)
	if err := trx.Commit(); nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}
}

// credit a free balance
func credit(t *testing.T, ledger funds.Ledger, acc account.Identifier, amount uint64) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	if err := ledger.Credit(trx, acc, amount); nil != err {
		t.Fatalf("credit error: %s", err)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}
}

// move part of a free balance into the reserved amount
func reserve(t *testing.T, ledger funds.Ledger, acc account.Identifier, amount uint64) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	if err := ledger.Reserve(trx, acc, amount); nil != err {
		t.Fatalf("reserve error: %s", err)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}
}

func priceOf(amount uint64) *uint64 {
	return &amount
}
