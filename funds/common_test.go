// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package funds_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
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

// begin a transaction or fail the test
func beginTransaction(t *testing.T) storage.Transaction {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	return trx
}

// commit a transaction or fail the test
func commitTransaction(t *testing.T, trx storage.Transaction) {
	if err := trx.Commit(); nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}
}
