// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"

	certificateFileName = "test.crt"
	keyFileName         = "test.key"
)

// Account - a distinct testnet account from a fill byte
func Account(fill byte) account.Identifier {
	var digest [account.DigestLength]byte
	for i := 0; i < len(digest); i += 1 {
		digest[i] = fill
	}
	return account.Identifier{
		Test:   true,
		Digest: digest,
	}
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// self signed certificate pair shared by listener tests
var certOnce sync.Once

// Certificate - PEM text of a self signed test certificate
//
// the pair is generated on first use and cached in fixtureDir so
// repeated calls inside one test binary see the same certificate
func Certificate(fixtureDir string) string {
	makeCertificatePair(fixtureDir)
	data, err := ioutil.ReadFile(path.Join(fixtureDir, certificateFileName))
	if nil != err {
		panic(fmt.Sprintf("fixtures: cannot read certificate: %s", err))
	}
	return string(data)
}

// Key - PEM text of the matching private key
func Key(fixtureDir string) string {
	makeCertificatePair(fixtureDir)
	data, err := ioutil.ReadFile(path.Join(fixtureDir, keyFileName))
	if nil != err {
		panic(fmt.Sprintf("fixtures: cannot read key: %s", err))
	}
	return string(data)
}

func makeCertificatePair(fixtureDir string) {
	certOnce.Do(func() {
		org := "critterd self signed cert for: testing"
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair(org, validUntil, false, nil)
		if nil != err {
			panic(fmt.Sprintf("fixtures: cannot generate certificate: %s", err))
		}
		_ = os.MkdirAll(fixtureDir, 0700)
		if err := ioutil.WriteFile(path.Join(fixtureDir, certificateFileName), cert, 0666); nil != err {
			panic(fmt.Sprintf("fixtures: cannot write certificate: %s", err))
		}
		if err := ioutil.WriteFile(path.Join(fixtureDir, keyFileName), key, 0600); nil != err {
			panic(fmt.Sprintf("fixtures: cannot write key: %s", err))
		}
	})
}
