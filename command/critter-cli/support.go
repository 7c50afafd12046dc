// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/critterlabs/critterd/account"
)

// an account flag is required and must decode
func checkAccount(name string, accountBase58 string) (account.Identifier, error) {
	if "" == accountBase58 {
		return account.Identifier{}, fmt.Errorf("%s is required", name)
	}
	acc, err := account.AccountFromBase58(accountBase58)
	if nil != err {
		return account.Identifier{}, fmt.Errorf("%s: %q error: %s", name, accountBase58, err)
	}
	return acc, nil
}

// a critter id flag is required and starts from one
func checkCritterId(id uint64) (uint64, error) {
	if 0 == id {
		return 0, fmt.Errorf("critter id is required")
	}
	return id, nil
}
