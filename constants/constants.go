// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

// the deposit reserved from a buyer for each critter bought
//
// a fixed amount, not derived from the listing price
const (
	OwnershipDeposit uint64 = 1000
)

// the minimum free balance an account must retain after a
// keep alive transfer
const (
	ExistentialMinimum uint64 = 1
)
