// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for the notifications the
// registry, ownership ledger and market operations produce, fanned
// out to every attached listener for broadcasting
package messagebus
