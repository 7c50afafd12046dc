// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a shared unsigned counter
//
// safe to update from several goroutines without extra locking
package counter

import (
	"sync/atomic"
)

// Counter - an atomically updated 64 bit unsigned counter
type Counter uint64

// Increment - add one, returning the new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract one, returning the new value
//
// decrementing past zero wraps
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - the current value
func (ic *Counter) Uint64() uint64 {
	return atomic.AddUint64((*uint64)(ic), 0)
}

// IsZero - true if the current value is zero
func (ic *Counter) IsZero() bool {
	return 0 == atomic.AddUint64((*uint64)(ic), 0)
}
