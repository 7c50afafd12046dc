// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. critter id   = successive index value as big endian uint64 (8 bytes)
// 4. account      = identifier variant byte ++ 32 byte digest (33 bytes)
// 5. amount       = big endian uint64 (8 bytes)
//
// Critters:
//
//   C ++ critter id            - registered critter
//                                data: genome (16 bytes)
//   N ++ category              - next index value for the category
//                                data: count
//
// Ownership:
//
//   O ++ critter id            - current owner
//                                data: account
//   D ++ account ++ critter id - critters held by an account
//                                data: (empty)
//
// Market:
//
//   P ++ critter id            - current listing
//                                data: price
//
// Funds:
//
//   F ++ account               - account balance
//                                data: free amount ++ reserved amount
//
// Testing:
//
//   Z ++ key                   - testing data
//
// All mutation goes through a single Transaction whose writes are
// committed in one batch, so an operation that stages several pool
// updates either applies all of them or none.
package storage
