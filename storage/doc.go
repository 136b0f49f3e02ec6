// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk record store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = record digest as 32 byte SHA-512/256(prefix ++ canonical bytes)
// 4. count        = successive index value as big endian uint64 (8 bytes)
// 5. account      = 32 byte ed25519 public key
//
// Records:
//
//   R ++ id                    - verified signed records
//                                data: signed blob
//
// History:
//
//   N ++ account               - next count value to use for appending to history
//                                data: count
//   H ++ account ++ count      - records naming the account, in store order
//                                data: id
//
// Testing:
//   Z ++ key                   - testing data
package storage
