// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mnemonic - 25 word recovery phrases for 32 byte seeds
//
// The seed is packed little endian into 11 bit groups, giving 24
// words from the BIP-39 English list.  A 25th word holds the first
// 11 bits of the SHA-512/256 digest of the seed.
package mnemonic
