// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package msgpack - canonical MessagePack encoding
//
// The same logical value always encodes to the same bytes:
//
//   - map entries holding empty values are dropped, at every level
//   - map keys are written in byte order
//   - integers, lengths and headers use the shortest form
//
// Supported values are unsigned integers, byte slices, strings,
// booleans, Array and Map.
package msgpack
