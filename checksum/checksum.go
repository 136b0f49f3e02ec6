// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package checksum - four byte integrity tag used by the address text form
//
// The tag is the final four bytes of the SHA-512/256 digest of the
// payload, appended after the payload.
package checksum

import (
	"bytes"

	"github.com/oneyesoneno/js-algorand-sdk/digest"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
)

// Length - number of bytes in a checksum
const Length = 4

// Sum - compute the checksum of data
func Sum(data []byte) [Length]byte {
	d := digest.NewDigest(data)
	var c [Length]byte
	copy(c[:], d[digest.Length-Length:])
	return c
}

// Append - return a new slice holding data followed by its checksum
func Append(data []byte) []byte {
	c := Sum(data)
	buffer := make([]byte, 0, len(data)+Length)
	buffer = append(buffer, data...)
	return append(buffer, c[:]...)
}

// Strip - verify and remove a trailing checksum
//
// the returned payload shares storage with the argument
func Strip(data []byte) ([]byte, error) {
	if len(data) < Length {
		return nil, fault.ErrChecksumTooShort
	}
	n := len(data) - Length
	c := Sum(data[:n])
	if !bytes.Equal(c[:], data[n:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return data[:n], nil
}
