// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checksum_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oneyesoneno/js-algorand-sdk/checksum"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
)

func TestSum(t *testing.T) {
	tests := []struct {
		data     string
		expected [checksum.Length]byte
	}{
		{"", [4]byte{0xce, 0xf0, 0x96, 0x7a}},
		{"abc", [4]byte{0x07, 0xe7, 0xaf, 0x23}},
		{"hello world", [4]byte{0xa9, 0x13, 0xf0, 0x17}},
	}

	for i, test := range tests {
		actual := checksum.Sum([]byte(test.data))
		if actual != test.expected {
			t.Errorf("%d: sum: %x  expected: %x", i, actual, test.expected)
		}
	}
}

func TestAppendStrip(t *testing.T) {
	data := []byte("hello world")
	buffer := checksum.Append(data)

	assert.Equal(t, len(data)+checksum.Length, len(buffer), "appended length")
	assert.Equal(t, []byte{0xa9, 0x13, 0xf0, 0x17}, buffer[len(data):], "tag")
	assert.Equal(t, []byte("hello world"), data, "argument was modified")

	payload, err := checksum.Strip(buffer)
	assert.Nil(t, err, "strip error")
	assert.True(t, bytes.Equal(data, payload), "payload")
}

func TestStripErrors(t *testing.T) {
	_, err := checksum.Strip([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrChecksumTooShort, err, "short input")

	// four bytes is an empty payload with its tag
	payload, err := checksum.Strip([]byte{0xce, 0xf0, 0x96, 0x7a})
	assert.Nil(t, err, "empty payload")
	assert.Equal(t, 0, len(payload), "empty payload length")

	buffer := checksum.Append([]byte("abc"))
	for i := range buffer {
		corrupt := append([]byte{}, buffer...)
		corrupt[i] ^= 0x01
		_, err := checksum.Strip(corrupt)
		assert.Equal(t, fault.ErrChecksumMismatch, err, "flipped byte: %d", i)
	}
}
