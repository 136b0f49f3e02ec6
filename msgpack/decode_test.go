// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msgpack_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ugorji/go/codec"

	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/msgpack"
)

type decodeTest struct {
	data     string
	expected interface{}
}

func TestDecodeValid(t *testing.T) {
	tests := []decodeTest{
		{"00", uint64(0)},
		{"7f", uint64(127)},
		{"cc80", uint64(128)},
		{"cd0001", uint64(1)},           // wider than needed
		{"ce00000001", uint64(1)},       // wider than needed
		{"cf0000000000000001", uint64(1)}, // wider than needed
		{"d005", uint64(5)},             // signed form, non-negative
		{"d37fffffffffffffff", uint64(1<<63 - 1)},
		{"c2", false},
		{"c3", true},
		{"a0", ""},
		{"d903616263", "abc"},
		{"da0003616263", "abc"},
		{"c403010203", []byte{1, 2, 3}},
		{"c5000101", []byte{1}},
		{"90", msgpack.Array{}},
		{"dc000101", msgpack.Array{uint64(1)}},
		{"80", msgpack.Map{}},
		{"81a16100", msgpack.Map{"a": uint64(0)}}, // explicit zero
		{"de0001d90161c3", msgpack.Map{"a": true}},
	}

	for i, test := range tests {
		actual, err := msgpack.Decode(decodeHex(test.data))
		if nil != err {
			t.Errorf("%d: decode: %s  error: %s", i, test.data, err)
			continue
		}
		assert.Equal(t, test.expected, actual, "%d: decode: %s", i, test.data)
	}
}

type decodeErrorTest struct {
	data string
	err  error
}

func TestDecodeInvalid(t *testing.T) {
	tests := []decodeErrorTest{
		{"", fault.ErrTruncated},
		{"cc", fault.ErrTruncated},
		{"cd01", fault.ErrTruncated},
		{"c40501", fault.ErrTruncated},
		{"a3616263a1", fault.ErrTrailingBytes},
		{"a461", fault.ErrTruncated},
		{"92", fault.ErrTruncated},
		{"9201", fault.ErrTruncated},
		{"81a161", fault.ErrTruncated},
		{"ddffffffff", fault.ErrTruncated},
		{"dfffffffff", fault.ErrTruncated},
		{"0102", fault.ErrTrailingBytes},
		{"82a16101a16102", fault.ErrDuplicateKey},
		{"810101", fault.ErrNonStringKey},
		{"81c40161 01", fault.ErrNonStringKey},
		{"c0", fault.ErrUnsupportedTag},
		{"c1", fault.ErrUnsupportedTag},
		{"ca00000000", fault.ErrUnsupportedTag},
		{"cb0000000000000000", fault.ErrUnsupportedTag},
		{"d40000", fault.ErrUnsupportedTag},
		{"c70100ff", fault.ErrUnsupportedTag},
		{"ff", fault.ErrNegativeInteger},
		{"e0", fault.ErrNegativeInteger},
		{"d0ff", fault.ErrNegativeInteger},
		{"d38000000000000000", fault.ErrNegativeInteger},
		{"91c0", fault.ErrUnsupportedTag},
	}

	for i, test := range tests {
		data := decodeHex(stripSpaces(test.data))
		_, err := msgpack.Decode(data)
		if test.err != err {
			t.Errorf("%d: decode: %s  error: %v  expected: %v", i, test.data, err, test.err)
		}
	}
}

func stripSpaces(s string) string {
	return string(bytes.ReplaceAll([]byte(s), []byte(" "), nil))
}

func TestDecodeTooDeep(t *testing.T) {
	data := append(bytes.Repeat([]byte{0x91}, msgpack.MaxDepth+1), 0x00)
	_, err := msgpack.Decode(data)
	assert.Equal(t, fault.ErrNestingTooDeep, err, "deep nesting")

	data = append(bytes.Repeat([]byte{0x91}, msgpack.MaxDepth), 0x00)
	_, err = msgpack.Decode(data)
	assert.Nil(t, err, "deepest allowed nesting")
}

func TestDecodeCopiesBytes(t *testing.T) {
	data := decodeHex("c403010203")
	v, err := msgpack.Decode(data)
	require.Nil(t, err, "decode")

	data[2] = 0xff
	assert.Equal(t, []byte{1, 2, 3}, v, "decoded bytes share input")
}

func TestDecodeMap(t *testing.T) {
	m, err := msgpack.DecodeMap(decodeHex("81a16101"))
	assert.Nil(t, err, "map")
	assert.Equal(t, msgpack.Map{"a": uint64(1)}, m, "map")

	_, err = msgpack.DecodeMap(decodeHex("9101"))
	assert.Equal(t, fault.ErrInvalidFieldType, err, "array")
}

// decoding the encoding gives back the canonical form
func TestRoundTrip(t *testing.T) {
	values := []interface{}{
		uint64(1 << 40),
		"text",
		[]byte{0, 1, 2},
		msgpack.Map{
			"amt":  1000000,
			"fee":  uint64(1000),
			"note": []byte{},
			"list": msgpack.Array{uint64(1), "two", []byte{3}, true, msgpack.Map{}},
			"sub":  map[string]interface{}{"x": uint64(0), "y": "why"},
			"gone": msgpack.Map{"x": false},
		},
		msgpack.Array{msgpack.Array{msgpack.Array{}}},
	}

	for i, value := range values {
		encoded, err := msgpack.Encode(value)
		require.Nil(t, err, "%d: encode", i)

		canonical, err := msgpack.Canonicalize(value)
		require.Nil(t, err, "%d: canonicalize", i)

		decoded, err := msgpack.Decode(encoded)
		require.Nil(t, err, "%d: decode", i)

		assert.Equal(t, canonical, decoded, "%d: round trip", i)

		// encoding is stable
		again, err := msgpack.Encode(decoded)
		require.Nil(t, err, "%d: encode decoded", i)
		assert.Equal(t, encoded, again, "%d: re-encode", i)
	}
}

// an independent decoder reads the canonical bytes
func TestInteroperability(t *testing.T) {
	type nested struct {
		Name string `codec:"x"`
	}
	type record struct {
		Small  uint64   `codec:"a"`
		Large  uint64   `codec:"b"`
		Data   []byte   `codec:"c"`
		Name   string   `codec:"d"`
		Flag   bool     `codec:"e"`
		List   []uint64 `codec:"f"`
		Nested nested   `codec:"g"`
		Absent uint64   `codec:"h"`
	}

	value := msgpack.Map{
		"a": uint64(5),
		"b": uint64(1 << 40),
		"c": []byte{1, 2, 3},
		"d": "name",
		"e": true,
		"f": msgpack.Array{uint64(1), uint64(300), uint64(70000)},
		"g": msgpack.Map{"x": "y"},
		"h": uint64(0),
	}

	encoded, err := msgpack.Encode(value)
	require.Nil(t, err, "encode")

	var handle codec.MsgpackHandle
	var actual record
	err = codec.NewDecoderBytes(encoded, &handle).Decode(&actual)
	require.Nil(t, err, "codec decode")

	expected := record{
		Small:  5,
		Large:  1 << 40,
		Data:   []byte{1, 2, 3},
		Name:   "name",
		Flag:   true,
		List:   []uint64{1, 300, 70000},
		Nested: nested{Name: "y"},
	}
	assert.Equal(t, expected, actual, "codec decoded")
}
