// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msgpack

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/oneyesoneno/js-algorand-sdk/fault"
)

// format codes
const (
	posFixIntMax = 0x7f
	fixMap       = 0x80
	fixArray     = 0x90
	fixStr       = 0xa0
	nilCode      = 0xc0
	falseCode    = 0xc2
	trueCode     = 0xc3
	bin8         = 0xc4
	bin16        = 0xc5
	bin32        = 0xc6
	ext8         = 0xc7
	ext32        = 0xc9
	float32Code  = 0xca
	float64Code  = 0xcb
	uint8Code    = 0xcc
	uint16Code   = 0xcd
	uint32Code   = 0xce
	uint64Code   = 0xcf
	int8Code     = 0xd0
	int16Code    = 0xd1
	int32Code    = 0xd2
	int64Code    = 0xd3
	fixExt1      = 0xd4
	fixExt16     = 0xd8
	str8         = 0xd9
	str16        = 0xda
	str32        = 0xdb
	array16      = 0xdc
	array32      = 0xdd
	map16        = 0xde
	map32        = 0xdf
	negFixIntMin = 0xe0

	fixStrMax   = 31
	fixArrayMax = 15
	fixMapMax   = 15
)

// Encode - canonical encoding of a value
//
// empty map entries are removed first, then map keys are written in
// byte order and every length and integer uses its shortest form
func Encode(v interface{}) ([]byte, error) {
	c, err := Canonicalize(v)
	if nil != err {
		return nil, err
	}
	return appendValue(make([]byte, 0, 256), c)
}

// the argument is already canonical
func appendValue(buffer []byte, v interface{}) ([]byte, error) {
	switch value := v.(type) {
	case uint64:
		return appendUint64(buffer, value), nil
	case bool:
		if value {
			return append(buffer, trueCode), nil
		}
		return append(buffer, falseCode), nil
	case string:
		return appendString(buffer, value)
	case []byte:
		return appendBytes(buffer, value)
	case Array:
		var err error
		buffer, err = appendHeader(buffer, len(value), fixArray, fixArrayMax, array16, array32)
		if nil != err {
			return nil, err
		}
		for _, item := range value {
			buffer, err = appendValue(buffer, item)
			if nil != err {
				return nil, err
			}
		}
		return buffer, nil
	case Map:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var err error
		buffer, err = appendHeader(buffer, len(keys), fixMap, fixMapMax, map16, map32)
		if nil != err {
			return nil, err
		}
		for _, key := range keys {
			buffer, err = appendString(buffer, key)
			if nil != err {
				return nil, err
			}
			buffer, err = appendValue(buffer, value[key])
			if nil != err {
				return nil, err
			}
		}
		return buffer, nil
	default:
		return nil, fault.ErrUnsupportedType
	}
}

// append an integer in its shortest form
func appendUint64(buffer []byte, value uint64) []byte {
	switch {
	case value <= posFixIntMax:
		return append(buffer, byte(value))
	case value <= math.MaxUint8:
		return append(buffer, uint8Code, byte(value))
	case value <= math.MaxUint16:
		buffer = append(buffer, uint16Code)
		return appendBigEndian(buffer, value, 2)
	case value <= math.MaxUint32:
		buffer = append(buffer, uint32Code)
		return appendBigEndian(buffer, value, 4)
	default:
		buffer = append(buffer, uint64Code)
		return appendBigEndian(buffer, value, 8)
	}
}

// append a string with its length prefix
func appendString(buffer []byte, s string) ([]byte, error) {
	n := len(s)
	switch {
	case n <= fixStrMax:
		buffer = append(buffer, fixStr|byte(n))
	case n <= math.MaxUint8:
		buffer = append(buffer, str8, byte(n))
	case n <= math.MaxUint16:
		buffer = append(buffer, str16)
		buffer = appendBigEndian(buffer, uint64(n), 2)
	case uint64(n) <= math.MaxUint32:
		buffer = append(buffer, str32)
		buffer = appendBigEndian(buffer, uint64(n), 4)
	default:
		return nil, fault.ErrUnsupportedType
	}
	return append(buffer, s...), nil
}

// append a byte string with its length prefix
func appendBytes(buffer []byte, data []byte) ([]byte, error) {
	n := len(data)
	switch {
	case n <= math.MaxUint8:
		buffer = append(buffer, bin8, byte(n))
	case n <= math.MaxUint16:
		buffer = append(buffer, bin16)
		buffer = appendBigEndian(buffer, uint64(n), 2)
	case uint64(n) <= math.MaxUint32:
		buffer = append(buffer, bin32)
		buffer = appendBigEndian(buffer, uint64(n), 4)
	default:
		return nil, fault.ErrUnsupportedType
	}
	return append(buffer, data...), nil
}

// append an array or map header
func appendHeader(buffer []byte, n int, fixCode byte, fixMax int, code16 byte, code32 byte) ([]byte, error) {
	switch {
	case n <= fixMax:
		return append(buffer, fixCode|byte(n)), nil
	case n <= math.MaxUint16:
		buffer = append(buffer, code16)
		return appendBigEndian(buffer, uint64(n), 2), nil
	case uint64(n) <= math.MaxUint32:
		buffer = append(buffer, code32)
		return appendBigEndian(buffer, uint64(n), 4), nil
	default:
		return nil, fault.ErrUnsupportedType
	}
}

// append the low size bytes of value, most significant first
func appendBigEndian(buffer []byte, value uint64, size int) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], value)
	return append(buffer, b[8-size:]...)
}
