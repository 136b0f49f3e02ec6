// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msgpack

import (
	"encoding/binary"

	"github.com/oneyesoneno/js-algorand-sdk/fault"
)

// Decode - strict decoding of one complete value
//
// maps decode to Map, arrays to Array, integers to uint64.  nil,
// floating point, extension and negative integer values are not
// supported.  Integers in wider forms than necessary and map entries
// holding zero values are accepted as they are.
func Decode(data []byte) (interface{}, error) {
	d := decoder{data: data}
	v, err := d.value(0)
	if nil != err {
		return nil, err
	}
	if d.n != len(d.data) {
		return nil, fault.ErrTrailingBytes
	}
	return v, nil
}

// DecodeMap - decode a value that must be a map
func DecodeMap(data []byte) (Map, error) {
	v, err := Decode(data)
	if nil != err {
		return nil, err
	}
	m, ok := v.(Map)
	if !ok {
		return nil, fault.ErrInvalidFieldType
	}
	return m, nil
}

type decoder struct {
	data []byte
	n    int
}

func (d *decoder) value(depth int) (interface{}, error) {
	if depth > MaxDepth {
		return nil, fault.ErrNestingTooDeep
	}

	code, err := d.readByte()
	if nil != err {
		return nil, err
	}

	switch {
	case code <= posFixIntMax:
		return uint64(code), nil
	case code&0xf0 == fixMap:
		return d.mapBody(int(code&0x0f), depth)
	case code&0xf0 == fixArray:
		return d.arrayBody(int(code&0x0f), depth)
	case code&0xe0 == fixStr:
		return d.stringBody(int(code & 0x1f))
	case code >= negFixIntMin:
		return nil, fault.ErrNegativeInteger
	}

	switch code {
	case falseCode:
		return false, nil
	case trueCode:
		return true, nil

	case bin8, bin16, bin32:
		length, err := d.length(code - bin8)
		if nil != err {
			return nil, err
		}
		b, err := d.readBytes(length)
		if nil != err {
			return nil, err
		}
		return append([]byte{}, b...), nil

	case str8, str16, str32:
		length, err := d.length(code - str8)
		if nil != err {
			return nil, err
		}
		return d.stringBody(length)

	case uint8Code, uint16Code, uint32Code, uint64Code:
		return d.readUint(1 << (code - uint8Code))

	case int8Code, int16Code, int32Code, int64Code:
		size := 1 << (code - int8Code)
		if d.n < len(d.data) && 0 != d.data[d.n]&0x80 {
			return nil, fault.ErrNegativeInteger
		}
		return d.readUint(size)

	case array16, array32:
		length, err := d.length(code - array16 + 1)
		if nil != err {
			return nil, err
		}
		return d.arrayBody(length, depth)

	case map16, map32:
		length, err := d.length(code - map16 + 1)
		if nil != err {
			return nil, err
		}
		return d.mapBody(length, depth)

	default:
		return nil, fault.ErrUnsupportedTag
	}
}

// read a length prefix: 0 => 1 byte, 1 => 2 bytes, 2 => 4 bytes
func (d *decoder) length(width byte) (int, error) {
	v, err := d.readUint(1 << width)
	if nil != err {
		return 0, err
	}
	return int(v), nil
}

// read a big endian unsigned integer
func (d *decoder) readUint(size int) (uint64, error) {
	b, err := d.readBytes(size)
	if nil != err {
		return 0, err
	}
	var buffer [8]byte
	copy(buffer[8-size:], b)
	return binary.BigEndian.Uint64(buffer[:]), nil
}

func (d *decoder) readByte() (byte, error) {
	if d.n >= len(d.data) {
		return 0, fault.ErrTruncated
	}
	b := d.data[d.n]
	d.n++
	return b, nil
}

func (d *decoder) readBytes(length int) ([]byte, error) {
	if length < 0 || length > len(d.data)-d.n {
		return nil, fault.ErrTruncated
	}
	b := d.data[d.n : d.n+length]
	d.n += length
	return b, nil
}

func (d *decoder) stringBody(length int) (string, error) {
	b, err := d.readBytes(length)
	if nil != err {
		return "", err
	}
	return string(b), nil
}

func (d *decoder) arrayBody(length int, depth int) (Array, error) {
	// every item needs at least one byte
	if length < 0 || length > len(d.data)-d.n {
		return nil, fault.ErrTruncated
	}
	result := make(Array, 0, length)
	for i := 0; i < length; i++ {
		item, err := d.value(depth + 1)
		if nil != err {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func (d *decoder) mapBody(length int, depth int) (Map, error) {
	// every entry needs at least two bytes
	if length < 0 || length > (len(d.data)-d.n)/2 {
		return nil, fault.ErrTruncated
	}
	result := make(Map, length)
	for i := 0; i < length; i++ {
		key, err := d.key()
		if nil != err {
			return nil, err
		}
		if _, ok := result[key]; ok {
			return nil, fault.ErrDuplicateKey
		}
		item, err := d.value(depth + 1)
		if nil != err {
			return nil, err
		}
		result[key] = item
	}
	return result, nil
}

func (d *decoder) key() (string, error) {
	code, err := d.readByte()
	if nil != err {
		return "", err
	}
	switch {
	case code&0xe0 == fixStr:
		return d.stringBody(int(code & 0x1f))
	case str8 == code, str16 == code, str32 == code:
		length, err := d.length(code - str8)
		if nil != err {
			return "", err
		}
		return d.stringBody(length)
	default:
		return "", fault.ErrNonStringKey
	}
}
