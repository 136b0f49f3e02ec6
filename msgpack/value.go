// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msgpack

import (
	"github.com/oneyesoneno/js-algorand-sdk/fault"
)

// MaxDepth - deepest nesting of maps and arrays accepted
const MaxDepth = 64

// Map - a mapping with string keys
type Map map[string]interface{}

// Array - an ordered sequence of values
type Array []interface{}

// IsEmpty - true for values that are omitted from a map
//
// nil, zero integers, false, empty strings, empty byte slices, empty
// arrays and empty maps are all empty
func IsEmpty(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case uint64:
		return 0 == value
	case uint32:
		return 0 == value
	case uint:
		return 0 == value
	case int:
		return 0 == value
	case int64:
		return 0 == value
	case bool:
		return !value
	case string:
		return 0 == len(value)
	case []byte:
		return 0 == len(value)
	case Array:
		return 0 == len(value)
	case []interface{}:
		return 0 == len(value)
	case Map:
		return 0 == len(value)
	case map[string]interface{}:
		return 0 == len(value)
	default:
		return false
	}
}

// Canonicalize - return a copy of v with every empty map entry removed
//
// integers become uint64 and maps and arrays become Map and Array.
// A nested map left empty after its own entries are removed is itself
// omitted.
func Canonicalize(v interface{}) (interface{}, error) {
	return canonicalize(v, 0)
}

func canonicalize(v interface{}, depth int) (interface{}, error) {
	if depth > MaxDepth {
		return nil, fault.ErrNestingTooDeep
	}

	switch value := v.(type) {
	case uint64:
		return value, nil
	case uint32:
		return uint64(value), nil
	case uint:
		return uint64(value), nil
	case int:
		if value < 0 {
			return nil, fault.ErrUnsupportedType
		}
		return uint64(value), nil
	case int64:
		if value < 0 {
			return nil, fault.ErrUnsupportedType
		}
		return uint64(value), nil
	case bool:
		return value, nil
	case string:
		return value, nil
	case []byte:
		return append([]byte{}, value...), nil
	case Array:
		return canonicalArray(value, depth)
	case []interface{}:
		return canonicalArray(value, depth)
	case Map:
		return canonicalMap(value, depth)
	case map[string]interface{}:
		return canonicalMap(value, depth)
	default:
		return nil, fault.ErrUnsupportedType
	}
}

func canonicalArray(a []interface{}, depth int) (Array, error) {
	result := make(Array, 0, len(a))
	for _, item := range a {
		c, err := canonicalize(item, depth+1)
		if nil != err {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func canonicalMap(m map[string]interface{}, depth int) (Map, error) {
	result := make(Map, len(m))
	for key, item := range m {
		if IsEmpty(item) {
			continue
		}
		c, err := canonicalize(item, depth+1)
		if nil != err {
			return nil, err
		}
		if IsEmpty(c) {
			continue
		}
		result[key] = c
	}
	return result, nil
}
