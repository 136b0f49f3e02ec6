// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ugorji/go/codec"
	"github.com/urfave/cli"

	"github.com/oneyesoneno/js-algorand-sdk/transactionrecord"
)

func runTxID(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	blob, err := checkTransaction(c.String("transaction"))
	if nil != err {
		return err
	}

	signed, err := transactionrecord.Unpack(blob)
	if nil != err {
		return err
	}

	result := struct {
		ID   string `json:"id"`
		Kind string `json:"kind"`
	}{
		ID:   signed.ID(),
		Kind: signed.Kind.String(),
	}
	return printJson(m.w, result)
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	blob, err := checkTransaction(c.String("transaction"))
	if nil != err {
		return err
	}

	signed, err := transactionrecord.Unpack(blob)
	if nil != err {
		return err
	}

	result := struct {
		Valid  bool                     `json:"valid"`
		Error  string                   `json:"error,omitempty"`
		ID     string                   `json:"id"`
		Kind   string                   `json:"kind"`
		Record transactionrecord.Record `json:"record"`
	}{
		Valid:  true,
		ID:     signed.ID(),
		Kind:   signed.Kind.String(),
		Record: signed.Record,
	}

	if err := signed.Verify(); nil != err {
		result.Valid = false
		result.Error = err.Error()
	}

	return printJson(m.w, result)
}

// dump any msgpack value, not only canonical records
func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	blob, err := checkTransaction(c.String("transaction"))
	if nil != err {
		return err
	}

	var handle codec.MsgpackHandle
	handle.RawToString = true
	var value interface{}
	err = codec.NewDecoderBytes(blob, &handle).Decode(&value)
	if nil != err {
		return err
	}

	return printJson(m.w, jsonValue(value))
}

// convert a decoded msgpack value into something encoding/json accepts,
// byte strings are shown as hex
func jsonValue(value interface{}) interface{} {
	switch v := value.(type) {
	case []byte:
		return hex.EncodeToString(v)
	case []interface{}:
		a := make([]interface{}, len(v))
		for i, item := range v {
			a[i] = jsonValue(item)
		}
		return a
	case map[interface{}]interface{}:
		o := make(map[string]interface{}, len(v))
		for key, item := range v {
			if b, ok := key.([]byte); ok {
				o[string(b)] = jsonValue(item)
			} else {
				o[fmt.Sprint(key)] = jsonValue(item)
			}
		}
		return o
	case map[string]interface{}:
		o := make(map[string]interface{}, len(v))
		for key, item := range v {
			o[key] = jsonValue(item)
		}
		return o
	default:
		return v
	}
}
