// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/util"
)

// seeds for the test keys
var (
	seedA = make([]byte, 32)
	seedB = []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
		0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
	}
)

const (
	addressA = "HNVCPPGOW2SC2YVDVDICU3YNONSTEFLXDXREHJR2YBEKDC2Z3IUZSC6YGI"
	addressB = "PG2VMLUP4ZKPSQDYWEJORKMLU6IB7BJ242K35V7A4OIQXLIESZSCUKNU44"
)

func makePrivateKey(t *testing.T, seed []byte) *account.PrivateKey {
	privateKey, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		t.Fatalf("private key from seed error: %s", err)
	}
	return privateKey
}

func makeAccount(t *testing.T, address string) *account.Account {
	a, err := account.AccountFromString(address)
	if nil != err {
		t.Fatalf("account from string: %q  error: %s", address, err)
	}
	return a
}

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		t.Fatalf("hex decode error: %s", err)
	}
	return b
}

// show the generated bytes so a changed vector can be pasted back in
func checkBytes(t *testing.T, title string, actual []byte, expected []byte) {
	if !bytes.Equal(actual, expected) {
		t.Errorf("%s: %x  expected: %x", title, actual, expected)
		t.Errorf("*** GENERATED %s:\n%s", title, util.FormatBytes("expected", actual))
		t.Fatal("fatal error")
	}
}
