// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/keypair"
)

const (
	zeroAddress   = "HNVCPPGOW2SC2YVDVDICU3YNONSTEFLXDXREHJR2YBEKDC2Z3IUZSC6YGI"
	zeroPublicKey = "3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29"
)

var zeroMnemonic = strings.Repeat("abandon ", 24) + "invest"

func TestMakeRawKeyPairFromSeed(t *testing.T) {
	raw, kp, err := keypair.MakeRawKeyPairFromSeed(make([]byte, 32))
	require.Nil(t, err, "make from seed")

	assert.Equal(t, zeroAddress, raw.Address, "address")
	assert.Equal(t, zeroMnemonic, raw.Mnemonic, "mnemonic")
	assert.Equal(t, strings.Repeat("00", 32), raw.Seed, "seed")
	assert.Equal(t, zeroPublicKey, raw.PublicKey, "public key")
	assert.Equal(t, strings.Repeat("00", 32)+zeroPublicKey, raw.PrivateKey, "private key")

	assert.Equal(t, make([]byte, 32), kp.Seed, "binary seed")
	assert.Equal(t, 32, len(kp.PublicKey), "binary public key")
	assert.Equal(t, 64, len(kp.PrivateKey), "binary private key")
}

func TestMakeRawKeyPairFromMnemonic(t *testing.T) {
	raw, _, err := keypair.MakeRawKeyPairFromMnemonic(zeroMnemonic)
	require.Nil(t, err, "make from mnemonic")
	assert.Equal(t, zeroAddress, raw.Address, "address")

	_, _, err = keypair.MakeRawKeyPairFromMnemonic("abandon abandon")
	assert.Equal(t, fault.ErrMnemonicLength, err, "short phrase")
}

func TestMakeRawKeyPair(t *testing.T) {
	raw, kp, err := keypair.MakeRawKeyPair()
	require.Nil(t, err, "make new")

	again, _, err := keypair.MakeRawKeyPairFromMnemonic(raw.Mnemonic)
	require.Nil(t, err, "recover")
	assert.Equal(t, raw, again, "recovered key pair")
	assert.Equal(t, kp.PrivateKey[32:], kp.PublicKey, "public half")
}

func TestInvalidSeed(t *testing.T) {
	_, _, err := keypair.MakeRawKeyPairFromSeed(make([]byte, 31))
	assert.Equal(t, fault.ErrInvalidSeedLength, err, "short seed")
}

func TestAccountFromHexPublicKey(t *testing.T) {
	a, err := keypair.AccountFromHexPublicKey(zeroPublicKey)
	require.Nil(t, err, "valid key")
	assert.Equal(t, zeroAddress, a.String(), "address")

	_, err = keypair.AccountFromHexPublicKey(zeroPublicKey[:62])
	assert.Equal(t, keypair.ErrKeyLength, err, "short key")

	_, err = keypair.AccountFromHexPublicKey("zz")
	assert.NotNil(t, err, "bad hex")
}
