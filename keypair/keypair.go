// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"encoding/hex"

	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/mnemonic"
)

// ErrKeyLength - hex key did not decode to a public key
var ErrKeyLength = fault.InvalidError("key length is invalid")

// KeyPair - structure to hold public and private keys and the seed
// that was used to generate them
type KeyPair struct {
	Seed       []byte
	PublicKey  []byte
	PrivateKey []byte
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Address    string `json:"address"`
	Mnemonic   string `json:"mnemonic"`
	Seed       string `json:"seed"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// MakeRawKeyPair - create new seed and generate public/private keys from it
func MakeRawKeyPair() (*RawKeyPair, *KeyPair, error) {
	seed, err := account.NewSeed()
	if nil != err {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(seed)
}

// MakeRawKeyPairFromMnemonic - regenerate public/private keys from a
// 25 word phrase
func MakeRawKeyPairFromMnemonic(phrase string) (*RawKeyPair, *KeyPair, error) {
	seed, err := mnemonic.ToSeed(phrase)
	if nil != err {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(seed)
}

// MakeRawKeyPairFromSeed - generate public/private keys from existing seed
func MakeRawKeyPairFromSeed(seed []byte) (*RawKeyPair, *KeyPair, error) {

	privateKey, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		return nil, nil, err
	}

	phrase, err := mnemonic.FromSeed(seed)
	if nil != err {
		return nil, nil, err
	}

	a := privateKey.Account()

	keyPair := KeyPair{
		Seed:       privateKey.Seed(),
		PublicKey:  a.PublicKeyBytes(),
		PrivateKey: privateKey.PrivateKeyBytes(),
	}

	rawKeyPair := RawKeyPair{
		Address:    a.String(),
		Mnemonic:   phrase,
		Seed:       hex.EncodeToString(keyPair.Seed),
		PublicKey:  hex.EncodeToString(keyPair.PublicKey),
		PrivateKey: hex.EncodeToString(keyPair.PrivateKey),
	}

	return &rawKeyPair, &keyPair, nil
}

// AccountFromHexPublicKey - create an account from a hexadecimal public key
func AccountFromHexPublicKey(publicKey string) (*account.Account, error) {

	k, err := hex.DecodeString(publicKey)
	if nil != err {
		return nil, err
	}

	a, err := account.AccountFromPublicKey(k)
	if nil != err {
		return nil, ErrKeyLength
	}
	return a, nil
}
