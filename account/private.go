// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"

	"github.com/oneyesoneno/js-algorand-sdk/fault"
)

// PrivateKey - an ed25519 private key: seed followed by public key
type PrivateKey struct {
	PrivateKey ed25519.PrivateKey
}

// PrivateKeyFromSeed - derive the key pair for a 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}
	return &PrivateKey{
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// PrivateKeyFromBytes - this converts a 64 byte private key
//
// the public half must match the key derived from the seed half
func PrivateKeyFromBytes(privateKeyBytes []byte) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(privateKeyBytes) {
		return nil, fault.ErrNotPrivateKey
	}
	privateKey, err := PrivateKeyFromSeed(privateKeyBytes[:ed25519.SeedSize])
	if nil != err {
		return nil, err
	}
	if !bytes.Equal(privateKey.PrivateKey, privateKeyBytes) {
		return nil, fault.ErrNotPrivateKey
	}
	return privateKey, nil
}

// Account - return the corresponding account
func (privateKey *PrivateKey) Account() *Account {
	account := &Account{}
	copy(account.PublicKey[:], privateKey.PrivateKey[ed25519.SeedSize:])
	return account
}

// Seed - the 32 byte seed the key was derived from
func (privateKey *PrivateKey) Seed() []byte {
	return privateKey.PrivateKey.Seed()
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) (Signature, error) {
	if ed25519.PrivateKeySize != len(privateKey.PrivateKey) {
		return nil, fault.ErrNotPrivateKey
	}
	return ed25519.Sign(privateKey.PrivateKey, message), nil
}
