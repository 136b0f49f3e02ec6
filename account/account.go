// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/oneyesoneno/js-algorand-sdk/checksum"
	"github.com/oneyesoneno/js-algorand-sdk/digest"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
)

// miscellaneous constants
const (
	// public key followed by its checksum
	addressBytesLength = ed25519.PublicKeySize + checksum.Length

	// AddressLength - characters in the text form of an account
	AddressLength = (addressBytesLength*8 + 4) / 5
)

// Account - an ed25519 public key
//
// the text form is the unpadded base32 of the key followed by its
// checksum
type Account struct {
	PublicKey [ed25519.PublicKeySize]byte
}

// AccountFromPublicKey - wrap a raw public key
func AccountFromPublicKey(publicKey []byte) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidPublicKeyLength
	}
	account := &Account{}
	copy(account.PublicKey[:], publicKey)
	return account, nil
}

// AccountFromString - this converts an address string and returns an account
//
// the checksum is always verified
func AccountFromString(address string) (*Account, error) {
	if AddressLength != len(address) {
		return nil, fault.ErrInvalidAddressLength
	}

	buffer, err := digest.Encoding.DecodeString(address)
	if nil != err {
		return nil, fault.ErrInvalidAddressCharacter
	}
	if addressBytesLength != len(buffer) {
		return nil, fault.ErrInvalidAddressLength
	}

	// the final character carries unused low bits, which must be zero
	if digest.Encoding.EncodeToString(buffer) != address {
		return nil, fault.ErrNonCanonicalAddress
	}

	publicKey, err := checksum.Strip(buffer)
	if nil != err {
		return nil, fault.ErrInvalidAddressChecksum
	}
	return AccountFromPublicKey(publicKey)
}

// IsValidAddress - true if the string decodes to an account
func IsValidAddress(address string) bool {
	_, err := AccountFromString(address)
	return nil == err
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// IsZero - true if the public key is all zero bytes
func (account *Account) IsZero() bool {
	return account.PublicKey == [ed25519.PublicKeySize]byte{}
}

// CheckSignature - check the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}

	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// String - base32 encoding of key and checksum
func (account Account) String() string {
	return digest.Encoding.EncodeToString(checksum.Append(account.PublicKey[:]))
}

// GoString - for the fmt package (for %#v)
func (account Account) GoString() string {
	return "<account:" + account.String() + ">"
}

// MarshalText - convert an account to its address form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert an address to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromString(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
