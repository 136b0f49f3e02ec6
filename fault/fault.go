// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AddressError GenericError
type ChecksumError GenericError
type DecodeError GenericError
type ExistsError GenericError
type InvalidError GenericError
type MnemonicError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type TypeError GenericError
type ValidationError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = InvalidError("already initialised")
	ErrAuctionRequired           = ValidationError("auction key is required")
	ErrBidderRequired            = ValidationError("bidder is required")
	ErrChecksumMismatch          = ChecksumError("checksum mismatch")
	ErrChecksumTooShort          = ChecksumError("data is shorter than checksum")
	ErrConfigurationNotTable     = InvalidError("configuration did not return a table")
	ErrCryptoFailed              = ProcessError("cryptographic operation failed")
	ErrDuplicateKey              = DecodeError("duplicate map key")
	ErrEmptyRecord               = DecodeError("signed blob has no record")
	ErrFeeOverflow               = ValidationError("fee calculation overflows")
	ErrFirstRoundRequired        = ValidationError("first round must be at least one")
	ErrGenesisHashLength         = ValidationError("genesis hash length is invalid")
	ErrGenesisIDTooLong          = ValidationError("genesis id is too long")
	ErrIdentityNameAlreadyExists = ExistsError("identity name already exists")
	ErrIdentityNameNotFound      = NotFoundError("identity name not found")
	ErrInvalidAddressChecksum    = AddressError("address checksum mismatch")
	ErrInvalidAddressCharacter   = AddressError("address contains non-base32 characters")
	ErrInvalidAddressLength      = AddressError("address length is invalid")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidFieldType          = DecodeError("field has wrong type")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidPasswordLength     = InvalidError("password is too short")
	ErrInvalidPublicKeyLength    = AddressError("public key length is invalid")
	ErrInvalidRecordKind         = DecodeError("signed blob has unknown record kind")
	ErrInvalidSaltLength         = InvalidError("salt length is invalid")
	ErrInvalidSeedLength         = InvalidError("seed length is invalid")
	ErrInvalidSignature          = InvalidError("invalid signature")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrLastRoundBeforeFirst      = ValidationError("last round is before first round")
	ErrMnemonicChecksum          = MnemonicError("mnemonic checksum word mismatch")
	ErrMnemonicLength            = MnemonicError("mnemonic word count is invalid")
	ErrMnemonicPadding           = MnemonicError("mnemonic padding bits are not zero")
	ErrMnemonicUnknownWord       = MnemonicError("mnemonic contains unknown word")
	ErrNegativeInteger           = DecodeError("negative integers are not supported")
	ErrNestingTooDeep            = DecodeError("nesting is too deep")
	ErrNonCanonicalAddress       = AddressError("address is not in canonical form")
	ErrNonCanonicalBlob          = DecodeError("signed blob is not in canonical form")
	ErrNonStringKey              = DecodeError("map key is not a string")
	ErrNotInitialised            = ProcessError("not initialised")
	ErrNotPrivateKey             = InvalidError("identity has no private data")
	ErrNotRecord                 = TypeError("not a transaction or bid record")
	ErrNoteTooLong               = ValidationError("note is too long")
	ErrPasswordMismatch          = InvalidError("passwords do not match")
	ErrReceiverRequired          = ValidationError("receiver is required")
	ErrRoundRangeTooLarge        = ValidationError("round range exceeds transaction lifetime")
	ErrSenderRequired            = ValidationError("sender is required")
	ErrSignerMismatch            = ValidationError("signer does not match record account")
	ErrTrailingBytes             = DecodeError("trailing bytes after value")
	ErrTruncated                 = DecodeError("input is truncated")
	ErrUnknownField              = DecodeError("record contains unknown field")
	ErrUnsupportedTag            = DecodeError("unsupported msgpack tag")
	ErrUnsupportedType           = TypeError("unsupported type for canonical encoding")
	ErrWrongPassword             = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AddressError) Error() string    { return string(e) }
func (e ChecksumError) Error() string   { return string(e) }
func (e DecodeError) Error() string     { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e MnemonicError) Error() string   { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e TypeError) Error() string       { return string(e) }
func (e ValidationError) Error() string { return string(e) }

// determine the class of an error
func IsErrAddress(e error) bool    { _, ok := e.(AddressError); return ok }
func IsErrChecksum(e error) bool   { _, ok := e.(ChecksumError); return ok }
func IsErrDecode(e error) bool     { _, ok := e.(DecodeError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrMnemonic(e error) bool   { _, ok := e.(MnemonicError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrType(e error) bool       { _, ok := e.(TypeError); return ok }
func IsErrValidation(e error) bool { _, ok := e.(ValidationError); return ok }
