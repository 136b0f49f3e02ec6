// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/digest"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/msgpack"
)

// Encoded - a validated record in canonical form
//
// the contents cannot change after Pack returns
type Encoded struct {
	kind   Kind
	fields msgpack.Map
	packed Packed
}

// Pack - validate a record and compute its canonical bytes
//
// nothing is encoded for an invalid record
func Pack(record Record) (*Encoded, error) {
	if nil == record {
		return nil, fault.ErrNotRecord
	}
	kind := record.Kind()
	if kind <= NullKind || kind >= InvalidKind {
		return nil, fault.ErrInvalidRecordKind
	}

	err := record.Validate()
	if nil != err {
		return nil, err
	}

	c, err := msgpack.Canonicalize(record.Map())
	if nil != err {
		return nil, err
	}
	fields, ok := c.(msgpack.Map)
	if !ok {
		return nil, fault.ErrUnsupportedType
	}

	packed, err := msgpack.Encode(fields)
	if nil != err {
		return nil, err
	}

	return &Encoded{
		kind:   kind,
		fields: fields,
		packed: packed,
	}, nil
}

// Kind - kind of the encoded record
func (encoded *Encoded) Kind() Kind {
	return encoded.kind
}

// Fields - copy of the canonical field map
func (encoded *Encoded) Fields() (msgpack.Map, error) {
	c, err := msgpack.Canonicalize(encoded.fields)
	if nil != err {
		return nil, err
	}
	m, ok := c.(msgpack.Map)
	if !ok {
		return nil, fault.ErrUnsupportedType
	}
	return m, nil
}

// Packed - copy of the canonical bytes
func (encoded *Encoded) Packed() Packed {
	return append(Packed{}, encoded.packed...)
}

// PreImage - domain prefix followed by the canonical bytes
//
// this is the message that is hashed for the identifier and signed
func (encoded *Encoded) PreImage() []byte {
	prefix := encoded.kind.Prefix()
	buffer := make([]byte, 0, len(prefix)+len(encoded.packed))
	buffer = append(buffer, prefix...)
	return append(buffer, encoded.packed...)
}

// Digest - hash of the pre-image
func (encoded *Encoded) Digest() digest.Digest {
	return digest.NewPrefixedDigest(encoded.kind.Prefix(), encoded.packed)
}

// ID - text form of the digest
func (encoded *Encoded) ID() string {
	return encoded.Digest().String()
}

// Sign - sign the pre-image and return the signed blob
//
// the blob is the canonical encoding of {"sig": signature, key: fields}
// where key is "txn" or "bid"
func (encoded *Encoded) Sign(signer account.Signer) (Packed, error) {
	if nil == signer {
		return nil, fault.ErrNotPrivateKey
	}

	signature, err := signer.Sign(encoded.PreImage())
	if nil != err {
		return nil, err
	}
	signature, err = account.SignatureFromBytes(signature)
	if nil != err {
		return nil, err
	}

	return encoded.signedBlob(signature)
}

// the blob is the canonical encoding of {"sig": signature, key: fields}
func (encoded *Encoded) signedBlob(signature account.Signature) (Packed, error) {
	blob := msgpack.Map{
		signatureKey:       []byte(signature),
		encoded.kind.Key(): encoded.fields,
	}
	return msgpack.Encode(blob)
}
