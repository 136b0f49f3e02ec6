// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"

	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/msgpack"
)

// Signed - a signed blob turned back into a record
type Signed struct {
	Kind      Kind
	Record    Record
	Signature account.Signature
	Encoded   *Encoded
}

// Unpack - turn a signed blob into a record
//
// must cast Record to the correct type
//
// e.g.
//   switch r := signed.Record.(type) {
//   case *transactionrecord.Transaction:
//
// absent fields take their zero value and unknown fields are an error,
// the blob must be exactly the canonical encoding of what it holds
func Unpack(blob Packed) (*Signed, error) {
	m, err := msgpack.DecodeMap(blob)
	if nil != err {
		return nil, err
	}

	var sig []byte
	var body msgpack.Map
	kind := NullKind

	for key, value := range m {
		switch key {
		case signatureKey:
			sig, err = bytesField(value)
		case transactionKey, bidKey:
			if NullKind != kind {
				return nil, fault.ErrInvalidRecordKind
			}
			kind = TransactionKind
			if bidKey == key {
				kind = BidKind
			}
			var ok bool
			body, ok = value.(msgpack.Map)
			if !ok {
				err = fault.ErrInvalidFieldType
			}
		default:
			err = fault.ErrUnknownField
		}
		if nil != err {
			return nil, err
		}
	}

	if NullKind == kind {
		return nil, fault.ErrEmptyRecord
	}
	signature, err := account.SignatureFromBytes(sig)
	if nil != err {
		return nil, err
	}

	var record Record
	switch kind {
	case TransactionKind:
		record, err = unpackTransaction(body)
	case BidKind:
		record, err = unpackBid(body)
	}
	if nil != err {
		return nil, err
	}

	encoded, err := Pack(record)
	if nil != err {
		return nil, err
	}

	// only the exact canonical bytes are accepted
	canonical, err := encoded.signedBlob(signature)
	if nil != err {
		return nil, err
	}
	if !bytes.Equal(canonical, blob) {
		return nil, fault.ErrNonCanonicalBlob
	}

	return &Signed{
		Kind:      kind,
		Record:    record,
		Signature: signature,
		Encoded:   encoded,
	}, nil
}

// Verify - check the signature against the record's own account
//
// the sender of a transaction or the bidder of a bid
func (signed *Signed) Verify() error {
	var signer *account.Account
	switch r := signed.Record.(type) {
	case *Transaction:
		signer = r.From
	case *Bid:
		signer = r.Bidder
	default:
		return fault.ErrNotRecord
	}
	if signed.Encoded.Kind() != signed.Record.Kind() {
		return fault.ErrInvalidRecordKind
	}
	return signer.CheckSignature(signed.Encoded.PreImage(), signed.Signature)
}

// ID - identifier of the record
func (signed *Signed) ID() string {
	return signed.Encoded.ID()
}

func unpackTransaction(m msgpack.Map) (*Transaction, error) {
	transaction := &Transaction{}
	typeSeen := false

	for key, value := range m {
		var err error
		switch key {
		case amountKey:
			transaction.Amount, err = uint64Field(value)
		case feeKey:
			transaction.Fee, err = uint64Field(value)
		case firstRoundKey:
			transaction.FirstRound, err = uint64Field(value)
		case lastRoundKey:
			transaction.LastRound, err = uint64Field(value)
		case noteKey:
			transaction.Note, err = bytesField(value)
		case genesisIDKey:
			transaction.GenesisID, err = stringField(value)
		case genesisHashKey:
			transaction.GenesisHash, err = bytesField(value)
		case senderKey:
			transaction.From, err = accountField(value)
		case receiverKey:
			transaction.To, err = accountField(value)
		case closeKey:
			transaction.CloseRemainderTo, err = accountField(value)
		case typeKey:
			var t string
			t, err = stringField(value)
			if nil == err && paymentType != t {
				err = fault.ErrInvalidRecordKind
			}
			typeSeen = true
		default:
			err = fault.ErrUnknownField
		}
		if nil != err {
			return nil, err
		}
	}
	if !typeSeen {
		return nil, fault.ErrInvalidRecordKind
	}
	return transaction, nil
}

func unpackBid(m msgpack.Map) (*Bid, error) {
	bid := &Bid{}

	for key, value := range m {
		var err error
		switch key {
		case bidderKey:
			bid.Bidder, err = accountField(value)
		case bidAmountKey:
			bid.BidAmount, err = uint64Field(value)
		case maxPriceKey:
			bid.MaxPrice, err = uint64Field(value)
		case bidIDKey:
			bid.BidID, err = uint64Field(value)
		case auctionKey:
			bid.Auction, err = accountField(value)
		case auctionIDKey:
			bid.AuctionID, err = uint64Field(value)
		default:
			err = fault.ErrUnknownField
		}
		if nil != err {
			return nil, err
		}
	}
	return bid, nil
}

func uint64Field(value interface{}) (uint64, error) {
	n, ok := value.(uint64)
	if !ok {
		return 0, fault.ErrInvalidFieldType
	}
	return n, nil
}

func bytesField(value interface{}) ([]byte, error) {
	b, ok := value.([]byte)
	if !ok {
		return nil, fault.ErrInvalidFieldType
	}
	return b, nil
}

func stringField(value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fault.ErrInvalidFieldType
	}
	return s, nil
}

func accountField(value interface{}) (*account.Account, error) {
	b, ok := value.([]byte)
	if !ok {
		return nil, fault.ErrInvalidFieldType
	}
	a, err := account.AccountFromPublicKey(b)
	if nil != err {
		return nil, fault.ErrInvalidFieldType
	}
	return a, nil
}
