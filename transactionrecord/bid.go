// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/msgpack"
)

// bid map keys
const (
	auctionKey   = "auc"
	auctionIDKey = "aid"
	bidAmountKey = "cur"
	bidderKey    = "bidder"
	bidIDKey     = "id"
	maxPriceKey  = "price"
)

// Bid - the unpacked auction bid structure
type Bid struct {
	Bidder    *account.Account `json:"bidder"`    // bidder
	BidAmount uint64           `json:"bidAmount"` // cur: currency units offered
	MaxPrice  uint64           `json:"maxPrice"`  // price: highest accepted price
	BidID     uint64           `json:"bidID"`     // id
	Auction   *account.Account `json:"auction"`   // auc: auction key
	AuctionID uint64           `json:"auctionID"` // aid
}

// Kind - always a bid
func (bid *Bid) Kind() Kind {
	return BidKind
}

// Validate - check required fields
func (bid *Bid) Validate() error {
	if nil == bid {
		return fault.ErrNotRecord
	}
	if nil == bid.Bidder || bid.Bidder.IsZero() {
		return fault.ErrBidderRequired
	}
	if nil == bid.Auction || bid.Auction.IsZero() {
		return fault.ErrAuctionRequired
	}
	return nil
}

// Map - the wire form, before empty fields are removed
func (bid *Bid) Map() msgpack.Map {
	m := msgpack.Map{
		bidAmountKey: bid.BidAmount,
		maxPriceKey:  bid.MaxPrice,
		bidIDKey:     bid.BidID,
		auctionIDKey: bid.AuctionID,
	}
	putAccount(m, bidderKey, bid.Bidder)
	putAccount(m, auctionKey, bid.Auction)
	return m
}
