// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/oneyesoneno/js-algorand-sdk/transactionrecord"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, err := checkAccount(c.String("receiver"), m.identities, ErrRequiredReceiver)
	if nil != err {
		return err
	}

	closeTo, err := checkOptionalAccount(c.String("close"), m.identities)
	if nil != err {
		return err
	}

	first, last, err := checkRoundRange(c.Uint64("first-round"), c.Uint64("last-round"), m.config.ValidRounds)
	if nil != err {
		return err
	}

	privateKey, err := getPrivateKey(c, m)
	if nil != err {
		return err
	}

	tx := &transactionrecord.Transaction{
		From:             privateKey.Account(),
		To:               to,
		Amount:           c.Uint64("amount"),
		Fee:              c.Uint64("fee"),
		FirstRound:       first,
		LastRound:        last,
		GenesisID:        m.config.GenesisID,
		GenesisHash:      m.config.GenesisHashBytes(),
		CloseRemainderTo: closeTo,
	}
	if note := c.String("note"); "" != note {
		tx.Note = []byte(note)
	}

	// no explicit fee: estimate from the signed size
	if 0 == tx.Fee {
		err = tx.SetFeePerByte(m.config.FeePerByte)
		if nil != err {
			return err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", tx.From)
		fmt.Fprintf(m.e, "receiver: %s\n", tx.To)
		fmt.Fprintf(m.e, "amount: %d  fee: %d\n", tx.Amount, tx.Fee)
		fmt.Fprintf(m.e, "rounds: %d..%d\n", tx.FirstRound, tx.LastRound)
	}

	signed, err := tx.Sign(privateKey)
	if nil != err {
		return err
	}

	id, stored, err := storeSigned(m, signed)
	if nil != err {
		return err
	}

	return printJson(m.w, signedResult{
		ID:     id,
		Kind:   transactionrecord.TransactionKind.String(),
		Stored: stored,
		Signed: signed,
	})
}

func runBid(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	auction, err := checkAccount(c.String("auction"), m.identities, ErrRequiredAuction)
	if nil != err {
		return err
	}

	privateKey, err := getPrivateKey(c, m)
	if nil != err {
		return err
	}

	bid := &transactionrecord.Bid{
		Bidder:    privateKey.Account(),
		BidAmount: c.Uint64("amount"),
		MaxPrice:  c.Uint64("price"),
		BidID:     c.Uint64("bid-id"),
		Auction:   auction,
		AuctionID: c.Uint64("auction-id"),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "bidder: %s\n", bid.Bidder)
		fmt.Fprintf(m.e, "auction: %s  id: %d\n", bid.Auction, bid.AuctionID)
		fmt.Fprintf(m.e, "amount: %d  price: %d\n", bid.BidAmount, bid.MaxPrice)
	}

	signed, err := bid.Sign(privateKey)
	if nil != err {
		return err
	}

	note, err := transactionrecord.BidNote(signed)
	if nil != err {
		return err
	}

	id, stored, err := storeSigned(m, signed)
	if nil != err {
		return err
	}

	return printJson(m.w, signedResult{
		ID:     id,
		Kind:   transactionrecord.BidKind.String(),
		Stored: stored,
		Signed: signed,
		Note:   note,
	})
}
