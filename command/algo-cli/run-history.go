// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/oneyesoneno/js-algorand-sdk/storage"
)

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := c.String("owner")
	if "" == owner {
		owner = m.identities.DefaultIdentity
	}
	a, err := checkAccount(owner, m.identities, ErrRequiredIdentity)
	if nil != err {
		return err
	}

	start := c.Uint64("start")
	count := c.Int("count")

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", a)
		fmt.Fprintf(m.e, "start: %d  count: %d\n", start, count)
	}

	history, next, err := storage.History(a, start, count)
	if nil != err {
		return err
	}

	result := struct {
		Account string                `json:"account"`
		Records []storage.HistoryItem `json:"records"`
		Next    uint64                `json:"next"`
	}{
		Account: a.String(),
		Records: history,
		Next:    next,
	}
	return printJson(m.w, result)
}
