// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// algo-cli - create keys, sign payment transactions and auction bids
//
// keys are kept in an identities file encrypted with a password,
// records signed by the tool are kept in a local database so the
// history of each account can be listed
//
//   algo-cli generate
//   algo-cli -i alice add -d "first account" --new
//   algo-cli -i alice transfer -r bob -a 1000 -F 6000000
//   algo-cli history -o alice
package main
