// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

//go:generate mockgen -source=signer.go -destination=mocks/signer.go -package=mocks

// Signer - anything that can produce ed25519 signatures for an account
type Signer interface {
	Account() *Account
	Sign(message []byte) (Signature, error)
}
