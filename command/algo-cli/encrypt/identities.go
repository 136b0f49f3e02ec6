// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package encrypt

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/mnemonic"
)

// Identities - identity file data format
type Identities struct {
	DefaultIdentity string              `json:"default_identity"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// Private - decrypted identity
type Private struct {
	PrivateKey  *account.PrivateKey
	Mnemonic    string
	Description string
}

// New - an empty identity set
func New() *Identities {
	return &Identities{
		Identities: make(map[string]Identity),
	}
}

// Load - read the identities file, a missing file gives an empty set
func Load(filename string) (*Identities, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if nil != err {
		return nil, err
	}
	defer f.Close()

	ids := New()
	err = json.NewDecoder(f).Decode(ids)
	if nil != err {
		return nil, err
	}
	if nil == ids.Identities {
		ids.Identities = make(map[string]Identity)
	}
	return ids, nil
}

// Save - write identities to a temporary file and rename over the
// original, keeping the previous version as a backup
func (ids *Identities) Save(filename string) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	b, err := json.MarshalIndent(ids, "", "  ")
	if nil != err {
		return err
	}

	err = os.WriteFile(tempFile, append(b, '\n'), 0600)
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// Names - sorted identity names
func (ids *Identities) Names() []string {
	names := make([]string, 0, len(ids.Identities))
	for name := range ids.Identities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Identity - find identity for a given name
func (ids *Identities) Identity(name string) (*Identity, error) {
	id, ok := ids.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}
	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (ids *Identities) Account(name string) (*account.Account, error) {
	id, err := ids.Identity(name)
	if nil != err {
		return nil, err
	}
	return account.AccountFromString(id.Account)
}

// Private - find identity and decrypt its key for a given name
func (ids *Identities) Private(password string, name string) (*Private, error) {
	id, err := ids.Identity(name)
	if nil != err {
		return nil, err
	}
	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity, the first one added becomes the default
func (ids *Identities) AddIdentity(name string, description string, privateKey *account.PrivateKey, password string) error {

	if _, ok := ids.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	phrase, err := mnemonic.FromPrivateKey(privateKey)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(phrase, secretKey)
	if nil != err {
		return err
	}

	ids.add(name, Identity{
		Description: description,
		Account:     privateKey.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	})
	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (ids *Identities) AddReceiveOnlyIdentity(name string, description string, address string) error {

	if _, ok := ids.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	if _, err := account.AccountFromString(address); nil != err {
		return err
	}

	ids.add(name, Identity{
		Description: description,
		Account:     address,
	})
	return nil
}

func (ids *Identities) add(name string, identity Identity) {
	if nil == ids.Identities {
		ids.Identities = make(map[string]Identity)
	}
	ids.Identities[name] = identity
	if "" == ids.DefaultIdentity {
		ids.DefaultIdentity = name
	}
}

// check if password unlocks the identity data
func decryptIdentity(password string, identity *Identity) (*Private, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if err != nil || identity.Data == "" {
		return nil, fault.ErrNotPrivateKey
	}

	key, err := generateKey(password, salt)
	if err != nil {
		return nil, err
	}

	phrase, err := decryptData(identity.Data, key)
	if err != nil {
		return nil, fault.ErrWrongPassword
	}

	privateKey, err := mnemonic.ToPrivateKey(phrase)
	if err != nil {
		return nil, err
	}

	if privateKey.Account().String() != identity.Account {
		return nil, fault.ErrWrongPassword
	}

	return &Private{
		PrivateKey:  privateKey,
		Mnemonic:    phrase,
		Description: identity.Description,
	}, nil
}
