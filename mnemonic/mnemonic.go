// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mnemonic

import (
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/crypto/ed25519"

	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/digest"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
)

// miscellaneous constants
const (
	// WordCount - number of words in a phrase
	WordCount = 25

	bitsPerWord = 11
	wordMask    = 1<<bitsPerWord - 1
	listLength  = 1 << bitsPerWord

	// words needed to carry the seed bits
	keyWords = (ed25519.SeedSize*8 + bitsPerWord - 1) / bitsPerWord
)

// read only after init
var (
	wordList  []string
	wordIndex map[string]int
)

func init() {
	wordList = wordlists.English
	if listLength != len(wordList) {
		fault.Panicf("mnemonic: word list has: %d entries, expected: %d", len(wordList), listLength)
	}

	wordIndex = make(map[string]int, listLength)
	for i, word := range wordList {
		if _, ok := wordIndex[word]; ok {
			fault.Panicf("mnemonic: duplicate word: %q", word)
		}
		wordIndex[word] = i
	}
}

// FromSeed - convert a 32 byte seed to a 25 word phrase
func FromSeed(seed []byte) (string, error) {
	if ed25519.SeedSize != len(seed) {
		return "", fault.ErrInvalidSeedLength
	}

	indices := toUint11(seed)
	indices = append(indices, checksumIndex(seed))

	words := make([]string, 0, WordCount)
	for _, index := range indices {
		words = append(words, wordList[index])
	}
	return strings.Join(words, " "), nil
}

// ToSeed - convert a phrase back to its 32 byte seed
//
// words may be separated by any white space
func ToSeed(phrase string) ([]byte, error) {
	words := strings.Fields(phrase)
	if WordCount != len(words) {
		return nil, fault.ErrMnemonicLength
	}

	indices := make([]int, 0, WordCount)
	for _, word := range words {
		index, ok := wordIndex[word]
		if !ok {
			return nil, fault.ErrMnemonicUnknownWord
		}
		indices = append(indices, index)
	}

	// the key words unpack to one byte more than a seed
	buffer := fromUint11(indices[:keyWords])
	if ed25519.SeedSize+1 != len(buffer) || 0 != buffer[ed25519.SeedSize] {
		return nil, fault.ErrMnemonicPadding
	}
	seed := buffer[:ed25519.SeedSize]

	if checksumIndex(seed) != indices[keyWords] {
		return nil, fault.ErrMnemonicChecksum
	}
	return seed, nil
}

// FromPrivateKey - the phrase for the seed of a private key
func FromPrivateKey(privateKey *account.PrivateKey) (string, error) {
	return FromSeed(privateKey.Seed())
}

// ToPrivateKey - recover a private key from its phrase
func ToPrivateKey(phrase string) (*account.PrivateKey, error) {
	seed, err := ToSeed(phrase)
	if nil != err {
		return nil, err
	}
	return account.PrivateKeyFromSeed(seed)
}

// first 11 bits of the seed digest
func checksumIndex(seed []byte) int {
	d := digest.NewDigest(seed)
	return toUint11(d[:2])[0]
}

// pack bytes little endian into 11 bit groups, zero padding the last
func toUint11(data []byte) []int {
	result := make([]int, 0, (len(data)*8+bitsPerWord-1)/bitsPerWord)
	buffer := uint32(0)
	numBits := uint(0)
	for _, b := range data {
		buffer |= uint32(b) << numBits
		numBits += 8
		if numBits >= bitsPerWord {
			result = append(result, int(buffer&wordMask))
			buffer >>= bitsPerWord
			numBits -= bitsPerWord
		}
	}
	if 0 != numBits {
		result = append(result, int(buffer&wordMask))
	}
	return result
}

// inverse of toUint11
func fromUint11(indices []int) []byte {
	result := make([]byte, 0, (len(indices)*bitsPerWord+7)/8)
	buffer := uint32(0)
	numBits := uint(0)
	for _, index := range indices {
		buffer |= uint32(index) << numBits
		numBits += bitsPerWord
		for numBits >= 8 {
			result = append(result, byte(buffer))
			buffer >>= 8
			numBits -= 8
		}
	}
	if 0 != numBits {
		result = append(result, byte(buffer))
	}
	return result
}
