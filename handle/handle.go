// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package handle reads the metadata packed into ciphertext handles.
//
// A handle is 32 bytes:
//
//	[0, 29)  keccak256(keccak256(bundleCiphertext) || index)[0:29]
//	29       handle index within the bundle
//	30       FHE type tag
//	31       format version (currently 0)
package handle

import (
	"errors"
	"fmt"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"

	"github.com/luxfi/kmscodec/fhetype"
)

const (
	// Length is the minimum size of an encoded handle.
	Length = 32

	hashLength    = 29
	indexOffset   = 29
	typeOffset    = 30
	versionOffset = 31
)

// CurrentVersion is the only handle format version emitted today.
const CurrentVersion uint8 = 0

var ErrHandleTooShort = errors.New("handle too short")

// TooShortError reports a handle shorter than Length.
type TooShortError struct {
	Actual   int
	Expected int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("handle too short: %d bytes, expected %d bytes", e.Actual, e.Expected)
}

func (e *TooShortError) Is(target error) bool {
	return target == ErrHandleTooShort
}

// Handle is a parsed ciphertext handle.
type Handle common.Hash

// ExtractFheType returns the FHE type tag stored at byte 30 of b. Bytes past
// the first 32 are ignored and the version byte is not checked.
func ExtractFheType(b []byte) (fhetype.FheType, error) {
	if len(b) < Length {
		return 0, &TooShortError{Actual: len(b), Expected: Length}
	}
	return fhetype.FromByte(b[typeOffset])
}

// Parse copies the first 32 bytes of b into a Handle after checking the type
// tag decodes.
func Parse(b []byte) (Handle, error) {
	if _, err := ExtractFheType(b); err != nil {
		return Handle{}, err
	}
	var h Handle
	copy(h[:], b[:Length])
	return h, nil
}

// FromHex parses a 0x-prefixed or bare hex handle.
func FromHex(s string) (Handle, error) {
	b, err := decodeHex(s)
	if err != nil {
		return Handle{}, err
	}
	return Parse(b)
}

// Derive builds the handle the coprocessor assigns to output index of the
// bundle whose ciphertext hashes to bundleHash.
func Derive(bundleHash common.Hash, index uint8, t fhetype.FheType, version uint8) Handle {
	digest := crypto.Keccak256(bundleHash.Bytes(), []byte{index})

	var h Handle
	copy(h[:hashLength], digest)
	h[indexOffset] = index
	h[typeOffset] = byte(t)
	h[versionOffset] = version
	return h
}

// FheType returns the decoded type tag. Handles built by Parse or Derive with
// a valid type never fail.
func (h Handle) FheType() (fhetype.FheType, error) {
	return fhetype.FromByte(h[typeOffset])
}

func (h Handle) Index() uint8 { return h[indexOffset] }

func (h Handle) Version() uint8 { return h[versionOffset] }

// Prefix returns the hash-derived bytes [0, 29).
func (h Handle) Prefix() []byte {
	return common.CopyBytes(h[:hashLength])
}

func (h Handle) Bytes() []byte { return common.CopyBytes(h[:]) }

// Hex returns the 0x-prefixed lowercase encoding.
func (h Handle) Hex() string { return common.Hash(h).Hex() }

func (h Handle) String() string { return h.Hex() }
