// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package requestid converts decryption request ids to the fixed-width hex
// form the KMS core expects: the 32 big-endian bytes of the id, lowercase,
// without a 0x prefix.
package requestid

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
)

// EncodedLength is the length of a formatted id in characters.
const EncodedLength = 64

var (
	ErrInvalidLength = errors.New("request id must be 64 hex characters")
	ErrOverflow      = errors.New("request id does not fit in 256 bits")
	ErrNegative      = errors.New("request id is negative")
)

// Format renders id as 64 lowercase hex characters. A nil id formats as zero.
func Format(id *uint256.Int) string {
	if id == nil {
		id = new(uint256.Int)
	}
	b := id.Bytes32()
	return common.Bytes2Hex(b[:])
}

// FormatBig is Format for callers holding a *big.Int.
func FormatBig(id *big.Int) (string, error) {
	if id == nil {
		return Format(nil), nil
	}
	if id.Sign() < 0 {
		return "", ErrNegative
	}
	v, overflow := uint256.FromBig(id)
	if overflow {
		return "", ErrOverflow
	}
	return Format(v), nil
}

// Parse is the inverse of Format. A leading 0x is tolerated.
func Parse(s string) (*uint256.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != EncodedLength {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, len(s))
	}
	b, err := hexutil.Decode("0x" + s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex request id %q: %w", s, err)
	}
	return new(uint256.Int).SetBytes32(b), nil
}
