// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requestid

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		id       *uint256.Int
		expected string
	}{
		{"zero", uint256.NewInt(0), strings.Repeat("0", 64)},
		{"nil", nil, strings.Repeat("0", 64)},
		{"one", uint256.NewInt(1), strings.Repeat("0", 63) + "1"},
		{"42", uint256.NewInt(42), strings.Repeat("0", 62) + "2a"},
		{"max", new(uint256.Int).SetAllOne(), strings.Repeat("f", 64)},
		{
			"lowercase",
			uint256.NewInt(0xABCDEF0123456789),
			strings.Repeat("0", 48) + "abcdef0123456789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.id)
			require.Equal(t, tt.expected, got)
			require.Len(t, got, EncodedLength)
		})
	}
}

func TestFormatBig(t *testing.T) {
	got, err := FormatBig(big.NewInt(255))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("0", 62)+"ff", got)

	got, err = FormatBig(nil)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("0", 64), got)

	_, err = FormatBig(big.NewInt(-1))
	require.ErrorIs(t, err, ErrNegative)

	_, err = FormatBig(new(big.Int).Lsh(big.NewInt(1), 256))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestParse(t *testing.T) {
	id := uint256.MustFromDecimal("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	s := Format(id)

	got, err := Parse(s)
	require.NoError(t, err)
	require.Equal(t, id, got)

	got, err = Parse("0x" + s)
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = Parse("2a")
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = Parse(strings.Repeat("g", 64))
	require.ErrorIs(t, err, hexutil.ErrSyntax)
	require.ErrorContains(t, err, "invalid hex request id")

	got, err = Parse("0X" + strings.ToUpper(s))
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func FuzzFormat(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x2a})
	f.Add(make([]byte, 32))
	f.Fuzz(func(t *testing.T, raw []byte) {
		if len(raw) > 32 {
			raw = raw[:32]
		}
		v := new(uint256.Int).SetBytes(raw)
		s := Format(v)
		require.Len(t, s, EncodedLength)
		require.Equal(t, strings.ToLower(s), s)

		decoded, err := hex.DecodeString(s)
		require.NoError(t, err)
		require.Equal(t, v, new(uint256.Int).SetBytes32(decoded))

		back, err := Parse(s)
		require.NoError(t, err)
		require.Equal(t, v, back)
	})
}
