// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fhetype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTagValues pins the wire values of the tags most callers rely on.
func TestTagValues(t *testing.T) {
	tests := []struct {
		fheType  FheType
		expected uint8
		bits     int
	}{
		{Bool, 0, 1},
		{Uint4, 1, 4},
		{Uint8, 2, 8},
		{Uint16, 3, 16},
		{Uint32, 4, 32},
		{Uint64, 5, 64},
		{Uint128, 6, 128},
		{Uint160, 7, 160},
		{Uint256, 8, 256},
		{Uint512, 9, 512},
		{Uint1024, 10, 1024},
		{Uint2048, 11, 2048},
		{Int2, 17, 2},
		{Int256, 29, 256},
		{AsciiString, 30, 0},
		{Int2048, 33, 2048},
		{Uint24, 34, 24},
		{Int248, 83, 248},
	}

	for _, tt := range tests {
		t.Run(tt.fheType.String(), func(t *testing.T) {
			require.Equal(t, tt.expected, uint8(tt.fheType))
			require.Equal(t, tt.bits, tt.fheType.BitLength())
		})
	}
	require.Equal(t, Uint160, Address)
	require.Equal(t, 84, Count)
}

func TestFromInt32(t *testing.T) {
	for v := int32(0); v < int32(Count); v++ {
		ft, err := FromInt32(v)
		require.NoError(t, err)
		require.Equal(t, v, int32(ft))
		require.True(t, ft.Valid())
	}

	for _, v := range []int32{-1, int32(Count), 255, 1 << 20} {
		_, err := FromInt32(v)
		require.ErrorIs(t, err, ErrInvalidFheType)
	}
}

func TestFromByte(t *testing.T) {
	ft, err := FromByte(9)
	require.NoError(t, err)
	require.Equal(t, Uint512, ft)

	_, err = FromByte(84)
	require.ErrorIs(t, err, ErrInvalidFheType)
}

func TestString(t *testing.T) {
	require.Equal(t, "Uint2048", Uint2048.String())
	require.Equal(t, "Bool", Bool.String())
	require.Equal(t, "FheType(200)", FheType(200).String())
	require.Zero(t, FheType(200).BitLength())
}

func TestWidth(t *testing.T) {
	require.True(t, Uint512.IsWide())
	require.True(t, Uint1024.IsWide())
	require.True(t, Uint2048.IsWide())
	require.False(t, Uint256.IsWide())
	require.False(t, Int512.IsWide())
	require.False(t, Bool.IsWide())

	require.Equal(t, 64, Uint512.ByteLength())
	require.Equal(t, 128, Uint1024.ByteLength())
	require.Equal(t, 256, Uint2048.ByteLength())
	require.Equal(t, 20, Uint160.ByteLength())
	require.Equal(t, 1, Bool.ByteLength())
	require.Equal(t, 1, Uint4.ByteLength())
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name     string
		expected FheType
	}{
		{"Bool", Bool},
		{"ebool", Bool},
		{"uint64", Uint64},
		{"Euint2048", Uint2048},
		{"asciistring", AsciiString},
		{"INT248", Int248},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseName(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseName("uint7")
	require.ErrorIs(t, err, ErrInvalidFheType)
}
