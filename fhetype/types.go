// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fhetype enumerates the FHE type tags shared by ciphertext handles,
// decrypted plaintexts and the on-chain ACL. Tag values are fixed by the
// external type table and must never be renumbered.
package fhetype

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFheType is returned when a discriminator does not name a known tag.
var ErrInvalidFheType = errors.New("invalid FHE type")

// FheType identifies the bit width and signedness of an encrypted value.
type FheType uint8

const (
	Bool FheType = iota
	Uint4
	Uint8
	Uint16
	Uint32
	Uint64
	Uint128
	Uint160
	Uint256
	Uint512
	Uint1024
	Uint2048
	Uint2
	Uint6
	Uint10
	Uint12
	Uint14
	Int2
	Int4
	Int6
	Int8
	Int10
	Int12
	Int14
	Int16
	Int32
	Int64
	Int128
	Int160
	Int256
	AsciiString
	Int512
	Int1024
	Int2048
	Uint24
	Uint40
	Uint48
	Uint56
	Uint72
	Uint80
	Uint88
	Uint96
	Uint104
	Uint112
	Uint120
	Uint136
	Uint144
	Uint152
	Uint168
	Uint176
	Uint184
	Uint192
	Uint200
	Uint208
	Uint216
	Uint224
	Uint232
	Uint240
	Uint248
	Int24
	Int40
	Int48
	Int56
	Int72
	Int80
	Int88
	Int96
	Int104
	Int112
	Int120
	Int136
	Int144
	Int152
	Int168
	Int176
	Int184
	Int192
	Int200
	Int208
	Int216
	Int224
	Int232
	Int240
	Int248
)

// Count is the number of defined tags. Valid tags are [0, Count).
const Count = int(Int248) + 1

type info struct {
	name string
	bits int
}

// Bool is carried on one bit of cleartext; AsciiString has no fixed width.
var table = [Count]info{
	Bool:        {"Bool", 1},
	Uint4:       {"Uint4", 4},
	Uint8:       {"Uint8", 8},
	Uint16:      {"Uint16", 16},
	Uint32:      {"Uint32", 32},
	Uint64:      {"Uint64", 64},
	Uint128:     {"Uint128", 128},
	Uint160:     {"Uint160", 160},
	Uint256:     {"Uint256", 256},
	Uint512:     {"Uint512", 512},
	Uint1024:    {"Uint1024", 1024},
	Uint2048:    {"Uint2048", 2048},
	Uint2:       {"Uint2", 2},
	Uint6:       {"Uint6", 6},
	Uint10:      {"Uint10", 10},
	Uint12:      {"Uint12", 12},
	Uint14:      {"Uint14", 14},
	Int2:        {"Int2", 2},
	Int4:        {"Int4", 4},
	Int6:        {"Int6", 6},
	Int8:        {"Int8", 8},
	Int10:       {"Int10", 10},
	Int12:       {"Int12", 12},
	Int14:       {"Int14", 14},
	Int16:       {"Int16", 16},
	Int32:       {"Int32", 32},
	Int64:       {"Int64", 64},
	Int128:      {"Int128", 128},
	Int160:      {"Int160", 160},
	Int256:      {"Int256", 256},
	AsciiString: {"AsciiString", 0},
	Int512:      {"Int512", 512},
	Int1024:     {"Int1024", 1024},
	Int2048:     {"Int2048", 2048},
	Uint24:      {"Uint24", 24},
	Uint40:      {"Uint40", 40},
	Uint48:      {"Uint48", 48},
	Uint56:      {"Uint56", 56},
	Uint72:      {"Uint72", 72},
	Uint80:      {"Uint80", 80},
	Uint88:      {"Uint88", 88},
	Uint96:      {"Uint96", 96},
	Uint104:     {"Uint104", 104},
	Uint112:     {"Uint112", 112},
	Uint120:     {"Uint120", 120},
	Uint136:     {"Uint136", 136},
	Uint144:     {"Uint144", 144},
	Uint152:     {"Uint152", 152},
	Uint168:     {"Uint168", 168},
	Uint176:     {"Uint176", 176},
	Uint184:     {"Uint184", 184},
	Uint192:     {"Uint192", 192},
	Uint200:     {"Uint200", 200},
	Uint208:     {"Uint208", 208},
	Uint216:     {"Uint216", 216},
	Uint224:     {"Uint224", 224},
	Uint232:     {"Uint232", 232},
	Uint240:     {"Uint240", 240},
	Uint248:     {"Uint248", 248},
	Int24:       {"Int24", 24},
	Int40:       {"Int40", 40},
	Int48:       {"Int48", 48},
	Int56:       {"Int56", 56},
	Int72:       {"Int72", 72},
	Int80:       {"Int80", 80},
	Int88:       {"Int88", 88},
	Int96:       {"Int96", 96},
	Int104:      {"Int104", 104},
	Int112:      {"Int112", 112},
	Int120:      {"Int120", 120},
	Int136:      {"Int136", 136},
	Int144:      {"Int144", 144},
	Int152:      {"Int152", 152},
	Int168:      {"Int168", 168},
	Int176:      {"Int176", 176},
	Int184:      {"Int184", 184},
	Int192:      {"Int192", 192},
	Int200:      {"Int200", 200},
	Int208:      {"Int208", 208},
	Int216:      {"Int216", 216},
	Int224:      {"Int224", 224},
	Int232:      {"Int232", 232},
	Int240:      {"Int240", 240},
	Int248:      {"Int248", 248},
}

// Address is the alias used by contracts for encrypted 160-bit addresses.
const Address = Uint160

// FromInt32 decodes a raw discriminator as carried by protobuf messages.
func FromInt32(v int32) (FheType, error) {
	if v < 0 || int(v) >= Count {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFheType, v)
	}
	return FheType(v), nil
}

// FromByte decodes the tag byte embedded in a ciphertext handle.
func FromByte(b byte) (FheType, error) {
	return FromInt32(int32(b))
}

// Valid reports whether t is a defined tag.
func (t FheType) Valid() bool {
	return int(t) < Count
}

func (t FheType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("FheType(%d)", uint8(t))
	}
	return table[t].name
}

// BitLength returns the cleartext width in bits, 0 for AsciiString or an
// unknown tag.
func (t FheType) BitLength() int {
	if !t.Valid() {
		return 0
	}
	return table[t].bits
}

// ByteLength is the natural little-endian payload length for t.
func (t FheType) ByteLength() int {
	return (t.BitLength() + 7) / 8
}

// IsWide reports whether values of t do not fit a single uint256 word and are
// carried as ABI bytes instead. Only the unsigned wide classes qualify; the
// signed 512+ bit tags are not produced by the decryption pipeline.
func (t FheType) IsWide() bool {
	switch t {
	case Uint512, Uint1024, Uint2048:
		return true
	default:
		return false
	}
}

// ParseName looks up a tag by name, ignoring case. An "E" prefix as used by
// contract types (Euint64, Ebool) is accepted.
func ParseName(name string) (FheType, error) {
	for i := range table {
		if strings.EqualFold(table[i].name, name) || strings.EqualFold("E"+table[i].name, name) {
			return FheType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFheType, name)
}
