// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package plaintext holds decrypted values as returned by the KMS: a raw type
// discriminator and a little-endian payload.
package plaintext

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/luxfi/kmscodec/fhetype"
)

// TypedPlaintext is a decrypted value. FheType is kept as the raw
// discriminator received on the wire and may not name a known tag.
type TypedPlaintext struct {
	FheType int32
	Bytes   []byte
}

// Type decodes the discriminator.
func (p TypedPlaintext) Type() (fhetype.FheType, error) {
	return fhetype.FromInt32(p.FheType)
}

// New encodes v as a plaintext of type t. The payload is the little-endian
// encoding of v reduced modulo 2^BitLength, ByteLength bytes long.
func New(t fhetype.FheType, v *big.Int) TypedPlaintext {
	n := t.ByteLength()
	if v == nil {
		v = new(big.Int)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(n*8))
	be := new(big.Int).Mod(v, mod).FillBytes(make([]byte, n))
	return TypedPlaintext{FheType: int32(t), Bytes: reverse(be)}
}

func fromWord(t fhetype.FheType, v *uint256.Int) TypedPlaintext {
	if v == nil {
		v = new(uint256.Int)
	}
	word := v.Bytes32()
	le := reverse(word[:])
	return TypedPlaintext{FheType: int32(t), Bytes: le[:t.ByteLength()]}
}

func FromBool(b bool) TypedPlaintext {
	if b {
		return TypedPlaintext{FheType: int32(fhetype.Bool), Bytes: []byte{1}}
	}
	return TypedPlaintext{FheType: int32(fhetype.Bool), Bytes: []byte{0}}
}

func FromUint8(v uint8) TypedPlaintext {
	return fromWord(fhetype.Uint8, uint256.NewInt(uint64(v)))
}

func FromUint16(v uint16) TypedPlaintext {
	return fromWord(fhetype.Uint16, uint256.NewInt(uint64(v)))
}

func FromUint32(v uint32) TypedPlaintext {
	return fromWord(fhetype.Uint32, uint256.NewInt(uint64(v)))
}

func FromUint64(v uint64) TypedPlaintext {
	return fromWord(fhetype.Uint64, uint256.NewInt(v))
}

// FromUint128 truncates v to its low 128 bits.
func FromUint128(v *uint256.Int) TypedPlaintext {
	return fromWord(fhetype.Uint128, v)
}

// FromUint160 truncates v to its low 160 bits.
func FromUint160(v *uint256.Int) TypedPlaintext {
	return fromWord(fhetype.Uint160, v)
}

func FromUint256(v *uint256.Int) TypedPlaintext {
	return fromWord(fhetype.Uint256, v)
}

func FromUint512(v *big.Int) TypedPlaintext {
	return New(fhetype.Uint512, v)
}

func FromUint1024(v *big.Int) TypedPlaintext {
	return New(fhetype.Uint1024, v)
}

func FromUint2048(v *big.Int) TypedPlaintext {
	return New(fhetype.Uint2048, v)
}
