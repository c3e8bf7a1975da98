// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package abiencode encodes decrypted plaintexts for the decryption callback
// of the gateway contract:
//
//	callback(uint256 requestID, <results...>, bytes[] signatures)
//
// Results up to 256 bits are encoded as uint256, the 512, 1024 and 2048 bit
// classes as bytes. The output matches the JavaScript relayer byte for byte.
package abiencode

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/accounts/abi"

	"github.com/luxfi/kmscodec/fhetype"
	"github.com/luxfi/kmscodec/plaintext"
)

const wordSize = plaintext.WordSize

// placeholderRequestID fills the requestID slot while results are encoded.
// The slot is trimmed so the value never reaches the output.
var placeholderRequestID = big.NewInt(42)

var (
	uint256Type    = mustNewType("uint256")
	bytesType      = mustNewType("bytes")
	bytesArrayType = mustNewType("bytes[]")
)

func mustNewType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(fmt.Sprintf("failed to build ABI type %s: %v", t, err))
	}
	return typ
}

// Encoder encodes plaintext batches. The zero value is not usable; call New.
type Encoder struct {
	reporter Reporter
}

// New returns an Encoder reporting anomalies to reporter. A nil reporter
// discards them.
func New(reporter Reporter) *Encoder {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Encoder{reporter: reporter}
}

// EncodePlaintexts is Encoder.EncodePlaintexts with anomalies discarded.
func EncodePlaintexts(ptxts []plaintext.TypedPlaintext) []byte {
	return New(nil).EncodePlaintexts(ptxts)
}

// EncodePlaintexts returns the ABI encoding of the results section of the
// callback arguments: the full argument list is packed with a placeholder
// requestID and an empty signatures array, then the first word (requestID)
// and the last word (the signatures length) are cut off. Offsets of dynamic
// results stay relative to the start of the full argument list.
//
// It never fails. Malformed payloads are reported and replaced by zero;
// plaintexts with an unknown type are reported and skipped.
func (e *Encoder) EncodePlaintexts(ptxts []plaintext.TypedPlaintext) []byte {
	data, err := e.pack(placeholderRequestID, ptxts, [][]byte{})
	if err != nil {
		// Every argument is built with the Go type its ABI type requires.
		panic(fmt.Sprintf("abiencode: packing plaintexts: %v", err))
	}
	return trimPlaceholders(data)
}

// EncodeCallback packs the full callback arguments with the real request id
// and signatures.
func (e *Encoder) EncodeCallback(requestID *uint256.Int, ptxts []plaintext.TypedPlaintext, signatures [][]byte) ([]byte, error) {
	if requestID == nil {
		requestID = new(uint256.Int)
	}
	if signatures == nil {
		signatures = [][]byte{}
	}
	return e.pack(requestID.ToBig(), ptxts, signatures)
}

func (e *Encoder) pack(requestID *big.Int, ptxts []plaintext.TypedPlaintext, signatures [][]byte) ([]byte, error) {
	args := make(abi.Arguments, 0, len(ptxts)+2)
	values := make([]interface{}, 0, len(ptxts)+2)

	args = append(args, abi.Argument{Name: "requestID", Type: uint256Type})
	values = append(values, requestID)

	for i, p := range ptxts {
		typ, value, ok := e.encodeElement(i, p)
		if !ok {
			continue
		}
		args = append(args, abi.Argument{Name: fmt.Sprintf("result%d", i), Type: typ})
		values = append(values, value)
	}

	args = append(args, abi.Argument{Name: "signatures", Type: bytesArrayType})
	values = append(values, signatures)

	return args.Pack(values...)
}

// encodeElement returns the ABI type and Go value for p, or ok == false when
// p has to be dropped.
func (e *Encoder) encodeElement(i int, p plaintext.TypedPlaintext) (abi.Type, interface{}, bool) {
	t, err := p.Type()
	if err != nil {
		e.reporter.Report(Anomaly{
			Index:   i,
			FheType: p.FheType,
			Actual:  len(p.Bytes),
			Err:     fmt.Errorf("%w: %w", ErrUnrecognizedType, err),
		})
		return abi.Type{}, nil, false
	}

	if t.IsWide() {
		width := t.ByteLength()
		out, ok := plaintext.Canonicalize(width, p.Bytes)
		if !ok {
			e.reportLength(i, t, width, len(p.Bytes))
		}
		return bytesType, out, true
	}

	word, ok := plaintext.Word(p.Bytes)
	if !ok {
		e.reportLength(i, t, wordSize, len(p.Bytes))
	}
	return uint256Type, word.ToBig(), true
}

func (e *Encoder) reportLength(i int, t fhetype.FheType, expected, actual int) {
	e.reporter.Report(Anomaly{
		Index:    i,
		FheType:  int32(t),
		Expected: expected,
		Actual:   actual,
		Err:      ErrPayloadLengthMismatch,
	})
}

// trimPlaceholders drops the requestID head word and the trailing length word
// of the empty signatures array. Both are exactly one word: uint256 is static,
// and an empty dynamic array encodes as an offset in the head plus a zero
// length in the tail with no element data after it.
func trimPlaceholders(data []byte) []byte {
	if len(data) < 3*wordSize || !bytes.Equal(data[len(data)-wordSize:], make([]byte, wordSize)) {
		panic(fmt.Sprintf("abiencode: unexpected argument layout (%d bytes)", len(data)))
	}
	return bytes.Clone(data[wordSize : len(data)-wordSize])
}
