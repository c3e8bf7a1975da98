// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plaintext

import (
	"github.com/holiman/uint256"
)

// WordSize is the size of one ABI word.
const WordSize = 32

// Canonicalize converts a little-endian payload of exactly width bytes to its
// big-endian form of the same width. Any other length yields width zero bytes
// and ok == false.
func Canonicalize(width int, b []byte) (out []byte, ok bool) {
	if len(b) != width {
		return make([]byte, width), false
	}
	return reverse(b), true
}

// Word reads a little-endian payload of at most 32 bytes as a uint256, padding
// the high-order side with zeros. Longer payloads yield zero and ok == false.
func Word(b []byte) (v *uint256.Int, ok bool) {
	if len(b) > WordSize {
		return new(uint256.Int), false
	}
	var be [WordSize]byte
	for i, c := range b {
		be[WordSize-1-i] = c
	}
	return new(uint256.Int).SetBytes32(be[:]), true
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
