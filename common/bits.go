// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, sub-byte bitfield manipulation for control registers.
package common

// ExtractBits returns the field of reg selected by mask after shifting it
// down by shift. mask is given unshifted, e.g. 0b111 for a 3-bit field.
func ExtractBits(reg, mask byte, shift uint) byte {
	return (reg >> shift) & mask
}

// ReplaceBits returns reg with the field selected by mask<<shift replaced
// by value<<shift. Bits outside the field are preserved, which is what makes
// read-modify-write sequences on shared control registers safe.
func ReplaceBits(reg, value, mask byte, shift uint) byte {
	return (reg &^ (mask << shift)) | ((value & mask) << shift)
}

// SignExtend interprets val as a two's-complement quantity of the given bit
// width and returns its signed value. Bit width 7 means bit 6 is the sign:
// accelerometers from ST left-justify their samples so that only the upper
// bits of the data register carry magnitude and sign.
func SignExtend(val byte, bits uint) int {
	if val&(1<<(bits-1)) != 0 {
		return int(val) - (1 << bits)
	}
	return int(val)
}
