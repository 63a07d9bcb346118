// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestSignExtend(t *testing.T) {
	var tests = []struct {
		val    byte
		bits   uint
		result int
	}{
		{val: 0x00, bits: 7, result: 0},
		{val: 0x01, bits: 7, result: 1},
		{val: 0x3f, bits: 7, result: 63},
		{val: 0x40, bits: 7, result: -64},
		{val: 0x76, bits: 7, result: -10},
		{val: 0x7f, bits: 7, result: -1},
		{val: 0x80, bits: 8, result: -128},
		{val: 0xff, bits: 8, result: -1},
	}
	for _, test := range tests {
		res := SignExtend(test.val, test.bits)
		if res != test.result {
			t.Errorf("SignExtend(%#x, %d)!=%d received %d", test.val, test.bits, test.result, res)
		}
	}
}

func TestReplaceBits(t *testing.T) {
	var tests = []struct {
		reg    byte
		value  byte
		mask   byte
		shift  uint
		result byte
	}{
		// Mode field, axis enables untouched.
		{reg: 0x07, value: 0b001, mask: 0b111, shift: 5, result: 0x27},
		// Clearing a field.
		{reg: 0xff, value: 0b000, mask: 0b111, shift: 5, result: 0x1f},
		// Single bit set and clear.
		{reg: 0x00, value: 1, mask: 1, shift: 4, result: 0x10},
		{reg: 0x10, value: 0, mask: 1, shift: 4, result: 0x00},
	}
	for _, test := range tests {
		res := ReplaceBits(test.reg, test.value, test.mask, test.shift)
		if res != test.result {
			t.Errorf("ReplaceBits(%#x, %#x, %#x, %d)!=%#x received %#x",
				test.reg, test.value, test.mask, test.shift, test.result, res)
		}
	}
}

func TestExtractBits(t *testing.T) {
	if got := ExtractBits(0x27, 0b111, 5); got != 0b001 {
		t.Errorf("ExtractBits(0x27, 0b111, 5)!=0b001 received %#b", got)
	}
	if got := ExtractBits(0x27, 1, 0); got != 1 {
		t.Errorf("ExtractBits(0x27, 1, 0)!=1 received %d", got)
	}
}
