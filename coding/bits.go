// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// Bits is an MSB-first bit buffer.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with capacity for n bytes.
func NewBits(n int) *Bits {
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

func (b *Bits) Bits() int {
	return b.nbit
}

func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v, most significant first.
// nbit must be between 1 and 32.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBytes appends p.  After a 4-bit mode and an 8- or 16-bit
// count the buffer is 4 bits into a byte, and each payload byte is
// split between the low nibble of the last byte and the high nibble
// of a new one.
func (b *Bits) WriteBytes(p []byte) {
	switch b.nbit & 7 {
	case 0:
		b.b = append(b.b, p...)
	case 4:
		for _, c := range p {
			b.b[len(b.b)-1] |= c >> 4
			b.b = append(b.b, c<<4)
		}
	default:
		for _, c := range p {
			b.Write(uint32(c), 8)
		}
		return
	}
	b.nbit += 8 * len(p)
}

// PadTo terminates b and pads it to n bytes.  Up to 4 terminator bits
// complete the last byte, then one zero byte follows if there is
// room, then alternating 0xec and 0x11 pad bytes.
func (b *Bits) PadTo(n int) {
	if b.nbit > n*8 {
		panic("qr: too much data")
	}
	b.nbit = (b.nbit + 7) &^ 7
	if len(b.b) < n {
		b.b = append(b.b, 0)
	}
	for pad := byte(0xec); len(b.b) < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
	}
	b.nbit = len(b.b) * 8
}

// EncodeByteMode returns capacity data codewords holding payload
// in byte mode for a version v code: mode indicator 0100, the byte
// count, the payload, terminator and padding.
func EncodeByteMode(payload []byte, v Version, capacity int) ([]byte, error) {
	if v < MinVersion || v > MaxVersion {
		return nil, ErrVersion
	}
	cb := v.CountBits()
	if len(payload) >= 1<<cb || 4+cb+8*len(payload) > capacity*8 {
		return nil, fmt.Errorf("%w: %d bytes in %d codewords",
			ErrPayloadTooLarge, len(payload), capacity)
	}
	b := NewBits(capacity)
	b.Write(0b0100, 4)
	b.Write(uint32(len(payload)), cb)
	b.WriteBytes(payload)
	b.PadTo(capacity)
	return b.Bytes(), nil
}
