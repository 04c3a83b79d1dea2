// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsWrite(t *testing.T) {
	b := NewBits(4)
	b.Write(0b0100, 4)
	b.Write(5, 8)
	b.Write(0b1, 1)
	b.Write(0b1010101, 7)
	b.Write(0, 4)
	assert.Equal(t, 24, b.Bits())
	assert.Equal(t, []byte{0x40, 0x5d, 0x50}, b.Bytes())

	b.Reset()
	assert.Zero(t, b.Bits())
	b.Write(0xdeadbeef, 32)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b.Bytes())

	b.Reset()
	b.Write(1, 3)
	assert.Panics(t, func() { b.Bytes() })
}

func TestWriteBytes(t *testing.T) {
	payload := []byte{0x12, 0x34, 0xab}
	for _, lead := range []int{8, 4, 3} {
		var want, got Bits
		want.Write(1, lead)
		got.Write(1, lead)
		for _, c := range payload {
			want.Write(uint32(c), 8)
		}
		got.WriteBytes(payload)
		assert.Equal(t, want, got, "lead %d", lead)
	}
}

func TestPadTo(t *testing.T) {
	b := NewBits(8)
	b.Write(0xa, 4)
	b.PadTo(8)
	assert.Equal(t, []byte{0xa0, 0x00, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11}, b.Bytes())

	// A full last byte leaves no room for the terminator byte.
	b.Reset()
	b.Write(0xabc, 12)
	b.PadTo(2)
	assert.Equal(t, []byte{0xab, 0xc0}, b.Bytes())

	b.Reset()
	b.Write(0xabcd, 16)
	assert.Panics(t, func() { b.PadTo(1) })
}

func TestEncodeByteMode(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		v        Version
		capacity int
		want     []byte
	}{
		{
			name:     "hello",
			payload:  "HELLO",
			v:        1,
			capacity: 16,
			want: []byte{
				0x40, 0x54, 0x84, 0x54, 0xc4, 0xc4, 0xf0, 0x00,
				0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
			},
		},
		{
			name:     "empty",
			payload:  "",
			v:        1,
			capacity: 16,
			want: []byte{
				0x40, 0x00, 0x00, 0xec, 0x11, 0xec, 0x11, 0xec,
				0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec,
			},
		},
		{
			name:     "16-bit count",
			payload:  "A",
			v:        10,
			capacity: 7,
			want:     []byte{0x40, 0x00, 0x14, 0x10, 0x00, 0xec, 0x11},
		},
		{
			name:     "exactly full",
			payload:  "\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff",
			v:        1,
			capacity: 16,
			want: append(append([]byte{0x40, 0xef},
				bytes.Repeat([]byte{0xff}, 13)...), 0xf0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeByteMode([]byte(tt.payload), tt.v, tt.capacity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.capacity)
		})
	}
}

func TestEncodeByteModeErrors(t *testing.T) {
	_, err := EncodeByteMode(make([]byte, 15), 1, 16)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
	_, err = EncodeByteMode(make([]byte, 256), 9, 300)
	assert.ErrorIs(t, err, ErrPayloadTooLarge, "count field overflow")
	_, err = EncodeByteMode(nil, 0, 16)
	assert.ErrorIs(t, err, ErrVersion)
}
