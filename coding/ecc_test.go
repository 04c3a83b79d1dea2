// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Published generator polynomials, α exponents of the coefficients
// after the leading 1.
var publishedGenerators = map[int][]byte{
	7:  {87, 229, 146, 149, 238, 102, 21},
	10: {251, 67, 46, 61, 118, 70, 64, 94, 32, 45},
	13: {74, 152, 176, 100, 86, 100, 106, 104, 130, 218, 206, 140, 78},
	15: {8, 183, 61, 91, 202, 37, 51, 58, 58, 237, 140, 124, 5, 99, 105},
	16: {120, 104, 107, 109, 102, 161, 76, 3, 91, 191, 147, 169, 182, 194, 225, 120},
	17: {43, 139, 206, 78, 43, 239, 123, 206, 214, 147, 24, 99, 150, 39, 243, 163, 136},
	18: {215, 234, 158, 94, 184, 97, 118, 170, 79, 187, 152, 148, 252, 179, 5, 98, 96, 153},
	20: {17, 60, 79, 50, 61, 163, 26, 187, 202, 180, 221, 225, 83, 239, 156, 164, 212, 212, 188, 190},
	22: {210, 171, 247, 242, 93, 230, 14, 109, 221, 53, 200, 74, 8, 172, 98, 80, 219, 134, 160, 105, 165, 231},
	24: {229, 121, 135, 48, 211, 117, 251, 126, 159, 180, 169, 152, 192, 226, 228, 218, 111, 0, 117, 232, 87, 96, 227, 21},
	26: {173, 125, 158, 2, 103, 182, 118, 17, 145, 201, 111, 28, 165, 53, 161, 21, 245, 142, 13, 102, 48, 227, 153, 145, 218, 70},
	28: {168, 223, 200, 104, 224, 234, 108, 180, 110, 190, 195, 147, 205, 27, 232, 201, 21, 43, 245, 87, 42, 195, 212, 119, 242, 37, 9, 123},
	30: {41, 173, 145, 152, 216, 31, 179, 182, 50, 48, 110, 86, 239, 96, 222, 125, 42, 173, 226, 193, 224, 130, 156, 37, 251, 216, 238, 40, 192, 180},
}

func TestGenerator(t *testing.T) {
	require.Len(t, publishedGenerators, len(ECLengths))
	for _, n := range ECLengths {
		g, err := Generator(n)
		require.NoError(t, err, "degree %d", n)
		require.Len(t, g, n+1)
		assert.Zero(t, g[0], "leading coefficient")
		assert.Equal(t, publishedGenerators[n], g[1:], "degree %d", n)
	}
	g, _ := Generator(7)
	g[1] = 0
	g, _ = Generator(7)
	assert.Equal(t, byte(87), g[1], "Generator returns a copy")

	for _, n := range []int{-1, 0, 8, 14, 31, 68} {
		_, err := Generator(n)
		assert.ErrorIs(t, err, ErrECLength, "degree %d", n)
	}
}

func TestGenerateEC(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{
			// ISO/IEC 18004 Annex I
			name: "01234567 1-M",
			data: []byte{
				0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11,
				0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
			},
			want: []byte{0xa5, 0x24, 0xd4, 0xc1, 0xed, 0x36, 0xc7, 0x87, 0x2c, 0x55},
		},
		{
			name: "HELLO WORLD 1-M",
			data: []byte{
				0x20, 0x5b, 0x0b, 0x78, 0xd1, 0x72, 0xdc, 0x4d,
				0x43, 0x40, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
			},
			want: []byte{0xc4, 0x23, 0x27, 0x77, 0xeb, 0xd7, 0xe7, 0xe2, 0x5d, 0x17},
		},
		{
			name: "HELLO 1-M byte mode",
			data: []byte{
				0x40, 0x54, 0x84, 0x54, 0xc4, 0xc4, 0xf0, 0x00,
				0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
			},
			want: []byte{0x2b, 0x74, 0x38, 0x45, 0x78, 0xc2, 0xb1, 0x06, 0x71, 0x6a},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateEC(tt.data, len(tt.want))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := GenerateEC(make([]byte, 19), 7)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 7), got, "zero data")

	_, err = GenerateEC([]byte{1, 2, 3}, 9)
	assert.ErrorIs(t, err, ErrECLength)
}

func TestInterleave(t *testing.T) {
	dst := make([]byte, 10)
	Interleave(dst, []byte("abcdefghij"), 3)
	assert.Equal(t, "adgbehcfij", string(dst))

	Interleave(dst, []byte("0123456789"), 1)
	assert.Equal(t, "0123456789", string(dst))

	dst = dst[:8]
	Interleave(dst, []byte("abcdefgh"), 4)
	assert.Equal(t, "acegbdfh", string(dst))
}

func TestAddCheckBytes(t *testing.T) {
	// Version 5-Q: 4 blocks of 18 check codewords, data split 15, 15,
	// 16, 16.
	lay, err := Standard.Layout(5, Q)
	require.NoError(t, err)
	require.Equal(t, Layout{Data: 62, Blocks: 4, Check: 18}, lay)
	data := make([]byte, lay.Data)
	for i := range data {
		data[i] = byte(i*37 + 1)
	}
	out, err := AddCheckBytes(data, lay)
	require.NoError(t, err)
	require.Len(t, out, 134)

	blocks := [][]byte{data[:15], data[15:30], data[30:46], data[46:]}
	for i, blk := range blocks {
		for j, c := range blk {
			if j < 15 {
				assert.Equal(t, c, out[j*4+i], "block %d data %d", i, j)
			} else {
				assert.Equal(t, c, out[60+i-2], "block %d data %d", i, j)
			}
		}
		check, err := GenerateEC(blk, 18)
		require.NoError(t, err)
		for j, c := range check {
			assert.Equal(t, c, out[62+j*4+i], "block %d check %d", i, j)
		}
	}

	// A single block is data followed by check codewords.
	lay = Layout{Data: 16, Blocks: 1, Check: 10}
	data = []byte{
		0x40, 0x54, 0x84, 0x54, 0xc4, 0xc4, 0xf0, 0x00,
		0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
	}
	out, err = AddCheckBytes(data, lay)
	require.NoError(t, err)
	assert.Equal(t, data, out[:16])
	assert.Equal(t, []byte{0x2b, 0x74, 0x38, 0x45, 0x78, 0xc2, 0xb1, 0x06, 0x71, 0x6a}, out[16:])

	_, err = AddCheckBytes(data[:15], lay)
	assert.Error(t, err)
	_, err = AddCheckBytes(data, Layout{Data: 16, Blocks: 1, Check: 11})
	assert.ErrorIs(t, err, ErrECLength)
}
