// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var qr = NewField(0x11d, 2)

func TestMulIdentities(t *testing.T) {
	for a := 0; a < 256; a++ {
		x := byte(a)
		require.Equal(t, byte(0), qr.Mul(x, 0), "Mul(%d, 0)", a)
		require.Equal(t, byte(0), qr.Mul(0, x), "Mul(0, %d)", a)
		require.Equal(t, x, qr.Mul(x, 1), "Mul(%d, 1)", a)
		for b := 0; b < 256; b++ {
			y := byte(b)
			if qr.Mul(x, y) != qr.Mul(y, x) {
				t.Fatalf("Mul(%d, %d) != Mul(%d, %d)", a, b, b, a)
			}
		}
	}
}

func TestMulAgainstShiftAndAdd(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b += 7 {
			want := byte(mul(a, b, 0x11d))
			if got := qr.Mul(byte(a), byte(b)); got != want {
				t.Fatalf("Mul(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestMulAssociative(t *testing.T) {
	for a := 1; a < 256; a += 3 {
		for b := 1; b < 256; b += 5 {
			for c := 1; c < 256; c += 11 {
				x, y, z := byte(a), byte(b), byte(c)
				l := qr.Mul(qr.Mul(x, y), z)
				r := qr.Mul(x, qr.Mul(y, z))
				if l != r {
					t.Fatalf("(%d*%d)*%d = %d, %d*(%d*%d) = %d",
						a, b, c, l, a, b, c, r)
				}
			}
		}
	}
}

func TestExpLog(t *testing.T) {
	assert.Equal(t, qr.Exp(0), qr.Exp(255), "exponent period")
	assert.Equal(t, byte(1), qr.Exp(0))
	assert.Equal(t, byte(2), qr.Exp(1))
	assert.Equal(t, byte(0x1d), qr.Exp(8))
	assert.Equal(t, byte(0), qr.Exp(-1))
	assert.Equal(t, -1, qr.Log(0))
	for i := 0; i < 255; i++ {
		require.Equal(t, i, qr.Log(qr.Exp(i)))
	}
}

func TestInv(t *testing.T) {
	assert.Equal(t, byte(0), qr.Inv(0))
	for a := 1; a < 256; a++ {
		require.Equal(t, byte(1), qr.Mul(byte(a), qr.Inv(byte(a))),
			"a=%d", a)
	}
}

func TestNewFieldPanics(t *testing.T) {
	assert.Panics(t, func() { NewField(0x100, 2) }, "reducible")
	assert.Panics(t, func() { NewField(0xff, 2) }, "degree 7")
	assert.Panics(t, func() { NewField(0x11b, 2) }, "2 does not generate")
	assert.NotPanics(t, func() { NewField(0x11b, 3) })
}

func TestGen(t *testing.T) {
	// Published generator polynomials in α-exponent form.
	tests := []struct {
		n    int
		lgen []byte
	}{
		{7, []byte{0, 87, 229, 146, 149, 238, 102, 21}},
		{10, []byte{0, 251, 67, 46, 61, 118, 70, 64, 94, 32, 45}},
	}
	for _, tt := range tests {
		_, lgen := qr.Gen(tt.n)
		assert.Equal(t, tt.lgen, lgen, "degree %d", tt.n)
	}
}

func TestECC(t *testing.T) {
	// ISO/IEC 18004 Annex I: "01234567", version 1-M.
	data := []byte{
		0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11,
		0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
	}
	want := []byte{0xa5, 0x24, 0xd4, 0xc1, 0xed, 0x36, 0xc7, 0x87, 0x2c, 0x55}
	rs := NewRSEncoder(qr, 10)
	check := make([]byte, 10)
	rs.ECC(data, check)
	assert.Equal(t, want, check)

	// Reusing the encoder must not leak state between calls.
	rs.ECC(data, check)
	assert.Equal(t, want, check)

	_, lgen := qr.Gen(10)
	clear(check)
	NewRSEncoderLog(qr, lgen).ECC(data, check)
	assert.Equal(t, want, check)

	assert.Panics(t, func() { rs.ECC(data, check[:9]) })
}

func BenchmarkECC(b *testing.B) {
	data := make([]byte, 1024)
	check := make([]byte, 30)
	rs := NewRSEncoder(qr, 30)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		rs.ECC(data, check)
	}
}
