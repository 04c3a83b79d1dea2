// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// AutoMask selects the mask with the lowest penalty.
const AutoMask = -1

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
//
// x is the column and y the row.
var maskFuncs = [8]func(x, y int) bool{
	func(x, y int) bool { return (y+x)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (y+x)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return (y*x)%2+(y*x)%3 == 0 },
	func(x, y int) bool { return ((y*x)%2+(y*x)%3)%2 == 0 },
	func(x, y int) bool { return ((y+x)%2+(y*x)%3)%2 == 0 },
}

// MaskBit reports whether mask inverts the module at x, y.
// It panics if mask is not between 0 and 7.
func MaskBit(mask, x, y int) bool {
	return maskFuncs[mask](x, y)
}

// ApplyMask inverts the data modules of m selected by mask.
// Function patterns and format and version areas are left alone.
func (m *Matrix) ApplyMask(mask int) error {
	if mask < 0 || mask >= len(maskFuncs) {
		return ErrMask
	}
	f := maskFuncs[mask]
	for i := range m.m {
		if p := &m.m[i]; p.Kind == Data && f(i%m.size, i/m.size) {
			p.Dark = !p.Dark
		}
	}
	return nil
}

// BestMask returns the mask giving the lowest penalty for m at level
// l, preferring the lower number on ties.  m must have data placed and
// no mask applied; it is not modified.
func BestMask(m *Matrix, l Level) int {
	best, pen := 0, 1<<30 // largest penalty is < 1<<20
	for mask := range maskFuncs {
		c := m.Clone()
		c.ApplyMask(mask)
		if err := c.SetFormat(l, mask); err != nil {
			panic(err)
		}
		c.SetVersion()
		if p := c.Code().Penalty(); p < pen {
			best, pen = mask, p
		}
	}
	return best
}

// Total penalty is the sum of penalties for runs and boxes of
// same-colour pixels, finder patterns and colour balance.
//
//   - RunP: for non-overlapping runs of n pixels, n>=5 -> n-2
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for possibly overlapping finder patterns -> 40
//     The pattern is 010111010 with 000 on either side,
//     or inverted; may extend into the quiet zone
//   - BalP: for n% of black pixels -> 10*(celing(abs(n-50)/5)-1)
//
// https://www.nayuki.io/page/creating-a-qr-code-step-by-step
const (
	minRun    = 5             // RunP:  miniumum run length
	runPDelta = -2            // RunP:  add to run length
	boxPP     = 3             // BoxP:  points per box
	findPP    = 40            // FindP: points per pattern
	balPP     = 10            // BalP:  10 points
	balPMul   = 20            //        for every 5% (1/20),
	balPMax   = balPMul/2 - 1 //        up to 9 times

	// last pixels are stored in a uint16, and when matching
	// against 12 bit finder patterns are shifted left 4 bits.
	pShift = 16 - 12
	pOne   = 1 << pShift
	// finder patterns:
	findB = uint16(0b0000_1011101_0 << pShift) // quiet zone before
	findA = uint16(0b0_1011101_0000 << pShift) // quiet zone after
	loseB = ^findB &^ (pOne - 1)               // inverted findB
	loseA = ^findA &^ (pOne - 1)               // inverted findA
)

// Penalty returns the penalty value for c, used for choosing the
// mask.
func (c *Code) Penalty() int {
	siz := c.Size
	p := 0
	for y := 0; y < siz; y++ {
		p += linePenalty(siz, func(x int) bool { return c.Black(x, y) })
	}
	for x := 0; x < siz; x++ {
		p += linePenalty(siz, func(y int) bool { return c.Black(x, y) })
	}

	bal := 0 // black pixels
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			b := c.Black(x, y)
			if b {
				bal++
			}
			if x > 0 && y > 0 && c.Black(x-1, y) == b &&
				c.Black(x, y-1) == b && c.Black(x-1, y-1) == b {
				p += boxPP // BoxP
			}
		}
	}

	// Exact percentages get less penalty.  E.g., 40% and 60% get
	// 10 points like 41%, not 20 like 39%.  To round away from 50%,
	// fold bal into 0 <= n < c.Size²/2 and divide rounding down.
	// No need to handle 50% as c.Size is always odd.
	sq := siz * siz
	if bal > sq/2 {
		bal = sq - bal
	}
	return p + (balPMax-bal*balPMul/sq)*balPP
}

// linePenalty returns RunP and FindP for a line of n pixels.
func linePenalty(n int, black func(int) bool) int {
	p := 0
	r := 1 // current run length
	var pat uint16 // last 12 pixels, quiet zone before the line
	if black(0) {
		pat = pOne
	}
	for i := 1; i < n; i++ {
		pat <<= 1
		if black(i) {
			pat |= pOne
		}
		switch pat {
		case findB, findA, loseB, loseA:
			p += findPP // FindP
		}
		if (pat-pOne)&(2*pOne) == 0 { // colour change
			if r >= minRun {
				p += r + runPDelta // RunP
			}
			r = 0
		}
		r++
	}
	// handle last run
	if r >= minRun {
		p += r + runPDelta // RunP
	}
	// handle findB with 1 pixel in the quiet zone after the line;
	// also includes findA with 4 pixels in the quiet zone
	if pat <<= 1; pat == findB {
		p += 2 * findPP
	} else {
		// handle findA with 1-4 pixels in quiet zone
		switch findA {
		case pat, pat << 1, pat << 2, pat << 3:
			p += findPP
		}
	}
	return p
}
