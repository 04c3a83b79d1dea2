// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "strings"

// halfBlocks[upper|lower<<1] draws two vertically stacked modules,
// bit set for light.
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// String returns the code with its quiet zone drawn in Unicode half
// blocks, two rows of modules per line.  Light modules are drawn in
// the foreground colour, for terminals with light text on a dark
// background; c.Reverse swaps them.
func (c *Code) String() string {
	if c == nil || c.Size <= 0 || c.Border < 0 {
		return ""
	}
	bord := c.Border
	pix := c.Size + 2*bord
	var b strings.Builder
	b.Grow((pix*len("█") + 1) * (pix + 1) / 2)
	light := func(x, y int) int {
		if y < c.Size+bord && c.Black(x, y) == c.Reverse {
			return 1
		}
		return 0
	}
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			b.WriteString(halfBlocks[light(x, y)|light(x, y+1)<<1])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
