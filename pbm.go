// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	scale := c.Scale
	bord := c.Border
	mods := c.Size + bord*2
	if mods > maxPixels/scale {
		return ErrLargeImage
	}
	length := scale * mods
	b := bufio.NewWriter(w)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := -bord; y < c.Size+bord; y++ {
		c.pbmRow(row, y)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes module row y, scaled and bordered, into row.
// In PBM 1 is black.
func (c *Code) pbmRow(row []byte, y int) {
	for i := range row {
		row[i] = 0
	}
	for x := -c.Border; x < c.Size+c.Border; x++ {
		if c.Black(x, y) == c.Reverse {
			continue
		}
		px := (x + c.Border) * c.Scale
		for i := px; i < px+c.Scale; i++ {
			row[i>>3] |= 0x80 >> uint(i&7)
		}
	}
}
