// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Code is a square pixel grid.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	Version Version // QR code version
	Level   Level   // error correction level
	Mask    int     // mask pattern
}

func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Options control encoding.  The zero value selects the standard
// table, mask 0 and the smallest version that fits.
type Options struct {
	Table      *Table  // capacity table; nil means Standard
	Mask       int     // mask pattern 0 to 7, or AutoMask
	MinVersion Version // smallest version to use; 0 means 1
}

// Build runs the encoding pipeline for data at level l and returns the
// finished matrix: version selection, bit stream, error correction,
// placement, mask, then format and version information.
func Build(data []byte, l Level, o *Options) (*Matrix, error) {
	if o == nil {
		o = &Options{}
	}
	if !l.valid() {
		return nil, ErrLevel
	}
	if o.Mask != AutoMask && (o.Mask < 0 || o.Mask >= len(maskFuncs)) {
		return nil, ErrMask
	}
	t := o.Table
	if t == nil {
		t = Standard
	}
	v, err := t.SelectVersion(len(data), l, o.MinVersion)
	if err != nil {
		return nil, err
	}
	lay, err := t.Layout(v, l)
	if err != nil {
		return nil, err
	}
	p, err := NewPlan(v)
	if err != nil {
		return nil, err
	}
	if lay.Total()*8 > p.DataModules {
		panic("qr: internal error: layout exceeds data modules")
	}
	dat, err := EncodeByteMode(data, v, lay.Data)
	if err != nil {
		return nil, err
	}
	stream, err := AddCheckBytes(dat, lay)
	if err != nil {
		return nil, err
	}

	m := p.Matrix()
	m.Place(stream)
	mask := o.Mask
	if mask == AutoMask {
		mask = BestMask(m, l)
	}
	m.ApplyMask(mask)
	if err := m.SetFormat(l, mask); err != nil {
		return nil, err
	}
	m.SetVersion()
	return m, nil
}

// Encode encodes data at level l into a Code.
func Encode(data []byte, l Level, o *Options) (*Code, error) {
	m, err := Build(data, l, o)
	if err != nil {
		return nil, err
	}
	return m.Code(), nil
}
