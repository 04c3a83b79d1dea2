// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strconv"
	"strings"
	"sync"
)

// A Kind tells what a module is used for.
type Kind uint8

const (
	Unset    Kind = iota // not yet assigned
	Function             // finder, separator, timing, alignment, dark module
	Reserved             // format or version area awaiting its bits
	Data                 // data or error correction bit
	Meta                 // format or version information bit
)

func (k Kind) String() string {
	switch k {
	case Unset:
		return "unset"
	case Function:
		return "function"
	case Reserved:
		return "reserved"
	case Data:
		return "data"
	case Meta:
		return "meta"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// A Module is a single cell of a Matrix.
type Module struct {
	Kind Kind
	Dark bool
}

// A Matrix is a square grid of modules under construction.
// Coordinates are x (column) and y (row) from the top left corner.
type Matrix struct {
	Version Version // QR code version
	Level   Level   // error correction level, once format is set
	Mask    int     // mask pattern, once format is set

	size int
	m    []Module
}

// NewMatrix returns a matrix for a version v code with every module
// unset.
func NewMatrix(v Version) *Matrix {
	siz := v.Size()
	return &Matrix{Version: v, size: siz, m: make([]Module, siz*siz)}
}

// Size returns the number of modules on a side.
func (m *Matrix) Size() int { return m.size }

// At returns the module at x, y.
func (m *Matrix) At(x, y int) Module { return m.m[y*m.size+x] }

func (m *Matrix) set(x, y int, k Kind, dark bool) {
	m.m[y*m.size+x] = Module{Kind: k, Dark: dark}
}

// reserve marks an unset module at x, y as reserved and light.
func (m *Matrix) reserve(x, y int) {
	if p := &m.m[y*m.size+x]; p.Kind == Unset {
		*p = Module{Kind: Reserved}
	}
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	c := *m
	c.m = append([]Module(nil), m.m...)
	return &c
}

// Count returns the number of modules of kind k.
func (m *Matrix) Count(k Kind) int {
	n := 0
	for _, v := range m.m {
		if v.Kind == k {
			n++
		}
	}
	return n
}

// Resolved reports whether every module is final: none is unset or
// reserved.
func (m *Matrix) Resolved() bool {
	return m.Count(Unset) == 0 && m.Count(Reserved) == 0
}

// Bools returns the matrix as rows of dark flags, indexed [y][x].
func (m *Matrix) Bools() [][]bool {
	rows := make([][]bool, m.size)
	flat := make([]bool, len(m.m))
	for i, v := range m.m {
		flat[i] = v.Dark
	}
	for y := range rows {
		rows[y], flat = flat[:m.size], flat[m.size:]
	}
	return rows
}

// Code packs the dark flags of m into a Code.
func (m *Matrix) Code() *Code {
	siz := m.size
	stride := (siz + 7) >> 3
	c := &Code{
		Bitmap:  make([]byte, siz*stride),
		Size:    siz,
		Stride:  stride,
		Version: m.Version,
		Level:   m.Level,
		Mask:    m.Mask,
	}
	for y := 0; y < siz; y++ {
		row := c.Bitmap[y*stride:]
		for x, v := range m.m[y*siz : (y+1)*siz] {
			if v.Dark {
				row[x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return c
}

// String draws m with one character per module:
// '#' dark, '.' light, '?' unset, '-' reserved.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow((m.size + 1) * m.size)
	for i, v := range m.m {
		switch {
		case v.Kind == Unset:
			sb.WriteByte('?')
		case v.Kind == Reserved:
			sb.WriteByte('-')
		case v.Dark:
			sb.WriteByte('#')
		default:
			sb.WriteByte('.')
		}
		if i%m.size == m.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// A Plan is the function pattern template of a QR version: finders,
// separators, timing, alignment patterns, the dark module, and the
// reserved format and version areas.  All other modules are unset.
type Plan struct {
	Version     Version // QR code version
	Size        int     // number of modules on a side
	DataModules int     // number of modules left for data

	tmpl *Matrix
}

// Pre-allocated Plans.  A Plan is created the first time a version is
// used and shared afterwards; Matrix hands out copies.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for version v.
func NewPlan(v Version) (*Plan, error) {
	if v < MinVersion || v > MaxVersion {
		return nil, ErrVersion
	}
	p := &plans[v]
	p.once.Do(func() { p.p = vplan(v) })
	return p.p, nil
}

// Matrix returns a fresh matrix holding the function patterns of p.
func (p *Plan) Matrix() *Matrix { return p.tmpl.Clone() }

// vplan creates a Plan for the given version.
func vplan(v Version) *Plan {
	m := NewMatrix(v)
	siz := m.size

	// Position boxes with their separators.
	finder(m, 0, 0)
	finder(m, siz-7, 0)
	finder(m, 0, siz-7)

	// Timing markers (overwritten consistently by alignment boxes).
	for i := 8; i < siz-8; i++ {
		dark := i&1 == 0
		m.set(i, 6, Function, dark)
		m.set(6, i, Function, dark)
	}

	// Alignment boxes, except where they would overlap position boxes.
	pos := v.AlignmentPositions()
	for _, y := range pos {
		for _, x := range pos {
			if !inFinder(x, y, siz) {
				alignBox(m, x, y)
			}
		}
	}

	// Format areas next to the position boxes.
	for i := 0; i <= 8; i++ {
		m.reserve(8, i)
		m.reserve(i, 8)
	}
	for i := 0; i < 8; i++ {
		m.reserve(siz-1-i, 8)
		m.reserve(8, siz-1-i)
	}

	// One lonely black pixel.
	m.set(8, siz-8, Function, true)

	// Version areas: 6x3 below the top right position box and 3x6
	// right of the bottom left one.
	if v >= 7 {
		for i := 0; i < 6; i++ {
			for j := 0; j < 3; j++ {
				m.reserve(siz-11+j, i)
				m.reserve(i, siz-11+j)
			}
		}
	}

	return &Plan{
		Version:     v,
		Size:        siz,
		DataModules: m.Count(Unset),
		tmpl:        m,
	}
}

// inFinder reports whether x, y lies in a position box or its
// separator.
func inFinder(x, y, siz int) bool {
	return x < 8 && y < 8 || x >= siz-8 && y < 8 || x < 8 && y >= siz-8
}

// finder draws a position box with the upper left corner at x, y,
// and its light separator on the sides facing the symbol.
func finder(m *Matrix, x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= m.size || yy < 0 || yy >= m.size {
				continue
			}
			// Rings by Chebyshev distance from the centre:
			// 0-1 dark, 2 light, 3 dark, 4 separator.
			d := max(abs(dx-3), abs(dy-3))
			m.set(xx, yy, Function, d != 2 && d != 4)
		}
	}
}

// alignBox draws a 5x5 alignment box centred at x, y.
func alignBox(m *Matrix, x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			d := max(abs(dx), abs(dy))
			m.set(x+dx, y+dy, Function, d != 1)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Place writes the bits of s, most significant first, to the unset
// modules of m in zigzag order: two-column strips from the right
// edge, alternately upward and downward, right column before left,
// skipping the vertical timing column.  Modules past the end of s are
// light.  Place returns the number of modules written.
func (m *Matrix) Place(s []byte) int {
	siz := m.size
	n := len(s) * 8
	bit := 0
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for _, xx := range [2]int{x, x - 1} {
				if m.At(xx, y).Kind != Unset {
					continue
				}
				dark := bit < n && s[bit>>3]>>(7&^bit)&1 != 0
				m.set(xx, y, Data, dark)
				bit++
			}
		}
		up = !up
	}
	return bit
}

// FormatWord returns the 15-bit format information for level l and
// mask, with the 0x5412 mask applied.
func FormatWord(l Level, mask int) (uint16, error) {
	if !l.valid() {
		return 0, ErrLevel
	}
	if mask < 0 || mask >= len(ftab[l]) {
		return 0, ErrMask
	}
	return ftab[l][mask], nil
}

// VersionWord returns the 18-bit version information for v, or 0
// below version 7.
func VersionWord(v Version) uint32 {
	if v < 7 || v > MaxVersion {
		return 0
	}
	return vtab[v].pattern
}

// formatCoords lists the first copy of the format information, from
// bit 0 (least significant) up.
var formatCoords = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// SetFormat writes both copies of the format information for level l
// and mask into the reserved format areas of m.
func (m *Matrix) SetFormat(l Level, mask int) error {
	fb, err := FormatWord(l, mask)
	if err != nil {
		return err
	}
	siz := m.size
	for i, c := range formatCoords {
		dark := fb>>i&1 != 0
		m.set(c[0], c[1], Meta, dark)
		if i < 8 {
			m.set(siz-1-i, 8, Meta, dark)
		} else {
			m.set(8, siz-15+i, Meta, dark)
		}
	}
	m.Level, m.Mask = l, mask
	return nil
}

// SetVersion writes both copies of the version information into the
// reserved version areas of m.  Below version 7 it does nothing.
func (m *Matrix) SetVersion() {
	vw := VersionWord(m.Version)
	if vw == 0 {
		return
	}
	siz := m.size
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			dark := vw>>(i*3+j)&1 != 0
			m.set(i, siz-11+j, Meta, dark)
			m.set(siz-11+j, i, Meta, dark)
		}
	}
}
