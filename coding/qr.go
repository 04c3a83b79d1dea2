// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: capacity
// tables, byte mode bit streams, error correction, module placement,
// masking and format information.
package coding // import "github.com/unixdj/qrenc/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qrenc/gf256"
)

var (
	ErrLevel           = errors.New("qr: invalid level")
	ErrVersion         = errors.New("qr: invalid version")
	ErrMask            = errors.New("qr: invalid mask")
	ErrPayloadTooLarge = errors.New("qr: payload too large")
	ErrECLength        = errors.New("qr: unsupported error correction length")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// The larger the version, the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// Size returns the number of modules on a side of a version v code.
func (v Version) Size() int {
	return int(v)*4 + 17
}

// ModuleCount returns the number of modules on a side of a version v
// code.
func ModuleCount(v Version) int { return v.Size() }

// QR version size classes.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// CountBits returns the width of the byte mode character count field
// in a version v code.
func (v Version) CountBits() int {
	if v.SizeClass() == Class0 {
		return 8
	}
	return 16
}

// AlignmentPositions returns the row and column coordinates of the
// alignment pattern centres in a version v code, in increasing order.
// Version 1 has none.
func (v Version) AlignmentPositions() []int {
	if v < 2 || v > MaxVersion {
		return nil
	}
	vt := &vtab[v]
	pos := []int{6}
	for p := vt.apos; ; p += vt.astride {
		pos = append(pos, p)
		if vt.astride == 0 || p >= v.Size()-7 {
			return pos
		}
	}
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// ParseLevel returns the level named by s, one of "L", "M", "Q", "H"
// in either case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		switch s[0] | 0x20 {
		case 'l':
			return L, nil
		case 'm':
			return M, nil
		case 'q':
			return Q, nil
		case 'h':
			return H, nil
		}
	}
	return 0, ErrLevel
}

// FormatBits returns the 2-bit level indicator used in format
// information: L=01, M=00, Q=11, H=10.
func (l Level) FormatBits() uint16 {
	return uint16(l ^ 1)
}

func (l Level) valid() bool { return L <= l && l <= H }

// A version describes metadata associated with a version.
type version struct {
	apos    int    // second alignment coordinate, 0 if none
	astride int    // distance between further alignment coordinates
	bytes   int    // total codewords
	pattern uint32 // version information word, 0 below version 7
	level   [4]level
}

type level struct {
	nblock int
	check  int
}

// A Layout describes the codewords of a code with a given version and
// level.
type Layout struct {
	Data   int // number of data codewords
	Blocks int // number of error correction blocks
	Check  int // error correction codewords per block
}

// Total returns the total number of codewords.
func (lay Layout) Total() int {
	return lay.Data + lay.Blocks*lay.Check
}

// A Table is a capacity table, mapping version and level to the
// codeword layout.
type Table struct {
	name   string
	max    Version
	layout func(Version, Level) Layout
	first  func(n int) Version // first candidate version for n bytes
}

var (
	// Standard is the ISO/IEC 18004 capacity table for versions 1
	// to 40, with data split into interleaved blocks.
	Standard = &Table{
		name:   "standard",
		max:    MaxVersion,
		layout: standardLayout,
	}

	// Legacy is a coarse single-block table for versions 1 to 29,
	// compatible with an older web generator.  Codes from versions
	// whose standard layout has more than one block do not scan.
	Legacy = &Table{
		name:   "legacy",
		max:    legacyMaxVersion,
		layout: legacyLayout,
		first:  legacyFirst,
	}
)

func standardLayout(v Version, l Level) Layout {
	vt := &vtab[v]
	lev := vt.level[l]
	return Layout{
		Data:   vt.bytes - lev.nblock*lev.check,
		Blocks: lev.nblock,
		Check:  lev.check,
	}
}

func (t *Table) String() string { return t.name }

// MaxVersion returns the largest version in t.
func (t *Table) MaxVersion() Version { return t.max }

// Layout returns the codeword layout of a version v, level l code.
func (t *Table) Layout(v Version, l Level) (Layout, error) {
	if v < MinVersion || v > t.max {
		return Layout{}, ErrVersion
	}
	if !l.valid() {
		return Layout{}, ErrLevel
	}
	return t.layout(v, l), nil
}

// ByteCapacity returns the maximum number of bytes that a version v,
// level l code holds in byte mode, or 0 for invalid arguments.
func (t *Table) ByteCapacity(v Version, l Level) int {
	lay, err := t.Layout(v, l)
	if err != nil {
		return 0
	}
	return (lay.Data*8 - 4 - v.CountBits()) / 8
}

// SelectVersion returns the smallest version of at least min that
// holds n bytes in byte mode at level l.  If min is 0, the search
// starts from version 1.  If no version is large enough,
// SelectVersion returns a *CapacityError.
func (t *Table) SelectVersion(n int, l Level, min Version) (Version, error) {
	if !l.valid() {
		return 0, ErrLevel
	}
	if min == 0 {
		min = MinVersion
	}
	if min < MinVersion || min > t.max {
		return 0, ErrVersion
	}
	v := min
	if t.first != nil {
		v = max(v, t.first(n))
	}
	// Capacity grows with version.
	for hi := t.max; v < hi; {
		if mid := (v + hi) / 2; t.ByteCapacity(mid, l) < n {
			v = mid + 1
		} else {
			hi = mid
		}
	}
	if n < 0 || t.ByteCapacity(v, l) < n {
		return 0, &CapacityError{
			Bytes: n,
			Max:   t.ByteCapacity(t.max, l),
			Level: l,
			Table: t,
		}
	}
	return v, nil
}

// A CapacityError is returned when a payload does not fit into the
// largest version of a table.
type CapacityError struct {
	Bytes int    // payload length
	Max   int    // largest payload length at Level
	Level Level  // error correction level
	Table *Table // capacity table
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: %d bytes do not fit in a level %v code (%v table holds up to %d)",
		e.Bytes, e.Level, e.Table, e.Max)
}

func (e *CapacityError) Unwrap() error { return ErrPayloadTooLarge }
