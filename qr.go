// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes byte strings as QR codes.

The data is stored in a single byte mode segment.  The smallest
version that holds it at the requested error correction level is
chosen from a capacity table, mask 0 is applied unless another mask
or automatic selection is requested, and the result is a Code that
can be drawn as an image, PNG, PBM or text.
*/
package qr // import "github.com/unixdj/qrenc"

import (
	"errors"
	"image"
	"image/color"

	"github.com/unixdj/qrenc/coding"

	"golang.org/x/text/encoding/charmap"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string { return coding.Level(l).String() }

// AutoMask requests the mask pattern with the lowest penalty score.
const AutoMask = coding.AutoMask

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
	ErrLatin1     = errors.New("qr: text not representable in Latin-1")
)

// Options control encoding.  A nil *Options is the same as the zero
// value: standard capacity table, mask 0, smallest fitting version,
// bytes stored as given.
type Options struct {
	Table      *coding.Table  // capacity table; nil means coding.Standard
	Mask       int            // mask pattern 0 to 7, or AutoMask
	MinVersion coding.Version // smallest version to use
	Latin1     bool           // store UTF-8 text as ISO 8859-1 bytes
}

// Encode returns an encoding of text at the given error correction
// level, using the standard table and mask 0.
func Encode(text string, level Level) (*Code, error) {
	return EncodeText(text, level, nil)
}

// EncodeText is like Encode with options.  If opt.Latin1 is set, text
// is converted from UTF-8 to Latin-1 before encoding, and ErrLatin1 is
// returned if it contains characters outside Latin-1.
func EncodeText(text string, level Level, opt *Options) (*Code, error) {
	if opt != nil && opt.Latin1 {
		s, err := charmap.ISO8859_1.NewEncoder().String(text)
		if err != nil {
			return nil, ErrLatin1
		}
		text = s
	}
	return EncodeBytes([]byte(text), level, opt)
}

// EncodeBytes returns an encoding of data at the given error
// correction level.  opt.Latin1 is ignored.
func EncodeBytes(data []byte, level Level, opt *Options) (*Code, error) {
	var o coding.Options
	if opt != nil {
		o = coding.Options{
			Table:      opt.Table,
			Mask:       opt.Mask,
			MinVersion: opt.MinVersion,
		}
	}
	cc, err := coding.Encode(data, coding.Level(level), &o)
	if err != nil {
		return nil, err
	}
	return &Code{
		Bitmap:  cc.Bitmap,
		Size:    cc.Size,
		Stride:  cc.Stride,
		Version: cc.Version,
		Level:   Level(cc.Level),
		Mask:    cc.Mask,
		Scale:   DefaultModuleSize,
		Border:  DefaultMargin,
	}, nil
}

// A Code is a square pixel grid.
// It implements image.Image and PNG, PBM and text encoding.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	Version coding.Version // QR code version
	Level   Level          // error correction level
	Mask    int            // mask pattern

	Scale   int             // number of image pixels per QR pixel
	Border  int             // quiet zone width in QR pixels
	Palette *[2]color.Color // light and dark colours; nil: white, black
	Reverse bool            // swap light and dark
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// Matrix returns the code as rows of modules, true for dark.
func (c *Code) Matrix() [][]bool {
	m := make([][]bool, c.Size)
	for y := range m {
		m[y] = make([]bool, c.Size)
		for x := range m[y] {
			m[y][x] = c.Black(x, y)
		}
	}
	return m
}

func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Stride >= (c.Size+7)/8 &&
		len(c.Bitmap) >= c.Size*c.Stride &&
		c.Scale > 0 && c.Border >= 0
}

// colors returns the light and dark colours of the image.
func (c *Code) colors() (light, dark color.Color) {
	light, dark = whiteColor, blackColor
	if c.Palette != nil {
		light, dark = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		light, dark = dark, light
	}
	return
}

// Image returns an Image displaying the code, with c.Scale image
// pixels per module and a quiet zone of c.Border modules.
func (c *Code) Image() image.Image {
	light, dark := c.colors()
	return &codeImage{c, color.Palette{light, dark}}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	pal color.Palette
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.Scale > 0 && x >= 0 && y >= 0 &&
		c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return c.pal[1]
	}
	return c.pal[0]
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}
