// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image"
	"image/color"
)

// Default image geometry used by EncodeBytes.
const (
	DefaultModuleSize = 8 // image pixels per module
	DefaultMargin     = 4 // quiet zone in modules
)

// maxPixels limits the edge of a rendered image.
const maxPixels = 32767 * 8

// RenderOptions describe a raster image of a module matrix.
type RenderOptions struct {
	ModuleSize int         // image pixels per module, at least 1
	Margin     int         // quiet zone in modules, at least 0
	Dark       color.Color // nil means black
	Light      color.Color // nil means white
}

// Render draws the square module matrix m, m[y][x] true for dark, as
// a two-colour paletted image.  The image is
// (len(m)+2*o.Margin)*o.ModuleSize pixels on a side, light everywhere
// except for a ModuleSize by ModuleSize dark block per dark module.
// Palette index 0 is light, 1 is dark.
func Render(m [][]bool, o RenderOptions) (*image.Paletted, error) {
	siz := len(m)
	if siz == 0 || o.ModuleSize <= 0 || o.Margin < 0 {
		return nil, ErrArgs
	}
	for _, row := range m {
		if len(row) != siz {
			return nil, ErrArgs
		}
	}
	if (siz+2*o.Margin) > maxPixels/o.ModuleSize {
		return nil, ErrLargeImage
	}
	light, dark := o.Light, o.Dark
	if light == nil {
		light = whiteColor
	}
	if dark == nil {
		dark = blackColor
	}
	scale := o.ModuleSize
	d := (siz + 2*o.Margin) * scale
	img := image.NewPaletted(image.Rect(0, 0, d, d),
		color.Palette{light, dark})
	off := o.Margin * scale
	for y, row := range m {
		py := off + y*scale
		pix := img.Pix[py*img.Stride : (py+1)*img.Stride]
		for x, v := range row {
			if v {
				px := off + x*scale
				for i := px; i < px+scale; i++ {
					pix[i] = 1
				}
			}
		}
		// Repeat the first pixel row of the module row.
		for i := 1; i < scale; i++ {
			copy(img.Pix[(py+i)*img.Stride:], pix)
		}
	}
	return img, nil
}

// Render draws the code with its scale, border and colours.
func (c *Code) Render() (*image.Paletted, error) {
	if !c.isValid() {
		return nil, ErrArgs
	}
	light, dark := c.colors()
	return Render(c.Matrix(), RenderOptions{
		ModuleSize: c.Scale,
		Margin:     c.Border,
		Dark:       dark,
		Light:      light,
	})
}
