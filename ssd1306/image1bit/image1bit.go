// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image1bit implements 1 bit per pixel images laid out the way
// SSD1306 class controllers store their graphic RAM.
//
// Pixels are grouped in pages: each byte covers 8 vertically stacked pixels
// of a single column, the least significant bit being the top-most pixel.
// Pages are stored left to right, then top to bottom.
package image1bit

import (
	"image"
	"image/color"
)

// Bit implements a 1 bit color.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA returns either all white or all black.
//
// Technically the monochrome display could be colored but this information is
// unavailable here. To use a colored display, use the 1 bit image as a mask
// for a color.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 65535, 65535, 65535, 65535
	}
	return 0, 0, 0, 65535
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// BitModel is the color Model for 1 bit color.
var BitModel = color.ModelFunc(convert)

// PixelsPerPage is the number of vertically stacked pixels held in one byte.
const PixelsPerPage = 8

// VerticalLSB is a 1 bit (black and white) image.
//
// Each byte is 8 vertical pixels. Each stride is an horizontal band of 8
// pixels high with LSB first. So the first byte represent the following
// pixels, with lowest bit being the top left pixel.
//
//	0 x x x x x x x
//	1 x x x x x x x
//	2 x x x x x x x
//	3 x x x x x x x
//	4 x x x x x x x
//	5 x x x x x x x
//	6 x x x x x x x
//	7 x x x x x x x
//
// It is designed specifically to work with SSD1306 OLED display controller.
type VerticalLSB struct {
	// Pix holds the image's pixels, as vertically LSB-first packed bitmap. It
	// can be passed directly to ssd1306.Dev.Write()
	Pix []byte
	// Stride is the Pix stride (in bytes) between vertically adjacent 8 pixels
	// horizontal bands.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewVerticalLSB returns an initialized VerticalLSB instance.
//
// The height is rounded up to the next page boundary for storage.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w := r.Dx()
	h := r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	pages := (h + PixelsPerPage - 1) / PixelsPerPage
	return &VerticalLSB{
		Pix:    make([]byte, pages*w),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (i *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (i *VerticalLSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *VerticalLSB) At(x, y int) color.Color {
	return i.BitAt(x, y)
}

// BitAt is the optimized version of At().
//
// Pixels outside the image bounds are Off.
func (i *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{x, y}.In(i.Rect)) {
		return Off
	}
	offset, mask := i.PixOffset(x, y)
	return Bit(i.Pix[offset]&mask != 0)
}

// Opaque scans the entire image and reports whether it is fully opaque.
func (i *VerticalLSB) Opaque() bool {
	return true
}

// PixOffset returns the index of the byte holding pixel (x, y) and the mask of
// its bit within that byte.
//
// The caller is responsible for bounds checking.
func (i *VerticalLSB) PixOffset(x, y int) (int, byte) {
	x -= i.Rect.Min.X
	y -= i.Rect.Min.Y
	return (y/PixelsPerPage)*i.Stride + x, byte(1 << uint(y%PixelsPerPage))
}

// Set implements draw.Image
func (i *VerticalLSB) Set(x, y int, c color.Color) {
	i.SetBit(x, y, convertBit(c))
}

// SetBit is the optimized version of Set().
//
// Pixels outside the image bounds are silently ignored.
func (i *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	offset, mask := i.PixOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

// FlipBit inverts the pixel at (x, y) and returns its new value.
func (i *VerticalLSB) FlipBit(x, y int) Bit {
	if !(image.Point{x, y}.In(i.Rect)) {
		return Off
	}
	offset, mask := i.PixOffset(x, y)
	i.Pix[offset] ^= mask
	return Bit(i.Pix[offset]&mask != 0)
}

// Fill sets every pixel, including the padding bits of a partial last page.
func (i *VerticalLSB) Fill(b Bit) {
	v := byte(0)
	if b {
		v = 0xFF
	}
	for j := range i.Pix {
		i.Pix[j] = v
	}
}

// DrawHLine draws a horizontal line from x0 (inclusive) to x1 (exclusive) on
// row y.
func (i *VerticalLSB) DrawHLine(x0, x1, y int, b Bit) {
	for x := x0; x < x1; x++ {
		i.SetBit(x, y, b)
	}
}

// DrawVLine draws a vertical line from y0 (inclusive) to y1 (exclusive) on
// column x.
func (i *VerticalLSB) DrawVLine(y0, y1, x int, b Bit) {
	for y := y0; y < y1; y++ {
		i.SetBit(x, y, b)
	}
}

var _ color.Color = Bit(false)

func convert(c color.Color) color.Color {
	return convertBit(c)
}

func convertBit(c color.Color) Bit {
	switch t := c.(type) {
	case Bit:
		return t
	default:
		r, g, b, _ := c.RGBA()
		return (r | g | b) >= 0x8000
	}
}
