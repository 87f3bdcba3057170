// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a monochrome 2D display.Drawer that outputs to
// a terminal using ANSI color codes.
//
// Useful to preview what an OLED panel would show without the hardware. The
// pixels are stored in the same page packed layout as the SSD1306 RAM.
package screen2d

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"

	"github.com/GermanBionicSystems/oled/canvas"
	"github.com/GermanBionicSystems/oled/ssd1306/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	// Width and Height are in pixels.
	Width  int
	Height int
	// On and Off are the colors of a lit and a dark pixel. The zero value
	// selects the defaults.
	On  color.NRGBA
	Off color.NRGBA
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// W defaults to a colorable stdout.
	W io.Writer

	_ struct{}
}

// Default pixel colors, roughly the look of a white OLED panel.
var (
	DefaultOn  = color.NRGBA{0xDF, 0xEF, 0xFF, 0xFF}
	DefaultOff = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
)

// Dev is a monochrome panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	on, off string
	origin  image.Point

	img *image1bit.VerticalLSB
	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("screen2d: invalid size %dx%d", opts.Width, opts.Height)
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	on := opts.On
	if on == (color.NRGBA{}) {
		on = DefaultOn
	}
	off := opts.Off
	if off == (color.NRGBA{}) {
		off = DefaultOff
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{
		w:       w,
		palette: *p,
		img:     image1bit.NewVerticalLSB(image.Rect(0, 0, opts.Width, opts.Height)),
	}
	d.on = d.palette.Block(on)
	d.off = d.palette.Block(off)
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen2D{%dx%d}", d.img.Rect.Dx(), d.img.Rect.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell is not left colored.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// PixelWidth implements canvas.Canvas.
func (d *Dev) PixelWidth() int {
	return d.img.Rect.Dx()
}

// PixelHeight implements canvas.Canvas.
func (d *Dev) PixelHeight() int {
	return d.img.Rect.Dy()
}

// SetPixel implements canvas.Canvas.
//
// It panics when (x, y) is outside the screen.
func (d *Dev) SetPixel(x, y int, on bool) {
	d.check(x, y)
	d.img.SetBit(x, y, image1bit.Bit(on))
}

// GetPixel implements canvas.Canvas.
func (d *Dev) GetPixel(x, y int) bool {
	d.check(x, y)
	return bool(d.img.BitAt(x, y))
}

// SetPosition implements canvas.Canvas. It sets the terminal cell, 0 based,
// where the top left pixel is printed. The default prints at the cursor.
func (d *Dev) SetPosition(x, y int) {
	d.origin = image.Pt(x, y)
}

// FillWith sets every pixel. It is used by canvas.Fill.
func (d *Dev) FillWith(on bool) {
	d.img.Fill(image1bit.Bit(on))
}

// Write accepts a page packed buffer, as accepted by ssd1306.Dev.Write, and
// prints it.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.img.Pix) {
		return 0, errors.New("screen2d: invalid pixel stream length")
	}
	copy(d.img.Pix, pixels)
	if err := d.Refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.img.Rect
}

// Draw implements display.Drawer.
//
// Colors are converted to on or off, then the whole screen is printed.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.img, r, src, sp, draw.Src)
	return d.Refresh()
}

// Refresh prints the screen, one terminal line per pixel row.
func (d *Dev) Refresh() error {
	// Reuse the same buffer to minimize allocations per frame.
	d.buf.Reset()
	for y := 0; y < d.PixelHeight(); y++ {
		if d.origin != (image.Point{}) {
			fmt.Fprintf(&d.buf, "\033[%d;%dH", d.origin.Y+y+1, d.origin.X+1)
		} else {
			_, _ = d.buf.WriteString("\r")
		}
		_, _ = d.buf.WriteString("\033[0m")
		for x := 0; x < d.PixelWidth(); x++ {
			if d.img.BitAt(x, y) {
				_, _ = d.buf.WriteString(d.on)
			} else {
				_, _ = d.buf.WriteString(d.off)
			}
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

func (d *Dev) check(x, y int) {
	if !(image.Point{x, y}.In(d.img.Rect)) {
		panic(fmt.Sprintf("screen2d: pixel (%d, %d) outside %v", x, y, d.img.Rect))
	}
}

var _ display.Drawer = &Dev{}
var _ canvas.Canvas = &Dev{}
var _ fmt.Stringer = &Dev{}
