// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// https://hallard.me/adafruit-oled-display-driver-for-pi/
//
// https://learn.adafruit.com/ssd1306-oled-displays-with-raspberry-pi-and-beaglebone-black?view=all

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"

	"github.com/GermanBionicSystems/oled/ssd1306/image1bit"
)

// I²C addresses, selected by the SA0 strap.
const (
	DefaultAddr     uint16 = 0x3C // SA0 pulled to GND
	AlternativeAddr uint16 = 0x3D // SA0 pulled to VCC
)

// Geometry describes the panel wired to the controller.
type Geometry struct {
	// Width and Height in pixels.
	Width, Height int
	// SequentialCOM corresponds to the Sequential/Alternative COM pin
	// configuration in the OLED panel hardware. Try toggling this if half the
	// rows appear to be missing on your display.
	SequentialCOM bool
}

// Common module geometries.
var (
	Geometry128x32 = Geometry{Width: 128, Height: 32, SequentialCOM: true}
	Geometry128x64 = Geometry{Width: 128, Height: 64}
)

// MaxColumns returns the number of RAM columns used.
func (g Geometry) MaxColumns() int {
	return g.Width
}

// MaxPages returns the number of 8 pixels high pages used.
func (g Geometry) MaxPages() int {
	return (g.Height + image1bit.PixelsPerPage - 1) / image1bit.PixelsPerPage
}

// RAMSize returns the number of RAM bytes covered by the panel.
func (g Geometry) RAMSize() int {
	return g.MaxColumns() * g.MaxPages()
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

func (g Geometry) validate() error {
	if g.Width < 1 || g.Width > 128 {
		return invalidArgf("width %d outside [1, 128]", g.Width)
	}
	// The multiplex ratio goes from 16 to 64 lines.
	if g.Height < 16 || g.Height > 64 {
		return invalidArgf("height %d outside [16, 64]", g.Height)
	}
	return nil
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Geometry: Geometry128x64,
	Addr:     DefaultAddr,
}

// Opts defines the options for the device.
type Opts struct {
	Geometry Geometry
	// The I²C address of the display, DefaultAddr or AlternativeAddr. Zero
	// selects DefaultAddr.
	Addr uint16
	// MirrorVertical corresponds to the COM remap configuration in the OLED panel
	// hardware. Try toggling this if the display is flipped vertically.
	MirrorVertical bool
	// MirrorHorizontal corresponds to the SEG remap configuration in the OLED panel
	// hardware. Try toggling this if the display is flipped horizontally.
	MirrorHorizontal bool
	// SwapTopBottom corresponds to the Left/Right remap COM pin configuration in
	// the OLED panel hardware. Try toggling this if the top and bottom halves of
	// your display are swapped.
	SwapTopBottom bool
	// Contrast set by Init. Zero selects the maximum, 0xFF, so the dimmest
	// level can only be set with SetContrast(0) after Init.
	Contrast byte
	// Reset is the optional RES# line. When set, Init pulses it before
	// configuring the controller.
	Reset gpio.PinOut
	// Logger receives a debug entry for every bus transfer when set.
	Logger logrus.FieldLogger
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1306 display
// controller.
//
// Nothing is sent to the device; call Init before drawing.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	o := *opts
	if o.Geometry == (Geometry{}) {
		o.Geometry = DefaultOpts.Geometry
	}
	if err := o.Geometry.validate(); err != nil {
		return nil, err
	}
	switch o.Addr {
	case 0:
		o.Addr = DefaultAddr
	case DefaultAddr, AlternativeAddr:
	default:
		return nil, invalidArgf("I²C address 0x%02X", o.Addr)
	}
	if o.Contrast == 0 {
		o.Contrast = 0xFF
	}
	// Maximum clock speed is 1/2.5µs = 400KHz.
	return &Dev{
		c:      &i2c.Dev{Bus: b, Addr: o.Addr},
		opts:   o,
		geom:   o.Geometry,
		log:    o.Logger,
		rect:   image.Rect(0, 0, o.Geometry.Width, o.Geometry.Height),
		buffer: make([]byte, o.Geometry.RAMSize()),
		// RAM content is unknown until Init clears it.
		scrolled: true,
	}, nil
}

// Dev is an open handle to the display controller.
//
// It is not safe for concurrent use.
type Dev struct {
	// Communication
	c    *i2c.Dev
	opts Opts
	geom Geometry
	log  logrus.FieldLogger

	// Display size controlled by the SSD1306.
	rect image.Rectangle

	// Mutable
	// See page 25 for the GDDRAM pages structure.
	// There is up to 8 pages, each covering an horizontal band of 8 pixels
	// high (1 byte) for 128 bytes.
	// 8*128 = 1024 bytes total for 128x64 display.
	buffer []byte
	// next is lazy initialized on first Draw(). Write() skips this buffer.
	next *image1bit.VerticalLSB
	// staging holds the data control byte followed by the payload.
	staging []byte
	// scrolled is set when buffer may not match the RAM content.
	scrolled bool
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%s, %s}", d.c, d.rect.Max)
}

// Geometry returns the panel geometry.
func (d *Dev) Geometry() Geometry {
	return d.geom
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// It draws synchronously, once this function returns, the display is updated.
// Only the smallest column and page window that changed since the last
// transfer is sent.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	var next []byte
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == d.rect && img.Rect == d.rect && sp.X == 0 && sp.Y == 0 {
		// Exact size, full frame, image1bit encoding: fast path!
		next = img.Pix
	} else {
		// Double buffering.
		if d.next == nil {
			d.next = image1bit.NewVerticalLSB(d.rect)
			copy(d.next.Pix, d.buffer)
		}
		next = d.next.Pix
		draw.Src.Draw(d.next, r, src, sp)
	}
	return d.drawInternal(next)
}

// Write writes a buffer of pixels to the display.
//
// The format is unsual as each byte represent 8 vertical pixels at a time. The
// format is horizontal bands of 8 pixels high.
//
// This function accepts the content of image1bit.VerticalLSB.Pix.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.buffer) {
		return 0, invalidArgf("pixel stream length; expected %d bytes, got %d bytes", len(d.buffer), len(pixels))
	}
	if err := d.drawInternal(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Halt turns off the display.
//
// Init or SetDisplayOn turns it back on.
func (d *Dev) Halt() error {
	return d.SetDisplayOn(false)
}

// dirtyWindow returns the smallest inclusive page and column window covering
// every byte of next that differs from the last frame sent.
func (d *Dev) dirtyWindow(next []byte) (beginCol, lastCol, beginPage, lastPage int, skip bool) {
	pageSize := d.geom.MaxColumns()
	beginPage, lastPage = 0, d.geom.MaxPages()-1
	beginCol, lastCol = 0, pageSize-1
	if d.scrolled {
		// Painting disable scrolling but if scrolling was enabled, this requires a
		// full screen redraw.
		return beginCol, lastCol, beginPage, lastPage, false
	}

	// Top.
	for ; beginPage <= lastPage; beginPage++ {
		x := pageSize * beginPage
		if !bytes.Equal(d.buffer[x:x+pageSize], next[x:x+pageSize]) {
			break
		}
	}
	if beginPage > lastPage {
		// Early exit, the image is exactly the same.
		return 0, 0, 0, 0, true
	}
	// Bottom.
	for ; lastPage > beginPage; lastPage-- {
		x := pageSize * lastPage
		if !bytes.Equal(d.buffer[x:x+pageSize], next[x:x+pageSize]) {
			break
		}
	}

	// Left.
	for ; beginCol < lastCol; beginCol++ {
		if !d.columnEqual(next, beginCol, beginPage, lastPage) {
			break
		}
	}
	// Right.
	for ; lastCol > beginCol; lastCol-- {
		if !d.columnEqual(next, lastCol, beginPage, lastPage) {
			break
		}
	}
	return beginCol, lastCol, beginPage, lastPage, false
}

func (d *Dev) columnEqual(next []byte, col, beginPage, lastPage int) bool {
	pageSize := d.geom.MaxColumns()
	for p := beginPage; p <= lastPage; p++ {
		x := p*pageSize + col
		if d.buffer[x] != next[x] {
			return false
		}
	}
	return true
}

// drawInternal sends the changed part of next to the controller as a render
// area.
func (d *Dev) drawInternal(next []byte) error {
	beginCol, lastCol, beginPage, lastPage, skip := d.dirtyWindow(next)
	if skip {
		return nil
	}
	area, err := d.NewRenderArea(beginCol, lastCol, beginPage, lastPage)
	if err != nil {
		return err
	}
	pageSize := d.geom.MaxColumns()
	columns := lastCol - beginCol + 1
	dst := area.Bytes()
	for p := beginPage; p <= lastPage; p++ {
		src := next[p*pageSize+beginCol : p*pageSize+lastCol+1]
		copy(dst[(p-beginPage)*columns:], src)
	}
	if err := d.Render(area); err != nil {
		// Part of the window may have been written.
		d.scrolled = true
		return err
	}
	copy(d.buffer, next)
	if d.next != nil && &d.next.Pix[0] != &next[0] {
		copy(d.next.Pix, next)
	}
	d.scrolled = false
	return nil
}

var _ display.Drawer = &Dev{}
