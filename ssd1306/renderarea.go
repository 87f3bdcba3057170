// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"
	"image"

	"github.com/GermanBionicSystems/oled/canvas"
	"github.com/GermanBionicSystems/oled/ssd1306/image1bit"
)

// RenderArea is a rectangular window of the display RAM, expressed in columns
// and pages, together with its own page packed pixel buffer.
//
// The buffer belongs to the RenderArea; it is never shared with the Dev or
// with another RenderArea. A RenderArea must not be used concurrently.
type RenderArea struct {
	geom                    Geometry
	beginColumn, lastColumn int
	beginPage, lastPage     int
	img                     *image1bit.VerticalLSB
}

// NewRenderArea returns a blank render area covering the inclusive column
// range [beginColumn, lastColumn] and page range [beginPage, lastPage] of a
// display of geometry g.
func NewRenderArea(g Geometry, beginColumn, lastColumn, beginPage, lastPage int) (*RenderArea, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if beginColumn < 0 || beginColumn > lastColumn || lastColumn >= g.MaxColumns() {
		return nil, invalidArgf("render area columns [%d, %d] outside [0, %d)", beginColumn, lastColumn, g.MaxColumns())
	}
	if beginPage < 0 || beginPage > lastPage || lastPage >= g.MaxPages() {
		return nil, invalidArgf("render area pages [%d, %d] outside [0, %d)", beginPage, lastPage, g.MaxPages())
	}
	columns := lastColumn - beginColumn + 1
	pages := lastPage - beginPage + 1
	return &RenderArea{
		geom:        g,
		beginColumn: beginColumn,
		lastColumn:  lastColumn,
		beginPage:   beginPage,
		lastPage:    lastPage,
		img:         image1bit.NewVerticalLSB(image.Rect(0, 0, columns, pages*image1bit.PixelsPerPage)),
	}, nil
}

// NewRenderArea returns a blank render area on the display.
func (d *Dev) NewRenderArea(beginColumn, lastColumn, beginPage, lastPage int) (*RenderArea, error) {
	return NewRenderArea(d.geom, beginColumn, lastColumn, beginPage, lastPage)
}

// Render programs the column and page window of a on the controller and
// transfers its buffer.
//
// The three transfers are not atomic. On failure the address window may
// already point at a, which the next Render reprograms anyway.
func (d *Dev) Render(a *RenderArea) error {
	if a.img == nil {
		return invalidArgf("render area was released")
	}
	if err := d.SetColumnAddress(a.beginColumn, a.lastColumn); err != nil {
		return err
	}
	if err := d.SetPageAddress(a.beginPage, a.lastPage); err != nil {
		return err
	}
	return d.SendBuffer(a.img.Pix, false)
}

func (a *RenderArea) String() string {
	return fmt.Sprintf("RenderArea{columns: [%d, %d], pages: [%d, %d]}", a.beginColumn, a.lastColumn, a.beginPage, a.lastPage)
}

// Columns returns the inclusive column range.
func (a *RenderArea) Columns() (begin, last int) {
	return a.beginColumn, a.lastColumn
}

// Pages returns the inclusive page range.
func (a *RenderArea) Pages() (begin, last int) {
	return a.beginPage, a.lastPage
}

// PixelWidth implements canvas.Canvas.
func (a *RenderArea) PixelWidth() int {
	return a.lastColumn - a.beginColumn + 1
}

// PixelHeight implements canvas.Canvas.
func (a *RenderArea) PixelHeight() int {
	return (a.lastPage - a.beginPage + 1) * image1bit.PixelsPerPage
}

// Bounds returns the area in display pixel coordinates.
func (a *RenderArea) Bounds() image.Rectangle {
	return image.Rect(
		a.beginColumn, a.beginPage*image1bit.PixelsPerPage,
		a.lastColumn+1, (a.lastPage+1)*image1bit.PixelsPerPage)
}

// Bytes returns the page packed buffer, one byte per column per page, pages
// top to bottom. It is the exact payload Render sends.
func (a *RenderArea) Bytes() []byte {
	return a.img.Pix
}

// Image returns the buffer as an image anchored at (0, 0) so it can be used
// with image/draw. It shares memory with the render area.
func (a *RenderArea) Image() *image1bit.VerticalLSB {
	return a.img
}

// Release drops the buffer. The render area must not be used afterward.
func (a *RenderArea) Release() {
	a.img = nil
}

// PageIndex maps the pixel (x, y) of the area to the index of the byte
// holding it and the bit within that byte.
//
// It panics when (x, y) is outside the area.
func (a *RenderArea) PageIndex(x, y int) (int, uint) {
	w := a.PixelWidth()
	if x < 0 || x >= w || y < 0 || y >= a.PixelHeight() {
		panic(fmt.Sprintf("ssd1306: pixel (%d, %d) outside %dx%d render area", x, y, w, a.PixelHeight()))
	}
	return (y/image1bit.PixelsPerPage)*w + x, uint(y % image1bit.PixelsPerPage)
}

// SetPixel implements canvas.Canvas.
func (a *RenderArea) SetPixel(x, y int, on bool) {
	i, bit := a.PageIndex(x, y)
	if on {
		a.img.Pix[i] |= 1 << bit
	} else {
		a.img.Pix[i] &^= 1 << bit
	}
}

// ClearPixel turns the pixel at (x, y) off.
func (a *RenderArea) ClearPixel(x, y int) {
	a.SetPixel(x, y, false)
}

// TogglePixel inverts the pixel at (x, y).
func (a *RenderArea) TogglePixel(x, y int) {
	i, bit := a.PageIndex(x, y)
	a.img.Pix[i] ^= 1 << bit
}

// GetPixel implements canvas.Canvas.
func (a *RenderArea) GetPixel(x, y int) bool {
	i, bit := a.PageIndex(x, y)
	return a.img.Pix[i]&(1<<bit) != 0
}

// FillWith sets every pixel of the area.
func (a *RenderArea) FillWith(on bool) {
	a.img.Fill(image1bit.Bit(on))
}

// DrawLine draws a line between two pixels of the area, both included.
func (a *RenderArea) DrawLine(x0, y0, x1, y1 int, on bool) {
	canvas.Line(a, x0, y0, x1, y1, on)
}

// SetPosition implements canvas.Canvas. It moves the window so that its first
// column is column and its first page is page, keeping its size and content.
//
// It panics if the moved window does not fit the display.
func (a *RenderArea) SetPosition(column, page int) {
	lastColumn := column + a.lastColumn - a.beginColumn
	lastPage := page + a.lastPage - a.beginPage
	if column < 0 || page < 0 || lastColumn >= a.geom.MaxColumns() || lastPage >= a.geom.MaxPages() {
		panic(fmt.Sprintf("ssd1306: render area cannot move to column %d page %d", column, page))
	}
	a.beginColumn, a.lastColumn = column, lastColumn
	a.beginPage, a.lastPage = page, lastPage
}

var _ canvas.Canvas = &RenderArea{}
