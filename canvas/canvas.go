// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package canvas defines the minimal capability set shared by monochrome
// pixel surfaces and the drawing primitives built on top of it.
//
// A Canvas is addressed in its own pixel space, (0, 0) being the top left
// pixel. Callers must stay within PixelWidth() x PixelHeight(); surfaces are
// free to panic otherwise.
package canvas

import "image"

// Canvas is a monochrome surface.
type Canvas interface {
	// PixelWidth returns the width of the surface in pixels.
	PixelWidth() int
	// PixelHeight returns the height of the surface in pixels.
	PixelHeight() int
	// SetPixel turns the pixel at (x, y) on or off.
	SetPixel(x, y int, on bool)
	// GetPixel reports whether the pixel at (x, y) is on.
	GetPixel(x, y int) bool
	// SetPosition moves the surface within its parent coordinate space.
	SetPosition(x, y int)
}

// Line draws a line from (x0, y0) to (x1, y1), both ends included, using
// Bresenham's algorithm.
func Line(c Canvas, x0, y0, x1, y1 int, on bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x1 < x0 {
		sx = -1
	}
	sy := 1
	if y1 < y0 {
		sy = -1
	}
	e := dx + dy
	for {
		c.SetPixel(x0, y0, on)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Fill sets every pixel of c.
//
// Surfaces backed by page packed memory usually have a faster bulk fill.
func Fill(c Canvas, on bool) {
	if f, ok := c.(interface{ FillWith(on bool) }); ok {
		f.FillWith(on)
		return
	}
	w, h := c.PixelWidth(), c.PixelHeight()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetPixel(x, y, on)
		}
	}
}

// Rect draws the outline of r, clipped to the canvas.
func Rect(c Canvas, r image.Rectangle, on bool) {
	r = r.Canon().Intersect(Bounds(c))
	if r.Empty() {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	Line(c, x0, y0, x1, y0, on)
	Line(c, x0, y1, x1, y1, on)
	Line(c, x0, y0, x0, y1, on)
	Line(c, x1, y0, x1, y1, on)
}

// Count returns the number of lit pixels.
func Count(c Canvas) int {
	n := 0
	w, h := c.PixelWidth(), c.PixelHeight()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.GetPixel(x, y) {
				n++
			}
		}
	}
	return n
}

// Bounds returns the canvas pixel space as a rectangle anchored at (0, 0).
func Bounds(c Canvas) image.Rectangle {
	return image.Rect(0, 0, c.PixelWidth(), c.PixelHeight())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
