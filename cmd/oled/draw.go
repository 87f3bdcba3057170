// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/GermanBionicSystems/oled/canvas"
	"github.com/GermanBionicSystems/oled/ssd1306"
	"github.com/GermanBionicSystems/oled/ssd1306/image1bit"
)

// fullArea returns a render area covering the whole panel.
func fullArea(g ssd1306.Geometry) (*ssd1306.RenderArea, error) {
	return ssd1306.NewRenderArea(g, 0, g.MaxColumns()-1, 0, g.MaxPages()-1)
}

func clearScreen(s sink, g ssd1306.Geometry) error {
	a, err := fullArea(g)
	if err != nil {
		return err
	}
	defer a.Release()
	return s.show(a)
}

// text prints msg in the 7x13 bitmap font, one line per 13 pixels.
func text(s sink, msg string) error {
	img := image1bit.NewVerticalLSB(s.Bounds())
	f := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: f,
	}
	y := f.Ascent
	for _, line := range splitLines(msg, img.Bounds().Dx()/f.Advance) {
		if y+f.Descent > img.Bounds().Dy() {
			break
		}
		drawer.Dot = fixed.P(0, y)
		drawer.DrawString(line)
		y += f.Height
	}
	return s.Draw(s.Bounds(), img, image.Point{})
}

// splitLines breaks msg into chunks of at most n runes.
func splitLines(msg string, n int) []string {
	if n < 1 {
		n = 1
	}
	var out []string
	r := []rune(msg)
	for len(r) > n {
		out = append(out, string(r[:n]))
		r = r[n:]
	}
	return append(out, string(r))
}

// banner prints msg centered in the Go regular TrueType font, as large as the
// panel height allows.
func banner(s sink, msg string) error {
	b := s.Bounds()
	w, h := b.Dx(), b.Dy()
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	size := float64(h) * 0.6
	for ; size > 6; size-- {
		dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: size}))
		if tw, _ := dc.MeasureString(msg); tw <= float64(w) {
			break
		}
	}
	dc.DrawStringAnchored(msg, float64(w)/2, float64(h)/2, 0.5, 0.5)
	return s.Draw(b, dc.Image(), image.Point{})
}

// lines draws a frame and both diagonals through a render area.
func lines(s sink, g ssd1306.Geometry) error {
	a, err := fullArea(g)
	if err != nil {
		return err
	}
	defer a.Release()
	w, h := a.PixelWidth(), g.Height
	canvas.Rect(a, image.Rect(0, 0, w, h), true)
	a.DrawLine(0, 0, w-1, h-1, true)
	a.DrawLine(0, h-1, w-1, 0, true)
	return s.show(a)
}
