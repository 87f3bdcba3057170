// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"io"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/display"

	"github.com/GermanBionicSystems/oled/screen2d"
	"github.com/GermanBionicSystems/oled/ssd1306"
)

// sink is where the commands draw: the real panel or a terminal preview.
type sink interface {
	display.Drawer
	init() error
	show(a *ssd1306.RenderArea) error
	scroll(o ssd1306.Orientation) error
}

// panel drives the hardware.
type panel struct {
	dev *ssd1306.Dev
	// zeroContrast is set when the dimmest level was requested, which Opts
	// cannot express.
	zeroContrast bool
}

func (p *panel) String() string {
	return p.dev.String()
}

func (p *panel) Halt() error {
	return p.dev.Halt()
}

func (p *panel) ColorModel() color.Model {
	return p.dev.ColorModel()
}

func (p *panel) Bounds() image.Rectangle {
	return p.dev.Bounds()
}

func (p *panel) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	return p.dev.Draw(r, src, sp)
}

func (p *panel) init() error {
	if err := p.dev.Init(); err != nil {
		return err
	}
	if p.zeroContrast {
		return p.dev.SetContrast(0)
	}
	return nil
}

func (p *panel) show(a *ssd1306.RenderArea) error {
	return p.dev.Render(a)
}

func (p *panel) scroll(o ssd1306.Orientation) error {
	return p.dev.Scroll(o, ssd1306.Step5Frames, 0, -1)
}

// preview prints to a terminal.
type preview struct {
	*screen2d.Dev
}

// newPreview returns a terminal preview of a panel of geometry g. A nil w
// selects stdout.
func newPreview(g ssd1306.Geometry, w io.Writer) (*preview, error) {
	d, err := screen2d.New(&screen2d.Opts{Width: g.Width, Height: g.Height, W: w})
	if err != nil {
		return nil, err
	}
	return &preview{Dev: d}, nil
}

func (p *preview) init() error {
	p.FillWith(false)
	return p.Refresh()
}

func (p *preview) show(a *ssd1306.RenderArea) error {
	return p.Draw(a.Bounds(), a.Image(), image.Point{})
}

func (p *preview) scroll(o ssd1306.Orientation) error {
	log.WithField("orientation", o).Info("scrolling is done by the controller, nothing to preview")
	return nil
}
