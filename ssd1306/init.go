// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// RES# timings. The datasheet asks for at least 3µs low.
const (
	resetPulse  = time.Millisecond
	resetSettle = time.Millisecond
)

type initStep struct {
	name string
	run  func() error
}

// Init brings the controller from an unknown state to a cleared, displaying
// state.
//
// The sequence is strictly linear and stops at the first failing step. Any
// error means the device is not initialized and must not be drawn to.
func (d *Dev) Init() error {
	for _, s := range d.initSequence() {
		if d.log != nil {
			d.log.WithField("step", s.name).Debug("ssd1306: init")
		}
		if err := s.run(); err != nil {
			return fmt.Errorf("ssd1306: init %s: %w", s.name, err)
		}
	}
	// RAM was just zeroed.
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	if d.next != nil {
		copy(d.next.Pix, d.buffer)
	}
	d.scrolled = false
	return nil
}

// initSequence returns the initialization steps. Page 64 has the recommended
// flow, page 28 lists all the commands.
func (d *Dev) initSequence() []initStep {
	o := &d.opts
	comScan := ScanReverse
	if o.MirrorVertical {
		comScan = ScanForward
	}
	return []initStep{
		{"reset", d.Reset},
		{"display off", func() error { return d.SetDisplayOn(false) }},
		{"addressing mode", func() error { return d.SetAddressingMode(HorizontalAddressing) }},
		{"start line", func() error { return d.SetDisplayStartLine(0) }},
		// RESET is column 0 mapped to SEG0.
		{"segment remap", func() error { return d.SetSegmentRemap(!o.MirrorHorizontal) }},
		{"multiplex ratio", func() error { return d.SetMultiplexRatio(byte(d.geom.Height - 1)) }},
		{"COM scan direction", func() error { return d.SetCOMScanDirection(comScan) }},
		{"display offset", func() error { return d.SetDisplayOffset(0) }},
		// Board specific: 0x02 for 128x32, 0x12 for 128x64.
		{"COM pins", func() error { return d.SetCOMPins(!d.geom.SequentialCOM, o.SwapTopBottom) }},
		{"display clock", func() error { return d.SetDisplayClock(0x08, 1) }},
		{"pre-charge period", func() error { return d.SetPrechargePeriod(0x01, 0x0F) }},
		{"VCOMH level", func() error { return d.SetVCOMHDeselectLevel(VCOMH083) }},
		{"contrast", func() error { return d.SetContrast(o.Contrast) }},
		{"normal display", func() error { return d.Invert(false) }},
		// Page 62.
		{"charge pump", func() error { return d.SetChargePump(true) }},
		{"deactivate scroll", d.DeactivateScroll},
		{"clear RAM", d.clearRAM},
		{"resume RAM content", func() error { return d.SetEntireDisplayOn(false) }},
		{"display on", func() error { return d.SetDisplayOn(true) }},
	}
}

// clearRAM zeroes the whole graphic RAM covered by the panel.
func (d *Dev) clearRAM() error {
	a, err := d.NewRenderArea(0, d.geom.MaxColumns()-1, 0, d.geom.MaxPages()-1)
	if err != nil {
		return err
	}
	defer a.Release()
	return d.Render(a)
}

// Reset pulses the RES# line when one was provided in Opts. All registers
// return to their reset values; Init must be called afterward.
func (d *Dev) Reset() error {
	p := d.opts.Reset
	if p == nil {
		return nil
	}
	for _, l := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
		if err := p.Out(l); err != nil {
			return &TransportError{Op: "reset", Err: err}
		}
		if l == gpio.Low {
			time.Sleep(resetPulse)
		}
	}
	time.Sleep(resetSettle)
	d.scrolled = true
	return nil
}
