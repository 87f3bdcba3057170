// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

// initOps returns the transcript of Init for a 128 columns panel.
func initOps(pages int, multiplex, comPins byte) []i2ctest.IO {
	return join(
		cmds(
			0xAE,       // display off
			0x20, 0x00, // horizontal addressing
			0x40,            // start line 0
			0xA1,            // segment remap
			0xA8, multiplex, // multiplex ratio
			0xC8,       // COM scan reversed
			0xD3, 0x00, // display offset
			0xDA, comPins, // COM pins
			0xD5, 0x80, // clock
			0xD9, 0xF1, // pre-charge
			0xDB, 0x30, // VCOMH
			0x81, 0xFF, // contrast
			0xA6,       // normal display
			0x8D, 0x14, // charge pump
			0x2E, // deactivate scroll
			0x21, 0x00, 0x7F,
			0x22, 0x00, byte(pages-1),
		),
		data(make([]byte, 128*pages)...),
		cmds(
			0xA4, // resume RAM content
			0xAF, // display on
		),
	)
}

func TestInit(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts Opts
		want []i2ctest.IO
	}{
		{"128x64", Opts{Geometry: Geometry128x64}, initOps(8, 0x3F, 0x12)},
		{"128x32", Opts{Geometry: Geometry128x32}, initOps(4, 0x1F, 0x02)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, r := newRecorded(t, &tc.opts)
			if err := d.Init(); err != nil {
				t.Fatal(err)
			}
			diffOps(t, r.Ops, tc.want)
		})
	}
}

func TestInit_Options(t *testing.T) {
	d, r := newRecorded(t, &Opts{
		MirrorHorizontal: true,
		MirrorVertical:   true,
		SwapTopBottom:    true,
		Contrast:         0x40,
	})
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	want := initOps(8, 0x3F, 0x32)
	// segment remap, COM scan and contrast.
	want[4] = cmds(0xA0)[0]
	want[7] = cmds(0xC0)[0]
	want[19] = cmds(0x40)[0]
	diffOps(t, r.Ops, want)
}

func TestInit_ZeroContrast(t *testing.T) {
	// Zero is the unset value and selects the maximum; SetContrast(0) after
	// Init reaches the dimmest level.
	d, r := newRecorded(t, &Opts{Contrast: 0})
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	if err := d.SetContrast(0); err != nil {
		t.Fatal(err)
	}
	diffOps(t, r.Ops, join(initOps(8, 0x3F, 0x12), cmds(0x81, 0x00)))
}

func TestInit_AbortsAtFailingStep(t *testing.T) {
	all := initOps(4, 0x1F, 0x02)
	for k := range all {
		bus := &failBus{failAt: k}
		d, err := NewI2C(bus, &Opts{Geometry: Geometry128x32})
		if err != nil {
			t.Fatal(err)
		}
		err = d.Init()
		if !errors.Is(err, errBus) {
			t.Fatalf("step %d: Init() error = %v", k, err)
		}
		if bus.attempts != k+1 {
			t.Fatalf("step %d: %d transactions attempted; want %d", k, bus.attempts, k+1)
		}
		diffOps(t, bus.Ops, all[:k])
	}
}

func TestInit_Reset(t *testing.T) {
	p := &gpiotest.Pin{N: "RES", L: gpio.Low}
	d, r := newRecorded(t, &Opts{Geometry: Geometry128x32, Reset: p})
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	if p.L != gpio.High {
		t.Fatal("RES# must be left high")
	}
	diffOps(t, r.Ops, initOps(4, 0x1F, 0x02))
}

type brokenPin struct {
	gpiotest.Pin
}

func (b *brokenPin) Out(l gpio.Level) error {
	return errBus
}

func TestInit_ResetFailure(t *testing.T) {
	d, r := newRecorded(t, &Opts{Reset: &brokenPin{}})
	if err := d.Init(); !errors.Is(err, ErrTransport) || !errors.Is(err, errBus) {
		t.Fatalf("Init() error = %v", err)
	}
	diffOps(t, r.Ops, nil)
}
