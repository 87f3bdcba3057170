// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"
	"testing"
)

func TestCommands(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func(d *Dev) error
		want []byte
	}{
		{"display on", func(d *Dev) error { return d.SetDisplayOn(true) }, []byte{0xAF}},
		{"display off", func(d *Dev) error { return d.SetDisplayOn(false) }, []byte{0xAE}},
		{"entire display on", func(d *Dev) error { return d.SetEntireDisplayOn(true) }, []byte{0xA5}},
		{"entire display resume", func(d *Dev) error { return d.SetEntireDisplayOn(false) }, []byte{0xA4}},
		{"invert", func(d *Dev) error { return d.Invert(true) }, []byte{0xA7}},
		{"normal", func(d *Dev) error { return d.Invert(false) }, []byte{0xA6}},
		{"contrast", func(d *Dev) error { return d.SetContrast(0x7F) }, []byte{0x81, 0x7F}},
		{"lower column", func(d *Dev) error { return d.SetLowerColumnStart(0x0A) }, []byte{0x0A}},
		{"higher column", func(d *Dev) error { return d.SetHigherColumnStart(0x07) }, []byte{0x17}},
		{"horizontal addressing", func(d *Dev) error { return d.SetAddressingMode(HorizontalAddressing) }, []byte{0x20, 0x00}},
		{"vertical addressing", func(d *Dev) error { return d.SetAddressingMode(VerticalAddressing) }, []byte{0x20, 0x01}},
		{"page addressing", func(d *Dev) error { return d.SetAddressingMode(PageAddressing) }, []byte{0x20, 0x02}},
		{"column address", func(d *Dev) error { return d.SetColumnAddress(0, 127) }, []byte{0x21, 0x00, 0x7F}},
		{"page address", func(d *Dev) error { return d.SetPageAddress(2, 7) }, []byte{0x22, 0x02, 0x07}},
		{"page start", func(d *Dev) error { return d.SetPageStart(5) }, []byte{0xB5}},
		{"start line", func(d *Dev) error { return d.SetDisplayStartLine(33) }, []byte{0x61}},
		{"segment remap", func(d *Dev) error { return d.SetSegmentRemap(true) }, []byte{0xA1}},
		{"segment normal", func(d *Dev) error { return d.SetSegmentRemap(false) }, []byte{0xA0}},
		{"multiplex", func(d *Dev) error { return d.SetMultiplexRatio(31) }, []byte{0xA8, 0x1F}},
		{"scan forward", func(d *Dev) error { return d.SetCOMScanDirection(ScanForward) }, []byte{0xC0}},
		{"scan reverse", func(d *Dev) error { return d.SetCOMScanDirection(ScanReverse) }, []byte{0xC8}},
		{"display offset", func(d *Dev) error { return d.SetDisplayOffset(63) }, []byte{0xD3, 0x3F}},
		{"COM pins sequential", func(d *Dev) error { return d.SetCOMPins(false, false) }, []byte{0xDA, 0x02}},
		{"COM pins alternative", func(d *Dev) error { return d.SetCOMPins(true, false) }, []byte{0xDA, 0x12}},
		{"COM pins sequential remap", func(d *Dev) error { return d.SetCOMPins(false, true) }, []byte{0xDA, 0x22}},
		{"COM pins alternative remap", func(d *Dev) error { return d.SetCOMPins(true, true) }, []byte{0xDA, 0x32}},
		{"display clock", func(d *Dev) error { return d.SetDisplayClock(0x0F, 16) }, []byte{0xD5, 0xFF}},
		{"display clock reset", func(d *Dev) error { return d.SetDisplayClock(8, 1) }, []byte{0xD5, 0x80}},
		{"pre-charge", func(d *Dev) error { return d.SetPrechargePeriod(2, 2) }, []byte{0xD9, 0x22}},
		{"VCOMH 0.65", func(d *Dev) error { return d.SetVCOMHDeselectLevel(VCOMH065) }, []byte{0xDB, 0x00}},
		{"VCOMH 0.77", func(d *Dev) error { return d.SetVCOMHDeselectLevel(VCOMH077) }, []byte{0xDB, 0x20}},
		{"charge pump on", func(d *Dev) error { return d.SetChargePump(true) }, []byte{0x8D, 0x14}},
		{"charge pump off", func(d *Dev) error { return d.SetChargePump(false) }, []byte{0x8D, 0x10}},
		{"nop", func(d *Dev) error { return d.Nop() }, []byte{0xE3}},
		{"activate scroll", func(d *Dev) error { return d.ActivateScroll() }, []byte{0x2F}},
		{"deactivate scroll", func(d *Dev) error { return d.DeactivateScroll() }, []byte{0x2E}},
		{"vertical scroll area", func(d *Dev) error { return d.SetVerticalScrollArea(8, 56) }, []byte{0xA3, 0x08, 0x38}},
		{
			"horizontal scroll right",
			func(d *Dev) error { return d.ContinuousHorizontalScroll(false, 0, 7, Step5Frames) },
			[]byte{0x26, 0x00, 0x00, 0x00, 0x07, 0x00, 0xFF},
		},
		{
			"horizontal scroll left",
			func(d *Dev) error { return d.ContinuousHorizontalScroll(true, 2, 3, Step256Frames) },
			[]byte{0x27, 0x00, 0x02, 0x03, 0x03, 0x00, 0xFF},
		},
		{
			"diagonal scroll right",
			func(d *Dev) error { return d.ContinuousVerticalAndHorizontalScroll(false, 0, 7, Step2Frames, 1) },
			[]byte{0x29, 0x00, 0x00, 0x07, 0x07, 0x01},
		},
		{
			"diagonal scroll left",
			func(d *Dev) error { return d.ContinuousVerticalAndHorizontalScroll(true, 1, 1, Step25Frames, 63) },
			[]byte{0x2A, 0x00, 0x01, 0x06, 0x01, 0x3F},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, r := newRecorded(t, nil)
			if err := tc.fn(d); err != nil {
				t.Fatal(err)
			}
			diffOps(t, r.Ops, cmds(tc.want...))
		})
	}
}

func TestCommands_InvalidArgument(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func(d *Dev) error
	}{
		{"lower column", func(d *Dev) error { return d.SetLowerColumnStart(16) }},
		{"higher column", func(d *Dev) error { return d.SetHigherColumnStart(16) }},
		{"addressing mode", func(d *Dev) error { return d.SetAddressingMode(3) }},
		{"column past end", func(d *Dev) error { return d.SetColumnAddress(0, 128) }},
		{"column reversed", func(d *Dev) error { return d.SetColumnAddress(5, 4) }},
		{"column negative", func(d *Dev) error { return d.SetColumnAddress(-1, 4) }},
		{"page past end", func(d *Dev) error { return d.SetPageAddress(0, 8) }},
		{"page reversed", func(d *Dev) error { return d.SetPageAddress(3, 2) }},
		{"page start", func(d *Dev) error { return d.SetPageStart(8) }},
		{"start line", func(d *Dev) error { return d.SetDisplayStartLine(64) }},
		{"multiplex low", func(d *Dev) error { return d.SetMultiplexRatio(14) }},
		{"multiplex high", func(d *Dev) error { return d.SetMultiplexRatio(64) }},
		{"scan direction", func(d *Dev) error { return d.SetCOMScanDirection(0x00) }},
		{"display offset", func(d *Dev) error { return d.SetDisplayOffset(64) }},
		{"oscillator", func(d *Dev) error { return d.SetDisplayClock(16, 1) }},
		{"divide zero", func(d *Dev) error { return d.SetDisplayClock(8, 0) }},
		{"divide high", func(d *Dev) error { return d.SetDisplayClock(8, 17) }},
		{"pre-charge zero", func(d *Dev) error { return d.SetPrechargePeriod(0, 2) }},
		{"pre-charge high", func(d *Dev) error { return d.SetPrechargePeriod(2, 16) }},
		{"VCOMH", func(d *Dev) error { return d.SetVCOMHDeselectLevel(0x10) }},
		{"scroll area fixed", func(d *Dev) error { return d.SetVerticalScrollArea(64, 0) }},
		{"scroll area rows", func(d *Dev) error { return d.SetVerticalScrollArea(0, 128) }},
		{"scroll pages", func(d *Dev) error { return d.ContinuousHorizontalScroll(true, 4, 3, Step2Frames) }},
		{"scroll last page", func(d *Dev) error { return d.ContinuousHorizontalScroll(true, 0, 8, Step2Frames) }},
		{"scroll step", func(d *Dev) error { return d.ContinuousHorizontalScroll(true, 0, 1, 8) }},
		{"scroll offset", func(d *Dev) error { return d.ContinuousVerticalAndHorizontalScroll(true, 0, 1, Step2Frames, 64) }},
		{"scroll orientation", func(d *Dev) error { return d.Scroll(Orientation(9), Step2Frames, 0, -1) }},
		{"scroll start line", func(d *Dev) error { return d.Scroll(Left, Step2Frames, 3, -1) }},
		{"scroll end line", func(d *Dev) error { return d.Scroll(Left, Step2Frames, 0, 72) }},
		{"scroll empty band", func(d *Dev) error { return d.Scroll(Left, Step2Frames, 16, 16) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, r := newRecorded(t, nil)
			err := tc.fn(d)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("error = %v; want ErrInvalidArgument", err)
			}
			diffOps(t, r.Ops, nil)
		})
	}
}

func TestScroll(t *testing.T) {
	odd := &Opts{Geometry: Geometry{Width: 72, Height: 20, SequentialCOM: true}}
	for _, tc := range []struct {
		name       string
		opts       *Opts
		o          Orientation
		start, end int
		want       []byte
	}{
		{"Left", nil, Left, 0, -1, []byte{0x27, 0x00, 0x00, 0x07, 0x07, 0x00, 0xFF}},
		{"Right", nil, Right, 16, 32, []byte{0x26, 0x00, 0x02, 0x07, 0x03, 0x00, 0xFF}},
		{"UpRight", nil, UpRight, 0, 8, []byte{0x29, 0x00, 0x00, 0x07, 0x00, 0x01}},
		{"UpLeft", nil, UpLeft, 8, 64, []byte{0x2A, 0x00, 0x01, 0x07, 0x07, 0x01}},
		// 20 lines use 3 pages, the last one partially.
		{"partial page to bottom", odd, Right, 0, -1, []byte{0x26, 0x00, 0x00, 0x07, 0x02, 0x00, 0xFF}},
		{"partial page explicit", odd, Left, 16, 24, []byte{0x27, 0x00, 0x02, 0x07, 0x02, 0x00, 0xFF}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, r := newRecorded(t, tc.opts)
			if err := d.Scroll(tc.o, Step2Frames, tc.start, tc.end); err != nil {
				t.Fatal(err)
			}
			want := append([]byte{_DEACTIVATE_SCROLL}, tc.want...)
			want = append(want, _ACTIVATE_SCROLL)
			diffOps(t, r.Ops, cmds(want...))
		})
	}
}

func TestScroll_PastLastPage(t *testing.T) {
	d, r := newRecorded(t, &Opts{Geometry: Geometry{Width: 72, Height: 20, SequentialCOM: true}})
	if err := d.Scroll(Right, Step2Frames, 0, 32); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Scroll() error = %v", err)
	}
	diffOps(t, r.Ops, nil)
}

func TestOrientation_String(t *testing.T) {
	if s := Orientation(7).String(); s != "Orientation(7)" {
		t.Fatal(s)
	}
}
