// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"

	"github.com/GermanBionicSystems/oled/ssd1306/image1bit"
)

// ScrollStep is the number of frames between each scroll step.
type ScrollStep byte

// Possible scroll steps. The lower the value, the faster the scroll.
const (
	Step2Frames   ScrollStep = 7
	Step3Frames   ScrollStep = 4
	Step4Frames   ScrollStep = 5
	Step5Frames   ScrollStep = 0
	Step25Frames  ScrollStep = 6
	Step64Frames  ScrollStep = 1
	Step128Frames ScrollStep = 2
	Step256Frames ScrollStep = 3
)

// Orientation is used for scrolling.
type Orientation byte

// Possible orientations for scrolling.
const (
	Left Orientation = iota
	Right
	UpRight
	UpLeft
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case UpRight:
		return "UpRight"
	case UpLeft:
		return "UpLeft"
	default:
		return fmt.Sprintf("Orientation(%d)", byte(o))
	}
}

// ContinuousHorizontalScroll sets up a horizontal scroll of the inclusive page
// band [startPage, lastPage], page 28. ActivateScroll starts it.
//
// Scroll parameters must only be changed while scrolling is deactivated.
func (d *Dev) ContinuousHorizontalScroll(left bool, startPage, lastPage int, step ScrollStep) error {
	if err := d.checkScrollBand(startPage, lastPage, step); err != nil {
		return err
	}
	op := byte(_HORIZONTAL_SCROLL)
	if left {
		op |= 0x01
	}
	// <op>, dummy, <start page>, <step>, <end page>, dummy, dummy
	return d.SendCommands(op, 0x00, byte(startPage)&0x07, byte(step)&0x07, byte(lastPage)&0x07, 0x00, 0xFF)
}

// ContinuousVerticalAndHorizontalScroll sets up a diagonal scroll of the
// inclusive page band [startPage, lastPage], page 29. verticalOffset is the
// number of rows moved per step, between 0 and 63. ActivateScroll starts it.
func (d *Dev) ContinuousVerticalAndHorizontalScroll(left bool, startPage, lastPage int, step ScrollStep, verticalOffset byte) error {
	if err := d.checkScrollBand(startPage, lastPage, step); err != nil {
		return err
	}
	if verticalOffset > 0x3F {
		return invalidArgf("vertical scroll offset %d > 63", verticalOffset)
	}
	op := byte(_VERTICAL_RIGHT_SCROLL)
	if left {
		op = _VERTICAL_LEFT_SCROLL
	}
	// <op>, dummy, <start page>, <step>, <end page>, <offset>
	return d.SendCommands(op, 0x00, byte(startPage)&0x07, byte(step)&0x07, byte(lastPage)&0x07, verticalOffset)
}

// ActivateScroll starts the scroll set up last.
func (d *Dev) ActivateScroll() error {
	d.scrolled = true
	return d.SendCommand(_ACTIVATE_SCROLL)
}

// DeactivateScroll stops scrolling. RAM content must be rewritten afterward,
// the next Draw does a full frame transfer.
func (d *Dev) DeactivateScroll() error {
	d.scrolled = true
	return d.SendCommand(_DEACTIVATE_SCROLL)
}

// SetVerticalScrollArea sets the number of rows of the fixed top area (0 to
// 63) and of the scrolling area below it (0 to 127), page 30.
func (d *Dev) SetVerticalScrollArea(fixedRows, scrollRows byte) error {
	if fixedRows > 0x3F {
		return invalidArgf("fixed rows %d > 63", fixedRows)
	}
	if scrollRows > 0x7F {
		return invalidArgf("scroll rows %d > 127", scrollRows)
	}
	return d.SendCommands(_SET_VERTICAL_SCROLL, fixedRows, scrollRows)
}

// Scroll scrolls an horizontal band.
//
// Only one scrolling operation can happen at a time.
//
// Both startLine and endLine must be multiples of 8.
//
// Use -1 for endLine to extend to the bottom of the display.
func (d *Dev) Scroll(o Orientation, step ScrollStep, startLine, endLine int) error {
	// The last page may be partially covered by the panel.
	h := d.geom.MaxPages() * image1bit.PixelsPerPage
	if endLine == -1 {
		endLine = h
	}
	if startLine >= endLine {
		return invalidArgf("startLine (%d) must be lower than endLine (%d)", startLine, endLine)
	}
	if startLine&7 != 0 || startLine < 0 || startLine >= h {
		return invalidArgf("startLine %d", startLine)
	}
	if endLine&7 != 0 || endLine < 0 || endLine > h {
		return invalidArgf("endLine %d", endLine)
	}
	if o > UpLeft {
		return invalidArgf("orientation %s", o)
	}
	startPage := startLine / 8
	lastPage := endLine/8 - 1

	if err := d.DeactivateScroll(); err != nil {
		return err
	}
	var err error
	switch o {
	case Left, Right:
		err = d.ContinuousHorizontalScroll(o == Left, startPage, lastPage, step)
	default:
		err = d.ContinuousVerticalAndHorizontalScroll(o == UpLeft, startPage, lastPage, step, 1)
	}
	if err != nil {
		return err
	}
	return d.ActivateScroll()
}

func (d *Dev) checkScrollBand(startPage, lastPage int, step ScrollStep) error {
	if startPage < 0 || startPage > lastPage || lastPage >= d.geom.MaxPages() {
		return invalidArgf("scroll pages [%d, %d] outside [0, %d)", startPage, lastPage, d.geom.MaxPages())
	}
	if step > 7 {
		return invalidArgf("scroll step %d", step)
	}
	return nil
}
