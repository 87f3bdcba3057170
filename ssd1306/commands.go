// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// Command opcodes. Page numbers refer to the SSD1306 datasheet rev 1.1.
const (
	_ACTIVATE_SCROLL       = 0x2F
	_CHARGEPUMP            = 0x8D
	_COLUMNADDR            = 0x21
	_COMSCANDEC            = 0xC8
	_COMSCANINC            = 0xC0
	_DEACTIVATE_SCROLL     = 0x2E
	_DISPLAYALLON          = 0xA5
	_DISPLAYALLON_RESUME   = 0xA4
	_DISPLAYOFF            = 0xAE
	_DISPLAYON             = 0xAF
	_INVERTDISPLAY         = 0xA7
	_MEMORYMODE            = 0x20
	_NOP                   = 0xE3
	_NORMALDISPLAY         = 0xA6
	_PAGEADDR              = 0x22
	_PAGESTARTADDRESS      = 0xB0
	_SEGREMAP              = 0xA0
	_SETCOMPINS            = 0xDA
	_SETCONTRAST           = 0x81
	_SETDISPLAYCLOCKDIV    = 0xD5
	_SETDISPLAYOFFSET      = 0xD3
	_SETHIGHCOLUMN         = 0x10
	_SETLOWCOLUMN          = 0x00
	_SETMULTIPLEX          = 0xA8
	_SETPRECHARGE          = 0xD9
	_SETSEGMENTREMAP       = 0xA1
	_SETSTARTLINE          = 0x40
	_SETVCOMDETECT         = 0xDB
	_SET_VERTICAL_SCROLL   = 0xA3
	_HORIZONTAL_SCROLL     = 0x26
	_VERTICAL_RIGHT_SCROLL = 0x29
	_VERTICAL_LEFT_SCROLL  = 0x2A
)

// AddressingMode selects how the RAM address pointer advances after each
// data byte.
type AddressingMode byte

// Memory addressing modes, page 34.
const (
	HorizontalAddressing AddressingMode = 0x00
	VerticalAddressing   AddressingMode = 0x01
	PageAddressing       AddressingMode = 0x02
)

// ScanDirection is the COM output scan direction.
type ScanDirection byte

const (
	// ScanForward scans from COM0 to COM[N-1]. This is the reset value.
	ScanForward ScanDirection = _COMSCANINC
	// ScanReverse scans from COM[N-1] to COM0, flipping the picture
	// vertically.
	ScanReverse ScanDirection = _COMSCANDEC
)

// VCOMHLevel is the VCOMH deselect level.
type VCOMHLevel byte

const (
	VCOMH065 VCOMHLevel = 0x00 // ~0.65 x Vcc
	VCOMH077 VCOMHLevel = 0x20 // ~0.77 x Vcc, reset value
	VCOMH083 VCOMHLevel = 0x30 // ~0.83 x Vcc
)

// SetDisplayOn turns the panel on, or puts it in sleep mode. RAM content is
// kept while sleeping.
func (d *Dev) SetDisplayOn(on bool) error {
	if on {
		return d.SendCommand(_DISPLAYON)
	}
	return d.SendCommand(_DISPLAYOFF)
}

// SetEntireDisplayOn lights every pixel regardless of the RAM content when on
// is true, and resumes showing the RAM content otherwise.
func (d *Dev) SetEntireDisplayOn(on bool) error {
	if on {
		return d.SendCommand(_DISPLAYALLON)
	}
	return d.SendCommand(_DISPLAYALLON_RESUME)
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	if blackOnWhite {
		return d.SendCommand(_INVERTDISPLAY)
	}
	return d.SendCommand(_NORMALDISPLAY)
}

// SetContrast changes the screen contrast, 0x7F being the reset value.
func (d *Dev) SetContrast(level byte) error {
	return d.SendCommands(_SETCONTRAST, level)
}

// SetLowerColumnStart sets the lower nibble of the column start address in
// page addressing mode.
func (d *Dev) SetLowerColumnStart(n byte) error {
	if n > 0x0F {
		return invalidArgf("lower column nibble %d > 15", n)
	}
	return d.SendCommand(_SETLOWCOLUMN | n)
}

// SetHigherColumnStart sets the higher nibble of the column start address in
// page addressing mode.
func (d *Dev) SetHigherColumnStart(n byte) error {
	if n > 0x0F {
		return invalidArgf("higher column nibble %d > 15", n)
	}
	return d.SendCommand(_SETHIGHCOLUMN | n)
}

// SetAddressingMode selects the memory addressing mode.
//
// Render and Draw rely on HorizontalAddressing, which Init selects.
func (d *Dev) SetAddressingMode(m AddressingMode) error {
	if m > PageAddressing {
		return invalidArgf("addressing mode %d", m)
	}
	return d.SendCommands(_MEMORYMODE, byte(m))
}

// SetColumnAddress sets the inclusive column window used by horizontal and
// vertical addressing modes.
func (d *Dev) SetColumnAddress(begin, last int) error {
	if begin < 0 || begin > last || last >= d.geom.MaxColumns() {
		return invalidArgf("column window [%d, %d] outside [0, %d)", begin, last, d.geom.MaxColumns())
	}
	return d.SendCommands(_COLUMNADDR, byte(begin)&0x7F, byte(last)&0x7F)
}

// SetPageAddress sets the inclusive page window used by horizontal and
// vertical addressing modes.
func (d *Dev) SetPageAddress(begin, last int) error {
	if begin < 0 || begin > last || last >= d.geom.MaxPages() {
		return invalidArgf("page window [%d, %d] outside [0, %d)", begin, last, d.geom.MaxPages())
	}
	return d.SendCommands(_PAGEADDR, byte(begin)&0x07, byte(last)&0x07)
}

// SetPageStart sets the page pointer in page addressing mode.
func (d *Dev) SetPageStart(page int) error {
	if page < 0 || page >= d.geom.MaxPages() {
		return invalidArgf("page %d outside [0, %d)", page, d.geom.MaxPages())
	}
	return d.SendCommand(_PAGESTARTADDRESS | byte(page)&0x07)
}

// SetDisplayStartLine causes the display to start from startLine, effectively
// scrolling the screen to that position.
//
// startLine must be between 0 and 63.
func (d *Dev) SetDisplayStartLine(startLine byte) error {
	if startLine > 63 {
		return invalidArgf("startLine %d > 63", startLine)
	}
	return d.SendCommand(_SETSTARTLINE | startLine)
}

// SetSegmentRemap maps column 127 to SEG0 when remap is true, mirroring the
// picture horizontally. Only data written afterward is affected.
func (d *Dev) SetSegmentRemap(remap bool) error {
	if remap {
		return d.SendCommand(_SETSEGMENTREMAP)
	}
	return d.SendCommand(_SEGREMAP)
}

// SetMultiplexRatio sets the number of active COM lines minus one.
//
// ratio must be between 15 and 63.
func (d *Dev) SetMultiplexRatio(ratio byte) error {
	if ratio < 15 || ratio > 63 {
		return invalidArgf("multiplex ratio %d outside [15, 63]", ratio)
	}
	return d.SendCommands(_SETMULTIPLEX, ratio)
}

// SetCOMScanDirection sets the COM output scan direction.
func (d *Dev) SetCOMScanDirection(dir ScanDirection) error {
	if dir != ScanForward && dir != ScanReverse {
		return invalidArgf("scan direction 0x%02X", byte(dir))
	}
	return d.SendCommand(byte(dir))
}

// SetDisplayOffset shifts the mapping of display start line to COM lines.
//
// offset must be between 0 and 63.
func (d *Dev) SetDisplayOffset(offset byte) error {
	if offset > 63 {
		return invalidArgf("display offset %d > 63", offset)
	}
	return d.SendCommands(_SETDISPLAYOFFSET, offset)
}

// SetCOMPins sets the COM pins hardware configuration, page 40.
//
// alternative selects the alternative (interleaved) COM pin layout, used by
// most 128x64 modules; 128x32 modules are usually sequential. leftRightRemap
// swaps the top and bottom halves of the panel.
func (d *Dev) SetCOMPins(alternative, leftRightRemap bool) error {
	return d.SendCommands(_SETCOMPINS, comPinsValue(alternative, leftRightRemap))
}

func comPinsValue(alternative, leftRightRemap bool) byte {
	v := byte(0x02)
	if alternative {
		v |= 0x10
	}
	if leftRightRemap {
		v |= 0x20
	}
	return v
}

// SetDisplayClock sets the oscillator frequency (0 to 15, 8 at reset) and the
// display clock divide ratio (1 to 16, 1 at reset).
func (d *Dev) SetDisplayClock(oscillator, divide byte) error {
	if oscillator > 0x0F {
		return invalidArgf("oscillator frequency %d > 15", oscillator)
	}
	if divide < 1 || divide > 16 {
		return invalidArgf("clock divide ratio %d outside [1, 16]", divide)
	}
	return d.SendCommands(_SETDISPLAYCLOCKDIV, oscillator<<4|(divide-1))
}

// SetPrechargePeriod sets the two pre-charge phases, in DCLK units from 1 to
// 15. The reset value is 2 for both.
func (d *Dev) SetPrechargePeriod(phase1, phase2 byte) error {
	if phase1 < 1 || phase1 > 0x0F || phase2 < 1 || phase2 > 0x0F {
		return invalidArgf("pre-charge periods %d, %d outside [1, 15]", phase1, phase2)
	}
	return d.SendCommands(_SETPRECHARGE, phase2<<4|phase1)
}

// SetVCOMHDeselectLevel adjusts the VCOMH regulator output.
func (d *Dev) SetVCOMHDeselectLevel(l VCOMHLevel) error {
	switch l {
	case VCOMH065, VCOMH077, VCOMH083:
	default:
		return invalidArgf("VCOMH level 0x%02X", byte(l))
	}
	return d.SendCommands(_SETVCOMDETECT, byte(l))
}

// SetChargePump enables or disables the internal charge pump regulator. It
// must be enabled when the panel has no external VCC supply.
func (d *Dev) SetChargePump(enable bool) error {
	if enable {
		return d.SendCommands(_CHARGEPUMP, 0x14)
	}
	return d.SendCommands(_CHARGEPUMP, 0x10)
}

// Nop sends the no operation command.
func (d *Dev) Nop() error {
	return d.SendCommand(_NOP)
}
