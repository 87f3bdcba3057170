// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"
	"io"
)

// I²C control bytes. Bit 7 is Co (continuation), bit 6 is D/C#.
const (
	i2cCmd    = 0x80 // Co=1, D/C#=0: a single command byte follows
	i2cData   = 0x40 // Co=0, D/C#=1: the rest of the transaction is GDDRAM data
	i2cStatus = 0x00
)

// SendCommand sends a single command byte in its own I²C transaction.
func (d *Dev) SendCommand(cmd byte) error {
	if d.log != nil {
		d.log.WithField("cmd", fmt.Sprintf("0x%02X", cmd)).Debug("ssd1306: command")
	}
	if err := d.c.Tx([]byte{i2cCmd, cmd}, nil); err != nil {
		return &TransportError{Op: fmt.Sprintf("command 0x%02X", cmd), Err: err}
	}
	return nil
}

// SendCommands sends each byte with SendCommand, in order.
//
// It stops at the first failure and returns it. The bytes already sent are
// not rolled back so the controller may be left half configured.
func (d *Dev) SendCommands(cmds ...byte) error {
	for _, c := range cmds {
		if err := d.SendCommand(c); err != nil {
			return err
		}
	}
	return nil
}

// SendBuffer writes data to the graphic RAM at the current address pointer.
//
// The data control byte and the payload go out as a single transaction. The
// staging buffer used to prepend the control byte is kept between calls
// unless release is true.
func (d *Dev) SendBuffer(data []byte, release bool) error {
	n := len(data) + 1
	if cap(d.staging) < n {
		d.staging = make([]byte, 0, n)
	}
	d.staging = append(d.staging[:0], i2cData)
	d.staging = append(d.staging, data...)
	if d.log != nil {
		d.log.WithField("len", len(data)).Debug("ssd1306: data")
	}
	written, err := d.c.Write(d.staging)
	if release {
		d.staging = nil
	}
	if err != nil {
		return &TransportError{Op: "data", Err: err}
	}
	if written != n {
		return &TransportError{Op: "data", Err: io.ErrShortWrite}
	}
	return nil
}

// Status reads the status byte of the controller.
//
// Bit 6 is set when the display is off. The lower bits are not documented for
// the SSD1306 but are commonly 0x03 for 128x32 and 0x06 for 128x64 modules.
func (d *Dev) Status() (byte, error) {
	var r [1]byte
	if err := d.c.Tx([]byte{i2cStatus}, r[:]); err != nil {
		return 0, &TransportError{Op: "status", Err: err}
	}
	return r[0], nil
}
