// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls a monochrome OLED display via a SSD1306 controller
// over I²C.
//
// # Protocol
//
// Every I²C write starts with a control byte. Commands are sent one per
// transaction behind the 0x80 control byte; graphic RAM data is sent behind
// the 0x40 control byte, the whole payload in a single transaction.
//
// The graphic RAM is organised in pages: one byte holds 8 vertically stacked
// pixels of one column, the least significant bit on top. A RenderArea is a
// column x page window of that RAM with its own buffer; Dev.Render programs
// the column and page address window then streams the buffer.
//
// The driver also implements display.Drawer and does differential updates:
// it only sends modified pixels for the smallest rectangle, to economize bus
// bandwidth. This is especially important when using I²C as the bus default
// speed (often 100kHz) is slow enough to saturate the bus at less than 10
// frames per second.
//
// # Errors
//
// Arguments outside of the range accepted by the controller return an error
// wrapping ErrInvalidArgument and nothing is sent. Bus failures are returned
// as *TransportError. Multi-byte commands and Init are not atomic: on failure
// the bytes already sent stay applied. Nothing is retried.
//
// Pixel coordinates outside a RenderArea are programming errors and panic.
//
// # Concurrency
//
// A Dev and a RenderArea must not be used from multiple goroutines without
// external locking.
//
// Some boards expose a RES / Reset pin. If present, it must be normally be
// High. When set to Low (Ground), it enables the reset circuitry. Pass it as
// Opts.Reset to have Init pulse it.
//
// # More details
//
// See https://periph.io/device/ssd1306/ for more details about the device.
//
// # Datasheets
//
// Product page:
//
// http://www.solomon-systech.com/en/product/display-ic/oled-driver-controller/ssd1306/
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
