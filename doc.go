// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oled is a container for the SSD1306 OLED driver and its helpers.
//
// The driver lives in package ssd1306, the shared drawing primitives in
// package canvas and a terminal preview in package screen2d. cmd/oled is a
// command line tool built on all three.
package oled
