// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// oled drives an SSD1306 OLED panel connected over I²C.
//
// Usage:
//
//	oled [flags] init
//	oled [flags] clear
//	oled [flags] text <message>
//	oled [flags] banner <message>
//	oled [flags] lines
//	oled [flags] scroll [left|right|upleft|upright]
//	oled [flags] off
//
// Run init once after power up. With -preview, nothing is sent on the bus
// and the image is printed to the terminal instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/oled/ssd1306"
)

type config struct {
	bus      string
	addr     int
	height   int
	contrast int
	flipH    bool
	flipV    bool
	preview  bool
	verbose  bool
}

func (c *config) opts() (*ssd1306.Opts, error) {
	opts := ssd1306.DefaultOpts
	switch c.height {
	case 32:
		opts.Geometry = ssd1306.Geometry128x32
	case 64:
		opts.Geometry = ssd1306.Geometry128x64
	default:
		return nil, fmt.Errorf("-height must be 32 or 64, got %d", c.height)
	}
	if c.addr != int(ssd1306.DefaultAddr) && c.addr != int(ssd1306.AlternativeAddr) {
		return nil, fmt.Errorf("-addr must be 0x%02X or 0x%02X, got 0x%02X", ssd1306.DefaultAddr, ssd1306.AlternativeAddr, c.addr)
	}
	opts.Addr = uint16(c.addr)
	if c.contrast < 0 || c.contrast > 0xFF {
		return nil, fmt.Errorf("-contrast must be in [0, 255], got %d", c.contrast)
	}
	opts.Contrast = byte(c.contrast)
	opts.MirrorHorizontal = c.flipH
	opts.MirrorVertical = c.flipV
	if c.verbose {
		opts.Logger = log.StandardLogger()
	}
	return &opts, nil
}

func mainImpl() error {
	c := config{}
	flag.StringVar(&c.bus, "bus", "", "I²C bus to use, default to the first one")
	flag.IntVar(&c.addr, "addr", int(ssd1306.DefaultAddr), "I²C address of the display")
	flag.IntVar(&c.height, "height", 64, "display height, 32 or 64")
	flag.IntVar(&c.contrast, "contrast", 0xFF, "contrast, 0 to 255")
	flag.BoolVar(&c.flipH, "flip-h", false, "mirror the display horizontally")
	flag.BoolVar(&c.flipV, "flip-v", false, "mirror the display vertically")
	flag.BoolVar(&c.preview, "preview", false, "print to the terminal instead of using the display")
	flag.BoolVar(&c.verbose, "v", false, "verbose mode")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if c.verbose {
		log.SetLevel(log.DebugLevel)
	}
	if flag.NArg() == 0 {
		return errors.New("specify a command: init, clear, text, banner, lines, scroll or off")
	}
	opts, err := c.opts()
	if err != nil {
		return err
	}

	var s sink
	if c.preview {
		p, err := newPreview(opts.Geometry, nil)
		if err != nil {
			return err
		}
		defer p.Halt()
		s = p
	} else {
		if _, err := host.Init(); err != nil {
			return err
		}
		b, err := i2creg.Open(c.bus)
		if err != nil {
			return err
		}
		defer b.Close()
		if err := b.SetSpeed(400 * physic.KiloHertz); err != nil {
			log.WithError(err).Warn("failed to set the bus speed, keeping the default")
		}
		dev, err := ssd1306.NewI2C(b, opts)
		if err != nil {
			return err
		}
		log.WithField("device", dev.String()).Debug("opened")
		s = &panel{dev: dev, zeroContrast: c.contrast == 0}
	}
	return run(s, opts.Geometry, flag.Args())
}

// run executes the command args[0] against s.
func run(s sink, g ssd1306.Geometry, args []string) error {
	cmd, rest := strings.ToLower(args[0]), args[1:]
	log.WithFields(log.Fields{"cmd": cmd, "sink": s.String()}).Debug("running")
	switch cmd {
	case "init":
		return s.init()
	case "clear":
		return clearScreen(s, g)
	case "text":
		return text(s, strings.Join(rest, " "))
	case "banner":
		return banner(s, strings.Join(rest, " "))
	case "lines":
		return lines(s, g)
	case "scroll":
		o := ssd1306.Right
		if len(rest) != 0 {
			var err error
			if o, err = parseOrientation(rest[0]); err != nil {
				return err
			}
		}
		return s.scroll(o)
	case "off":
		return s.Halt()
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func parseOrientation(s string) (ssd1306.Orientation, error) {
	for _, o := range []ssd1306.Orientation{ssd1306.Left, ssd1306.Right, ssd1306.UpRight, ssd1306.UpLeft} {
		if strings.EqualFold(s, o.String()) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown scroll direction %q", s)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "oled: %s.\n", err)
		os.Exit(1)
	}
}
