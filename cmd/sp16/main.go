// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/sp16/cpu"
	"github.com/ezrec/sp16/emulator"
	sio "github.com/ezrec/sp16/io"
	"github.com/ezrec/sp16/translate"
)

var f = translate.From

var (
	ErrImageFormat = errors.New(f("image format"))
	ErrNoProgram   = errors.New(f("no program, use -p or -example"))
	ErrExclusive   = errors.New(f("-p and -example are exclusive"))
	ErrHaltOn      = errors.New(f("-halt-on is not a 16-bit word"))
)

// options are the command line settings that shape the emulator.
type options struct {
	image     string
	format    string
	example   bool
	halt_on   int
	stop      string
	max_ticks int
	window    int
	loop      int
}

// loadImage reads a program image. An empty format is chosen from the
// file extension: .txt and .lst are listings, anything else is binary.
func loadImage(path string, format string) (prog *cpu.Program, err error) {
	if len(format) == 0 {
		switch filepath.Ext(path) {
		case ".txt", ".lst":
			format = "text"
		default:
			format = "bin"
		}
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	switch format {
	case "bin":
		prog, err = cpu.ReadBinary(bufio.NewReader(inf))
	case "text":
		prog, err = cpu.ParseListing(inf)
	default:
		err = errors.Join(ErrImageFormat, errors.New(f("%q is not bin or text", format)))
	}

	return
}

// configure loads the program and the stop policies into the emulator.
func (opt *options) configure(emu *emulator.Emulator) (err error) {
	emu.Window = opt.window

	halt_on := opt.halt_on

	switch {
	case opt.example && len(opt.image) != 0:
		err = ErrExclusive
		return
	case opt.example:
		emu.Program = emulator.Fibonacci()
		if halt_on < 0 {
			halt_on = emulator.FIBONACCI_HALT
		}
	case len(opt.image) != 0:
		var prog *cpu.Program
		prog, err = loadImage(opt.image, opt.format)
		if err != nil {
			return
		}
		emu.Program = prog
	default:
		err = ErrNoProgram
		return
	}

	emu.Policy = nil

	if halt_on >= 0 {
		if halt_on > 0xffff {
			err = ErrHaltOn
			return
		}
		emu.Policy = append(emu.Policy, emulator.StopOnValue(halt_on))
	}

	if opt.max_ticks > 0 {
		emu.Policy = append(emu.Policy, emulator.StopAfter(opt.max_ticks))
	}

	if len(opt.stop) != 0 {
		var policy *emulator.StopExpr
		policy, err = emulator.NewStopExpr(opt.stop, emu.Defines())
		if err != nil {
			return
		}
		emu.Policy = append(emu.Policy, policy)
	}

	if opt.loop > 0 {
		emu.Loopback = &sio.Temporary{Capacity: opt.loop}
	}

	return
}

func main() {
	var opt options
	var input string
	var output string
	var raw bool
	var lang string
	var verbose bool

	flag.StringVar(&opt.image, "p", "", "Program image to load")
	flag.StringVar(&opt.format, "f", "", "Image format, bin or text (default from extension)")
	flag.BoolVar(&opt.example, "example", false, "Run the bundled Fibonacci example")
	flag.IntVar(&opt.halt_on, "halt-on", -1, "Halt when A holds this value")
	flag.StringVar(&opt.stop, "stop", "", "Halt when this Starlark expression is true")
	flag.IntVar(&opt.max_ticks, "max", 0, "Halt after this many ticks")
	flag.IntVar(&opt.window, "window", emulator.WINDOW_SIZE, "Words at the top of memory to report")
	flag.IntVar(&opt.loop, "loop", 0, "Loop serial output back to input, through a FIFO of this many words")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&raw, "raw", false, "Put a terminal tape input into raw mode")
	flag.StringVar(&lang, "lang", "", "Report language (BCP 47 tag)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		logrus.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			logrus.Fatalf("-lang %v: %v", lang, err)
		}
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	err := opt.configure(emu)
	if err != nil {
		logrus.Fatalf("%v: %v", os.Args[0], err)
	}

	restore := func() error { return nil }

	if emu.Loopback == nil {
		if input == "-" {
			if raw {
				restore, err = sio.RawInput(os.Stdin)
				if err != nil {
					logrus.Fatalf("stdin: %v", err)
				}
				logrus.RegisterExitHandler(func() { _ = restore() })
			}
			emu.Tape.Input = os.Stdin
		} else {
			inf, err := os.Open(input)
			if err != nil {
				logrus.Fatalf("%v: %v", input, err)
			}
			defer inf.Close()
			emu.Tape.Input = bufio.NewReader(inf)
		}

		if output == "-" {
			emu.Tape.Output = os.Stdout
		} else {
			ouf, err := os.Create(output)
			if err != nil {
				logrus.Fatalf("%v: %v", output, err)
			}
			defer ouf.Close()
			emu.Tape.Output = ouf
		}
	}

	err = emu.Reset()
	if err != nil {
		logrus.Fatalf("reset: %v", err)
	}

	err = emu.Run()

	rerr := restore()
	if rerr != nil {
		logrus.Warnf("stdin: %v", rerr)
	}

	// Diagnostics go to stderr, so they never mix with the tape.
	rerr = emu.Report(os.Stderr)
	if rerr != nil {
		logrus.Warnf("report: %v", rerr)
	}

	if err != nil {
		logrus.Fatal(err)
	}
}
