// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/sp16/cpu"
	"github.com/ezrec/sp16/internal"
	sio "github.com/ezrec/sp16/io"
	"github.com/ezrec/sp16/translate"
)

const (
	WINDOW_SIZE = 32 // Words at the top of memory shown by Report.
	WINDOW_LINE = 8  // Words per line of the memory dump.
)

var _emulator_defines = map[string]string{
	"FIBONACCI_HALT": fmt.Sprintf("%v", FIBONACCI_HALT),
	"WINDOW_SIZE":    fmt.Sprintf("%v", WINDOW_SIZE),
}

// Emulator state. CPU + program image + serial tape + stop policies.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Memory image loaded on Reset.

	Tape     sio.Tape       // Serial port.
	Loopback *sio.Temporary // If set, replaces Tape with a word FIFO.
	Policy   []StopPolicy   // External stopping rules.
	Window   int            // Words at the top of memory shown by Report.

	Halt    cpu.HaltReason // Why the run stopped.
	Elapsed time.Duration  // Wall time spent in Run.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
		Window:  WINDOW_SIZE,
	}

	emu.Cpu.SetChannel(&emu.Tape)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset clears memory, loads the program image, and resets the CPU.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	clear(emu.Cpu.Memory.Ram[:])
	err = emu.Program.Load(emu.Cpu.Memory)
	if err != nil {
		return
	}

	emu.Cpu.Reset()
	if emu.Loopback != nil {
		emu.Loopback.Rewind()
		emu.Cpu.SetChannel(emu.Loopback)
	} else {
		emu.Tape.Rewind()
		emu.Cpu.SetChannel(&emu.Tape)
	}
	emu.Halt = cpu.HALT_NONE
	emu.Elapsed = 0

	if emu.Verbose {
		logrus.WithFields(logrus.Fields{
			"words":    emu.Program.Len(),
			"segments": len(emu.Program.Segments),
		}).Info("emulator: reset")
	}

	return
}

// Tick performs a single tick of the emulator. Once the CPU halts,
// done is set and every further Tick does nothing.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Cpu.Ip
	tick := emu.Cpu.Ticks
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Tick: tick, Err: err}
		}
	}()

	if emu.Halt != cpu.HALT_NONE {
		done = true
		return
	}

	reason := emu.Cpu.Halted()
	if reason == cpu.HALT_NONE {
		for _, policy := range emu.Policy {
			var stop bool
			stop, err = policy.Stop(emu.Cpu)
			if err != nil {
				return
			}
			if stop {
				reason = cpu.HALT_POLICY
				break
			}
		}
	}

	if reason == cpu.HALT_NONE {
		err = emu.Cpu.Tick()
		var halt cpu.ErrHalt
		if errors.As(err, &halt) {
			err = nil
			reason = cpu.HaltReason(halt)
		}
	}

	if reason != cpu.HALT_NONE {
		emu.Halt = reason
		done = true

		if emu.Verbose {
			logrus.WithFields(logrus.Fields{
				"reason": reason.String(),
				"ticks":  emu.Cpu.Ticks,
			}).Info("emulator: halt")
		}
	}

	return
}

// Run ticks the emulator until it halts or fails.
func (emu *Emulator) Run() (err error) {
	start := time.Now()
	defer func() {
		emu.Elapsed += time.Since(start)
	}()

	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Report writes the termination diagnostics: halt reason, run statistics,
// registers, and the words at the top of memory.
func (emu *Emulator) Report(w io.Writer) (err error) {
	var sb strings.Builder

	ticks := emu.Cpu.Ticks

	translate.Fprintf(&sb, "halt: %v\n", emu.Halt.String())
	translate.Fprintf(&sb, "ticks: %d\n", ticks)
	translate.Fprintf(&sb, "elapsed: %v\n", emu.Elapsed)
	if emu.Elapsed > 0 {
		mhz := float64(ticks) / emu.Elapsed.Seconds() / 1_000_000
		translate.Fprintf(&sb, "clock: %.3f MHz\n", mhz)
	}
	sb.WriteString(emu.Cpu.String())

	count := min(emu.Window, cpu.MEMORY_WORDS)
	if count > 0 {
		base := uint16(cpu.MEMORY_WORDS - count)
		words := emu.Cpu.Memory.Window(base, count)
		for n, word := range words {
			if n%WINDOW_LINE == 0 {
				if n != 0 {
					sb.WriteString("\n")
				}
				fmt.Fprintf(&sb, "%04X:", int(base)+n)
			}
			fmt.Fprintf(&sb, " %04X", word)
		}
		sb.WriteString("\n")
	}

	_, err = io.WriteString(w, sb.String())
	return
}
