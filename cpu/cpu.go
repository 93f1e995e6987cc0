package cpu

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/sp16/io"
)

// Channel is the serial port interface.
type Channel io.Channel

// Register limits. SP is valid only in the upper half of memory, and IP
// only in the lower half (plus the boundary word).
const (
	SP_RESET = uint16(0xffff) // SP after reset; the stack grows down.
	SP_LIMIT = uint16(0x8000) // Halt when SP < SP_LIMIT.
	IP_LIMIT = uint16(0x8000) // Halt when IP > IP_LIMIT.
)

// HaltReason is why the CPU stopped.
type HaltReason int

//go:generate go tool stringer -linecomment -type=HaltReason
const (
	HALT_NONE   = HaltReason(0) // running
	HALT_STACK  = HaltReason(1) // stack
	HALT_IP     = HaltReason(2) // ip
	HALT_POLICY = HaltReason(3) // policy
)

var _cpu_defines = map[string]string{
	"SP_RESET":     fmt.Sprintf("0x%x", SP_RESET),
	"SP_LIMIT":     fmt.Sprintf("0x%x", SP_LIMIT),
	"IP_LIMIT":     fmt.Sprintf("0x%x", IP_LIMIT),
	"MEMORY_WORDS": fmt.Sprintf("0x%x", MEMORY_WORDS),
}

// Cpu is the simulation context for the SP16.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory *Memory // Memory, exclusively owned by the CPU.

	Ip uint16 // Instruction pointer.
	Sp uint16 // Stack pointer.
	A  uint16 // Accumulator.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with cleared memory, in the reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Memory: &Memory{},
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// SetChannel attaches the serial channel.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.Memory.Serial = channel
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %04X\n", "ip", cpu.Ip)
	text += fmt.Sprintf("% 5s: %04X\n", "sp", cpu.Sp)
	text += fmt.Sprintf("% 5s: %04X\n", "a", cpu.A)
	text += fmt.Sprintf("% 5s: %v\n", "ticks", cpu.Ticks)

	return
}

// Reset the CPU registers and statistics. Memory is left as-is, as it
// is populated before the reset by the program loader.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		logrus.Debug("cpu: reset")
	}

	cpu.Ip = 0
	cpu.Sp = SP_RESET
	cpu.A = 0
	cpu.Ticks = 0
}

// Halted returns the architectural halt condition, if any.
func (cpu *Cpu) Halted() HaltReason {
	switch {
	case cpu.Sp < SP_LIMIT:
		return HALT_STACK
	case cpu.Ip > IP_LIMIT:
		return HALT_IP
	}

	return HALT_NONE
}

// Tick executes a single CPU instruction cycle. When the CPU is halted,
// an ErrHalt is returned and no state changes.
func (cpu *Cpu) Tick() (err error) {
	reason := cpu.Halted()
	if reason != HALT_NONE {
		err = ErrHalt(reason)
		return
	}

	// Fetch is never routed to the serial channel.
	code := Code(cpu.Memory.Ram[cpu.Ip])

	err = cpu.Execute(code)

	return
}

// Execute executes a single instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	if cpu.Verbose {
		logrus.WithFields(logrus.Fields{
			"ip":   fmt.Sprintf("%04x", cpu.Ip),
			"sp":   fmt.Sprintf("%04x", cpu.Sp),
			"a":    fmt.Sprintf("%04x", cpu.A),
			"code": code.String(),
		}).Debug("tick")
	}

	op := code.Decode()

	left, err := cpu.getLeft(op)
	if err != nil {
		return
	}
	right := cpu.getRight(op)

	// Flags are only consumed by the conditional SP increment.
	result, carry, overflow := Alu(op.Mode, left, op.CarryIn, right, op.Cond != COND_NONE)

	if op.DecSp {
		cpu.Sp--
	}

	switch op.Target {
	case TARGET_A:
		cpu.A = result
	case TARGET_MEMORY:
		err = cpu.Memory.Write(cpu.Sp, result, op.Serial)
		if err != nil {
			return
		}
	case TARGET_SP:
		cpu.Sp = result
	case TARGET_IP:
		cpu.Ip = result
	}

	if op.IncSp {
		cpu.Sp++
	}

	switch op.Cond {
	case COND_NONE:
		// pass
	case COND_ZERO:
		if result == 0 {
			cpu.Sp++
		}
	case COND_CARRY:
		if carry {
			cpu.Sp++
		}
	case COND_OVERFLOW:
		if overflow {
			cpu.Sp++
		}
	}

	if op.IncIp {
		cpu.Ip++
	}

	cpu.Ticks++

	return
}

// getLeft resolves the ALU left operand.
func (cpu *Cpu) getLeft(op Op) (value uint16, err error) {
	switch op.Left {
	case LEFT_ZERO:
		value = 0
	case LEFT_MEMORY:
		value, err = cpu.Memory.Read(cpu.Sp, op.Serial)
	case LEFT_RESERVED_2, LEFT_RESERVED_3:
		err = ErrOperand(op.Left)
	case LEFT_A:
		value = cpu.A
	case LEFT_NOT_A:
		value = ^cpu.A
	case LEFT_SP:
		value = cpu.Sp
	case LEFT_IP:
		value = cpu.Ip
	}

	return
}

// getRight resolves the ALU right operand.
func (cpu *Cpu) getRight(op Op) (value uint16) {
	switch op.Right {
	case RIGHT_ZERO:
		value = 0
	case RIGHT_A:
		value = cpu.A
	case RIGHT_ONES:
		value = 0xffff
	case RIGHT_NOT_A:
		value = ^cpu.A
	}

	return
}
