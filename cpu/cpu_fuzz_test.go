package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// refState is the machine state visible to a single instruction that
// does not use the serial port.
type refState struct {
	Ip, Sp, A uint16
	Top       uint16 // Ram[Sp]
	Below     uint16 // Ram[Sp-1]
}

// refExecute is an independent model of one instruction, working directly
// on the instruction bit masks.
func refExecute(word uint16, s refState) (n refState, ok bool) {
	n = s
	base := s.Sp
	ram := map[uint16]uint16{base: s.Top, base - 1: s.Below}

	var left uint16
	switch word & 0xe000 {
	case 0x0000:
		left = 0
	case 0x2000:
		left = ram[s.Sp]
	case 0x4000, 0x6000:
		return
	case 0x8000:
		left = s.A
	case 0xa000:
		left = ^s.A
	case 0xc000:
		left = s.Sp
	case 0xe000:
		left = s.Ip
	}

	var right uint16
	switch word & 0x1800 {
	case 0x0000:
		right = 0
	case 0x0800:
		right = s.A
	case 0x1000:
		right = 0xffff
	case 0x1800:
		right = ^s.A
	}

	result, carry, overflow := refAdd(left, (word&0x0400) != 0, right)
	if (word & 0x0200) != 0 {
		result = ^(left & right)
		carry = false
		overflow = false
	}

	if (word & 0x0040) != 0 {
		n.Sp--
	}

	switch word & 0x0180 {
	case 0x0000:
		n.A = result
	case 0x0080:
		ram[n.Sp] = result
	case 0x0100:
		n.Sp = result
	case 0x0180:
		n.Ip = result
	}

	if (word & 0x0020) != 0 {
		n.Sp++
	}

	switch word & 0x0018 {
	case 0x0008:
		if result == 0 {
			n.Sp++
		}
	case 0x0010:
		if carry {
			n.Sp++
		}
	case 0x0018:
		if overflow {
			n.Sp++
		}
	}

	if (word & 0x0004) != 0 {
		n.Ip++
	}

	n.Top = ram[base]
	n.Below = ram[base-1]
	ok = true

	return
}

// checkExecute runs one word on cpu from state s, and compares against
// the reference model.
func checkExecute(t *testing.T, cpu *Cpu, word uint16, s refState) bool {
	assert := assert.New(t)

	cpu.Ip = s.Ip
	cpu.Sp = s.Sp
	cpu.A = s.A
	cpu.Ticks = 0
	cpu.Memory.Ram[s.Sp] = s.Top
	cpu.Memory.Ram[s.Sp-1] = s.Below

	err := cpu.Execute(Code(word))

	expected, ok := refExecute(word, s)
	desc := fmt.Sprintf("0x%04x (%v) from %+v", word, Code(word), s)
	if !ok {
		return assert.True(errors.Is(err, ErrUnimplementedOperand), desc) &&
			assert.Equal(0, cpu.Ticks, desc)
	}

	actual := refState{
		Ip:    cpu.Ip,
		Sp:    cpu.Sp,
		A:     cpu.A,
		Top:   cpu.Memory.Ram[s.Sp],
		Below: cpu.Memory.Ram[s.Sp-1],
	}

	return assert.NoError(err, desc) &&
		assert.Equal(expected, actual, desc) &&
		assert.Equal(1, cpu.Ticks, desc)
}

var refStates = []refState{
	{Ip: 0x0100, Sp: 0xfff0, A: 0x1234, Top: 0x4321, Below: 0x5555},
	{Ip: 0x0100, Sp: 0xfff0, A: 0x7fff, Top: 0x0001, Below: 0x0000},
	{Ip: 0x7fff, Sp: 0x8000, A: 0xffff, Top: 0x0001, Below: 0xffff},
	{Ip: 0x0000, Sp: 0xffff, A: 0x0000, Top: 0x0000, Below: 0x0000},
	{Ip: 0x8000, Sp: 0x8001, A: 0x8000, Top: 0x8000, Below: 0x7fff},
}

// TestCpu_WriteBackOrder runs every non-serial instruction word against
// the reference model, covering every combination of SP decrement,
// write-back target, SP increment and conditional increment.
func TestCpu_WriteBackOrder(t *testing.T) {
	cpu := NewCpu()

	for word := 0; word < 0x10000; word += 4 {
		for _, s := range refStates {
			if !checkExecute(t, cpu, uint16(word), s) {
				return
			}
		}
	}
}

func FuzzCpu(f *testing.F) {
	for _, s := range refStates {
		f.Add(uint16(0x0000), s.Ip, s.Sp, s.A, s.Top, s.Below)
		f.Add(uint16(0xfffc), s.Ip, s.Sp, s.A, s.Top, s.Below)
		f.Add(uint16(0b001_01_0_0_00_1_0_10_1_0_0), s.Ip, s.Sp, s.A, s.Top, s.Below)
	}

	f.Fuzz(func(t *testing.T, opcode uint16, ip, sp, a, top, below uint16) {
		// The serial port is exercised separately.
		opcode &^= CODE_SERIAL

		cpu := NewCpu()
		checkExecute(t, cpu, opcode, refState{Ip: ip, Sp: sp, A: a, Top: top, Below: below})
	})
}
