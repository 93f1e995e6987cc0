package cpu

import (
	"fmt"
	"strings"
)

// CodeLeft is the ALU left operand source.
type CodeLeft int

//go:generate go tool stringer -linecomment -type=CodeLeft
const (
	LEFT_ZERO       = CodeLeft(0) // 0
	LEFT_MEMORY     = CodeLeft(1) // mem
	LEFT_RESERVED_2 = CodeLeft(2) // rsv2
	LEFT_RESERVED_3 = CodeLeft(3) // rsv3
	LEFT_A          = CodeLeft(4) // a
	LEFT_NOT_A      = CodeLeft(5) // ~a
	LEFT_SP         = CodeLeft(6) // sp
	LEFT_IP         = CodeLeft(7) // ip
)

// CodeRight is the ALU right operand source.
type CodeRight int

//go:generate go tool stringer -linecomment -type=CodeRight
const (
	RIGHT_ZERO  = CodeRight(0) // 0
	RIGHT_A     = CodeRight(1) // a
	RIGHT_ONES  = CodeRight(2) // ffff
	RIGHT_NOT_A = CodeRight(3) // ~a
)

// CodeAluMode selects between the adder and NAND.
type CodeAluMode int

//go:generate go tool stringer -linecomment -type=CodeAluMode
const (
	ALU_MODE_ADD  = CodeAluMode(0) // add
	ALU_MODE_NAND = CodeAluMode(1) // nand
)

// CodeTarget is the write-back destination of the ALU result.
type CodeTarget int

//go:generate go tool stringer -linecomment -type=CodeTarget
const (
	TARGET_A      = CodeTarget(0) // a
	TARGET_MEMORY = CodeTarget(1) // mem
	TARGET_SP     = CodeTarget(2) // sp
	TARGET_IP     = CodeTarget(3) // ip
)

// CodeCond selects the flag that conditionally increments SP.
type CodeCond int

//go:generate go tool stringer -linecomment -type=CodeCond
const (
	COND_NONE     = CodeCond(0) // -
	COND_ZERO     = CodeCond(1) // z
	COND_CARRY    = CodeCond(2) // c
	COND_OVERFLOW = CodeCond(3) // v
)

// Instruction word field positions, MSB first. Bit 0 is unused.
const (
	CODE_LEFT_SHIFT   = 13
	CODE_RIGHT_SHIFT  = 11
	CODE_CARRY_IN     = uint16(1 << 10)
	CODE_NAND         = uint16(1 << 9)
	CODE_TARGET_SHIFT = 7
	CODE_DEC_SP       = uint16(1 << 6)
	CODE_INC_SP       = uint16(1 << 5)
	CODE_COND_SHIFT   = 3
	CODE_INC_IP       = uint16(1 << 2)
	CODE_SERIAL       = uint16(1 << 1)
)

// Code is a single SP16 instruction word.
type Code uint16

// Op is a decoded instruction.
type Op struct {
	Left    CodeLeft    // ALU left operand.
	Right   CodeRight   // ALU right operand.
	CarryIn bool        // Adder carry in.
	Mode    CodeAluMode // ALU mode.
	Target  CodeTarget  // Write-back target.
	DecSp   bool        // Decrement SP before write-back.
	IncSp   bool        // Increment SP after write-back.
	Cond    CodeCond    // Flag that additionally increments SP.
	IncIp   bool        // Increment IP after write-back.
	Serial  bool        // Route memory accesses to the serial channel.
}

// Decode splits the instruction word into its fields.
func (code Code) Decode() (op Op) {
	word := uint16(code)
	op = Op{
		Left:    CodeLeft((word >> CODE_LEFT_SHIFT) & 0x7),
		Right:   CodeRight((word >> CODE_RIGHT_SHIFT) & 0x3),
		CarryIn: (word & CODE_CARRY_IN) != 0,
		Mode:    CodeAluMode((word & CODE_NAND) >> 9),
		Target:  CodeTarget((word >> CODE_TARGET_SHIFT) & 0x3),
		DecSp:   (word & CODE_DEC_SP) != 0,
		IncSp:   (word & CODE_INC_SP) != 0,
		Cond:    CodeCond((word >> CODE_COND_SHIFT) & 0x3),
		IncIp:   (word & CODE_INC_IP) != 0,
		Serial:  (word & CODE_SERIAL) != 0,
	}
	return
}

// MakeCode encodes an instruction. Out of range enumerations are truncated
// to their field width.
func MakeCode(op Op) Code {
	word := (uint16(op.Left)&0x7)<<CODE_LEFT_SHIFT |
		(uint16(op.Right)&0x3)<<CODE_RIGHT_SHIFT |
		(uint16(op.Mode)&0x1)<<9 |
		(uint16(op.Target)&0x3)<<CODE_TARGET_SHIFT |
		(uint16(op.Cond)&0x3)<<CODE_COND_SHIFT

	flags := []struct {
		set bool
		bit uint16
	}{
		{op.CarryIn, CODE_CARRY_IN},
		{op.DecSp, CODE_DEC_SP},
		{op.IncSp, CODE_INC_SP},
		{op.IncIp, CODE_INC_IP},
		{op.Serial, CODE_SERIAL},
	}
	for _, flag := range flags {
		if flag.set {
			word |= flag.bit
		}
	}

	return Code(word)
}

// String returns a compact mnemonic, ie "add.mem.a.c>a.-sp.?c.+ip".
func (code Code) String() string {
	op := code.Decode()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%v.%v.%v", op.Mode, op.Left, op.Right)
	if op.CarryIn {
		sb.WriteString(".c")
	}
	fmt.Fprintf(&sb, ">%v", op.Target)
	if op.DecSp {
		sb.WriteString(".-sp")
	}
	if op.IncSp {
		sb.WriteString(".+sp")
	}
	if op.Cond != COND_NONE {
		fmt.Fprintf(&sb, ".?%v", op.Cond)
	}
	if op.IncIp {
		sb.WriteString(".+ip")
	}
	if op.Serial {
		sb.WriteString(".ser")
	}

	return sb.String()
}
