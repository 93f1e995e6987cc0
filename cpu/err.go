package cpu

import (
	"errors"

	"github.com/ezrec/sp16/io"
	"github.com/ezrec/sp16/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted               = errors.New(f("halted"))
	ErrChannelInvalid       = errors.New(f("channel invalid"))
	ErrUnimplementedOperand = errors.New(f("unimplemented operand"))
	ErrSerialUnderrun       = io.ErrSerialUnderrun
	ErrSerialOverrun        = io.ErrSerialOverrun

	// Program image errors
	ErrImageOdd     = errors.New(f("odd length image"))
	ErrImageSize    = errors.New(f("image exceeds memory"))
	ErrOriginSyntax = errors.New(f("@origin syntax"))
)

// ErrOperand is a reserved left operand source selected by an instruction.
type ErrOperand CodeLeft

func (eo ErrOperand) Error() string {
	return f("operand %v not implemented", CodeLeft(eo).String())
}

func (eo ErrOperand) Is(err error) bool {
	return err == ErrUnimplementedOperand
}

// ErrOpcode names the instruction word that failed to execute.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrHalt reports a normal halt, and why.
type ErrHalt HaltReason

func (eh ErrHalt) Error() string {
	return f("halt: %v", HaltReason(eh).String())
}

func (eh ErrHalt) Is(err error) bool {
	return err == ErrHalted
}

// ErrSyntax locates an error in a program listing.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseNumber is a listing word that is not a 16-bit number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a 16-bit number", string(err))
}
