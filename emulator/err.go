package emulator

import (
	"errors"

	"github.com/ezrec/sp16/translate"
)

var f = translate.From

var (
	ErrPolicyResult = errors.New(f("stop expression result"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip   uint16
	Tick int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("ip 0x%04x tick %d %v", err.Ip, err.Tick, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
