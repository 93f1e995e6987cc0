package io

import (
	"errors"

	"github.com/ezrec/sp16/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull    = errors.New(f("channel full"))
	ErrSerialUnderrun = errors.New(f("serial underrun"))
	ErrSerialOverrun  = errors.New(f("serial overrun"))
)
