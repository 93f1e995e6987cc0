package io

import (
	"io"
)

// Tape provides the serial port over a pair of byte streams.
// It wraps an io.Reader for input and io.Writer for output, converting
// between words and MSB-first byte pairs.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Received int // Words received since the last Rewind.
	Sent     int // Words sent since the last Rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind clears the word counters. The streams themselves cannot be rewound.
func (tc *Tape) Rewind() {
	tc.Received = 0
	tc.Sent = 0
}

// Receive blocks on the input stream for the next two bytes.
func (tc *Tape) Receive() (value uint16, err error) {
	if tc.Input == nil {
		err = ErrSerialUnderrun
		return
	}

	value, err = ReceiveAsUint16(tc.Input)
	if err != nil {
		return
	}

	tc.Received++
	return
}

// Send writes the word to the output stream as two bytes.
func (tc *Tape) Send(value uint16) (err error) {
	if tc.Output == nil {
		err = ErrSerialOverrun
		return
	}

	err = SendAsUint16(tc.Output, value)
	if err != nil {
		return
	}

	tc.Sent++
	return
}
