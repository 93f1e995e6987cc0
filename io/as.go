package io

import (
	"errors"
	"io"
)

// SendAsUint16 writes a 16-bit word to a byte stream, MSB first.
func SendAsUint16(w io.Writer, value uint16) (err error) {
	buff := [2]byte{byte(value >> 8), byte(value)}
	_, err = w.Write(buff[:])
	if err != nil {
		err = errors.Join(ErrSerialOverrun, err)
	}
	return
}

// ReceiveAsUint16 reads exactly two bytes from a byte stream and assembles
// them MSB first. A stream that ends early is a serial underrun.
func ReceiveAsUint16(r io.Reader) (value uint16, err error) {
	var buff [2]byte
	_, err = io.ReadFull(r, buff[:])
	if err != nil {
		err = errors.Join(ErrSerialUnderrun, err)
		return
	}

	value = (uint16(buff[0]) << 8) | uint16(buff[1])
	return
}
