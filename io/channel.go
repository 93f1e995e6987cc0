// Package io provides the serial channel implementations for the SP16 emulator.
// A serial channel moves whole 16-bit words; byte-stream backed channels frame
// each word as two bytes, most significant first.
package io

// Channel defines the interface for the serial port of the SP16.
// An instruction with its serial-route bit set redirects its memory
// read or write to the attached Channel.
type Channel interface {
	// Receive blocks until a complete word is available.
	Receive() (value uint16, err error)
	// Send writes a single word to the channel.
	Send(value uint16) error
}
