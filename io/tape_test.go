package io

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (fw failWriter) Write(p []byte) (int, error) {
	return 0, os.ErrClosed
}

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewReader([]byte{0x12, 0x34, 0xff, 0x00})}

	value, err := tape.Receive()
	assert.NoError(err)
	assert.Equal(uint16(0x1234), value)

	value, err = tape.Receive()
	assert.NoError(err)
	assert.Equal(uint16(0xff00), value)
	assert.Equal(2, tape.Received)

	_, err = tape.Receive()
	assert.ErrorIs(err, ErrSerialUnderrun)
	assert.ErrorIs(err, io.EOF)
}

func TestTape_Receive_Short(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewReader([]byte{0xab})}

	_, err := tape.Receive()
	assert.ErrorIs(err, ErrSerialUnderrun)
	assert.ErrorIs(err, io.ErrUnexpectedEOF)
	assert.Equal(0, tape.Received)
}

func TestTape_Receive_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	_, err := tape.Receive()
	assert.ErrorIs(err, ErrSerialUnderrun)
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	for _, value := range []uint16{0x1234, 0x00ff, 0xa55a} {
		assert.NoError(tape.Send(value))
	}

	assert.Equal([]byte{0x12, 0x34, 0x00, 0xff, 0xa5, 0x5a}, output.Bytes())
	assert.Equal(3, tape.Sent)

	tape.Rewind()
	assert.Equal(0, tape.Sent)
	assert.Equal(0, tape.Received)
}

func TestTape_Send_Failure(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Output: failWriter{}}
	err := tape.Send(0x1234)
	assert.ErrorIs(err, ErrSerialOverrun)
	assert.True(errors.Is(err, os.ErrClosed))
	assert.Equal(0, tape.Sent)

	tape = &Tape{}
	assert.ErrorIs(tape.Send(0), ErrSerialOverrun)
}

func TestAsUint16(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		value uint16
		bytes []byte
	}){
		{"zero", 0x0000, []byte{0x00, 0x00}},
		{"low", 0x00ff, []byte{0x00, 0xff}},
		{"high", 0xff00, []byte{0xff, 0x00}},
		{"mixed", 0x6ff1, []byte{0x6f, 0xf1}},
	}

	for _, entry := range table {
		buff := &bytes.Buffer{}
		assert.NoError(SendAsUint16(buff, entry.value), entry.name)
		assert.Equal(entry.bytes, buff.Bytes(), entry.name)

		value, err := ReceiveAsUint16(bytes.NewReader(entry.bytes))
		assert.NoError(err, entry.name)
		assert.Equal(entry.value, value, entry.name)
	}
}
