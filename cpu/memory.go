package cpu

import (
	"errors"

	"github.com/ezrec/sp16/io"
)

const (
	MEMORY_WORDS = 1 << 16 // Words of addressable memory.
)

// Memory is the flat word-addressed store of the SP16, plus the serial
// channel that an instruction may redirect its access to.
type Memory struct {
	Ram    [MEMORY_WORDS]uint16
	Serial io.Channel
}

// Read returns the word at addr, or the next word from the serial channel
// when serial is set.
func (mem *Memory) Read(addr uint16, serial bool) (value uint16, err error) {
	if !serial {
		value = mem.Ram[addr]
		return
	}

	if mem.Serial == nil {
		err = ErrChannelInvalid
		return
	}

	value, err = mem.Serial.Receive()
	if err != nil && !errors.Is(err, ErrSerialUnderrun) {
		err = errors.Join(ErrSerialUnderrun, err)
	}

	return
}

// Write stores value at addr, or sends it to the serial channel when
// serial is set.
func (mem *Memory) Write(addr uint16, value uint16, serial bool) (err error) {
	if !serial {
		mem.Ram[addr] = value
		return
	}

	if mem.Serial == nil {
		err = ErrChannelInvalid
		return
	}

	err = mem.Serial.Send(value)
	if err != nil && !errors.Is(err, ErrSerialOverrun) && !errors.Is(err, io.ErrChannelFull) {
		err = errors.Join(ErrSerialOverrun, err)
	}

	return
}

// Window returns a copy of count words starting at addr. The window
// does not wrap past the top of memory.
func (mem *Memory) Window(addr uint16, count int) (words []uint16) {
	end := min(int(addr)+count, MEMORY_WORDS)
	if end <= int(addr) {
		return
	}

	words = make([]uint16, end-int(addr))
	copy(words, mem.Ram[addr:end])
	return
}
