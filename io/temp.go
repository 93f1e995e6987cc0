package io

// Temporary implements a loopback serial port: words sent are queued and
// received back in FIFO order. It has a fixed capacity and separate
// read/write positions.
type Temporary struct {
	Capacity int // Capacity in words.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []uint16
}

var _ Channel = (*Temporary)(nil)

// Rewind resets the temporary storage to empty, resetting indices and
// reinitializing the data buffer.
func (temp *Temporary) Rewind() {
	temp.ReadIndex = 0
	temp.WriteIndex = 0
	temp.Size = 0
	temp.Data = make([]uint16, temp.Capacity)
}

// Receive dequeues the oldest word. An empty buffer is a serial underrun,
// since nothing else can ever fill it while the reader waits.
func (temp *Temporary) Receive() (value uint16, err error) {
	if temp.Size == 0 {
		err = ErrSerialUnderrun
		return
	}

	value = temp.Data[temp.ReadIndex]
	temp.ReadIndex++
	if temp.ReadIndex == temp.Capacity {
		temp.ReadIndex = 0
	}
	temp.Size--

	return
}

// Send queues a word, failing when the buffer is full.
func (temp *Temporary) Send(value uint16) (err error) {
	if len(temp.Data) != temp.Capacity {
		temp.Rewind()
	}

	if temp.Size == temp.Capacity {
		err = ErrChannelFull
		return
	}

	temp.Data[temp.WriteIndex] = value
	temp.WriteIndex++
	if temp.WriteIndex == temp.Capacity {
		temp.WriteIndex = 0
	}
	temp.Size++

	return
}
