package cpu

import (
	"iter"
)

// Segment is a run of words starting at a base address.
type Segment struct {
	Base  uint16
	Words []uint16
}

// Program is a memory image to be loaded before the first fetch.
type Program struct {
	Segments []Segment
}

// Append adds a segment of words at base.
func (prog *Program) Append(base uint16, words ...uint16) {
	prog.Segments = append(prog.Segments, Segment{Base: base, Words: words})
}

// Len returns the total number of words in the image.
func (prog *Program) Len() (count int) {
	for _, seg := range prog.Segments {
		count += len(seg.Words)
	}
	return
}

// Words iterates over every address and word of the image, in segment
// order. Later segments overwrite earlier ones when loaded.
func (prog *Program) Words() iter.Seq2[uint16, uint16] {
	return func(yield func(addr uint16, word uint16) bool) {
		for _, seg := range prog.Segments {
			for n, word := range seg.Words {
				if !yield(seg.Base+uint16(n), word) {
					return
				}
			}
		}
	}
}

// Load writes the image into memory. A segment that would run past the
// top of memory is rejected before anything is written.
func (prog *Program) Load(mem *Memory) (err error) {
	for _, seg := range prog.Segments {
		if int(seg.Base)+len(seg.Words) > MEMORY_WORDS {
			err = ErrImageSize
			return
		}
	}

	for addr, word := range prog.Words() {
		mem.Ram[addr] = word
	}

	return
}
