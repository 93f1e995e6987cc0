// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"encoding/binary"
	"io"
	"strconv"
	"strings"
)

// ReadBinary reads a raw image of big-endian words, loaded at address 0.
func ReadBinary(input io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	if len(data)%2 != 0 {
		err = ErrImageOdd
		return
	}

	if len(data)/2 > MEMORY_WORDS {
		err = ErrImageSize
		return
	}

	words := make([]uint16, len(data)/2)
	for n := range words {
		words[n] = binary.BigEndian.Uint16(data[n*2:])
	}

	prog = &Program{}
	prog.Append(0, words...)

	return
}

// WriteBinary writes the image as raw big-endian words from address 0 to
// the highest address used. Gaps are filled with zero.
func WriteBinary(output io.Writer, prog *Program) (err error) {
	var top int
	for _, seg := range prog.Segments {
		top = max(top, int(seg.Base)+len(seg.Words))
	}

	mem := &Memory{}
	err = prog.Load(mem)
	if err != nil {
		return
	}

	buff := make([]byte, top*2)
	for n := range top {
		binary.BigEndian.PutUint16(buff[n*2:], mem.Ram[n])
	}

	_, err = output.Write(buff)
	return
}

// ParseListing parses a text listing of words.
//
// Each line holds zero or more words in Go literal syntax (0x, 0b, 0o and
// '_' separators are accepted). A ';' starts a comment. '@ADDR' starts a
// new segment at ADDR; the first segment starts at 0.
func ParseListing(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}
	seg := Segment{}

	flush := func() {
		if len(seg.Words) > 0 {
			prog.Segments = append(prog.Segments, seg)
		}
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		for _, word := range words {
			if strings.HasPrefix(word, "@") {
				var origin uint16
				origin, err = parseWord(word[1:])
				if err != nil {
					err = ErrOriginSyntax
					return
				}
				flush()
				seg = Segment{Base: origin}
				continue
			}

			var value uint16
			value, err = parseWord(word)
			if err != nil {
				return
			}

			if int(seg.Base)+len(seg.Words) >= MEMORY_WORDS {
				err = ErrImageSize
				return
			}
			seg.Words = append(seg.Words, value)
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	flush()

	return
}

// parseWord parses a single 16-bit word.
func parseWord(word string) (value uint16, err error) {
	v64, err := strconv.ParseUint(word, 0, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint16(v64)
	return
}
