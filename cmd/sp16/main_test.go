package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sp16/cpu"
	"github.com/ezrec/sp16/emulator"
)

func TestLoadImage(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	listing := "0x0404 0x08e4 ; two words\n@0xfffe 1 1\n"
	binary := []byte{0x04, 0x04, 0x08, 0xe4}

	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		assert.NoError(os.WriteFile(path, data, 0o644))
		return path
	}

	table := [](struct {
		name   string
		data   []byte
		format string
		words  int
		err    error
	}){
		{"prog.txt", []byte(listing), "", 4, nil},
		{"prog.lst", []byte(listing), "", 4, nil},
		{"prog.bin", binary, "", 2, nil},
		{"prog.img", binary, "", 2, nil},
		{"listing.dat", []byte(listing), "text", 4, nil},
		{"image.txt", binary, "bin", 2, nil},
		{"odd.bin", binary[:3], "", 0, cpu.ErrImageOdd},
		{"what.bin", binary, "hex", 0, ErrImageFormat},
	}

	for _, entry := range table {
		path := write(entry.name, entry.data)
		prog, err := loadImage(path, entry.format)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			continue
		}
		if assert.NoError(err, entry.name) {
			assert.Equal(entry.words, prog.Len(), entry.name)
		}
	}

	_, err := loadImage(filepath.Join(dir, "missing.bin"), "")
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestOptions_Configure(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "prog.txt")
	assert.NoError(os.WriteFile(path, []byte("0x0404\n"), 0o644))

	table := [](struct {
		name     string
		opt      options
		policies []emulator.StopPolicy
		err      error
	}){
		{"example", options{example: true, halt_on: -1},
			[]emulator.StopPolicy{emulator.StopOnValue(emulator.FIBONACCI_HALT)}, nil},
		{"example_halt_on", options{example: true, halt_on: 5},
			[]emulator.StopPolicy{emulator.StopOnValue(5)}, nil},
		{"image", options{image: path, halt_on: -1}, nil, nil},
		{"image_max", options{image: path, halt_on: 0, max_ticks: 100},
			[]emulator.StopPolicy{emulator.StopOnValue(0), emulator.StopAfter(100)}, nil},
		{"none", options{halt_on: -1}, nil, ErrNoProgram},
		{"both", options{image: path, example: true, halt_on: -1}, nil, ErrExclusive},
		{"wide", options{example: true, halt_on: 0x10000}, nil, ErrHaltOn},
	}

	for _, entry := range table {
		emu := emulator.NewEmulator()
		err := entry.opt.configure(emu)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.policies, emu.Policy, entry.name)
	}
}

func TestOptions_Configure_Run(t *testing.T) {
	assert := assert.New(t)

	opt := options{example: true, halt_on: -1, stop: "ticks == 20", window: 8, loop: 4}

	emu := emulator.NewEmulator()
	assert.NoError(opt.configure(emu))
	assert.Equal(8, emu.Window)
	assert.NotNil(emu.Loopback)
	assert.Len(emu.Policy, 2)

	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())
	assert.Equal(cpu.HALT_POLICY, emu.Halt)
	assert.Equal(20, emu.Cpu.Ticks)

	opt.stop = "a =="
	assert.Error(opt.configure(emulator.NewEmulator()))
}
