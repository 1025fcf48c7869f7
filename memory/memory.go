// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the byte-addressable store of the simple CPU.
//
// Multi-byte values are big-endian: the most-significant byte is at the lowest
// address, so a memory dump reads the same as a register's hex text.
package memory

import (
	"io"
	"log"

	"github.com/ezrec/simplecpu/value"
)

type RegisterValue = value.RegisterValue

const (
	SHORT_WIDTH = 2           // Bytes in a half-word.
	WORD_WIDTH  = value.WIDTH // Bytes in a word.
)

// Memory is a fixed-size, zero-initialized byte store.
type Memory struct {
	Verbose bool // Set to enable verbose logging.

	size RegisterValue
	data []uint8
}

// NewMemory creates a memory of size bytes.
func NewMemory(size RegisterValue) (mem *Memory) {
	mem = &Memory{
		size: size,
		data: make([]uint8, size),
	}

	return
}

// Size is the capacity in bytes.
func (mem *Memory) Size() RegisterValue {
	return mem.size
}

// Reset zeroes every byte.
func (mem *Memory) Reset() {
	if mem.Verbose {
		log.Printf("memory: reset %v bytes", uint32(mem.size))
	}

	clear(mem.data)
}

// check verifies that address+offset is a valid byte address.
func (mem *Memory) check(address RegisterValue, offset int) (err error) {
	at := uint64(address) + uint64(offset)
	if at >= uint64(mem.size) {
		err = ErrAccess(RegisterValue(at))
	}
	return
}

// Byte fetches the byte at address.
func (mem *Memory) Byte(address RegisterValue) (data RegisterValue, err error) {
	err = mem.check(address, 0)
	if err != nil {
		return
	}

	data = RegisterValue(mem.data[address])
	return
}

// ByteAt fetches the byte at the modular sum base+index+offset.
func (mem *Memory) ByteAt(base, index, offset RegisterValue) (data RegisterValue, err error) {
	return mem.Byte(base + index + offset)
}

// StoreByte stores the low 8 bits of data at address.
func (mem *Memory) StoreByte(address RegisterValue, data RegisterValue) (err error) {
	err = mem.check(address, 0)
	if err != nil {
		return
	}

	mem.data[address] = uint8(data)
	return
}

// fetch composes width bytes at address, most-significant first.
func (mem *Memory) fetch(address RegisterValue, width int) (data RegisterValue, err error) {
	for n := range width {
		err = mem.check(address, n)
		if err != nil {
			data = 0
			return
		}
		data = (data << 8) | RegisterValue(mem.data[address+RegisterValue(n)])
	}

	return
}

// store writes bytes starting at address, one bounds check per byte.
// Bytes ahead of a failing address stay written.
func (mem *Memory) store(address RegisterValue, data []uint8) (err error) {
	for n, b := range data {
		err = mem.check(address, n)
		if err != nil {
			if mem.Verbose {
				log.Printf("memory: partial store of %v/%v bytes at 0x%08x", n, len(data), uint32(address))
			}
			return
		}
		mem.data[address+RegisterValue(n)] = b
	}

	return
}

// Short fetches the half-word at address and address+1.
func (mem *Memory) Short(address RegisterValue) (data RegisterValue, err error) {
	return mem.fetch(address, SHORT_WIDTH)
}

// StoreShort stores the low half-word of data at address.
func (mem *Memory) StoreShort(address RegisterValue, data RegisterValue) (err error) {
	bytes := data.Bytes()
	return mem.store(address, bytes[WORD_WIDTH-SHORT_WIDTH:])
}

// Word fetches the word at address through address+3.
func (mem *Memory) Word(address RegisterValue) (data RegisterValue, err error) {
	return mem.fetch(address, WORD_WIDTH)
}

// StoreWord stores data at address through address+3.
func (mem *Memory) StoreWord(address RegisterValue, data RegisterValue) (err error) {
	bytes := data.Bytes()
	if mem.Verbose {
		log.Printf("memory: store %v at 0x%08x", data.HexString(value.FLAG_HASH), uint32(address))
	}
	return mem.store(address, bytes[:])
}

// Load copies a block into memory at address.
// Nothing is written unless the whole block fits.
func (mem *Memory) Load(address RegisterValue, block []byte) (err error) {
	if len(block) == 0 {
		return
	}

	err = mem.check(address, len(block)-1)
	if err != nil {
		return
	}

	copy(mem.data[address:], block)
	return
}

// Unmarshal replaces the memory contents with an image from a reader.
// An image shorter than the memory leaves the tail zeroed.
func (mem *Memory) Unmarshal(file io.Reader) (err error) {
	image, err := io.ReadAll(io.LimitReader(file, int64(mem.size)+1))
	if err != nil {
		return
	}

	if uint64(len(image)) > uint64(mem.size) {
		err = ErrImageSize
		return
	}

	clear(mem.data)
	copy(mem.data, image)

	if mem.Verbose {
		log.Printf("memory: loaded %v byte image", len(image))
	}

	return
}

// Marshal writes the full memory image to a writer.
func (mem *Memory) Marshal(file io.Writer) (err error) {
	_, err = file.Write(mem.data)

	return
}
