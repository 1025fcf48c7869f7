// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package processor aggregates memory, registers and status flags into the
// machine state of the simple CPU.
//
// No instructions are executed here. An execution layer reads and writes the
// state through the exported fields and accessors.
package processor

import (
	"fmt"
	"iter"
	"log"
	"strings"

	"github.com/ezrec/simplecpu/internal"
	"github.com/ezrec/simplecpu/memory"
	"github.com/ezrec/simplecpu/register"
	"github.com/ezrec/simplecpu/value"
)

// Processor is the complete machine state.
type Processor struct {
	Verbose bool // Set to enable verbose logging.

	Memory  *memory.Memory                    // Main memory.
	Data    [register.COUNT]register.Register // Data registers D0-D7.
	Address [register.COUNT]register.Register // Address registers A0-A7.
	Pc      value.RegisterValue               // Program counter.
	Flags   StatusFlags                       // Condition flags.

	memoryCapacity value.RegisterValue
}

// NewProcessor creates a processor with size bytes of memory.
func NewProcessor(size value.RegisterValue) (proc *Processor) {
	proc = &Processor{
		Memory:         memory.NewMemory(size),
		memoryCapacity: size,
	}

	for n := range register.COUNT {
		proc.Data[n] = register.NewRegister(register.KIND_DATA, n)
		proc.Address[n] = register.NewRegister(register.KIND_ADDRESS, n)
	}

	return
}

// MemoryCapacity is the memory size in bytes.
func (proc *Processor) MemoryCapacity() value.RegisterValue {
	return proc.memoryCapacity
}

// D returns the value of data register n.
func (proc *Processor) D(n int) value.RegisterValue {
	return proc.Data[n].Value
}

// A returns the value of address register n.
func (proc *Processor) A(n int) value.RegisterValue {
	return proc.Address[n].Value
}

// Register returns the named data or address register.
// The program counter is not a Register, and yields nil.
func (proc *Processor) Register(name RegisterName) *register.Register {
	kind, ok := name.Kind()
	if !ok {
		return nil
	}

	if kind == register.KIND_DATA {
		return &proc.Data[name.Index()]
	}
	return &proc.Address[name.Index()]
}

// Value reads any named register, including the program counter.
func (proc *Processor) Value(name RegisterName) (rv value.RegisterValue, err error) {
	if name == REG_PC {
		rv = proc.Pc
		return
	}

	reg := proc.Register(name)
	if reg == nil {
		err = ErrRegisterName(name.String())
		return
	}

	rv = reg.Value
	return
}

// SetValue writes any named register, including the program counter.
func (proc *Processor) SetValue(name RegisterName, rv value.RegisterValue) (err error) {
	if name == REG_PC {
		proc.Pc = rv
		return
	}

	reg := proc.Register(name)
	if reg == nil {
		err = ErrRegisterName(name.String())
		return
	}

	reg.Value = rv
	return
}

// Registers iterates the data registers, then the address registers.
func (proc *Processor) Registers() iter.Seq2[RegisterName, *register.Register] {
	return internal.IterSeq2Concat(
		internal.IterSliceRef(REG_D0, proc.Data[:]),
		internal.IterSliceRef(REG_A0, proc.Address[:]),
	)
}

// Reset clears registers, flags and memory.
func (proc *Processor) Reset() {
	if proc.Verbose {
		log.Printf("processor: reset")
	}

	for _, reg := range proc.Registers() {
		reg.Value = value.ZERO
	}

	proc.Pc = value.ZERO
	proc.Flags = FLAG_CLEAR
	proc.Memory.Verbose = proc.Verbose
	proc.Memory.Reset()
}

// String returns the register state, one register per line.
func (proc *Processor) String() string {
	var text strings.Builder

	for n := range register.COUNT {
		fmt.Fprintf(&text, "%v    %v\n", proc.Data[n].DisplayString(), proc.Address[n].DisplayString())
	}
	fmt.Fprintf(&text, "PC: %v\n", proc.Pc.HexString(value.FLAG_HASH))
	fmt.Fprintf(&text, "SR: %v\n", proc.Flags)

	return text.String()
}
