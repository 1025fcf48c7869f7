// Package register implements the named registers of the simple CPU.
package register

import (
	"fmt"

	"github.com/ezrec/simplecpu/value"
)

// Kind selects between data and address registers.
// The kinds differ only in their display prefix.
type Kind int

const (
	KIND_DATA    = Kind(0) // D
	KIND_ADDRESS = Kind(1) // A
)

// COUNT is the number of registers of each kind.
const COUNT = 8

var kindPrefix = [...]string{
	KIND_DATA:    "D",
	KIND_ADDRESS: "A",
}

// Prefix is the display prefix of the kind.
func (kind Kind) Prefix() string {
	if kind < 0 || int(kind) >= len(kindPrefix) {
		return "?"
	}
	return kindPrefix[kind]
}

func (kind Kind) String() string {
	switch kind {
	case KIND_DATA:
		return "data"
	case KIND_ADDRESS:
		return "address"
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}

// Register holds one machine word.
type Register struct {
	Value value.RegisterValue // Current contents.

	kind  Kind
	index int
}

// NewRegister creates a zeroed register.
func NewRegister(kind Kind, index int) (reg Register) {
	reg = Register{
		kind:  kind,
		index: index,
	}

	return
}

// Kind is the register kind.
func (reg *Register) Kind() Kind {
	return reg.kind
}

// Index is the register number within its kind.
func (reg *Register) Index() int {
	return reg.index
}

// SetValueFrom parses hex text into the register.
// On a parse failure the register is zeroed, and the parse error is returned
// for callers that want to reject the text.
func (reg *Register) SetValueFrom(text string) (err error) {
	reg.Value, err = value.Parse(text)
	if err != nil {
		reg.Value = value.ZERO
	}

	return
}

// NameString is the prefix and index, such as "D3".
func (reg *Register) NameString() string {
	return fmt.Sprintf("%v%d", reg.kind.Prefix(), reg.index)
}

// ValueString is the value in '#' hex form.
func (reg *Register) ValueString() string {
	return reg.Value.HexString(value.FLAG_HASH)
}

// DisplayString is the name and value, such as "D3: #00001000".
func (reg *Register) DisplayString() string {
	return reg.NameString() + ": " + reg.ValueString()
}

func (reg *Register) String() string {
	return reg.DisplayString()
}
