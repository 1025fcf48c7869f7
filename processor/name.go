package processor

import (
	"strings"

	"github.com/ezrec/simplecpu/register"
)

// RegisterName addresses one processor register.
type RegisterName int

//go:generate go tool stringer -linecomment -type=RegisterName
const (
	REG_D0 = RegisterName(0)  // d0
	REG_D1 = RegisterName(1)  // d1
	REG_D2 = RegisterName(2)  // d2
	REG_D3 = RegisterName(3)  // d3
	REG_D4 = RegisterName(4)  // d4
	REG_D5 = RegisterName(5)  // d5
	REG_D6 = RegisterName(6)  // d6
	REG_D7 = RegisterName(7)  // d7
	REG_A0 = RegisterName(8)  // a0
	REG_A1 = RegisterName(9)  // a1
	REG_A2 = RegisterName(10) // a2
	REG_A3 = RegisterName(11) // a3
	REG_A4 = RegisterName(12) // a4
	REG_A5 = RegisterName(13) // a5
	REG_A6 = RegisterName(14) // a6
	REG_A7 = RegisterName(15) // a7
	REG_PC = RegisterName(16) // pc
)

// REG_COUNT is the number of register names.
const REG_COUNT = 17

// Kind is the register kind. The program counter is neither kind.
func (name RegisterName) Kind() (kind register.Kind, ok bool) {
	switch {
	case name >= REG_D0 && name <= REG_D7:
		return register.KIND_DATA, true
	case name >= REG_A0 && name <= REG_A7:
		return register.KIND_ADDRESS, true
	}
	return
}

// Index is the register number within its kind.
func (name RegisterName) Index() int {
	return int(name) % register.COUNT
}

// LookupRegister finds a register by name, ignoring case.
func LookupRegister(text string) (name RegisterName, err error) {
	key := strings.ToLower(strings.TrimSpace(text))
	for n := range RegisterName(REG_COUNT) {
		if n.String() == key {
			name = n
			return
		}
	}

	err = ErrRegisterName(text)
	return
}
