package processor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/simplecpu/register"
	"github.com/ezrec/simplecpu/value"
)

func TestProcessor_New(t *testing.T) {
	assert := assert.New(t)

	proc := NewProcessor(1024)
	assert.NotNil(proc.Memory)
	assert.Equal(value.RegisterValue(1024), proc.MemoryCapacity())
	assert.Equal(value.RegisterValue(1024), proc.Memory.Size())
	assert.Equal(FLAG_CLEAR, proc.Flags)
	assert.Equal(value.ZERO, proc.Pc)

	for n := range register.COUNT {
		assert.Equal(register.KIND_DATA, proc.Data[n].Kind())
		assert.Equal(n, proc.Data[n].Index())
		assert.Equal(register.KIND_ADDRESS, proc.Address[n].Kind())
		assert.Equal(n, proc.Address[n].Index())
		assert.Equal(value.ZERO, proc.D(n))
		assert.Equal(value.ZERO, proc.A(n))
	}
}

func TestProcessor_Register(t *testing.T) {
	assert := assert.New(t)

	proc := NewProcessor(16)

	reg := proc.Register(REG_D3)
	assert.Equal("D3", reg.NameString())
	reg.Value = 0x1234
	assert.Equal(value.RegisterValue(0x1234), proc.D(3))

	reg = proc.Register(REG_A7)
	assert.Equal("A7", reg.NameString())
	reg.Value = 0x4321
	assert.Equal(value.RegisterValue(0x4321), proc.A(7))

	assert.Nil(proc.Register(REG_PC))
	assert.Nil(proc.Register(RegisterName(99)))
}

func TestProcessor_Value(t *testing.T) {
	assert := assert.New(t)

	proc := NewProcessor(16)

	assert.NoError(proc.SetValue(REG_D0, 1))
	assert.NoError(proc.SetValue(REG_A1, 2))
	assert.NoError(proc.SetValue(REG_PC, 3))

	rv, err := proc.Value(REG_D0)
	assert.NoError(err)
	assert.Equal(value.RegisterValue(1), rv)
	rv, err = proc.Value(REG_A1)
	assert.NoError(err)
	assert.Equal(value.RegisterValue(2), rv)
	rv, err = proc.Value(REG_PC)
	assert.NoError(err)
	assert.Equal(value.RegisterValue(3), rv)
	assert.Equal(value.RegisterValue(3), proc.Pc)

	_, err = proc.Value(RegisterName(-1))
	assert.Equal(ErrRegisterName("RegisterName(-1)"), err)
	assert.Error(proc.SetValue(RegisterName(40), 1))
}

func TestProcessor_Registers(t *testing.T) {
	assert := assert.New(t)

	proc := NewProcessor(16)

	var names []string
	var expect []RegisterName
	for name, reg := range proc.Registers() {
		expect = append(expect, name)
		names = append(names, reg.NameString())
		assert.Same(proc.Register(name), reg)
	}

	assert.Equal([]string{
		"D0", "D1", "D2", "D3", "D4", "D5", "D6", "D7",
		"A0", "A1", "A2", "A3", "A4", "A5", "A6", "A7",
	}, names)
	assert.Equal(REG_D0, expect[0])
	assert.Equal(REG_A7, expect[15])
}

func TestProcessor_Reset(t *testing.T) {
	assert := assert.New(t)

	proc := NewProcessor(16)
	proc.Data[2].Value = 5
	proc.Address[4].Value = 6
	proc.Pc = 7
	proc.Flags = FLAG_ZERO | FLAG_CARRY
	assert.NoError(proc.Memory.StoreWord(0, 0xdeadbeef))

	proc.Reset()

	for _, reg := range proc.Registers() {
		assert.Equal(value.ZERO, reg.Value, reg.NameString())
	}
	assert.Equal(value.ZERO, proc.Pc)
	assert.Equal(FLAG_CLEAR, proc.Flags)
	word, err := proc.Memory.Word(0)
	assert.NoError(err)
	assert.Equal(value.ZERO, word)
}

func TestProcessor_String(t *testing.T) {
	assert := assert.New(t)

	proc := NewProcessor(16)
	proc.Data[0].Value = 0x1000
	proc.Address[7].Value = 0xffffffff
	proc.Flags = FLAG_OVERFLOW

	lines := strings.Split(strings.TrimRight(proc.String(), "\n"), "\n")
	assert.Equal(10, len(lines))
	assert.Equal("D0: #00001000    A0: #00000000", lines[0])
	assert.Equal("D7: #00000000    A7: #ffffffff", lines[7])
	assert.Equal("PC: #00000000", lines[8])
	assert.Equal("SR: overflow", lines[9])
}

func TestStatusFlags(t *testing.T) {
	assert := assert.New(t)

	flags := FLAG_CLEAR
	assert.Equal("clear", flags.String())
	assert.False(flags.Has(FLAG_ZERO))

	flags = flags.Set(FLAG_ZERO)
	assert.True(flags.Has(FLAG_ZERO))
	assert.False(flags.Has(FLAG_ZERO | FLAG_CARRY))

	flags = flags.Assign(FLAG_CARRY, true)
	assert.True(flags.Has(FLAG_ZERO | FLAG_CARRY))
	assert.Equal("zero|carry", flags.String())

	flags = flags.Assign(FLAG_ZERO, false).Set(FLAG_OVERFLOW)
	assert.Equal("carry|overflow", flags.String())

	flags = flags.Clear(FLAG_CARRY | FLAG_OVERFLOW)
	assert.Equal(FLAG_CLEAR, flags)
}

func TestLookupFlag(t *testing.T) {
	assert := assert.New(t)

	flag, err := LookupFlag("Carry")
	assert.NoError(err)
	assert.Equal(FLAG_CARRY, flag)

	_, err = LookupFlag("negative")
	assert.Equal(ErrFlagName("negative"), err)
}

func TestLookupRegister(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Text string
		Name RegisterName
	}){
		{"d0", REG_D0},
		{"D3", REG_D3},
		{" a7 ", REG_A7},
		{"A2", REG_A2},
		{"PC", REG_PC},
	}

	for _, testcase := range table {
		name, err := LookupRegister(testcase.Text)
		assert.NoError(err, testcase.Text)
		assert.Equal(testcase.Name, name, testcase.Text)
	}

	_, err := LookupRegister("d8")
	assert.Equal(ErrRegisterName("d8"), err)
	assert.Equal("'d8' is not a register", err.Error())
}

func TestRegisterName(t *testing.T) {
	assert := assert.New(t)

	kind, ok := REG_D5.Kind()
	assert.True(ok)
	assert.Equal(register.KIND_DATA, kind)
	assert.Equal(5, REG_D5.Index())

	kind, ok = REG_A5.Kind()
	assert.True(ok)
	assert.Equal(register.KIND_ADDRESS, kind)
	assert.Equal(5, REG_A5.Index())

	_, ok = REG_PC.Kind()
	assert.False(ok)

	assert.Equal("pc", REG_PC.String())
	assert.Equal("a0", REG_A0.String())
	assert.Equal("RegisterName(17)", RegisterName(17).String())
}
