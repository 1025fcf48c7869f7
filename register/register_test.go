package register

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/simplecpu/value"
)

func TestKind_Prefix(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("D", KIND_DATA.Prefix())
	assert.Equal("A", KIND_ADDRESS.Prefix())
	assert.Equal("?", Kind(5).Prefix())

	assert.Equal("data", KIND_DATA.String())
	assert.Equal("address", KIND_ADDRESS.String())
	assert.Equal("Kind(5)", Kind(5).String())
}

func TestRegister_New(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegister(KIND_ADDRESS, 6)
	assert.Equal(KIND_ADDRESS, reg.Kind())
	assert.Equal(6, reg.Index())
	assert.Equal(value.ZERO, reg.Value)
}

func TestRegister_NameString(t *testing.T) {
	assert := assert.New(t)

	for n := range COUNT {
		data := NewRegister(KIND_DATA, n)
		addr := NewRegister(KIND_ADDRESS, n)
		assert.Equal("D"+string(rune('0'+n)), data.NameString())
		assert.Equal("A"+string(rune('0'+n)), addr.NameString())
	}
}

func TestRegister_ValueString(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegister(KIND_DATA, 4)
	reg.Value = 8192
	assert.Equal("#00002000", reg.ValueString())
	assert.Equal("D4: #00002000", reg.DisplayString())
	assert.Equal("D4: #00002000", reg.String())
}

func TestRegister_SetValueFrom(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Kind  Kind
		Index int
		Start value.RegisterValue
		Text  string
		Show  string
		Fail  bool
	}){
		{KIND_DATA, 3, 4096, "$E113_9C89", "D3: #e1139c89", false},
		{KIND_DATA, 4, 8192, "#9", "D4: #00000009", false},
		{KIND_ADDRESS, 2, 1024, "0XE1139C89", "A2: #e1139c89", false},
		{KIND_ADDRESS, 7, 1024, "0xe1139c89", "A7: #00000000", true},
		{KIND_DATA, 0, 0xffffffff, "", "D0: #00000000", true},
		{KIND_DATA, 1, 0xffffffff, "#1_0000_0000", "D1: #00000000", true},
	}

	for _, testcase := range table {
		reg := NewRegister(testcase.Kind, testcase.Index)
		reg.Value = testcase.Start
		err := reg.SetValueFrom(testcase.Text)
		if testcase.Fail {
			var perr *value.ErrParse
			assert.ErrorAs(err, &perr, testcase.Text)
		} else {
			assert.NoError(err, testcase.Text)
		}
		assert.Equal(testcase.Show, reg.DisplayString(), testcase.Text)
	}
}
