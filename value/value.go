package value

import (
	"math"
)

// WIDTH is the number of bytes in a machine word.
const WIDTH = 4

// Representation is a view of a 32-bit word as either signed or unsigned.
type Representation interface {
	AsSigned() SignedRegisterValue
	AsUnsigned() RegisterValue
}

// RegisterValue is an unsigned 32-bit machine word.
type RegisterValue uint32

// SignedRegisterValue is the two's-complement reading of a RegisterValue.
type SignedRegisterValue int32

var (
	_ Representation = RegisterValue(0)
	_ Representation = SignedRegisterValue(0)
)

// ZERO is the all-clear word.
const ZERO = RegisterValue(0)

// MAX is the all-set word.
const MAX = RegisterValue(math.MaxUint32)

// AsSigned reinterprets the bit pattern as signed.
func (rv RegisterValue) AsSigned() SignedRegisterValue {
	return SignedRegisterValue(int32(uint32(rv)))
}

// AsUnsigned returns the value itself.
func (rv RegisterValue) AsUnsigned() RegisterValue {
	return rv
}

// Bytes returns the word most-significant byte first.
func (rv RegisterValue) Bytes() (data [WIDTH]uint8) {
	cursor := uint32(rv)
	for n := WIDTH - 1; n >= 0; n-- {
		data[n] = uint8(cursor & 0xff)
		cursor >>= 8
	}
	return
}

// Shorts returns the word most-significant half first.
func (rv RegisterValue) Shorts() (halves [2]uint16) {
	halves[0] = uint16(rv >> 16)
	halves[1] = uint16(rv & 0xffff)
	return
}

// LessThanZero is always false for an unsigned word.
func (rv RegisterValue) LessThanZero() bool {
	return false
}

// IsZero is true if no bits are set.
func (rv RegisterValue) IsZero() bool {
	return rv == 0
}

// IsEven is true if the lowest bit is clear.
func (rv RegisterValue) IsEven() bool {
	return (rv & 0x1) == 0
}

// DivisibleBy4 is true if the lowest two bits are clear.
func (rv RegisterValue) DivisibleBy4() bool {
	return (rv & 0x3) == 0
}

// SignBit is true if the two's-complement reading is negative.
func (rv RegisterValue) SignBit() bool {
	return rv.AsSigned() < 0
}

// Complement1 inverts every bit.
func (rv RegisterValue) Complement1() RegisterValue {
	return rv ^ MAX
}

// Complement2 is the additive inverse modulo 2^32.
func (rv RegisterValue) Complement2() RegisterValue {
	return rv.Complement1() + 1
}

// EvenParity is true if an even number of bits are set.
func (rv RegisterValue) EvenParity() bool {
	cursor := uint32(rv)
	parity := uint32(0)
	for range 8 * WIDTH {
		parity ^= cursor & 0x1
		cursor >>= 1
	}
	return parity == 0
}

// AsSigned returns the value itself.
func (sv SignedRegisterValue) AsSigned() SignedRegisterValue {
	return sv
}

// AsUnsigned reinterprets the bit pattern as unsigned.
func (sv SignedRegisterValue) AsUnsigned() RegisterValue {
	return RegisterValue(uint32(int32(sv)))
}

func (sv SignedRegisterValue) Bytes() [WIDTH]uint8 { return sv.AsUnsigned().Bytes() }
func (sv SignedRegisterValue) Shorts() [2]uint16 { return sv.AsUnsigned().Shorts() }
func (sv SignedRegisterValue) LessThanZero() bool { return sv.SignBit() }
func (sv SignedRegisterValue) IsZero() bool { return sv.AsUnsigned().IsZero() }
func (sv SignedRegisterValue) IsEven() bool { return sv.AsUnsigned().IsEven() }
func (sv SignedRegisterValue) DivisibleBy4() bool { return sv.AsUnsigned().DivisibleBy4() }
func (sv SignedRegisterValue) SignBit() bool { return sv < 0 }
func (sv SignedRegisterValue) Complement1() RegisterValue { return sv.AsUnsigned().Complement1() }
func (sv SignedRegisterValue) Complement2() RegisterValue { return sv.AsUnsigned().Complement2() }
func (sv SignedRegisterValue) EvenParity() bool { return sv.AsUnsigned().EvenParity() }

// HexString formats the bit pattern, as HexString on RegisterValue.
func (sv SignedRegisterValue) HexString(flag HexFlag) string {
	return sv.AsUnsigned().HexString(flag)
}
