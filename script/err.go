package script

import (
	"github.com/ezrec/simplecpu/translate"
)

var f = translate.From

// ErrWordRange is an integer that does not fit in 32 bits, signed or unsigned.
type ErrWordRange string

func (err ErrWordRange) Error() string {
	return f("%v does not fit in a 32-bit word", string(err))
}

// ErrNotInteger is a non-integer argument where a word was expected.
type ErrNotInteger string

func (err ErrNotInteger) Error() string {
	return f("got %v, want int", string(err))
}

// ErrHexFlag is unknown hex prefix text.
type ErrHexFlag string

func (err ErrHexFlag) Error() string {
	return f("'%v' is not a hex prefix", string(err))
}
