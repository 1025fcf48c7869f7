package processor

import (
	"github.com/ezrec/simplecpu/translate"
)

var f = translate.From

// ErrRegisterName is text that names no register.
type ErrRegisterName string

func (err ErrRegisterName) Error() string {
	return f("'%v' is not a register", string(err))
}

// ErrFlagName is text that names no status flag.
type ErrFlagName string

func (err ErrFlagName) Error() string {
	return f("'%v' is not a status flag", string(err))
}
