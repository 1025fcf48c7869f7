package value

import (
	"errors"

	"github.com/ezrec/simplecpu/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrHexMissing = errors.New(f("hex digits missing"))
	ErrHexRange   = errors.New(f("hex value exceeds 32 bits"))
)

// ErrParse reports text that could not be read as a RegisterValue.
type ErrParse struct {
	Text string
	Err  error
}

func (err *ErrParse) Error() string {
	return f("'%v' is not a hex value: %v", err.Text, err.Err)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}
