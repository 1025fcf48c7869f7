package memory

import (
	"errors"

	"github.com/ezrec/simplecpu/translate"
	"github.com/ezrec/simplecpu/value"
)

var f = translate.From

var (
	// Image errors
	ErrImageSize = errors.New(f("image exceeds memory capacity"))
)

// ErrAccess is an out-of-range memory address.
type ErrAccess value.RegisterValue

func (ea ErrAccess) Error() string {
	return f("access at 0x%08x", uint32(ea))
}

func (ea ErrAccess) Is(err error) (ok bool) {
	_, ok = err.(ErrAccess)
	return
}

// ErrAlignment is a misaligned memory address.
// No access mode currently requires alignment.
type ErrAlignment value.RegisterValue

func (ea ErrAlignment) Error() string {
	return f("alignment at 0x%08x", uint32(ea))
}

func (ea ErrAlignment) Is(err error) (ok bool) {
	_, ok = err.(ErrAlignment)
	return
}
