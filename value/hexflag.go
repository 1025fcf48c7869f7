package value

import (
	"strconv"
	"strings"
)

// HexFlag is the prefix style of hexadecimal text.
type HexFlag int

const (
	FLAG_NONE   = HexFlag(0) // No prefix.
	FLAG_HASH   = HexFlag(1) // '#'
	FLAG_RADIX  = HexFlag(2) // '0x'
	FLAG_DOLLAR = HexFlag(3) // '$'
)

// HEX_FLAGS lists every HexFlag.
var HEX_FLAGS = []HexFlag{FLAG_NONE, FLAG_HASH, FLAG_RADIX, FLAG_DOLLAR}

var hexFlagText = [...]string{
	FLAG_NONE:   "",
	FLAG_HASH:   "#",
	FLAG_RADIX:  "0x",
	FLAG_DOLLAR: "$",
}

const (
	// PREFIX_CHARS may be repeated in any order ahead of the digits.
	PREFIX_CHARS = "#$"
	// HEX_CHARS are the characters of a digit run. '_' separates groups.
	HEX_CHARS = "_0123456789ABCDEF"
)

// String returns the literal prefix text.
func (flag HexFlag) String() string {
	if flag < 0 || int(flag) >= len(hexFlagText) {
		return ""
	}
	return hexFlagText[flag]
}

// HexFlagOf finds the flag with the given prefix text.
func HexFlagOf(text string) (flag HexFlag, ok bool) {
	for n, prefix := range hexFlagText {
		if prefix == text {
			return HexFlag(n), true
		}
	}
	return
}

// HexString formats the word as 8 lowercase hex digits after the flag text.
func (rv RegisterValue) HexString(flag HexFlag) string {
	const width = WIDTH * 2
	digits := strconv.FormatUint(uint64(rv), 16)
	return flag.String() + strings.Repeat("0", width-len(digits)) + digits
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func skipSpace(text string) string {
	for len(text) > 0 && isSpace(text[0]) {
		text = text[1:]
	}
	return text
}

// scanSet splits text after the longest prefix made only of chars.
func scanSet(text string, chars string) (run string, rest string) {
	n := 0
	for n < len(text) && strings.IndexByte(chars, text[n]) >= 0 {
		n++
	}
	return text[:n], text[n:]
}

// Parse reads hexadecimal text.
//
// An optional prefix is skipped first: either the radix literal "0x" (or
// "0X"), or any run of '#' and '$'. The digits that follow are uppercase only;
// a lowercase digit ends the run. Underscores in the run are ignored.
// White space ahead of the prefix or the digits is skipped. Trailing text
// after the run is not examined.
func Parse(text string) (value RegisterValue, err error) {
	rest := skipSpace(text)
	radix := FLAG_RADIX.String()
	if len(rest) >= len(radix) && strings.EqualFold(rest[:len(radix)], radix) {
		rest = rest[len(radix):]
	} else {
		_, rest = scanSet(rest, PREFIX_CHARS)
	}

	run, _ := scanSet(skipSpace(rest), HEX_CHARS)
	digits := strings.ReplaceAll(run, "_", "")
	if len(digits) == 0 {
		err = &ErrParse{Text: text, Err: ErrHexMissing}
		return
	}

	v64, perr := strconv.ParseUint(digits, 16, 32)
	if perr != nil {
		err = &ErrParse{Text: text, Err: ErrHexRange}
		return
	}

	value = RegisterValue(v64)
	return
}

// MustParse is Parse for known-good constant text.
func MustParse(text string) RegisterValue {
	rv, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return rv
}
