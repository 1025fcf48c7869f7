package processor

import (
	"strings"
)

// StatusFlags is the processor condition bitset.
type StatusFlags int

const (
	FLAG_CLEAR    = StatusFlags(0)      // No flags set.
	FLAG_ZERO     = StatusFlags(1 << 0) // Result was zero.
	FLAG_CARRY    = StatusFlags(1 << 1) // Unsigned carry out.
	FLAG_OVERFLOW = StatusFlags(1 << 2) // Signed overflow.
)

var flagNames = []struct {
	Flag StatusFlags
	Name string
}{
	{FLAG_ZERO, "zero"},
	{FLAG_CARRY, "carry"},
	{FLAG_OVERFLOW, "overflow"},
}

// LookupFlag finds a single flag by name.
func LookupFlag(name string) (flag StatusFlags, err error) {
	for _, entry := range flagNames {
		if strings.EqualFold(entry.Name, name) {
			flag = entry.Flag
			return
		}
	}

	err = ErrFlagName(name)
	return
}

// Has is true if every bit of mask is set.
func (flags StatusFlags) Has(mask StatusFlags) bool {
	return (flags & mask) == mask
}

// Set returns flags with mask added.
func (flags StatusFlags) Set(mask StatusFlags) StatusFlags {
	return flags | mask
}

// Clear returns flags with mask removed.
func (flags StatusFlags) Clear(mask StatusFlags) StatusFlags {
	return flags &^ mask
}

// Assign returns flags with mask set or removed.
func (flags StatusFlags) Assign(mask StatusFlags, on bool) StatusFlags {
	if on {
		return flags.Set(mask)
	}
	return flags.Clear(mask)
}

// String lists the set flags, such as "zero|carry", or "clear".
func (flags StatusFlags) String() string {
	var names []string
	for _, entry := range flagNames {
		if flags.Has(entry.Flag) {
			names = append(names, entry.Name)
		}
	}

	if len(names) == 0 {
		return "clear"
	}

	return strings.Join(names, "|")
}
