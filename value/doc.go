// Package value implements the 32-bit machine word of the simple CPU.
//
// A RegisterValue is the unsigned word; a SignedRegisterValue is its
// two's-complement reading. Both share one bit pattern, and converting between
// them never changes bits. Words format as fixed-width hexadecimal text, and
// parse back from text carrying one of the HexFlag prefixes.
package value
