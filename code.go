package huffpack

import (
	"fmt"
	"strconv"
)

// maxCodeSize is the longest codeword the frame format can record.  Each
// header record stores the codeword in a single 16-bit field.
const maxCodeSize = 16

// Code represents a single Huffman codeword.
type Code struct {
	// Size holds the number of valid bits, 1..16.  A zero Size means
	// "no code assigned".
	Size byte

	// Bits holds the codeword value.  The most significant valid bit is
	// the first bit written to or read from the data stream.
	Bits uint16
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint16) Code {
	return Code{Size: size, Bits: bits}
}

// String returns the codeword as a quoted bit string, e.g. "101".
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
