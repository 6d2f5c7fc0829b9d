package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps symbols to their codewords.  Tables are derived during tree
// construction and are read-only afterwards.
type CodeTable struct {
	codes   [NumSymbols]Code
	symbols []Symbol
	minSize byte
	maxSize byte
}

// CodeOf returns the codeword assigned to the given symbol.  The zero Code
// is returned for symbols that have no codeword.
func (t *CodeTable) CodeOf(sym Symbol) Code {
	return t.codes[sym]
}

// Has reports whether the given symbol has a codeword.
func (t *CodeTable) Has(sym Symbol) bool {
	return t.codes[sym].Size != 0
}

// Len returns the number of symbols that have codewords.
func (t *CodeTable) Len() int {
	return len(t.symbols)
}

// MinSize is the bit length of the shortest codeword.
func (t *CodeTable) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest codeword.
func (t *CodeTable) MaxSize() byte {
	return t.maxSize
}

// Symbols returns the symbols in the order their header records are written,
// which is the left-to-right leaf order of the tree.  The returned slice is
// shared with the table and must not be modified.
func (t *CodeTable) Symbols() []Symbol {
	return t.symbols
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(t.symbols))
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, sym := range t.symbols {
		fmt.Fprintf(&buf, "\tCodeOf(%#04x) = %s\n", sym, t.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
