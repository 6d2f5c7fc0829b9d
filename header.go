package huffpack

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrCorruptHeader is returned when a serialized header or frame cannot
// describe a valid code tree.
var ErrCorruptHeader = errors.New("huffpack: corrupt header")

// recordSize is the serialized size of one code table record: symbol byte,
// length byte, 16-bit codeword.
const recordSize = 4

// record is one deserialized code table entry.
type record struct {
	sym  Symbol
	code Code
}

// marshalHeader serializes a derived code table: a big-endian record count
// followed by one record per symbol, in the table's own symbol order.
func marshalHeader(table *CodeTable) []byte {
	out := make([]byte, 2+recordSize*len(table.symbols))
	binary.BigEndian.PutUint16(out[0:2], uint16(len(table.symbols)))
	pos := 2
	for _, sym := range table.symbols {
		hc := table.codes[sym]
		out[pos] = sym
		out[pos+1] = hc.Size
		binary.BigEndian.PutUint16(out[pos+2:pos+4], hc.Bits)
		pos += recordSize
	}
	return out
}

// MarshalHeader returns the serialized code table for this tree.  The result
// is what UnmarshalHeader consumes, and what Pack embeds into each frame.
func (t *Tree) MarshalHeader() []byte {
	t.mustInit()
	out := make([]byte, len(t.header))
	copy(out, t.header)
	return out
}

// UnmarshalHeader reconstructs a code tree from a serialized header.  The
// input must be exactly one header: a record count N in 1..256 followed by
// exactly N records.
func UnmarshalHeader(b []byte) (*Tree, error) {
	if len(b) < 2 {
		return nil, fmt.Errorf("header is %d bytes, need at least 2: %w", len(b), ErrCorruptHeader)
	}
	n := int(binary.BigEndian.Uint16(b[0:2]))
	if n == 0 || n > NumSymbols {
		return nil, fmt.Errorf("record count %d is outside 1..%d: %w", n, NumSymbols, ErrCorruptHeader)
	}
	if len(b) != 2+recordSize*n {
		return nil, fmt.Errorf("header is %d bytes, want %d for %d records: %w",
			len(b), 2+recordSize*n, n, ErrCorruptHeader)
	}

	recs := make([]record, 0, n)
	for pos := 2; pos < len(b); pos += recordSize {
		recs = append(recs, record{
			sym:  b[pos],
			code: MakeCode(b[pos+1], binary.BigEndian.Uint16(b[pos+2:pos+4])),
		})
	}
	return treeFromRecords(recs)
}

// treeFromRecords rebuilds a tree by carving one root-to-leaf path per
// record, bit 1 descending left and bit 0 descending right.  Records that
// repeat a symbol, overflow their bit length, or collide with an already
// placed codeword are rejected.  Both header and JSON deserialization end
// up here.
func treeFromRecords(recs []record) (*Tree, error) {
	root := new(node)
	var seen symbolSet
	for _, rec := range recs {
		hc := rec.code
		if hc.Size == 0 || hc.Size > maxCodeSize {
			return nil, fmt.Errorf("symbol %#04x: code length %d is outside 1..%d: %w",
				rec.sym, hc.Size, maxCodeSize, ErrCorruptHeader)
		}
		if hc.Size < maxCodeSize && hc.Bits >= 1<<hc.Size {
			return nil, fmt.Errorf("symbol %#04x: codeword %d does not fit in %d bits: %w",
				rec.sym, hc.Bits, hc.Size, ErrCorruptHeader)
		}
		if seen.has(rec.sym) {
			return nil, fmt.Errorf("symbol %#04x appears twice: %w", rec.sym, ErrCorruptHeader)
		}
		seen.add(rec.sym)

		n := root
		for i := int(hc.Size) - 1; i >= 0; i-- {
			n.set.add(rec.sym)
			child := &n.right
			if hc.Bits>>uint(i)&1 == 1 {
				child = &n.left
			}
			switch {
			case *child == nil:
				*child = new(node)
			case (*child).leaf:
				return nil, fmt.Errorf("symbol %#04x: code %s collides with an assigned code: %w",
					rec.sym, hc, ErrCorruptHeader)
			case i == 0:
				return nil, fmt.Errorf("symbol %#04x: code %s is a prefix of an assigned code: %w",
					rec.sym, hc, ErrCorruptHeader)
			}
			n = *child
		}
		n.leaf = true
		n.sym = rec.sym
		n.set.add(rec.sym)
	}
	return newTree(root)
}
