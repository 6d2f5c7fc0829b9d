package huffpack

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// ErrEmptyInput is returned when a tree is requested for an input that
// contains no symbols at all.
var ErrEmptyInput = errors.New("huffpack: empty input")

// ErrCodeTooLong is returned when the frequency distribution is so skewed
// that some codeword would not fit in a header record.
var ErrCodeTooLong = errors.New("huffpack: code length exceeds 16 bits")

// Tree is a fully built Huffman code tree.  Construction derives the code
// table and the serialized header once, so the packing and marshaling
// methods only read cached state.  A Tree must be obtained from Build,
// UnmarshalHeader, or UnmarshalJSON; its methods do not mutate it.
type Tree struct {
	root   *node
	table  *CodeTable
	header []byte
}

// Build constructs the code tree for the given frequency table.  Leaves
// enter the queue in the table's first-appearance order, then the two
// lowest-frequency nodes are repeatedly merged until one root remains.
//
// Build fails with ErrEmptyInput if the table has no symbols, and with
// ErrCodeTooLong if a derived codeword would exceed 16 bits.
func Build(ft *FreqTable) (*Tree, error) {
	if ft == nil || ft.Len() == 0 {
		return nil, ErrEmptyInput
	}

	var q nodeQueue
	for _, sym := range ft.Symbols() {
		q.push(newLeaf(sym, ft.Count(sym)))
	}

	left, right := q.pop(), q.pop()
	for left != nil && right != nil {
		q.push(mergeNodes(left, right))
		left, right = q.pop(), q.pop()
	}

	// left is the last node standing.  With a one-symbol alphabet it is a
	// childless leaf and codeOf assigns it the single-bit code "1".
	return newTree(left)
}

// newTree wraps a finished root, derives the code table, and serializes the
// header.  Both Build and the deserializing constructors funnel through it.
func newTree(root *node) (*Tree, error) {
	symbols := appendLeaves(root, make([]Symbol, 0, root.set.count()))

	table := &CodeTable{symbols: symbols}
	for i, sym := range symbols {
		hc, err := codeOf(root, sym)
		if err != nil {
			return nil, err
		}
		table.codes[sym] = hc
		if i == 0 {
			table.minSize = hc.Size
			table.maxSize = hc.Size
		} else if table.minSize > hc.Size {
			table.minSize = hc.Size
		} else if table.maxSize < hc.Size {
			table.maxSize = hc.Size
		}
	}

	return &Tree{root: root, table: table, header: marshalHeader(table)}, nil
}

// codeOf walks from the root toward the leaf holding sym, emitting bit 1 for
// each left branch and bit 0 for each right branch.  A childless root yields
// the conventional code "1".
func codeOf(root *node, sym Symbol) (Code, error) {
	if root.leaf {
		return MakeCode(1, 1), nil
	}

	var size byte
	var bits uint16
	n := root
	for !n.leaf {
		if size == maxCodeSize {
			return Code{}, fmt.Errorf("symbol %#04x: %w", sym, ErrCodeTooLong)
		}
		if n.left != nil && n.left.set.has(sym) {
			bits = bits<<1 | 1
			n = n.left
		} else {
			bits = bits << 1
			n = n.right
		}
		size++
	}
	return MakeCode(size, bits), nil
}

func (t *Tree) mustInit() {
	assert.Assertf(t.root != nil, "Tree was not built by Build, UnmarshalHeader, or UnmarshalJSON")
}

// CodeTable returns the symbol-to-codeword table derived from this tree.
func (t *Tree) CodeTable() *CodeTable {
	t.mustInit()
	return t.table
}

// CodeOf returns the codeword assigned to the given symbol.  The zero Code
// is returned for symbols that are not part of the tree's alphabet.
func (t *Tree) CodeOf(sym Symbol) Code {
	t.mustInit()
	return t.table.CodeOf(sym)
}

// Len returns the number of symbols in the tree's alphabet.
func (t *Tree) Len() int {
	t.mustInit()
	return t.table.Len()
}

// MinSize is the bit length of the shortest codeword.
func (t *Tree) MinSize() byte {
	t.mustInit()
	return t.table.MinSize()
}

// MaxSize is the bit length of the longest codeword.
func (t *Tree) MaxSize() byte {
	t.mustInit()
	return t.table.MaxSize()
}

// String returns a one-line description of this Tree.
func (t *Tree) String() string {
	t.mustInit()
	return fmt.Sprintf("(Huffman tree with %d symbols, with code lengths of %d .. %d bits)",
		t.table.Len(), t.table.minSize, t.table.maxSize)
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	t.mustInit()
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.table.Len())
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.table.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.table.maxSize)
	for _, sym := range t.table.symbols {
		fmt.Fprintf(&buf, "\tCodeOf(%#04x) = %s\n", sym, t.table.codes[sym])
	}
	fmt.Fprintf(&buf, "\tMarshalHeader() = %x\n", t.header)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (t *Tree) DebugString() string {
	var sb strings.Builder
	_, _ = t.Dump(&sb)
	return sb.String()
}

var _ fmt.Stringer = (*Tree)(nil)
