package huffpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// ErrTruncated is returned when the data section of a frame ends before the
// final codeword is complete, or when a bit sequence leads outside the tree.
var ErrTruncated = errors.New("huffpack: truncated data")

// Unpack parses a frame produced by Pack and returns the original text.
// The stored padding count is honored: trailing padding bits are never
// decoded as output.
//
// Structural problems in the frame fail with ErrCorruptHeader.  A data
// section that ends partway through a codeword, or that strays outside the
// code tree, fails with ErrTruncated.
func Unpack(frame []byte) ([]byte, error) {
	if len(frame) < 3 {
		return nil, fmt.Errorf("frame is %d bytes, need at least 3: %w", len(frame), ErrCorruptHeader)
	}
	padding := frame[0]
	if padding > 7 {
		return nil, fmt.Errorf("padding count %d is outside 0..7: %w", padding, ErrCorruptHeader)
	}

	n := int(binary.BigEndian.Uint16(frame[1:3]))
	if n == 0 || n > NumSymbols {
		return nil, fmt.Errorf("record count %d is outside 1..%d: %w", n, NumSymbols, ErrCorruptHeader)
	}
	end := 3 + recordSize*n
	if len(frame) < end {
		return nil, fmt.Errorf("frame is %d bytes, need %d for the header alone: %w",
			len(frame), end, ErrCorruptHeader)
	}

	tree, err := UnmarshalHeader(frame[1:end])
	if err != nil {
		return nil, err
	}

	data := frame[end:]
	if padding > 0 && len(data) == 0 {
		return nil, fmt.Errorf("padding count %d with an empty data section: %w", padding, ErrCorruptHeader)
	}

	bits := 8*len(data) - int(padding)
	out := make([]byte, 0, bits/int(tree.table.minSize))
	br := bitio.NewReader(bytes.NewReader(data))
	cur := tree.root
	for ; bits > 0; bits-- {
		bit, err := br.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("data section ended early: %w", ErrTruncated)
		}
		if bit {
			cur = cur.left
		} else {
			cur = cur.right
		}
		if cur == nil {
			return nil, fmt.Errorf("bit sequence matches no codeword: %w", ErrTruncated)
		}
		if cur.leaf {
			out = append(out, cur.sym)
			cur = tree.root
		}
	}
	if cur != tree.root {
		return nil, fmt.Errorf("frame ends in the middle of a codeword: %w", ErrTruncated)
	}
	return out, nil
}
