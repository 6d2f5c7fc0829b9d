package huffpack

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// ErrUnknownSymbol is returned when packing meets a symbol that is not part
// of the tree's alphabet.
var ErrUnknownSymbol = errors.New("huffpack: unknown symbol")

// Pack encodes text into a complete frame: the padding count, this tree's
// serialized header, and the packed data section.  Every symbol of text must
// be in the tree's alphabet or Pack fails with ErrUnknownSymbol.
//
// Packing an empty text is legal and produces a frame with an empty data
// section and a padding count of zero.
func (t *Tree) Pack(text []byte) ([]byte, error) {
	t.mustInit()

	var data bytes.Buffer
	bw := bitio.NewWriter(&data)
	for _, sym := range text {
		hc := t.table.codes[sym]
		if hc.Size == 0 {
			return nil, fmt.Errorf("symbol %#04x: %w", sym, ErrUnknownSymbol)
		}
		bw.TryWriteBits(uint64(hc.Bits), hc.Size)
	}
	padding := bw.TryAlign()
	if err := bw.TryError; err != nil {
		return nil, fmt.Errorf("packing data section: %w", err)
	}

	frame := make([]byte, 0, 1+len(t.header)+data.Len())
	frame = append(frame, padding)
	frame = append(frame, t.header...)
	frame = append(frame, data.Bytes()...)
	return frame, nil
}

// Pack counts the symbol frequencies of text, builds the code tree, and
// packs text into a frame in one step.
func Pack(text []byte) ([]byte, error) {
	tree, err := Build(CountFrequencies(text))
	if err != nil {
		return nil, err
	}
	return tree.Pack(text)
}
