package huffpack

import (
	"encoding/json"
	"fmt"
)

// Tree serializes to JSON as an array of [symbol, length, codeword] triples,
// one per header record, in header record order.  The JSON form carries
// exactly the information of MarshalHeader in a shape that is convenient for
// fixtures and debugging.

// MarshalJSON implements json.Marshaler.
func (t *Tree) MarshalJSON() ([]byte, error) {
	t.mustInit()
	rows := make([][3]uint16, 0, t.table.Len())
	for _, sym := range t.table.symbols {
		hc := t.table.codes[sym]
		rows = append(rows, [3]uint16{uint16(sym), uint16(hc.Size), hc.Bits})
	}
	return json.Marshal(rows)
}

// UnmarshalJSON implements json.Unmarshaler.  The triples pass through the
// same validation as a serialized header, so malformed tables are rejected
// with ErrCorruptHeader.
func (t *Tree) UnmarshalJSON(b []byte) error {
	var rows [][3]uint16
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	if len(rows) == 0 || len(rows) > NumSymbols {
		return fmt.Errorf("record count %d is outside 1..%d: %w", len(rows), NumSymbols, ErrCorruptHeader)
	}

	recs := make([]record, 0, len(rows))
	for _, row := range rows {
		if row[0] > 0xff || row[1] > maxCodeSize {
			return fmt.Errorf("record [%d, %d, %d] is out of range: %w", row[0], row[1], row[2], ErrCorruptHeader)
		}
		recs = append(recs, record{
			sym:  Symbol(row[0]),
			code: MakeCode(byte(row[1]), row[2]),
		})
	}

	nt, err := treeFromRecords(recs)
	if err != nil {
		return err
	}
	*t = *nt
	return nil
}

var _ json.Marshaler = (*Tree)(nil)
var _ json.Unmarshaler = (*Tree)(nil)
