package huffpack

import (
	"io"
)

// FreqTable counts how often each symbol occurs in the input.  It remembers
// the order in which distinct symbols first appeared; that order decides how
// leaves enter the build queue, so two inputs with the same counts but
// different first appearances can produce differently shaped trees.
//
// The zero value is an empty table, ready for use.
type FreqTable struct {
	counts [NumSymbols]uint64
	order  []Symbol
}

// CountFrequencies tallies every symbol in text into a fresh FreqTable.
func CountFrequencies(text []byte) *FreqTable {
	ft := new(FreqTable)
	for _, sym := range text {
		ft.Add(sym)
	}
	return ft
}

// Add records one more occurrence of the given symbol.
func (ft *FreqTable) Add(sym Symbol) {
	if ft.counts[sym] == 0 {
		ft.order = append(ft.order, sym)
	}
	ft.counts[sym]++
}

// Write implements io.Writer, so a table can be filled by io.Copy or by any
// other code that produces bytes.  It never fails.
func (ft *FreqTable) Write(p []byte) (int, error) {
	for _, sym := range p {
		ft.Add(sym)
	}
	return len(p), nil
}

// Count returns the number of occurrences recorded for the given symbol.
func (ft *FreqTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Len returns the number of distinct symbols seen so far.
func (ft *FreqTable) Len() int {
	return len(ft.order)
}

// Total returns the sum of all recorded occurrences.
func (ft *FreqTable) Total() uint64 {
	var sum uint64
	for _, sym := range ft.order {
		sum += ft.counts[sym]
	}
	return sum
}

// Symbols returns the distinct symbols in first-appearance order.  The
// returned slice is shared with the table and must not be modified.
func (ft *FreqTable) Symbols() []Symbol {
	return ft.order
}

var _ io.Writer = (*FreqTable)(nil)
