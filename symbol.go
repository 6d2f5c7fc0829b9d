package huffpack

import (
	mathbits "math/bits"
)

// Symbol represents a symbol in the alphabet being coded.  The alphabet is
// always the 256 possible byte values, so Symbol is an alias for byte.
type Symbol = byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// symbolSet is a bitmap over the alphabet.  Each tree node carries the set
// of symbols reachable from it, which is what steers code derivation.
type symbolSet [4]uint64

func (s *symbolSet) add(sym Symbol) {
	s[sym>>6] |= 1 << (sym & 63)
}

func (s symbolSet) has(sym Symbol) bool {
	return s[sym>>6]&(1<<(sym&63)) != 0
}

func (s symbolSet) union(o symbolSet) symbolSet {
	var u symbolSet
	for i := range u {
		u[i] = s[i] | o[i]
	}
	return u
}

func (s symbolSet) count() int {
	var n int
	for _, word := range s {
		n += mathbits.OnesCount64(word)
	}
	return n
}
