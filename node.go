package huffpack

import (
	"github.com/chronos-tachyon/assert"
)

// node is a vertex of the code tree.  Leaves hold one symbol each; interior
// nodes hold the union of their children's symbol sets.  The tree is strictly
// binary, except that an alphabet of one symbol builds a childless leaf root.
type node struct {
	freq  uint64
	set   symbolSet
	left  *node
	right *node
	sym   Symbol
	leaf  bool
}

func newLeaf(sym Symbol, freq uint64) *node {
	n := &node{freq: freq, sym: sym, leaf: true}
	n.set.add(sym)
	return n
}

func mergeNodes(left *node, right *node) *node {
	assert.Assertf(left != nil, "mergeNodes: left child is nil")
	assert.Assertf(right != nil, "mergeNodes: right child is nil")
	return &node{
		freq:  left.freq + right.freq,
		set:   left.set.union(right.set),
		left:  left,
		right: right,
	}
}

// appendLeaves collects the symbols of n's leaves, left subtree before right.
// This is the order header records are written in.
func appendLeaves(n *node, out []Symbol) []Symbol {
	if n.leaf {
		return append(out, n.sym)
	}
	if n.left != nil {
		out = appendLeaves(n.left, out)
	}
	if n.right != nil {
		out = appendLeaves(n.right, out)
	}
	return out
}
