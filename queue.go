package huffpack

import (
	"sort"
)

// nodeQueue is the priority queue that drives tree construction.  The slice
// is kept sorted by ascending frequency, and a new node is inserted in front
// of every node whose frequency is greater than or equal to its own.  Among
// equal frequencies the most recently pushed node therefore pops first, and
// that tie-break is part of the deterministic tree shape contract.
type nodeQueue struct {
	list []*node
}

func (q *nodeQueue) push(n *node) {
	i := sort.Search(len(q.list), func(i int) bool {
		return q.list[i].freq >= n.freq
	})
	q.list = append(q.list, nil)
	copy(q.list[i+1:], q.list[i:])
	q.list[i] = n
}

// pop removes and returns the lowest-frequency node, or nil if the queue is
// empty.
func (q *nodeQueue) pop() *node {
	if len(q.list) == 0 {
		return nil
	}
	n := q.list[0]
	q.list[0] = nil
	q.list = q.list[1:]
	return n
}

func (q *nodeQueue) len() int {
	return len(q.list)
}
