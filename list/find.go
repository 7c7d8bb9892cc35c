package list

import "github.com/forestrie/go-arenalist/arena"

// Find scans forward from the head and returns the first node, with its
// index, for which match returns true. A miss returns (Null, NoIndex). The
// ctx value is passed through to every match call verbatim.
func (l *List) Find(match Predicate, ctx any) (arena.Handle, uint64) {
	i := uint64(0)
	for h := l.head; h != arena.Null; i++ {
		_, _, next := l.node(h)
		if match(h, i, ctx) {
			return h, i
		}
		h = next
	}
	return arena.Null, NoIndex
}

// RFind scans backward from the tail and returns the first node, with its
// forward index, for which match returns true. A miss returns
// (Null, NoIndex).
func (l *List) RFind(match Predicate, ctx any) (arena.Handle, uint64) {
	i := l.length
	for h := l.tail; h != arena.Null; {
		i--
		_, prev, _ := l.node(h)
		if match(h, i, ctx) {
			return h, i
		}
		h = prev
	}
	return arena.Null, NoIndex
}
