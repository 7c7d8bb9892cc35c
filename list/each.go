package list

import "github.com/forestrie/go-arenalist/arena"

// Each walks the chain forward from the head, invoking visit on every node
// until it returns false. The follower handle is captured before each visit,
// so removing the currently visited node neither stops nor skips the walk.
func (l *List) Each(visit Visitor, ctx any) {
	i := uint64(0)
	for h := l.head; h != arena.Null; i++ {
		_, _, next := l.node(h)
		if !visit(h, i, ctx) {
			return
		}
		h = next
	}
}

// REach walks the chain backward from the tail, invoking visit on every node
// until it returns false. Indices count from the forward direction, so the
// tail is visited as index Len()-1. The same self-removal guarantee as Each
// applies.
func (l *List) REach(visit Visitor, ctx any) {
	i := l.length
	for h := l.tail; h != arena.Null; {
		i--
		_, prev, _ := l.node(h)
		if !visit(h, i, ctx) {
			return
		}
		h = prev
	}
}
