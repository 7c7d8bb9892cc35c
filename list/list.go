package list

import "github.com/forestrie/go-arenalist/arena"

// List is the descriptor for one linked chain over arena nodes. The zero
// length descriptor with Null ends is the empty state; New returns a list in
// that state without allocating.
//
// Invariants, always true between operations:
//
//   - length == 0 iff head == Null iff tail == Null
//   - for non-empty lists, head's prev and tail's next are Null
//   - walking next from head visits exactly length nodes ending at tail,
//     and walking prev from tail is the exact reverse
type List struct {
	store  *arena.Store
	length uint64
	head   arena.Handle
	tail   arena.Handle
}

// New returns an empty list over store.
func New(store *arena.Store) *List {
	return &List{store: store}
}

// Len returns the number of nodes in the chain.
func (l *List) Len() uint64 {
	return l.length
}

// Head returns the first node's handle, or Null for an empty list.
func (l *List) Head() arena.Handle {
	return l.head
}

// Tail returns the last node's handle, or Null for an empty list.
func (l *List) Tail() arena.Handle {
	return l.tail
}

// node reads a live node's fields. Every handle reachable from the
// descriptor is live, so the store decode cannot fail here.
func (l *List) node(h arena.Handle) (arena.Data, arena.Handle, arena.Handle) {
	data, prev, next, _ := l.store.Decode(h)
	return data, prev, next
}

// setPrev rewrites only the prev link of a live node. The data field is
// re-encoded verbatim so no overflow check can fire.
func (l *List) setPrev(h, prev arena.Handle) {
	data, _, next := l.node(h)
	_ = l.store.Encode(h, data, prev, next)
}

func (l *List) setNext(h, next arena.Handle) {
	data, prev, _ := l.node(h)
	_ = l.store.Encode(h, data, prev, next)
}

// At returns the handle of the index'th node. It walks from head when index
// is in the first half of the chain and from tail otherwise, taking at most
// length/2 steps. Fails with ErrIndexOutOfBounds when index >= Len().
func (l *List) At(index uint64) (arena.Handle, error) {
	if index >= l.length {
		return arena.Null, ErrIndexOutOfBounds
	}
	var h arena.Handle
	if index <= l.length/2 {
		h = l.head
		for i := uint64(0); i < index; i++ {
			_, _, h = l.node(h)
		}
	} else {
		h = l.tail
		for i := l.length - 1; i > index; i-- {
			_, h, _ = l.node(h)
		}
	}
	return h, nil
}

// InsertBefore allocates a new node carrying data and splices it immediately
// before the node named by before. A Null before means append at the tail,
// so InsertBefore(Null, d) on any list, and InsertBefore(head, d) on an
// empty one, both degenerate to Push. Returns the new node's handle.
//
// The only failure modes are the store's allocation limits; a failed call
// leaves the chain unchanged.
func (l *List) InsertBefore(before arena.Handle, data arena.Data) (arena.Handle, error) {
	var prev, next arena.Handle
	if before == arena.Null {
		prev, next = l.tail, arena.Null
	} else {
		_, p, _ := l.node(before)
		prev, next = p, before
	}

	h, err := l.store.Allocate(data, prev, next)
	if err != nil {
		return arena.Null, err
	}

	if prev != arena.Null {
		l.setNext(prev, h)
	} else {
		l.head = h
	}
	if next != arena.Null {
		l.setPrev(next, h)
	} else {
		l.tail = h
	}
	l.length++
	return h, nil
}

// Push appends a new node carrying data at the tail.
func (l *List) Push(data arena.Data) (arena.Handle, error) {
	return l.InsertBefore(arena.Null, data)
}

// Unshift prepends a new node carrying data at the head.
func (l *List) Unshift(data arena.Data) (arena.Handle, error) {
	return l.InsertBefore(l.head, data)
}

// Remove splices h out of the chain, relinking its neighbours and updating
// the descriptor ends, then resets h's links to Null. The node becomes an
// orphan: detached but still live, data untouched. Fails with ErrNullHandle
// for the Null sentinel; h must currently be a member of this list.
func (l *List) Remove(h arena.Handle) error {
	if h == arena.Null {
		return arena.ErrNullHandle
	}
	data, prev, next := l.node(h)

	if prev != arena.Null {
		l.setNext(prev, next)
	} else {
		l.head = next
	}
	if next != arena.Null {
		l.setPrev(next, prev)
	} else {
		l.tail = prev
	}
	l.length--

	_ = l.store.Encode(h, data, arena.Null, arena.Null)
	return nil
}

// Pop removes the tail node and returns its data handle. Fails with
// ErrEmptyList on an empty list.
func (l *List) Pop() (arena.Data, error) {
	if l.length == 0 {
		return 0, ErrEmptyList
	}
	h := l.tail
	data, _, _ := l.node(h)
	_ = l.Remove(h)
	return data, nil
}

// Shift removes the head node and returns its data handle. Fails with
// ErrEmptyList on an empty list.
func (l *List) Shift() (arena.Data, error) {
	if l.length == 0 {
		return 0, ErrEmptyList
	}
	h := l.head
	data, _, _ := l.node(h)
	_ = l.Remove(h)
	return data, nil
}

// Clear resets the descriptor to the empty state. Already-allocated slots
// are not touched; every node in the chain becomes unreachable from this
// descriptor but stays live in the store.
func (l *List) Clear() {
	l.length = 0
	l.head = arena.Null
	l.tail = arena.Null
}
