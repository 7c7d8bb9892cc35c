package list

import "github.com/forestrie/go-arenalist/arena"

// Next returns the handle after h in the chain, or Null when h is the tail.
// Fails with ErrNullHandle for the Null sentinel.
func (l *List) Next(h arena.Handle) (arena.Handle, error) {
	if h == arena.Null {
		return arena.Null, arena.ErrNullHandle
	}
	_, _, next := l.node(h)
	return next, nil
}

// Prev returns the handle before h in the chain, or Null when h is the head.
func (l *List) Prev(h arena.Handle) (arena.Handle, error) {
	if h == arena.Null {
		return arena.Null, arena.ErrNullHandle
	}
	_, prev, _ := l.node(h)
	return prev, nil
}

// Data returns h's data handle.
func (l *List) Data(h arena.Handle) (arena.Data, error) {
	if h == arena.Null {
		return 0, arena.ErrNullHandle
	}
	data, _, _ := l.node(h)
	return data, nil
}

// IsHead reports whether h has no predecessor. Orphans report true for both
// IsHead and IsTail; chain membership is the caller's to track.
func (l *List) IsHead(h arena.Handle) (bool, error) {
	prev, err := l.Prev(h)
	if err != nil {
		return false, err
	}
	return !prev.IsValid(), nil
}

// IsTail reports whether h has no successor.
func (l *List) IsTail(h arena.Handle) (bool, error) {
	next, err := l.Next(h)
	if err != nil {
		return false, err
	}
	return !next.IsValid(), nil
}

// SetData overwrites h's data field in place, leaving the links untouched.
// Subject to the same overflow condition as the store's Encode.
func (l *List) SetData(h arena.Handle, data arena.Data) error {
	if h == arena.Null {
		return arena.ErrNullHandle
	}
	_, prev, next := l.node(h)
	return l.store.Encode(h, data, prev, next)
}

// Swap exchanges the data fields of two live nodes without touching any
// link field. Swapping a node with itself is a no-op.
func (l *List) Swap(a, b arena.Handle) error {
	if a == arena.Null || b == arena.Null {
		return arena.ErrNullHandle
	}
	if a == b {
		return nil
	}
	da, aprev, anext := l.node(a)
	db, bprev, bnext := l.node(b)
	_ = l.store.Encode(a, db, aprev, anext)
	_ = l.store.Encode(b, da, bprev, bnext)
	return nil
}
