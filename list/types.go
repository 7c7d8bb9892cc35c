package list

import (
	"errors"

	"github.com/forestrie/go-arenalist/arena"
)

// NoIndex is the index reported by Find and RFind when no node matches.
const NoIndex = ^uint64(0)

// Predicate is a read-only match callback for Find and RFind. It must not
// mutate list structure.
type Predicate func(h arena.Handle, index uint64, ctx any) bool

// Visitor is a traversal callback for Each and REach. Returning false stops
// the walk. A visitor may mutate node data in place but not the link
// structure of unvisited nodes; see the package doc for the self-removal
// guarantee.
type Visitor func(h arena.Handle, index uint64, ctx any) bool

var (
	ErrEmptyList        = errors.New("list: pop or shift on an empty list")
	ErrIndexOutOfBounds = errors.New("list: index is not less than the list length")
)
