// Package listtesting provides shared fixtures for exercising handle lists:
// a TestContext bundling a store and list, an invariant checker, and a
// worked example of the integrator data-handle conversion contract.
package listtesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-arenalist/arena"
	"github.com/forestrie/go-arenalist/list"
)

// TestContext bundles one store and one list over it for a single test.
type TestContext struct {
	T     *testing.T
	Store *arena.Store
	List  *list.List
}

// NewTestContext returns a fresh empty store and list using layout.
func NewTestContext(t *testing.T, layout arena.Layout) *TestContext {
	store, err := arena.NewStore(layout)
	require.NoError(t, err)
	return &TestContext{T: t, Store: store, List: list.New(store)}
}

// MustPush appends each data value in turn, returning the new handles.
func (c *TestContext) MustPush(data ...arena.Data) []arena.Handle {
	handles := make([]arena.Handle, 0, len(data))
	for _, d := range data {
		h, err := c.List.Push(d)
		require.NoError(c.T, err)
		handles = append(handles, h)
	}
	return handles
}

// CheckList verifies the full structural invariants of the chain against the
// expected forward data order: length agreement in both walk directions,
// Null terminators at the ends, prev/next symmetry, and the data sequence.
func (c *TestContext) CheckList(want []arena.Data) {
	t := c.T
	t.Helper()
	l := c.List

	require.Equal(t, uint64(len(want)), l.Len())
	if len(want) == 0 {
		require.Equal(t, arena.Null, l.Head())
		require.Equal(t, arena.Null, l.Tail())
		return
	}

	// Forward walk: data order, prev/next symmetry, termination at tail.
	h := l.Head()
	var prev arena.Handle
	for i, wantData := range want {
		require.True(t, h.IsValid(), "forward walk ended early at %d", i)

		d, err := l.Data(h)
		require.NoError(t, err)
		require.Equal(t, wantData, d, "data mismatch at %d", i)

		p, err := l.Prev(h)
		require.NoError(t, err)
		require.Equal(t, prev, p, "prev mismatch at %d", i)

		prev = h
		h, err = l.Next(h)
		require.NoError(t, err)
	}
	require.Equal(t, arena.Null, h, "forward walk overran the tail")
	require.Equal(t, prev, l.Tail())

	// Backward walk visits the same count.
	n := uint64(0)
	for h = l.Tail(); h.IsValid(); n++ {
		var err error
		h, err = l.Prev(h)
		require.NoError(t, err)
	}
	require.Equal(t, l.Len(), n)

	headIsHead, err := l.IsHead(l.Head())
	require.NoError(t, err)
	require.True(t, headIsHead)
	tailIsTail, err := l.IsTail(l.Tail())
	require.NoError(t, err)
	require.True(t, tailIsTail)
}
