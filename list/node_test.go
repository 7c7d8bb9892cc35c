package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-arenalist/arena"
	"github.com/forestrie/go-arenalist/listtesting"
)

func TestNodeViewLinksAndRoles(t *testing.T) {
	forEachLayout(t, func(t *testing.T, c *listtesting.TestContext) {
		handles := c.MustPush(1337, 2337, 3337)
		l := c.List

		next, err := l.Next(handles[0])
		require.NoError(t, err)
		require.Equal(t, handles[1], next)
		prev, err := l.Prev(handles[2])
		require.NoError(t, err)
		require.Equal(t, handles[1], prev)

		isHead, err := l.IsHead(handles[0])
		require.NoError(t, err)
		require.True(t, isHead)
		isHead, err = l.IsHead(handles[1])
		require.NoError(t, err)
		require.False(t, isHead)

		isTail, err := l.IsTail(handles[2])
		require.NoError(t, err)
		require.True(t, isTail)
		isTail, err = l.IsTail(handles[1])
		require.NoError(t, err)
		require.False(t, isTail)

		// Handle equality is plain integer equality.
		require.Equal(t, handles[0], l.Head())
		require.NotEqual(t, handles[0], handles[1])
	})
}

func TestNodeViewNullHandleErrors(t *testing.T) {
	forEachLayout(t, func(t *testing.T, c *listtesting.TestContext) {
		l := c.List
		c.MustPush(1337)

		_, err := l.Next(arena.Null)
		require.ErrorIs(t, err, arena.ErrNullHandle)
		_, err = l.Prev(arena.Null)
		require.ErrorIs(t, err, arena.ErrNullHandle)
		_, err = l.Data(arena.Null)
		require.ErrorIs(t, err, arena.ErrNullHandle)
		_, err = l.IsHead(arena.Null)
		require.ErrorIs(t, err, arena.ErrNullHandle)
		_, err = l.IsTail(arena.Null)
		require.ErrorIs(t, err, arena.ErrNullHandle)
		require.ErrorIs(t, l.SetData(arena.Null, 1), arena.ErrNullHandle)
		require.ErrorIs(t, l.Swap(arena.Null, l.Head()), arena.ErrNullHandle)
		require.ErrorIs(t, l.Swap(l.Head(), arena.Null), arena.ErrNullHandle)
	})
}

func TestSetDataInPlace(t *testing.T) {
	forEachLayout(t, func(t *testing.T, c *listtesting.TestContext) {
		handles := c.MustPush(1337, 2337, 3337)
		require.NoError(t, c.List.SetData(handles[1], 7777))
		c.CheckList([]arena.Data{1337, 7777, 3337})
	})
}

func TestSetDataPackedOverflowLeavesNodeUnchanged(t *testing.T) {
	c := listtesting.NewTestContext(t, arena.LayoutPacked)
	handles := c.MustPush(1337, 2337)

	err := c.List.SetData(handles[0], arena.MaxFieldValue+1)
	require.ErrorIs(t, err, arena.ErrDataOverflow)
	c.CheckList([]arena.Data{1337, 2337})
}

func TestSwapExchangesOnlyData(t *testing.T) {
	forEachLayout(t, func(t *testing.T, c *listtesting.TestContext) {
		handles := c.MustPush(1337, 2337, 3337)
		l := c.List

		require.NoError(t, l.Swap(handles[0], handles[2]))
		c.CheckList([]arena.Data{3337, 2337, 1337})

		// Links and descriptor are untouched.
		require.Equal(t, handles[0], l.Head())
		require.Equal(t, handles[2], l.Tail())
		next, err := l.Next(handles[0])
		require.NoError(t, err)
		require.Equal(t, handles[1], next)
	})
}

func TestSwapWithSelfIsANoOp(t *testing.T) {
	forEachLayout(t, func(t *testing.T, c *listtesting.TestContext) {
		handles := c.MustPush(1337, 2337)
		require.NoError(t, c.List.Swap(handles[1], handles[1]))
		c.CheckList([]arena.Data{1337, 2337})
	})
}

func TestRecordPoolConversionContract(t *testing.T) {
	c := listtesting.NewTestContext(t, arena.LayoutUnpacked)
	pool := &listtesting.RecordPool{}

	for serial := uint64(1); serial <= 3; serial++ {
		d := pool.Add(listtesting.Record{Serial: serial})
		c.MustPush(d)
	}

	// In-place mutation through the returned reference is visible on the
	// next lookup through the same handle.
	h, err := c.List.At(1)
	require.NoError(t, err)
	d, err := c.List.Data(h)
	require.NoError(t, err)
	pool.FromHandle(d).Hits++
	require.Equal(t, 1, pool.FromHandle(d).Hits)
	require.Equal(t, uint64(2), pool.FromHandle(d).Serial)

	// ToHandle and FromHandle are mutual inverses over the pool.
	for i := 0; i < pool.Len(); i++ {
		require.Equal(t, uint64(i+1), pool.FromHandle(pool.ToHandle(i)).Serial)
	}
}
