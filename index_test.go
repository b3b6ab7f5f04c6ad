package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIndex_LoadBeforeEnsure(t *testing.T) {
	ctx := context.Background()
	ki := newKeyIndex(NewMemory(), "ns", false)

	_, err := ki.load(ctx)
	require.ErrorIs(t, err, ErrUninitialized)
}

func TestKeyIndex_EnsureCreatesEmpty(t *testing.T) {
	ctx := context.Background()
	medium := NewMemory()
	ki := newKeyIndex(medium, "ns", false)

	require.NoError(t, ki.ensure(ctx))

	text, ok, err := medium.GetItem(ctx, "__ns-keys-array")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[]`, text)

	keys, err := ki.load(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestKeyIndex_EnsureKeepsExisting(t *testing.T) {
	ctx := context.Background()
	medium := NewMemory()
	require.NoError(t, medium.SetItem(ctx, "__ns-keys-array", `["a","b"]`))

	ki := newKeyIndex(medium, "ns", false)
	require.NoError(t, ki.ensure(ctx))

	keys, err := ki.load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestKeyIndex_AddOrderAndDedup(t *testing.T) {
	ctx := context.Background()
	medium := NewMemory()
	ki := newKeyIndex(medium, "ns", false)
	require.NoError(t, ki.ensure(ctx))

	require.NoError(t, ki.add(ctx, "b"))
	require.NoError(t, ki.add(ctx, "a"))
	require.NoError(t, ki.add(ctx, "b"))

	keys, err := ki.load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, keys, "insertion order, no duplicates")
}

func TestKeyIndex_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ki := newKeyIndex(NewMemory(), "ns", false)
	require.NoError(t, ki.ensure(ctx))
	require.NoError(t, ki.add(ctx, "a"))
	require.NoError(t, ki.add(ctx, "b"))

	require.NoError(t, ki.remove(ctx, "a"))
	require.NoError(t, ki.remove(ctx, "a"))
	require.NoError(t, ki.remove(ctx, "never-there"))

	keys, err := ki.load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)
}

func TestKeyIndex_Clear(t *testing.T) {
	ctx := context.Background()
	medium := NewMemory()
	ki := newKeyIndex(medium, "ns", false)
	require.NoError(t, ki.ensure(ctx))
	require.NoError(t, ki.add(ctx, "a"))

	require.NoError(t, ki.clear(ctx))

	n, err := ki.size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	text, _, err := medium.GetItem(ctx, "__ns-keys-array")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, text)
}

func TestKeyIndex_KeyAt(t *testing.T) {
	ctx := context.Background()
	ki := newKeyIndex(NewMemory(), "ns", false)
	require.NoError(t, ki.ensure(ctx))
	require.NoError(t, ki.add(ctx, "a"))
	require.NoError(t, ki.add(ctx, "b"))

	k, ok, err := ki.keyAt(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b", k)

	_, ok, err = ki.keyAt(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = ki.keyAt(ctx, -1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeyIndex_MirrorServesReads(t *testing.T) {
	ctx := context.Background()
	cm := &countingMedium{Medium: NewMemory()}
	ki := newKeyIndex(cm, "ns", true)
	require.NoError(t, ki.ensure(ctx))
	require.NoError(t, ki.add(ctx, "a"))

	before := cm.gets
	for i := 0; i < 3; i++ {
		_, err := ki.size(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, before, cm.gets, "warm mirror must serve reads without medium access")
}

func TestKeyIndex_MirrorFollowsPersist(t *testing.T) {
	ctx := context.Background()
	medium := NewMemory()
	ki := newKeyIndex(medium, "ns", true)
	require.NoError(t, ki.ensure(ctx))

	require.NoError(t, ki.add(ctx, "a"))
	require.NoError(t, ki.add(ctx, "b"))
	require.NoError(t, ki.remove(ctx, "a"))

	text, _, err := medium.GetItem(ctx, "__ns-keys-array")
	require.NoError(t, err)
	assert.JSONEq(t, `["b"]`, text)
	assert.Equal(t, []string{"b"}, ki.mirror)
}

func TestKeyIndex_MalformedRecord(t *testing.T) {
	ctx := context.Background()
	medium := NewMemory()
	require.NoError(t, medium.SetItem(ctx, "__ns-keys-array", "42 is not an array"))

	ki := newKeyIndex(medium, "ns", false)
	_, err := ki.load(ctx)
	require.ErrorIs(t, err, ErrBadData)

	// Ensure also refuses to load a corrupt index into the mirror.
	cached := newKeyIndex(medium, "ns", true)
	require.ErrorIs(t, cached.ensure(ctx), ErrBadData)
}
