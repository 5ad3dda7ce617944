package kv

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	return NewMemStore(slog.New(slog.DiscardHandler))
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	type record struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	require.NoError(t, store.Set(ctx, "records", []record{{ID: "r1", Name: "first"}}))

	var got []record
	found := store.Get(ctx, "records", &got)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}

func TestStore_GetAbsentKey(t *testing.T) {
	store := newTestStore(t)

	var got []string
	found := store.Get(context.Background(), "missing", &got)
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestStore_GetCorruptDocumentTreatedAsAbsent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Write a document that will not parse as the expected shape.
	require.NoError(t, store.bucket.WriteAll(ctx, blobName("broken"), []byte("{not json"), nil))

	var got []string
	found := store.Get(ctx, "broken", &got)
	assert.False(t, found)
}

func TestStore_RemoveAbsentKeyIsNoError(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Remove(context.Background(), "missing"))
}

func TestStore_ClearWipesAllKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", []string{"x"}))
	require.NoError(t, store.Set(ctx, "b", []string{"y"}))

	require.NoError(t, store.Clear(ctx))

	var got []string
	assert.False(t, store.Get(ctx, "a", &got))
	assert.False(t, store.Get(ctx, "b", &got))
}
