package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func TestMemoryStoreMissingCollectionReadsEmpty(t *testing.T) {
	store := NewMemoryStore()

	var docs []doc
	require.NoError(t, store.Read(context.Background(), "nothing", &docs))
	assert.Empty(t, docs)
}

func TestMemoryStoreWriteAllOverwrites(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.WriteAll(context.Background(), "docs", []doc{{ID: "a", Value: 1}, {ID: "b", Value: 2}}))

	var docs []doc
	require.NoError(t, store.Read(context.Background(), "docs", &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)

	// Full overwrite, not a merge.
	require.NoError(t, store.WriteAll(context.Background(), "docs", []doc{{ID: "c", Value: 3}}))
	require.NoError(t, store.Read(context.Background(), "docs", &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "c", docs[0].ID)
}
