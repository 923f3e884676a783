package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pl9ed/wordle-solver/internal/session"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	s := session.New([]string{"RAISE", "ROUND", "RATIO"})
	require.NoError(t, st.Save(ctx, s))

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	st := NewMemoryStore()
	_, err := st.Get(context.Background(), "missing")
	assert.Error(t, err)
}
