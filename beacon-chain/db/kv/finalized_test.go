package kv

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

func TestStore_FinalizedSlot(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := db.FinalizedSlot(ctx)
	assert.Equal(t, true, errors.Is(err, ErrNotFound))
	assert.Equal(t, false, db.IsFinalizedSlot(ctx, 0))

	require.NoError(t, db.SaveFinalizedSlot(ctx, 64))
	slot, err := db.FinalizedSlot(ctx)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(64), slot)
	assert.Equal(t, true, db.IsFinalizedSlot(ctx, 64))
	assert.Equal(t, false, db.IsFinalizedSlot(ctx, 65))

	err = db.SaveFinalizedSlot(ctx, 32)
	assert.ErrorContains(t, "finalized slot 32 is lower than stored finalized slot 64", err)
	require.NoError(t, db.SaveFinalizedSlot(ctx, 96))
}
