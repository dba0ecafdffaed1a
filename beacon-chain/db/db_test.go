package db

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/blockrewards/beacon-chain/db/kv"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

var _ Database = (*kv.Store)(nil)

func TestNewDB(t *testing.T) {
	d, err := NewDB(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.NoError(t, d.Close())
}
