package main

import (
	"bytes"
	"testing"

	"github.com/prysmaticlabs/blockrewards/beacon-chain/rpc/eth/rewards"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

func testRows() []*rewardsRow {
	return []*rewardsRow{
		{
			Slot: 10,
			Root: bytes.Repeat([]byte{0xab}, 32),
			Rewards: &rewards.BlockRewards{
				ProposerIndex:     4,
				Total:             62504791,
				SyncAggregate:     4791,
				ProposerSlashings: 62500000,
			},
		},
		{Slot: 11, Note: "missing pre-state"},
	}
}

func TestPrintRewards_Table(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, printRewards(out, "table", false, testRows()))
	s := out.String()
	assert.StringContains(t, "ATTESTER SLASHINGS", s)
	assert.StringContains(t, "0xabababab", s)
	assert.StringContains(t, "62,500,000", s)
	assert.StringContains(t, "4,791", s)
	assert.StringContains(t, "missing pre-state", s)
	assert.StringContains(t, "1 of 2 blocks, 62,504,791 Gwei (0.062505 ETH)", s)
}

func TestPrintRewards_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, printRewards(out, "json", false, testRows()))
	var rows []*rowJSON
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Equal(t, 2, len(rows))
	assert.Equal(t, "0xabababababababababababababababababababababababababababababababab", rows[0].BlockRoot)
	assert.Equal(t, "62504791", rows[0].Data.Total)
	assert.Equal(t, "62500000", rows[0].Data.ProposerSlashings)
	assert.Equal(t, "11", rows[1].Slot)
	assert.Equal(t, "missing pre-state", rows[1].Skipped)
	assert.Equal(t, true, rows[1].Data == nil)
}

func TestPrintRewards_UnknownFormat(t *testing.T) {
	assert.ErrorContains(t, "unknown output format xml", printRewards(&bytes.Buffer{}, "xml", false, nil))
}

func TestGwei(t *testing.T) {
	assert.Equal(t, "0", gwei(0))
	assert.Equal(t, "32,000,000,000", gwei(32000000000))
	assert.Equal(t, "18446744073709551615", gwei(^uint64(0)))
}
