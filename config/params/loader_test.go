package params_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/blockrewards/config/params"
	types "github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

const sepoliaLikeConfig = `# Extends the mainnet preset
PRESET_BASE: 'mainnet'
CONFIG_NAME: 'sepolia'

GENESIS_FORK_VERSION: 0x90000069
ALTAIR_FORK_VERSION: 0x90000070
ALTAIR_FORK_EPOCH: 50
BELLATRIX_FORK_VERSION: 0x90000071
BELLATRIX_FORK_EPOCH: 100
CAPELLA_FORK_VERSION: 0x90000072
CAPELLA_FORK_EPOCH: 56832
DENEB_FORK_VERSION: 0x90000073
DENEB_FORK_EPOCH: 132608
WHISTLEBLOWER_REWARD_QUOTIENT: 512
DEPOSIT_CHAIN_ID: 11155111
`

func TestUnmarshalConfig_Mainnet(t *testing.T) {
	conf, err := params.UnmarshalConfig([]byte(sepoliaLikeConfig))
	require.NoError(t, err)
	assert.Equal(t, "sepolia", conf.ConfigName)
	assert.Equal(t, types.Epoch(50), conf.AltairForkEpoch)
	assert.Equal(t, types.Epoch(132608), conf.DenebForkEpoch)
	assert.DeepEqual(t, []byte{0x90, 0x00, 0x00, 0x69}, conf.GenesisForkVersion)
	assert.Equal(t, types.Slot(32), conf.SlotsPerEpoch)
	assert.Equal(t, uint64(512), conf.WhistleBlowerRewardQuotient)
}

func TestUnmarshalConfig_MinimalPreset(t *testing.T) {
	conf, err := params.UnmarshalConfig([]byte("PRESET_BASE: 'minimal'\nALTAIR_FORK_EPOCH: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "devnet", conf.ConfigName)
	assert.Equal(t, types.Slot(8), conf.SlotsPerEpoch)
	assert.Equal(t, uint64(32), conf.SyncCommitteeSize)
	assert.Equal(t, types.Epoch(1), conf.AltairForkEpoch)
	assert.Equal(t, params.BeaconConfig().FarFutureEpoch, conf.BellatrixForkEpoch)
}

func TestUnmarshalConfig_BadHex(t *testing.T) {
	_, err := params.UnmarshalConfig([]byte("GENESIS_FORK_VERSION: 0xzz\n"))
	require.ErrorContains(t, "failed to decode hex string", err)
}

func TestLoadChainConfigFile(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sepoliaLikeConfig), 0600))
	require.NoError(t, params.LoadChainConfigFile(file))
	assert.Equal(t, "sepolia", params.BeaconConfig().ConfigName)
	assert.Equal(t, types.Epoch(100), params.BeaconConfig().BellatrixForkEpoch)

	require.ErrorContains(t, "failed to read chain config file", params.LoadChainConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestReplaceHexStringWithYAMLFormat(t *testing.T) {
	got, err := params.ReplaceHexStringWithYAMLFormat("DOMAIN_BEACON_ATTESTER: 0x01000000 # comment")
	require.NoError(t, err)
	assert.Equal(t, "DOMAIN_BEACON_ATTESTER: [1, 0, 0, 0]", got)

	got, err = params.ReplaceHexStringWithYAMLFormat("GENESIS_FORK_VERSION: '0x00000001'")
	require.NoError(t, err)
	assert.Equal(t, "GENESIS_FORK_VERSION: [0, 0, 0, 1]", got)
}

func TestConfig_CopyIsIndependent(t *testing.T) {
	c := params.MainnetConfig()
	c.GenesisForkVersion[0] = 0xff
	c.WhistleBlowerRewardQuotient = 1
	fresh := params.MainnetConfig()
	assert.Equal(t, byte(0), fresh.GenesisForkVersion[0])
	assert.Equal(t, uint64(512), fresh.WhistleBlowerRewardQuotient)
}

func TestConfig_ParticipationWeights(t *testing.T) {
	w := params.MainnetConfig().ParticipationWeights()
	assert.DeepEqual(t, []uint64{14, 26, 14}, w)
}
