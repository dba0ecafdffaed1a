package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/rpc/eth/rewards"
	state_native "github.com/prysmaticlabs/blockrewards/beacon-chain/state/state-native"
	"github.com/prysmaticlabs/blockrewards/cmd/blockrewards/flags"
	"github.com/prysmaticlabs/blockrewards/consensus-types/blocks"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var computeCmd = &cli.Command{
	Name:  "compute",
	Usage: "Compute the proposer rewards of a block from block and pre-state files",
	Flags: []cli.Flag{
		flags.BlockFileFlag,
		flags.PreStateFileFlag,
		flags.OutputFormat,
		flags.DisableColorFlag,
	},
	Action: computeAction,
}

func computeAction(cliCtx *cli.Context) error {
	blk, err := loadBlock(cliCtx.String(flags.BlockFileFlag.Name))
	if err != nil {
		return err
	}
	st, err := loadPreState(cliCtx.String(flags.PreStateFileFlag.Name))
	if err != nil {
		return err
	}
	r, err := computeRewards(cliCtx.Context, blk, st)
	if err != nil {
		return err
	}
	return printRewards(
		cliCtx.App.Writer,
		cliCtx.String(flags.OutputFormat.Name),
		!cliCtx.Bool(flags.DisableColorFlag.Name),
		[]*rewardsRow{{Slot: blk.Block.Slot, Rewards: r}},
	)
}

func computeRewards(ctx context.Context, blk *containers.SignedBeaconBlock, data *containers.BeaconStateData) (*rewards.BlockRewards, error) {
	wrapped, err := blocks.NewSignedBeaconBlock(blk)
	if err != nil {
		return nil, errors.Wrap(err, "could not wrap block")
	}
	st, err := state_native.InitializeFromData(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize pre-state")
	}
	r, err := (&rewards.BlockRewardService{}).GetBlockRewardsData(ctx, wrapped, st)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"slot":          wrapped.Slot(),
		"proposerIndex": r.ProposerIndex,
		"total":         r.Total,
	}).Debug("Computed block rewards")
	return r, nil
}
