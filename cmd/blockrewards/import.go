package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/db"
	"github.com/prysmaticlabs/blockrewards/cmd/blockrewards/flags"
	"github.com/prysmaticlabs/blockrewards/consensus-types/blocks"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/runtime/logging"
	"github.com/urfave/cli/v2"
)

var importCmd = &cli.Command{
	Name:  "import",
	Usage: "Store a block and the state it was applied to in the database",
	Flags: []cli.Flag{
		flags.BlockFileFlag,
		flags.PreStateFileFlag,
		flags.BlockRootFlag,
		flags.FinalizedSlotFlag,
	},
	Action: importAction,
}

func importAction(cliCtx *cli.Context) error {
	root, err := parseRoot(cliCtx.String(flags.BlockRootFlag.Name))
	if err != nil {
		return err
	}
	blk, err := loadBlock(cliCtx.String(flags.BlockFileFlag.Name))
	if err != nil {
		return err
	}
	st, err := loadPreState(cliCtx.String(flags.PreStateFileFlag.Name))
	if err != nil {
		return err
	}
	var finalized *primitives.Slot
	if cliCtx.IsSet(flags.FinalizedSlotFlag.Name) {
		s := primitives.Slot(cliCtx.Uint64(flags.FinalizedSlotFlag.Name))
		finalized = &s
	}

	d, err := db.NewDB(cliCtx.Context, cliCtx.String(flags.DataDirFlag.Name))
	if err != nil {
		return errors.Wrap(err, "could not open database")
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.WithError(err).Error("Could not close database")
		}
	}()
	return importBlock(cliCtx.Context, d, root, blk, st, finalized)
}

// importBlock stores blk under root together with its pre-state. A non-nil finalized slot is
// recorded as the latest finalized slot.
func importBlock(
	ctx context.Context,
	d db.NoHeadAccessDatabase,
	root [32]byte,
	blk *containers.SignedBeaconBlock,
	st *containers.BeaconStateData,
	finalized *primitives.Slot,
) error {
	wrapped, err := blocks.NewSignedBeaconBlock(blk)
	if err != nil {
		return errors.Wrap(err, "could not wrap block")
	}
	if st == nil {
		return errors.New("nil pre-state")
	}
	fields := logging.BlockFields(root, wrapped)
	if st.Slot != wrapped.Slot() {
		log.WithFields(fields).WithField("preStateSlot", st.Slot).Warn("Pre-state slot does not match block slot, rewards for this block cannot be computed")
	}
	if err := d.SaveBlock(ctx, root, blk); err != nil {
		return errors.Wrap(err, "could not save block")
	}
	if err := d.SavePreState(ctx, root, st); err != nil {
		return errors.Wrap(err, "could not save pre-state")
	}
	if finalized != nil {
		if err := d.SaveFinalizedSlot(ctx, *finalized); err != nil {
			return errors.Wrap(err, "could not save finalized slot")
		}
	}
	log.WithFields(fields).Info("Imported block")
	return nil
}
