package main

import (
	"context"
	"fmt"

	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/db"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/rpc/eth/rewards"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/rpc/lookup"
	"github.com/prysmaticlabs/blockrewards/cmd/blockrewards/flags"
	"github.com/prysmaticlabs/blockrewards/consensus-types/blocks"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/runtime/logging"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cli.Command{
	Name:  "batch",
	Usage: "Compute the proposer rewards of every stored block in a slot range",
	Flags: []cli.Flag{
		flags.StartSlotFlag,
		flags.EndSlotFlag,
		flags.WorkersFlag,
		flags.OutputFormat,
		flags.DisableColorFlag,
	},
	Action: batchAction,
}

func batchAction(cliCtx *cli.Context) error {
	start := primitives.Slot(cliCtx.Uint64(flags.StartSlotFlag.Name))
	end := primitives.Slot(cliCtx.Uint64(flags.EndSlotFlag.Name))
	if end < start {
		return errors.Errorf("end slot %d is before start slot %d", end, start)
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

	rows, err := computeBatch(cliCtx.Context, d, start, end, cliCtx.Int(flags.WorkersFlag.Name), initializeProgressBar)
	if err != nil {
		return err
	}
	return printRewards(
		cliCtx.App.Writer,
		cliCtx.String(flags.OutputFormat.Name),
		!cliCtx.Bool(flags.DisableColorFlag.Name),
		rows,
	)
}

func initializeProgressBar(numItems int, msg string) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		numItems,
		progressbar.OptionFullWidth(),
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionSetDescription(msg),
	)
}

// computeBatch computes the rewards of every block stored in [start, end] using up to workers
// goroutines. Rows keep the store's slot order. Blocks whose pre-state is missing or whose fork
// is unsupported are reported as skipped rows. A nil newBar disables progress output.
func computeBatch(
	ctx context.Context,
	d db.ReadOnlyDatabase,
	start, end primitives.Slot,
	workers int,
	newBar func(int, string) *progressbar.ProgressBar,
) ([]*rewardsRow, error) {
	slots, roots, err := d.BlockRootsInSlotRange(ctx, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "could not get block roots")
	}
	if workers < 1 {
		workers = 1
	}
	var bar *progressbar.ProgressBar
	if newBar != nil && len(roots) > 0 {
		bar = newBar(len(roots), fmt.Sprintf("Computing rewards for slots %d to %d", start, end))
	}

	rows := make([]*rewardsRow, len(roots))
	stater := &lookup.StateProvider{BeaconDB: d}
	svc := &rewards.BlockRewardService{}
	indices := make(chan int)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(indices)
		for i := range roots {
			select {
			case indices <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indices {
				row, err := computeStored(ctx, d, stater, svc, slots[i], roots[i])
				if err != nil {
					return err
				}
				rows[i] = row
				if bar != nil {
					if err := bar.Add(1); err != nil {
						log.WithError(err).Debug("Could not update progress bar")
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func computeStored(
	ctx context.Context,
	d db.ReadOnlyDatabase,
	stater lookup.Stater,
	fetcher rewards.BlockRewardsFetcher,
	slot primitives.Slot,
	root [32]byte,
) (*rewardsRow, error) {
	row := &rewardsRow{Slot: slot, Root: root[:]}
	blk, err := d.Block(ctx, root)
	if err != nil {
		return nil, errors.Wrapf(err, "could not get block %#x", root)
	}
	if blk == nil {
		return nil, errors.Errorf("block %#x indexed at slot %d is missing", root, slot)
	}
	wrapped, err := blocks.NewSignedBeaconBlock(blk)
	if err != nil {
		return nil, errors.Wrap(err, "could not wrap block")
	}
	fields := logging.BlockFields(root, wrapped)

	st, err := stater.PreState(ctx, root)
	if err != nil {
		var notFound *lookup.StateNotFoundError
		if errors.As(err, &notFound) {
			log.WithFields(fields).Warn("Skipping block without pre-state")
			row.Note = "missing pre-state"
			return row, nil
		}
		return nil, err
	}
	r, err := fetcher.GetBlockRewardsData(ctx, wrapped, st)
	if err != nil {
		if errors.Is(err, rewards.ErrUnsupportedForkOperation) {
			log.WithFields(fields).Warn("Skipping block from unsupported fork")
			row.Note = "unsupported fork"
			return row, nil
		}
		return nil, errors.Wrapf(err, "could not compute rewards for block %#x", root)
	}
	row.Rewards = r
	return row, nil
}
