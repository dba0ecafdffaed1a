package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/api/server/structs"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/rpc/eth/rewards"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/blockrewards/math"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rewardsRow is one printed block. Root is nil when the block root is unknown and
// Rewards is nil when the block was skipped for the reason in Note.
type rewardsRow struct {
	Slot    primitives.Slot
	Root    []byte
	Rewards *rewards.BlockRewards
	Note    string
}

type rowJSON struct {
	Slot      string                `json:"slot"`
	BlockRoot string                `json:"block_root,omitempty"`
	Data      *structs.BlockRewards `json:"data,omitempty"`
	Skipped   string                `json:"skipped,omitempty"`
}

func printRewards(w io.Writer, format string, color bool, rows []*rewardsRow) error {
	switch format {
	case "json":
		return printJSON(w, rows)
	case "table":
		return printTable(w, aurora.NewAurora(color), rows)
	default:
		return errors.Errorf("unknown output format %s", format)
	}
}

func printJSON(w io.Writer, rows []*rewardsRow) error {
	out := make([]*rowJSON, len(rows))
	for i, r := range rows {
		out[i] = &rowJSON{Slot: strconv.FormatUint(uint64(r.Slot), 10), Skipped: r.Note}
		if r.Root != nil {
			out[i].BlockRoot = fmt.Sprintf("%#x", r.Root)
		}
		if r.Rewards != nil {
			out[i].Data = r.Rewards.ToJSON()
		}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printTable(w io.Writer, au aurora.Aurora, rows []*rewardsRow) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "SLOT\tROOT\tPROPOSER\tATTESTATIONS\tSYNC AGGREGATE\tPROPOSER SLASHINGS\tATTESTER SLASHINGS\tTOTAL\t"); err != nil {
		return err
	}
	var total uint64
	var computed int
	for _, r := range rows {
		root := "-"
		if r.Root != nil {
			root = fmt.Sprintf("%#x", r.Root)[:10]
		}
		if r.Rewards == nil {
			if _, err := fmt.Fprintf(tw, "%d\t%s\t-\t-\t-\t-\t-\t-\t%s\n", r.Slot, root, au.Yellow(r.Note)); err != nil {
				return err
			}
			continue
		}
		rw := r.Rewards
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Slot, root, rw.ProposerIndex,
			gwei(rw.Attestations), gwei(rw.SyncAggregate), gwei(rw.ProposerSlashings), gwei(rw.AttesterSlashings),
			gwei(rw.Total),
		); err != nil {
			return err
		}
		sum, err := mathutil.Add64(total, rw.Total)
		if err != nil {
			return errors.Wrap(err, "could not sum rewards")
		}
		total = sum
		computed++
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	summary := fmt.Sprintf("%d of %d blocks, %s Gwei (%s ETH)", computed, len(rows), gwei(total), humanize.Ftoa(float64(total)/1e9))
	_, err := fmt.Fprintln(w, au.Bold(au.Green(summary)))
	return err
}

func gwei(v uint64) string {
	if v > math.MaxInt64 {
		return strconv.FormatUint(v, 10)
	}
	return humanize.Comma(int64(v))
}
