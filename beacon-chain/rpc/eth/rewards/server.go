package rewards

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/api/server/structs"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/cache"
	"github.com/prysmaticlabs/blockrewards/beacon-chain/rpc/lookup"
	"github.com/prysmaticlabs/blockrewards/consensus-types/blocks"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/blockrewards/network/httputil"
	"go.opencensus.io/trace"
)

// BlockRewardsPath is the beacon API route serving block rewards.
const BlockRewardsPath = "/eth/v1/beacon/rewards/blocks/{block_id}"

// FinalizationFetcher reports whether a slot is finalized.
type FinalizationFetcher interface {
	IsFinalizedSlot(ctx context.Context, slot primitives.Slot) bool
}

// Server defines a server implementation of the rewards endpoints.
type Server struct {
	Blocker             lookup.Blocker
	Stater              lookup.Stater
	FinalizationFetcher FinalizationFetcher
	BlockRewardFetcher  BlockRewardsFetcher
	// RewardsCache is optional.
	RewardsCache *cache.BlockRewardsCache
}

// RegisterRoutes adds the rewards endpoints to router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc(BlockRewardsPath, s.BlockRewards).Methods(http.MethodGet)
}

// BlockRewards is an HTTP handler for Beacon API getBlockRewards.
func (s *Server) BlockRewards(w http.ResponseWriter, r *http.Request) {
	ctx, span := trace.StartSpan(r.Context(), "rewards.BlockRewards")
	defer span.End()

	blockId := mux.Vars(r)["block_id"]
	if blockId == "" {
		handleError(w, "block_id is required in URL params", http.StatusBadRequest)
		return
	}

	root, blk, err := s.Blocker.Block(ctx, []byte(blockId))
	if err != nil {
		var parseErr *lookup.BlockIdParseError
		var notFoundErr *lookup.BlockNotFoundError
		switch {
		case errors.As(err, &parseErr):
			handleError(w, "Invalid block ID: "+parseErr.Error(), http.StatusBadRequest)
		case errors.As(err, &notFoundErr):
			handleError(w, "Block not found: "+notFoundErr.Error(), http.StatusNotFound)
		default:
			handleError(w, "Could not get block: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	finalized := s.FinalizationFetcher != nil && s.FinalizationFetcher.IsFinalizedSlot(ctx, blk.Block.Slot)

	if s.RewardsCache != nil {
		if cached, err := s.RewardsCache.Get(root); err == nil {
			writeRewards(w, cached, finalized)
			return
		}
	}

	st, err := s.Stater.PreState(ctx, root)
	if err != nil {
		var notFoundErr *lookup.StateNotFoundError
		if errors.As(err, &notFoundErr) {
			handleError(w, "State not found: "+notFoundErr.Error(), http.StatusNotFound)
			return
		}
		handleError(w, "Could not get pre-state: "+err.Error(), http.StatusInternalServerError)
		return
	}
	wrapped, err := blocks.NewSignedBeaconBlock(blk)
	if err != nil {
		handleError(w, "Could not wrap block: "+err.Error(), http.StatusInternalServerError)
		return
	}
	rewards, err := s.BlockRewardFetcher.GetBlockRewardsData(ctx, wrapped, st)
	if err != nil {
		if errors.Is(err, ErrUnsupportedForkOperation) {
			handleError(w, err.Error(), http.StatusBadRequest)
			return
		}
		handleError(w, "Could not compute block rewards: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp := rewards.ToJSON()
	if s.RewardsCache != nil {
		s.RewardsCache.Put(root, resp)
	}
	writeRewards(w, resp, finalized)
}

func writeRewards(w http.ResponseWriter, data *structs.BlockRewards, finalized bool) {
	blockRewardsRequests.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	httputil.WriteJson(w, &structs.BlockRewardsResponse{
		Data:                data,
		ExecutionOptimistic: false,
		Finalized:           finalized,
	})
}

func handleError(w http.ResponseWriter, message string, code int) {
	blockRewardsRequests.WithLabelValues(strconv.Itoa(code)).Inc()
	httputil.HandleError(w, message, code)
}
