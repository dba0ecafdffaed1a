package rewards

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockRewardsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "block_rewards_computed_total",
		Help: "The number of blocks whose proposer rewards were computed, by fork.",
	}, []string{"fork"})
	blockRewardsComputationTime = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "block_rewards_computation_milliseconds",
		Help:    "Time taken to compute the proposer rewards of a block.",
		Buckets: []float64{1, 5, 10, 50, 100, 250, 500, 1000},
	})
	blockRewardsRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "block_rewards_requests_total",
		Help: "The number of block rewards API requests, by response code.",
	}, []string{"code"})
)
