package forkchoice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField("prefix", "forkchoice")

	calledEstimateCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forkchoice_estimate_requested_count",
			Help: "The number of times someone called estimate.",
		},
	)
	failedEstimateCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forkchoice_estimate_failed_count",
			Help: "The number of estimate calls that returned an error.",
		},
	)
	descentSteps = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "forkchoice_descent_steps",
			Help:    "The number of blocks descended from genesis to reach the estimate.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
	scoredChildrenCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forkchoice_scored_children_count",
			Help: "The number of candidate children scored during descents.",
		},
	)
	chainCacheHit = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forkchoice_chain_cache_hit",
			Help: "The number of estimate chain lookups that are present in the cache.",
		},
	)
	chainCacheMiss = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forkchoice_chain_cache_miss",
			Help: "The number of estimate chain lookups that aren't present in the cache.",
		},
	)
)
